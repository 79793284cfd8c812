package id3v2

import (
	"fmt"
	"strconv"
	"strings"

	id3 "github.com/bogem/id3v2/v2"

	"github.com/simonhull/taggy/internal/parsing"
	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
)

// commentLanguage is the ISO-639-2 language written into COMM and USLT.
const commentLanguage = "eng"

// unknownMIME is the APIC MIME string for image data of unknown format.
const unknownMIME = "image/"

type codec struct{}

func (codec) ToNative(tag types.Tag) registry.NativeTag { //nolint:gocyclo // One branch per mapped field
	t := New()
	f := t.frames

	addText(f, frameTitle, tag.Title)
	addText(f, frameArtist, tag.Artist)
	addText(f, frameAlbumArtist, tag.AlbumArtist)
	addText(f, frameAlbum, tag.Album)
	addText(f, frameGenre, tag.Genre)
	addText(f, frameComposer, tag.Composer)
	addText(f, frameCopyright, tag.Copyright)
	addText(f, frameLanguage, tag.Language)
	addText(f, frameRecording, tag.RecordingDate)
	if tag.Year > 0 {
		addText(f, frameYear, strconv.Itoa(tag.Year))
	}
	addText(f, frameTrack, parsing.FormatPair(tag.TrackNumber, tag.TrackTotal))
	addText(f, frameDisc, parsing.FormatPair(tag.DiscNumber, tag.DiscTotal))

	if tag.Comment != "" {
		f.AddCommentFrame(id3.CommentFrame{
			Encoding: id3.EncodingUTF8,
			Language: commentLanguage,
			Text:     tag.Comment,
		})
	}
	if tag.Lyrics != "" {
		f.AddUnsynchronisedLyricsFrame(id3.UnsynchronisedLyricsFrame{
			Encoding: id3.EncodingUTF8,
			Language: commentLanguage,
			Lyrics:   tag.Lyrics,
		})
	}

	kept, _ := storablePictures(tag.Pictures)
	for _, p := range kept {
		f.AddAttachedPicture(pictureFrame(p))
	}

	return t
}

func (codec) FromNative(native registry.NativeTag) (types.Tag, error) {
	t, ok := native.(*Tag)
	if !ok {
		return types.Tag{}, fmt.Errorf("id3v2: unexpected native tag %T", native)
	}
	f := t.frames

	tag := types.Tag{
		Type:          types.TagTypeID3v2,
		Title:         text(f, frameTitle),
		Artist:        text(f, frameArtist),
		AlbumArtist:   text(f, frameAlbumArtist),
		Album:         text(f, frameAlbum),
		Genre:         text(f, frameGenre),
		Composer:      text(f, frameComposer),
		Copyright:     text(f, frameCopyright),
		Language:      text(f, frameLanguage),
		RecordingDate: text(f, frameRecording),
		Year:          parsing.Year(text(f, frameYear)),
	}
	tag.TrackNumber, tag.TrackTotal = parsing.NumberPair(text(f, frameTrack))
	tag.DiscNumber, tag.DiscTotal = parsing.NumberPair(text(f, frameDisc))

	for _, fr := range f.GetFrames(frameComment) {
		if c, ok := fr.(id3.CommentFrame); ok && c.Text != "" {
			tag.Comment = c.Text
			break
		}
	}
	for _, fr := range f.GetFrames(frameLyrics) {
		if l, ok := fr.(id3.UnsynchronisedLyricsFrame); ok && l.Lyrics != "" {
			tag.Lyrics = l.Lyrics
			break
		}
	}

	for _, fr := range f.GetFrames(framePicture) {
		pf, ok := fr.(id3.PictureFrame)
		if !ok || len(pf.Picture) == 0 {
			continue
		}
		tag.Pictures = append(tag.Pictures, types.Picture{
			Data:        pf.Picture,
			Description: pf.Description,
			Type:        types.PictureType(pf.PictureType),
			MimeType:    types.ParseMimeType(pf.MimeType),
		})
	}

	return tag, nil
}

// addText adds a text frame unless value is absent.
func addText(f *id3.Tag, id, value string) {
	if value == "" {
		return
	}
	f.AddTextFrame(id, id3.EncodingUTF8, value)
}

// text returns a text frame's value with ID3v2.4 value separators and
// padding removed; multiple values are joined with "; ".
func text(f *id3.Tag, id string) string {
	v := strings.TrimRight(f.GetTextFrame(id).Text, "\x00")
	if strings.Contains(v, "\x00") {
		v = strings.Join(strings.Split(v, "\x00"), "; ")
	}
	return v
}

// pictureMIME returns the MIME string to store. A picture without a MIME
// type gets the "image/" placeholder, which reads back as MimeNone.
func pictureMIME(p types.Picture) string {
	if p.MimeType == types.MimeNone {
		return unknownMIME
	}
	return p.MimeType.String()
}

// pictureFrame builds the APIC frame for p.
func pictureFrame(p types.Picture) id3.PictureFrame {
	return id3.PictureFrame{
		Encoding:    id3.EncodingUTF8,
		MimeType:    pictureMIME(p),
		PictureType: byte(p.Type),
		Description: p.Description,
		Picture:     p.Data,
	}
}

// storablePictures splits pictures into those ID3v2 can hold and those it
// cannot. APIC frames are unique per picture type and description, so a
// later picture with the same pair as an earlier one is dropped.
func storablePictures(pictures []types.Picture) (kept, dropped []types.Picture) {
	seen := make(map[string]bool, len(pictures))
	for _, p := range pictures {
		if p.IsEmpty() {
			continue
		}
		id := pictureFrame(p).UniqueIdentifier()
		if seen[id] {
			dropped = append(dropped, p)
			continue
		}
		seen[id] = true
		kept = append(kept, p)
	}
	return kept, dropped
}

// Dropped reports the pictures ToNative leaves out of tag.
func (codec) Dropped(tag types.Tag) []string {
	_, dropped := storablePictures(tag.Pictures)
	out := make([]string, 0, len(dropped))
	for _, p := range dropped {
		out = append(out, fmt.Sprintf("duplicate %s picture %q", p.Type, p.Description))
	}
	return out
}

func init() {
	registry.RegisterCodec(types.TagTypeID3v2, codec{})
}
