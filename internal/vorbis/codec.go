package vorbis

import (
	"fmt"
	"strconv"

	"github.com/go-flac/flacpicture"

	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
)

type codec struct{}

func (codec) ToNative(tag types.Tag) registry.NativeTag {
	t := New()
	c := t.Comments

	add := func(key, value string) {
		if value != "" {
			_ = c.Add(key, value) //nolint:errcheck // Field names are constant and valid
		}
	}
	addNumber := func(key string, n int) {
		if n > 0 {
			add(key, strconv.Itoa(n))
		}
	}

	add(fieldTitle, tag.Title)
	add(fieldArtist, tag.Artist)
	add(fieldAlbumArtist, tag.AlbumArtist)
	add(fieldAlbum, tag.Album)
	add(fieldGenre, tag.Genre)
	add(fieldComposer, tag.Composer)
	add(fieldComment, tag.Comment)
	add(fieldLyrics, tag.Lyrics)
	add(fieldCopyright, tag.Copyright)
	add(fieldLanguage, tag.Language)
	add(fieldDate, tag.RecordingDate)
	addNumber(fieldYear, tag.Year)
	addNumber(fieldTrackNumber, tag.TrackNumber)
	addNumber(fieldTrackTotal, tag.TrackTotal)
	addNumber(fieldDiscNumber, tag.DiscNumber)
	addNumber(fieldDiscTotal, tag.DiscTotal)

	for _, p := range tag.Pictures {
		if p.IsEmpty() {
			continue
		}
		t.Pictures = append(t.Pictures, &flacpicture.MetadataBlockPicture{
			PictureType:       flacpicture.PictureType(p.Type),
			MIME:              pictureMIME(p),
			Description:       p.Description,
			Width:             p.Width,
			Height:            p.Height,
			ColorDepth:        p.ColorDepth,
			IndexedColorCount: p.NumColors,
			ImageData:         p.Data,
		})
	}

	return t
}

func (codec) FromNative(native registry.NativeTag) (types.Tag, error) {
	t, ok := native.(*Tag)
	if !ok {
		return types.Tag{}, fmt.Errorf("vorbis: unexpected native tag %T", native)
	}

	tag := types.Tag{Type: types.TagTypeVorbisComments}
	ParseComments(t.Comments.Comments, &tag)

	for _, p := range t.Pictures {
		if len(p.ImageData) == 0 || p.MIME == flacpicture.MIMEURL {
			continue
		}
		tag.Pictures = append(tag.Pictures, types.Picture{
			Data:        p.ImageData,
			Description: p.Description,
			Type:        types.PictureType(p.PictureType),
			MimeType:    types.ParseMimeType(p.MIME),
			Width:       p.Width,
			Height:      p.Height,
			ColorDepth:  p.ColorDepth,
			NumColors:   p.IndexedColorCount,
		})
	}

	return tag, nil
}

// pictureMIME returns the MIME string to store. FLAC requires one, so a
// picture without a MIME type gets "image/", which reads back as MimeNone.
func pictureMIME(p types.Picture) string {
	if p.MimeType == types.MimeNone {
		return "image/"
	}
	return p.MimeType.String()
}

func init() {
	registry.RegisterCodec(types.TagTypeVorbisComments, codec{})
}
