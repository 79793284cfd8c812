package taggy_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	goflac "github.com/go-flac/go-flac"
	"github.com/rs/zerolog"

	"github.com/simonhull/taggy"
)

var pngData = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01")

// createMP3 creates an untagged MP3 of n CBR frames (MPEG1 Layer III,
// 128 kbps, 44.1 kHz).
func createMP3(n int) []byte {
	const frameLen = 417
	data := make([]byte, 0, n*frameLen)
	for i := 0; i < n; i++ {
		frame := make([]byte, frameLen)
		copy(frame, []byte{0xFF, 0xFB, 0x90, 0x00})
		for j := 4; j < frameLen; j++ {
			frame[j] = byte(j % 5)
		}
		data = append(data, frame...)
	}
	return data
}

// createFLAC creates an untagged FLAC: STREAMINFO for 1 second of 44.1 kHz
// 16-bit stereo, a PADDING block and some frame bytes.
func createFLAC() []byte {
	info := &bytes.Buffer{}
	binary.Write(info, binary.BigEndian, uint16(4096))
	binary.Write(info, binary.BigEndian, uint16(4096))
	info.Write(make([]byte, 6))
	packed := uint64(44100)<<44 | uint64(1)<<41 | uint64(15)<<36 | uint64(44100)
	binary.Write(info, binary.BigEndian, packed)
	info.Write(make([]byte, 16))

	f := &goflac.File{
		Meta: []*goflac.MetaDataBlock{
			{Type: goflac.StreamInfo, Data: info.Bytes()},
			{Type: goflac.Padding, Data: make([]byte, 64)},
		},
		Frames: append([]byte{0xFF, 0xF8, 0x69, 0x08}, bytes.Repeat([]byte{0x12, 0x34}, 128)...),
	}
	return f.Marshal()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mp3File(t *testing.T) string {
	t.Helper()
	return writeFile(t, "song.mp3", createMP3(20))
}

func flacFile(t *testing.T) string {
	t.Helper()
	return writeFile(t, "song.flac", createFLAC())
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// quiet returns an option that discards log output.
func quiet() taggy.Option {
	return taggy.WithLogger(zerolog.Nop())
}

// fullTag sets every field the ID3v2 and Vorbis codecs map, plus a cover.
func fullTag(tagType taggy.TagType) taggy.Tag {
	return taggy.NewTagBuilder().
		WithTagType(tagType).
		WithTitle("Title").
		WithArtist("Artist").
		WithAlbumArtist("Album Artist").
		WithAlbum("Album").
		WithGenre("Ambient").
		WithComposer("Composer").
		WithComment("Comment").
		WithLyrics("La la la").
		WithCopyright("2020 Label").
		WithLanguage("eng").
		WithRecordingDate("2020-05-01").
		WithYear(2020).
		WithTrack(3, 12).
		WithDisc(1, 2).
		WithPictures(taggy.Picture{
			Data:        pngData,
			Description: "cover",
			Type:        taggy.PictureCoverFront,
			MimeType:    taggy.MimePNG,
		}).
		Build()
}

// tagTypes lists the types of the file's tags in order.
func tagTypes(file *taggy.TaggyFile) []taggy.TagType {
	out := make([]taggy.TagType, 0, len(file.Tags))
	for _, tag := range file.Tags {
		out = append(out, tag.Type)
	}
	return out
}
