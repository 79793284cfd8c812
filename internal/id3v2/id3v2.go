// Package id3v2 maps ID3v2 tags to and from the unified tag model.
//
// Frame parsing and serialisation are done by github.com/bogem/id3v2.
// New tags are written as ID3v2.4 with UTF-8 text; parsed tags keep their
// original version when written back unchanged.
package id3v2

import (
	"errors"
	"io"

	id3 "github.com/bogem/id3v2/v2"

	binutil "github.com/simonhull/taggy/internal/binary"
	"github.com/simonhull/taggy/internal/types"
)

// HeaderSize is the length of the ID3v2 tag header.
const HeaderSize = 10

// Frame IDs used by the codec.
const (
	frameTitle       = "TIT2"
	frameArtist      = "TPE1"
	frameAlbumArtist = "TPE2"
	frameAlbum       = "TALB"
	frameGenre       = "TCON"
	frameComposer    = "TCOM"
	frameCopyright   = "TCOP"
	frameLanguage    = "TLAN"
	frameRecording   = "TDRC"
	frameYear        = "TYER"
	frameTrack       = "TRCK"
	frameDisc        = "TPOS"
	frameComment     = "COMM"
	frameLyrics      = "USLT"
	framePicture     = "APIC"
)

// Tag is a parsed or freshly built ID3v2 tag.
type Tag struct {
	frames *id3.Tag
}

// New returns an empty ID3v2.4 tag with UTF-8 as default text encoding.
func New() *Tag {
	t := id3.NewEmptyTag()
	t.SetVersion(4)
	t.SetDefaultEncoding(id3.EncodingUTF8)
	return &Tag{frames: t}
}

// Parse reads an ID3v2 tag from the start of r.
//
// A stream without an ID3v2 header yields an empty tag. ID3v2.2 and older
// are rejected by the underlying parser.
func Parse(r io.Reader) (*Tag, error) {
	t, err := id3.ParseReader(r, id3.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	return &Tag{frames: t}, nil
}

func (t *Tag) TagType() types.TagType { return types.TagTypeID3v2 }

// IsEmpty reports whether the tag has no frames.
func (t *Tag) IsEmpty() bool {
	return !t.frames.HasFrames()
}

// Version returns the ID3v2 major version (3 or 4).
func (t *Tag) Version() byte {
	return t.frames.Version()
}

// WriteTo serialises the tag including its header. An empty tag writes
// nothing.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	if t.IsEmpty() {
		return 0, nil
	}
	return t.frames.WriteTo(w)
}

// ErrNoHeader is returned by StoredSize when the data does not start with
// an ID3v2 header.
var ErrNoHeader = errors.New("id3v2: no tag header")

// StoredSize returns the number of bytes the tag occupies on disk, header
// and footer included, decoded from the 10-byte header in b.
func StoredSize(b []byte) (int64, error) {
	if len(b) < HeaderSize || string(b[0:3]) != "ID3" {
		return 0, ErrNoHeader
	}
	size := int64(HeaderSize) + int64(binutil.Synchsafe(b[6:10]))
	if b[5]&0x10 != 0 {
		size += HeaderSize
	}
	return size, nil
}
