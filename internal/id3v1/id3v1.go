// Package id3v1 reads and writes the fixed 128-byte ID3v1.1 trailer found
// at the end of MP3 files.
package id3v1

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/taggy/internal/binary"
	"github.com/simonhull/taggy/internal/types"
)

// Size is the length of an ID3v1 tag in bytes.
const Size = 128

// Field widths of the ID3v1.1 layout.
const (
	textLen         = 30
	yearLen         = 4
	commentLen      = 30
	trackCommentLen = 28
)

// Tag is an ID3v1.1 tag with text already decoded from ISO-8859-1.
//
// Track is 0 when absent. Genre is an index into the genre table, or
// GenreNone.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	Comment string
	Year    int
	Track   int
	Genre   byte
}

// New returns a tag with every field absent.
func New() *Tag {
	return &Tag{Genre: GenreNone}
}

func (t *Tag) TagType() types.TagType { return types.TagTypeID3v1 }

// IsEmpty reports whether every field is absent.
func (t *Tag) IsEmpty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == "" && t.Comment == "" &&
		t.Year == 0 && t.Track == 0 && t.Genre == GenreNone
}

// Read parses the ID3v1 tag in the last 128 bytes of r.
// It returns (nil, nil) when the file has no ID3v1 tag.
func Read(r io.ReaderAt, size int64) (*Tag, error) {
	if size < Size {
		return nil, nil
	}

	m, err := tag.ReadID3v1Tags(io.NewSectionReader(r, size-Size, Size))
	if errors.Is(err, tag.ErrNotID3v1) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	track, _ := m.Track()
	return &Tag{
		Title:   decodeLatin1(m.Title()),
		Artist:  decodeLatin1(m.Artist()),
		Album:   decodeLatin1(m.Album()),
		Comment: decodeLatin1(m.Comment()),
		Year:    m.Year(),
		Track:   track,
		Genre:   GenreIndex(m.Genre()),
	}, nil
}

// WriteTo writes the 128-byte ID3v1.1 representation of t.
//
// Text is encoded as ISO-8859-1 and truncated to its field width. When a
// track number is present the comment is limited to 28 bytes.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	sw := binutil.NewSafeWriter(w)

	_ = sw.WriteString("TAG")
	_ = sw.WriteFixed(encodeLatin1(t.Title), textLen)
	_ = sw.WriteFixed(encodeLatin1(t.Artist), textLen)
	_ = sw.WriteFixed(encodeLatin1(t.Album), textLen)

	var year []byte
	if t.Year > 0 {
		year = []byte(strconv.Itoa(t.Year))
	}
	_ = sw.WriteFixed(year, yearLen)

	if t.Track > 0 {
		_ = sw.WriteFixed(encodeLatin1(t.Comment), trackCommentLen)
		_ = binutil.Write[uint8](sw, 0)
		_ = binutil.Write[uint8](sw, uint8(t.Track))
	} else {
		_ = sw.WriteFixed(encodeLatin1(t.Comment), commentLen)
	}

	_ = binutil.Write[uint8](sw, t.Genre)

	return sw.Offset(), sw.Err()
}

// decodeLatin1 converts ISO-8859-1 bytes held in a Go string to UTF-8.
func decodeLatin1(s string) string {
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// encodeLatin1 converts s to ISO-8859-1, replacing runes outside the
// charset with '?'.
func encodeLatin1(s string) []byte {
	s = strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, s)
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
