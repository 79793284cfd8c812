package id3v1

import (
	"fmt"

	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
)

// maxYear is the largest year that fits the 4-byte year field.
const maxYear = 9999

type codec struct{}

// ToNative keeps the fields ID3v1 can hold. Values that do not fit (track
// numbers above 255, genres outside the table) are dropped.
func (codec) ToNative(tag types.Tag) registry.NativeTag {
	t := New()
	t.Title = tag.Title
	t.Artist = tag.Artist
	t.Album = tag.Album
	t.Comment = tag.Comment
	if tag.Year > 0 && tag.Year <= maxYear {
		t.Year = tag.Year
	}
	if tag.TrackNumber > 0 && tag.TrackNumber <= 0xFF {
		t.Track = tag.TrackNumber
	}
	t.Genre = GenreIndex(tag.Genre)
	return t
}

func (codec) FromNative(native registry.NativeTag) (types.Tag, error) {
	t, ok := native.(*Tag)
	if !ok {
		return types.Tag{}, fmt.Errorf("id3v1: unexpected native tag %T", native)
	}
	return types.Tag{
		Type:        types.TagTypeID3v1,
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		Comment:     t.Comment,
		Year:        t.Year,
		TrackNumber: t.Track,
		Genre:       GenreName(t.Genre),
	}, nil
}

func init() {
	registry.RegisterCodec(types.TagTypeID3v1, codec{})
}
