package types

import (
	"slices"
)

// Tag represents one tag of one native format in format-agnostic form.
//
// Every field is optional; the zero value means absent. Codecs omit absent
// fields from the native tag instead of writing them as empty values.
//
// Type is fixed at construction. The engine only changes it through
// Retyped, when a tag is written as the file's primary tag.
type Tag struct {
	Title         string    `json:"title,omitempty" yaml:"title,omitempty"`
	Artist        string    `json:"artist,omitempty" yaml:"artist,omitempty"`
	AlbumArtist   string    `json:"album_artist,omitempty" yaml:"album_artist,omitempty"`
	Album         string    `json:"album,omitempty" yaml:"album,omitempty"`
	Genre         string    `json:"genre,omitempty" yaml:"genre,omitempty"`
	Composer      string    `json:"composer,omitempty" yaml:"composer,omitempty"`
	Comment       string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Lyrics        string    `json:"lyrics,omitempty" yaml:"lyrics,omitempty"`
	Copyright     string    `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Language      string    `json:"language,omitempty" yaml:"language,omitempty"`
	RecordingDate string    `json:"recording_date,omitempty" yaml:"recording_date,omitempty"` // Free-form date (TDRC in ID3v2, DATE in Vorbis)
	Pictures      []Picture `json:"pictures,omitempty" yaml:"pictures,omitempty"`
	Type          TagType   `json:"tag_type" yaml:"tag_type"`
	Year          int       `json:"year,omitempty" yaml:"year,omitempty"`
	TrackNumber   int       `json:"track_number,omitempty" yaml:"track_number,omitempty"`
	TrackTotal    int       `json:"track_total,omitempty" yaml:"track_total,omitempty"`
	DiscNumber    int       `json:"disc_number,omitempty" yaml:"disc_number,omitempty"`
	DiscTotal     int       `json:"disc_total,omitempty" yaml:"disc_total,omitempty"`
}

// NewTag returns a tag of the given type with every field absent.
//
// Writing such a tag clears the stored tag of that type on disk.
func NewTag(tagType TagType) Tag {
	return Tag{Type: tagType}
}

// Retyped returns a deep copy of the tag with its type replaced.
func (t Tag) Retyped(tagType TagType) Tag {
	c := t.Clone()
	c.Type = tagType
	return c
}

// IsEmpty reports whether no field is set and no non-empty picture is attached.
func (t Tag) IsEmpty() bool {
	e := NewTag(t.Type)
	e.Pictures = t.Pictures
	if !t.Equal(e) {
		return false
	}
	for _, p := range t.Pictures {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the Tag.
func (t Tag) Clone() Tag {
	c := t
	if t.Pictures != nil {
		c.Pictures = make([]Picture, len(t.Pictures))
		for i, p := range t.Pictures {
			c.Pictures[i] = p.Clone()
		}
	}
	return c
}

// Equal checks if two Tags are equal.
//
// Compares the tag type, all standard fields and the picture sequence
// (including image bytes). A nil and an empty picture slice are equal.
func (t Tag) Equal(other Tag) bool {
	if t.Type != other.Type ||
		t.Title != other.Title ||
		t.Artist != other.Artist ||
		t.AlbumArtist != other.AlbumArtist ||
		t.Album != other.Album ||
		t.Genre != other.Genre ||
		t.Composer != other.Composer ||
		t.Comment != other.Comment ||
		t.Lyrics != other.Lyrics ||
		t.Copyright != other.Copyright ||
		t.Language != other.Language ||
		t.RecordingDate != other.RecordingDate ||
		t.Year != other.Year ||
		t.TrackNumber != other.TrackNumber ||
		t.TrackTotal != other.TrackTotal ||
		t.DiscNumber != other.DiscNumber ||
		t.DiscTotal != other.DiscTotal {
		return false
	}

	return slices.EqualFunc(t.Pictures, other.Pictures, Picture.Equal)
}

// Merge fills absent fields of t from other. Pictures from other are
// appended when t has none. The tag type of t is kept.
func (t *Tag) Merge(other Tag) { //nolint:gocyclo // Merging requires checking all tag fields individually
	if t.Title == "" {
		t.Title = other.Title
	}
	if t.Artist == "" {
		t.Artist = other.Artist
	}
	if t.AlbumArtist == "" {
		t.AlbumArtist = other.AlbumArtist
	}
	if t.Album == "" {
		t.Album = other.Album
	}
	if t.Genre == "" {
		t.Genre = other.Genre
	}
	if t.Composer == "" {
		t.Composer = other.Composer
	}
	if t.Comment == "" {
		t.Comment = other.Comment
	}
	if t.Lyrics == "" {
		t.Lyrics = other.Lyrics
	}
	if t.Copyright == "" {
		t.Copyright = other.Copyright
	}
	if t.Language == "" {
		t.Language = other.Language
	}
	if t.RecordingDate == "" {
		t.RecordingDate = other.RecordingDate
	}
	if t.Year == 0 {
		t.Year = other.Year
	}
	if t.TrackNumber == 0 {
		t.TrackNumber = other.TrackNumber
	}
	if t.TrackTotal == 0 {
		t.TrackTotal = other.TrackTotal
	}
	if t.DiscNumber == 0 {
		t.DiscNumber = other.DiscNumber
	}
	if t.DiscTotal == 0 {
		t.DiscTotal = other.DiscTotal
	}
	if len(t.Pictures) == 0 && len(other.Pictures) > 0 {
		t.Pictures = other.Clone().Pictures
	}
}

// TagBuilder assembles a Tag field by field.
//
// Example:
//
//	tag := taggy.NewTagBuilder().
//		WithTitle("So What").
//		WithArtist("Miles Davis").
//		WithTrack(1, 5).
//		Build()
type TagBuilder struct {
	tag Tag
}

// NewTagBuilder starts a tag of type TagTypeFilePrimary with every field absent.
func NewTagBuilder() *TagBuilder {
	return &TagBuilder{tag: NewTag(TagTypeFilePrimary)}
}

func (b *TagBuilder) WithTagType(t TagType) *TagBuilder {
	b.tag.Type = t
	return b
}

func (b *TagBuilder) WithTitle(s string) *TagBuilder {
	b.tag.Title = s
	return b
}

func (b *TagBuilder) WithArtist(s string) *TagBuilder {
	b.tag.Artist = s
	return b
}

func (b *TagBuilder) WithAlbumArtist(s string) *TagBuilder {
	b.tag.AlbumArtist = s
	return b
}

func (b *TagBuilder) WithAlbum(s string) *TagBuilder {
	b.tag.Album = s
	return b
}

func (b *TagBuilder) WithGenre(s string) *TagBuilder {
	b.tag.Genre = s
	return b
}

func (b *TagBuilder) WithComposer(s string) *TagBuilder {
	b.tag.Composer = s
	return b
}

func (b *TagBuilder) WithComment(s string) *TagBuilder {
	b.tag.Comment = s
	return b
}

func (b *TagBuilder) WithLyrics(s string) *TagBuilder {
	b.tag.Lyrics = s
	return b
}

func (b *TagBuilder) WithCopyright(s string) *TagBuilder {
	b.tag.Copyright = s
	return b
}

func (b *TagBuilder) WithLanguage(s string) *TagBuilder {
	b.tag.Language = s
	return b
}

func (b *TagBuilder) WithRecordingDate(s string) *TagBuilder {
	b.tag.RecordingDate = s
	return b
}

func (b *TagBuilder) WithYear(year int) *TagBuilder {
	b.tag.Year = year
	return b
}

// WithTrack sets the track number and total; pass 0 to leave either absent.
func (b *TagBuilder) WithTrack(number, total int) *TagBuilder {
	b.tag.TrackNumber = number
	b.tag.TrackTotal = total
	return b
}

// WithDisc sets the disc number and total; pass 0 to leave either absent.
func (b *TagBuilder) WithDisc(number, total int) *TagBuilder {
	b.tag.DiscNumber = number
	b.tag.DiscTotal = total
	return b
}

// WithPictures replaces the picture list. The pictures are copied.
func (b *TagBuilder) WithPictures(pictures ...Picture) *TagBuilder {
	b.tag.Pictures = make([]Picture, len(pictures))
	for i, p := range pictures {
		b.tag.Pictures[i] = p.Clone()
	}
	return b
}

// Build returns a copy of the assembled tag. The builder stays usable.
func (b *TagBuilder) Build() Tag {
	return b.tag.Clone()
}
