package types

import (
	"errors"
	"testing"
)

func TestTaggyFile_Lookups(t *testing.T) {
	file := &TaggyFile{
		Format:      FormatMP3,
		PrimaryType: TagTypeID3v2,
		Tags: []Tag{
			{Type: TagTypeID3v1, Title: "v1"},
			{Type: TagTypeID3v2, Title: "v2", Pictures: []Picture{{Data: []byte{1}}}},
		},
	}

	primary, ok := file.PrimaryTag()
	if !ok || primary.Title != "v2" {
		t.Errorf("PrimaryTag() = (%q, %v), want (v2, true)", primary.Title, ok)
	}

	first, ok := file.FirstTag()
	if !ok || first.Title != "v1" {
		t.Errorf("FirstTag() = (%q, %v), want (v1, true)", first.Title, ok)
	}

	if _, ok := file.TagOf(TagTypeAPE); ok {
		t.Error("TagOf(APE) should report absent")
	}

	// Returned tags are copies.
	primary.Pictures[0].Data[0] = 9
	if file.Tags[1].Pictures[0].Data[0] != 1 {
		t.Error("PrimaryTag() should return a deep copy")
	}
}

func TestTaggyFile_NoTags(t *testing.T) {
	file := &TaggyFile{PrimaryType: TagTypeVorbisComments}
	if _, ok := file.PrimaryTag(); ok {
		t.Error("PrimaryTag() on file without tags should report absent")
	}
	if _, ok := file.FirstTag(); ok {
		t.Error("FirstTag() on file without tags should report absent")
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unsupported tag type with reason",
			err:  &UnsupportedTagTypeError{TagType: TagTypeAPE, Format: FormatMP3, Reason: "no codec"},
			want: "tag type APE not supported for MP3: no codec",
		},
		{
			name: "unsupported tag type",
			err:  &UnsupportedTagTypeError{TagType: TagTypeID3v1, Format: FormatFLAC},
			want: "tag type ID3v1 not supported for FLAC",
		},
		{
			name: "parse without format",
			err:  &ParseError{Path: "x", Err: errors.New("boom")},
			want: "x: parse: boom",
		},
		{
			name: "unsupported format",
			err:  &UnsupportedFormatError{Path: "x.txt", Reason: "unknown magic"},
			want: "x.txt: unsupported format: unknown magic",
		},
		{
			name: "corrupted",
			err:  &CorruptedFileError{Path: "x.mp3", Offset: 10, Reason: "bad header"},
			want: "x.mp3: corrupted file at offset 10: bad header",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}
