package types

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "not found",
			err:      &NotFoundError{Path: "song.mp3", Err: fs.ErrNotExist},
			contains: []string{"song.mp3", "cannot open file", "file does not exist"},
		},
		{
			name:     "parse with format",
			err:      &ParseError{Path: "song.flac", Format: FormatFLAC, Err: errors.New("bad block")},
			contains: []string{"song.flac", "parse FLAC", "bad block"},
		},
		{
			name:     "parse without format",
			err:      &ParseError{Path: "file.bin", Err: errors.New("unknown magic")},
			contains: []string{"file.bin", "parse: unknown magic"},
		},
		{
			name:     "save",
			err:      &SaveError{Path: "song.mp3", Err: errors.New("disk full")},
			contains: []string{"song.mp3", "save", "disk full"},
		},
		{
			name:     "unsupported tag type",
			err:      &UnsupportedTagTypeError{TagType: TagTypeAPE, Format: FormatMP3, Reason: "container cannot host it"},
			contains: []string{"APE", "MP3", "container cannot host it"},
		},
		{
			name:     "unsupported format",
			err:      &UnsupportedFormatError{Path: "a.wav", Reason: "no backend for WAV"},
			contains: []string{"a.wav", "unsupported format", "no backend for WAV"},
		},
		{
			name:     "corrupted",
			err:      &CorruptedFileError{Path: "broken.mp3", Offset: 256, Reason: "tag larger than file"},
			contains: []string{"broken.mp3", "offset 256", "tag larger than file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	cause := &CorruptedFileError{Path: "x.flac", Reason: "invalid FLAC magic bytes"}

	wrapped := []error{
		&NotFoundError{Path: "x.flac", Err: cause},
		&ParseError{Path: "x.flac", Err: cause},
		&SaveError{Path: "x.flac", Err: cause},
	}

	for _, err := range wrapped {
		var got *CorruptedFileError
		if !errors.As(err, &got) || got != cause {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}

func TestWarning_String(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{Warning{Stage: "write", Message: "skipped APE"}, "write: skipped APE"},
		{Warning{Stage: "metadata", Message: "bad frame", Offset: 10}, "metadata (at offset 10): bad frame"},
	}

	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
