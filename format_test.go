package taggy

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"
)

// createMockM4B creates a minimal M4B/M4A file header.
func createMockM4B(brand string) []byte {
	buf := &bytes.Buffer{}

	// ftyp atom: size, type, major brand, minor version, compatible brands
	binary.Write(buf, binary.BigEndian, uint32(28))
	buf.WriteString("ftyp")
	buf.WriteString(brand)
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteString(brand)
	buf.WriteString(brand)

	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	pad := func(b []byte) []byte { return append(b, make([]byte, 64)...) }

	tests := []struct {
		name string
		data []byte
		path string
		want Format
	}{
		{"FLAC", pad([]byte("fLaC")), "a.flac", FormatFLAC},
		{"MP3 with ID3", pad([]byte("ID3\x04\x00")), "a.mp3", FormatMP3},
		{"MP3 frame sync", pad([]byte{0xFF, 0xFB, 0x90, 0x00}), "a.mp3", FormatMP3},
		{"WAV", pad([]byte("RIFF\x00\x00\x00\x00WAVE")), "a.wav", FormatWAV},
		{"AIFF", pad([]byte("FORM\x00\x00\x00\x00AIFF")), "a.aiff", FormatAIFF},
		{"M4B", createMockM4B("M4B "), "a.m4b", FormatM4B},
		{"M4A", createMockM4B("M4A "), "a.m4a", FormatM4A},
		{"MP42", createMockM4B("mp42"), "a.m4a", FormatM4A},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), tt.path)
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	invalid := &bytes.Buffer{}
	binary.Write(invalid, binary.BigEndian, uint32(8))
	invalid.WriteString("XXXX")

	tests := []struct {
		name string
		data []byte
	}{
		{"TooSmall", []byte{0x00, 0x00}},
		{"InvalidFtyp", invalid.Bytes()},
		{"UnsupportedBrand", createMockM4B("XXXX")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), "file")
			var unsupported *UnsupportedFormatError
			if !errors.As(err, &unsupported) {
				t.Errorf("error = %v, want *UnsupportedFormatError", err)
			}
		})
	}
}

func TestPrimaryTagTypeOf(t *testing.T) {
	tests := []struct {
		format    Format
		backend   bool
		primary   TagType
		supported []TagType
	}{
		{FormatMP3, true, TagTypeID3v2, []TagType{TagTypeID3v2, TagTypeID3v1}},
		{FormatFLAC, true, TagTypeVorbisComments, []TagType{TagTypeVorbisComments}},
		{FormatWAV, false, TagTypeFilePrimary, nil},
		{FormatOpus, false, TagTypeFilePrimary, nil},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := HasBackend(tt.format); got != tt.backend {
				t.Errorf("HasBackend() = %v, want %v", got, tt.backend)
			}
			if got := PrimaryTagTypeOf(tt.format); got != tt.primary {
				t.Errorf("PrimaryTagTypeOf() = %v, want %v", got, tt.primary)
			}
			if got := SupportedTagTypesOf(tt.format); !slices.Equal(got, tt.supported) {
				t.Errorf("SupportedTagTypesOf() = %v, want %v", got, tt.supported)
			}
		})
	}
}
