package taggy

import (
	"io"

	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
)

// Format is the detected audio container format.
// Re-exported from internal/types.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatFLAC    = types.FormatFLAC
	FormatMP3     = types.FormatMP3
	FormatM4A     = types.FormatM4A
	FormatM4B     = types.FormatM4B
	FormatOgg     = types.FormatOgg
	FormatOpus    = types.FormatOpus
	FormatWAV     = types.FormatWAV
	FormatAIFF    = types.FormatAIFF
)

// DetectFormat identifies the container from the signature at the start
// of the file. The path is used only in error messages.
//
// Detection covers more formats than there are backends; a detected
// format without a backend fails later with an UnsupportedFormatError.
// HasBackend tells the two apart without opening the file.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}

// HasBackend reports whether files of the format can be read and written.
func HasBackend(format Format) bool {
	return registry.GetBackend(format) != nil
}

// PrimaryTagTypeOf returns the tag type the format prefers, for example
// ID3v2 for MP3. Formats without a backend report TagTypeFilePrimary.
func PrimaryTagTypeOf(format Format) TagType {
	return registry.PrimaryTagTypeOf(format)
}

// SupportedTagTypesOf lists the tag types the format can host, in
// discovery order.
func SupportedTagTypesOf(format Format) []TagType {
	return registry.SupportedTagTypesOf(format)
}
