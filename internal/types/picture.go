package types

import (
	"bytes"
	"fmt"
)

// Picture represents embedded artwork (cover art, images).
//
// Width, Height, ColorDepth and NumColors are only recorded by some native
// formats (FLAC PICTURE blocks); zero means the format did not record them.
type Picture struct {
	// Image binary data
	Data []byte `json:"-" yaml:"-"`

	// Description of the picture (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Role of the picture (front cover, back cover, artist photo, etc.)
	Type PictureType `json:"type" yaml:"type"`

	// MIME type of the image data, MimeNone if unknown
	MimeType MimeType `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`

	Width      uint32 `json:"width,omitempty" yaml:"width,omitempty"`
	Height     uint32 `json:"height,omitempty" yaml:"height,omitempty"`
	ColorDepth uint32 `json:"color_depth,omitempty" yaml:"color_depth,omitempty"`
	NumColors  uint32 `json:"num_colors,omitempty" yaml:"num_colors,omitempty"`
}

// IsEmpty reports whether the picture carries no image data.
//
// Empty pictures are transient values; codecs drop them instead of
// writing them to disk.
func (p Picture) IsEmpty() bool {
	return len(p.Data) == 0
}

// Equal compares every attribute, including the image bytes.
func (p Picture) Equal(other Picture) bool {
	return p.Type == other.Type &&
		p.MimeType == other.MimeType &&
		p.Description == other.Description &&
		p.Width == other.Width &&
		p.Height == other.Height &&
		p.ColorDepth == other.ColorDepth &&
		p.NumColors == other.NumColors &&
		bytes.Equal(p.Data, other.Data)
}

// Clone returns a deep copy of the picture.
func (p Picture) Clone() Picture {
	p.Data = bytes.Clone(p.Data)
	return p
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (p Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", p.Type, dims, p.MimeType.shortName(), formatSize(len(p.Data)))
}

// PictureType categorizes the purpose/content of a picture.
//
// Values follow the ID3v2 APIC picture types, which FLAC PICTURE blocks
// share, so the numeric value is stored as-is by both codecs.
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType byte

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureCoverFront                           // Front cover
	PictureCoverBack                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureScreenCapture                        // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogo                             // Band/artist logotype
	PicturePublisherLogo                        // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Screen capture",
	"Bright colored fish",
	"Illustration",
	"Band logotype",
	"Publisher logotype",
}

func (t PictureType) String() string {
	if int(t) < len(pictureTypeNames) {
		return pictureTypeNames[t]
	}
	return fmt.Sprintf("PictureType(%d)", byte(t))
}

// MarshalText encodes the picture type by name for YAML and JSON output.
func (t PictureType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MimeType is the image encoding of a picture.
type MimeType int

const (
	// MimeNone means the MIME type is unknown or was not recorded.
	MimeNone MimeType = iota
	MimePNG
	MimeJPEG
	MimeTIFF
	MimeBMP
	MimeGIF
)

// String returns the MIME type string ("image/png", ...), or "" for MimeNone.
func (m MimeType) String() string {
	switch m {
	case MimePNG:
		return "image/png"
	case MimeJPEG:
		return "image/jpeg"
	case MimeTIFF:
		return "image/tiff"
	case MimeBMP:
		return "image/bmp"
	case MimeGIF:
		return "image/gif"
	default:
		return ""
	}
}

// MarshalText encodes the MIME type as its string form.
func (m MimeType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMimeType maps a MIME string to a MimeType.
// Unknown strings map to MimeNone.
func ParseMimeType(s string) MimeType {
	switch s {
	case "image/png", "PNG":
		return MimePNG
	case "image/jpeg", "image/jpg", "JPG", "JPEG":
		return MimeJPEG
	case "image/tiff":
		return MimeTIFF
	case "image/bmp":
		return MimeBMP
	case "image/gif":
		return MimeGIF
	default:
		return MimeNone
	}
}

// MimeTypeFromData sniffs the image format from magic bytes.
func MimeTypeFromData(data []byte) MimeType {
	switch {
	case len(data) >= 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return MimePNG
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return MimeJPEG
	case len(data) >= 6 && (string(data[:6]) == "GIF87a" || string(data[:6]) == "GIF89a"):
		return MimeGIF
	case len(data) >= 2 && string(data[:2]) == "BM":
		return MimeBMP
	case len(data) >= 4 && (string(data[:4]) == "II*\x00" || string(data[:4]) == "MM\x00*"):
		return MimeTIFF
	default:
		return MimeNone
	}
}

func (m MimeType) shortName() string {
	switch m {
	case MimeJPEG:
		return "JPEG"
	case MimePNG:
		return "PNG"
	case MimeGIF:
		return "GIF"
	case MimeBMP:
		return "BMP"
	case MimeTIFF:
		return "TIFF"
	default:
		return "Image"
	}
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
