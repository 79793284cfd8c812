package types

import (
	"fmt"
	"strings"
	"time"
)

// Properties represents technical audio properties.
//
// Properties is a read-only summary passed through from the container
// backend; it is never written.
type Properties struct {
	Codec      string        `json:"codec,omitempty" yaml:"codec,omitempty"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	SampleRate int           `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"` // Hz
	BitDepth   int           `json:"bit_depth,omitempty" yaml:"bit_depth,omitempty"`
	Channels   int           `json:"channels,omitempty" yaml:"channels,omitempty"`
	Bitrate    int           `json:"bitrate,omitempty" yaml:"bitrate,omitempty"` // bits per second
	VBR        bool          `json:"vbr,omitempty" yaml:"vbr,omitempty"`
}

// String returns a human-readable representation of the properties.
// Example output: "FLAC 44.1kHz 16-bit stereo 1411kbps".
func (p Properties) String() string {
	parts := []string{p.Codec}

	if p.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1fkHz", float64(p.SampleRate)/1000))
	}
	if p.BitDepth > 0 {
		parts = append(parts, fmt.Sprintf("%d-bit", p.BitDepth))
	}
	parts = append(parts, channelDescription(p.Channels))

	if p.Bitrate > 0 {
		quality := fmt.Sprintf("%dkbps", p.Bitrate/1000)
		if p.VBR {
			quality += " VBR"
		}
		parts = append(parts, quality)
	}

	return join(parts, " ")
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 4:
		return "quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

// join concatenates strings with a separator, skipping empty strings.
func join(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
