package mp3

import (
	"encoding/binary"
	"errors"
	"time"

	binutil "github.com/simonhull/taggy/internal/binary"
	"github.com/simonhull/taggy/internal/types"
)

// maxSyncScan bounds how far past the tag the first frame is searched for.
const maxSyncScan = 64 * 1024

// MPEG version IDs as stored in the frame header.
const (
	mpeg25 = 0
	mpeg2  = 2
	mpeg1  = 3
)

// Layer III bitrates in kbps, indexed by the header's bitrate index.
var (
	bitratesV1 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	bitratesV2 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
)

// Sample rates in Hz, indexed by the header's sample rate index.
var sampleRates = map[uint32][3]int{
	mpeg1:  {44100, 48000, 32000},
	mpeg2:  {22050, 24000, 16000},
	mpeg25: {11025, 12000, 8000},
}

var errNoFrame = errors.New("no valid MPEG audio frame found")

// frameHeader is a decoded Layer III frame header.
type frameHeader struct {
	version    uint32
	bitrate    int // bps
	sampleRate int // Hz
	channels   int
	padding    bool
}

// samplesPerFrame is 1152 for MPEG1 and 576 for MPEG2 and 2.5.
func (h frameHeader) samplesPerFrame() int {
	if h.version == mpeg1 {
		return 1152
	}
	return 576
}

// frameLength is the frame size in bytes, header included.
func (h frameHeader) frameLength() int {
	n := h.samplesPerFrame() / 8 * h.bitrate / h.sampleRate
	if h.padding {
		n++
	}
	return n
}

// sideInfoSize is the length of the side information that follows the
// header; Xing/Info headers start right after it.
func (h frameHeader) sideInfoSize() int64 {
	switch {
	case h.version == mpeg1 && h.channels == 1:
		return 17
	case h.version == mpeg1:
		return 32
	case h.channels == 1:
		return 9
	default:
		return 17
	}
}

// parseFrameHeader decodes a 4-byte Layer III frame header.
func parseFrameHeader(header uint32) (frameHeader, bool) {
	// Frame sync: 11 bits set
	if header&0xFFE00000 != 0xFFE00000 {
		return frameHeader{}, false
	}

	version := (header >> 19) & 0x3
	layer := (header >> 17) & 0x3
	if version == 1 || layer != 1 { // reserved version, or not Layer III
		return frameHeader{}, false
	}

	bitrateIdx := (header >> 12) & 0xF
	sampleRateIdx := (header >> 10) & 0x3
	if sampleRateIdx == 3 {
		return frameHeader{}, false
	}

	h := frameHeader{
		version:    version,
		sampleRate: sampleRates[version][sampleRateIdx],
		padding:    (header>>9)&0x1 == 1,
		channels:   2,
	}
	if version == mpeg1 {
		h.bitrate = bitratesV1[bitrateIdx] * 1000
	} else {
		h.bitrate = bitratesV2[bitrateIdx] * 1000
	}
	if h.bitrate == 0 {
		return frameHeader{}, false
	}

	// Channel mode 3 is mono; stereo, joint stereo and dual channel are 2
	if (header>>6)&0x3 == 3 {
		h.channels = 1
	}

	return h, true
}

// readProperties locates the first frame in [start, end) and derives the
// audio properties from it and any Xing/Info/VBRI header it carries.
func readProperties(sr *binutil.SafeReader, start, end int64) (types.Properties, error) {
	limit := min(end-4, start+maxSyncScan)

	for off := start; off <= limit; off++ {
		raw, err := binutil.Read[uint32](sr, off, "MPEG frame header")
		if err != nil {
			return types.Properties{}, err
		}
		h, ok := parseFrameHeader(raw)
		if !ok {
			continue
		}

		// A real frame is followed by another sync word unless it is the last.
		if next := off + int64(h.frameLength()); next+4 <= end {
			nextRaw, err := binutil.Read[uint32](sr, next, "MPEG frame header")
			if err != nil || nextRaw&0xFFE00000 != 0xFFE00000 {
				continue
			}
		}

		props := types.Properties{
			Codec:      "MP3",
			SampleRate: h.sampleRate,
			Channels:   h.channels,
			Bitrate:    h.bitrate,
		}

		audioSize := end - off
		if frames, vbr, ok := frameCount(sr, off, h); ok {
			props.VBR = vbr
			props.Duration = framesDuration(frames, h)
			if vbr && props.Duration > 0 {
				props.Bitrate = int(float64(audioSize*8) / props.Duration.Seconds())
			}
		} else {
			props.Duration = estimateCBRDuration(h.bitrate, audioSize)
		}

		return props, nil
	}

	return types.Properties{}, errNoFrame
}

// frameCount reads the stream's frame count from a Xing, Info or VBRI
// header in the frame at offset. vbr is false for Info, which marks a
// constant bitrate stream.
func frameCount(sr *binutil.SafeReader, offset int64, h frameHeader) (frames uint32, vbr, ok bool) {
	xing := offset + 4 + h.sideInfoSize()
	if buf, err := sr.ReadBytes(xing, 12, "Xing header"); err == nil {
		if id := string(buf[0:4]); id == "Xing" || id == "Info" {
			// Frames field is present if bit 0 is set
			if binary.BigEndian.Uint32(buf[4:8])&0x1 == 0 {
				return 0, false, false
			}
			return binary.BigEndian.Uint32(buf[8:12]), id == "Xing", true
		}
	}

	// VBRI always sits 32 bytes after the header
	if buf, err := sr.ReadBytes(offset+36, 18, "VBRI header"); err == nil {
		if string(buf[0:4]) == "VBRI" {
			return binary.BigEndian.Uint32(buf[14:18]), true, true
		}
	}

	return 0, false, false
}

// framesDuration converts a frame count into playing time.
func framesDuration(frames uint32, h frameHeader) time.Duration {
	samples := float64(frames) * float64(h.samplesPerFrame())
	return time.Duration(samples / float64(h.sampleRate) * float64(time.Second))
}

// estimateCBRDuration estimates duration for constant bitrate streams.
func estimateCBRDuration(bitrate int, audioSize int64) time.Duration {
	if bitrate == 0 || audioSize <= 0 {
		return 0
	}
	seconds := float64(audioSize*8) / float64(bitrate)
	return time.Duration(seconds * float64(time.Second))
}
