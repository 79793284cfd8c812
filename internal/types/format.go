package types

import (
	"io"

	"github.com/simonhull/taggy/internal/binary"
)

// Format is an audio container format. Only some formats have a backend;
// the rest are detected so they can be reported by name.
type Format int

// Containers known to DetectFormat.
const (
	FormatUnknown Format = iota
	FormatFLAC
	FormatMP3
	FormatM4A
	FormatM4B
	FormatOgg
	FormatOpus
	FormatWAV
	FormatAIFF
)

var formatNames = map[Format]string{
	FormatUnknown: "Unknown",
	FormatFLAC:    "FLAC",
	FormatMP3:     "MP3",
	FormatM4A:     "M4A",
	FormatM4B:     "M4B",
	FormatOgg:     "Ogg Vorbis",
	FormatOpus:    "Opus",
	FormatWAV:     "WAV",
	FormatAIFF:    "AIFF",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText encodes the format by name for YAML and JSON output.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// probeLen is how much of the file head DetectFormat reads. It covers an
// Ogg page header with a full segment table plus the codec magic.
const probeLen = 27 + 255 + 8

// containerSignatures are tried in order against the file head. Each
// returns FormatUnknown when it does not apply.
var containerSignatures = []func(head []byte) Format{
	flacSignature,
	mp3Signature,
	oggSignature,
	riffSignature,
	formSignature,
}

// ftypBrands maps ISO base media major brands to formats.
var ftypBrands = map[string]Format{
	"M4B ": FormatM4B,
	"M4A ": FormatM4A,
	"mp42": FormatM4A,
	"isom": FormatM4A,
}

func flacSignature(head []byte) Format {
	if string(head[:4]) == "fLaC" {
		return FormatFLAC
	}
	return FormatUnknown
}

// mp3Signature matches a leading ID3v2 header or an MPEG frame sync.
func mp3Signature(head []byte) Format {
	if string(head[:3]) == "ID3" || (head[0] == 0xFF && head[1]&0xE0 == 0xE0) {
		return FormatMP3
	}
	return FormatUnknown
}

// oggSignature tells Opus from Vorbis by the first packet of the first
// page.
func oggSignature(head []byte) Format {
	if string(head[:4]) != "OggS" {
		return FormatUnknown
	}
	if len(head) > 26 {
		packet := 27 + int(head[26])
		if len(head) >= packet+8 && string(head[packet:packet+8]) == "OpusHead" {
			return FormatOpus
		}
	}
	return FormatOgg
}

func riffSignature(head []byte) Format {
	if len(head) >= 12 && string(head[:4]) == "RIFF" && string(head[8:12]) == "WAVE" {
		return FormatWAV
	}
	return FormatUnknown
}

func formSignature(head []byte) Format {
	if len(head) < 12 || string(head[:4]) != "FORM" {
		return FormatUnknown
	}
	if kind := string(head[8:12]); kind == "AIFF" || kind == "AIFC" {
		return FormatAIFF
	}
	return FormatUnknown
}

// DetectFormat identifies the container from the signature at the start
// of the file. Only the signature is checked; the rest of the file is
// left to the backend.
//
// Detection knows more formats than there are backends, so callers can
// tell an unrecognised file from a recognised one that cannot be opened.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "file too small"}
	}

	sr := binary.NewSafeReader(r, size, path)
	head, err := sr.ReadBytes(0, int(min(size, probeLen)), "file header")
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "failed to read file header"}
	}

	for _, match := range containerSignatures {
		if f := match(head); f != FormatUnknown {
			return f, nil
		}
	}
	return ftypFormat(sr, path)
}

// ftypFormat reads the major brand of a leading ftyp atom.
func ftypFormat(sr *binary.SafeReader, path string) (Format, error) {
	atomSize, err := binary.Read[uint32](sr, 0, "ftyp atom size")
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "unsupported file format"}
	}
	atomType, err := sr.ReadBytes(4, 4, "ftyp atom type")
	if err != nil || string(atomType) != "ftyp" {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "unsupported file format"}
	}
	if atomSize < 16 {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "ftyp atom too small"}
	}

	brand, err := sr.ReadBytes(8, 4, "major brand")
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "failed to read major brand"}
	}
	if f, ok := ftypBrands[string(brand)]; ok {
		return f, nil
	}
	return FormatUnknown, &UnsupportedFormatError{Path: path, Reason: "unsupported file brand " + string(brand)}
}
