package types

import "strings"

// TagType identifies the native format of a tag.
//
// TagTypeFilePrimary is a write-time directive meaning "whatever the
// container prefers". It is resolved before a tag reaches a backend and is
// never reported on a tag read from disk.
type TagType int

const (
	// TagTypeFilePrimary resolves to the container's primary tag type.
	TagTypeFilePrimary TagType = iota // FilePrimary
	// TagTypeID3v1 is the fixed 128-byte trailer used by MP3.
	TagTypeID3v1 // ID3v1
	// TagTypeID3v2 is the frame-based tag at the start of MP3 files.
	TagTypeID3v2 // ID3v2
	// TagTypeAPE is the APEv1/APEv2 item tag.
	TagTypeAPE // APE
	// TagTypeVorbisComments is the KEY=VALUE comment block used by FLAC and Ogg.
	TagTypeVorbisComments // VorbisComments
	// TagTypeMP4Ilst is the iTunes-style ilst atom list.
	TagTypeMP4Ilst // MP4Ilst
	// TagTypeRIFFInfo is the RIFF INFO chunk used by WAV.
	TagTypeRIFFInfo // RIFFInfo
	// TagTypeAIFFText is the set of AIFF text chunks (NAME, AUTH, ...).
	TagTypeAIFFText // AIFFText
)

var tagTypeNames = map[TagType]string{
	TagTypeFilePrimary:    "FilePrimary",
	TagTypeID3v1:          "ID3v1",
	TagTypeID3v2:          "ID3v2",
	TagTypeAPE:            "APE",
	TagTypeVorbisComments: "VorbisComments",
	TagTypeMP4Ilst:        "MP4Ilst",
	TagTypeRIFFInfo:       "RIFFInfo",
	TagTypeAIFFText:       "AIFFText",
}

func (t TagType) String() string {
	if name, ok := tagTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseTagType parses a tag type name case-insensitively.
//
// Besides the String() names it accepts a few short forms
// ("vorbis", "ape", "mp4", "riff", "aiff", "primary").
func ParseTagType(s string) (TagType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fileprimary", "primary", "":
		return TagTypeFilePrimary, true
	case "id3v1":
		return TagTypeID3v1, true
	case "id3v2":
		return TagTypeID3v2, true
	case "ape":
		return TagTypeAPE, true
	case "vorbiscomments", "vorbis":
		return TagTypeVorbisComments, true
	case "mp4ilst", "mp4", "ilst":
		return TagTypeMP4Ilst, true
	case "riffinfo", "riff":
		return TagTypeRIFFInfo, true
	case "aifftext", "aiff":
		return TagTypeAIFFText, true
	}
	return TagTypeFilePrimary, false
}

// MarshalText encodes the tag type by name for YAML and JSON output.
func (t TagType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
