package taggy

import (
	"github.com/simonhull/taggy/internal/types"
)

// TaggyFile is a snapshot of one audio file's tags.
// Re-exported from internal/types.
type TaggyFile = types.TaggyFile

// Tag is one native tag in format-agnostic form.
type Tag = types.Tag

// TagBuilder builds a Tag field by field.
type TagBuilder = types.TagBuilder

// TagType identifies the native format of a tag.
type TagType = types.TagType

// Picture is embedded artwork.
type Picture = types.Picture

// PictureType categorizes the purpose of a picture.
type PictureType = types.PictureType

// MimeType is the image encoding of a picture.
type MimeType = types.MimeType

// Properties are the technical audio properties of a file.
type Properties = types.Properties

// Re-export the tag type constants.
const (
	TagTypeFilePrimary    = types.TagTypeFilePrimary
	TagTypeID3v1          = types.TagTypeID3v1
	TagTypeID3v2          = types.TagTypeID3v2
	TagTypeAPE            = types.TagTypeAPE
	TagTypeVorbisComments = types.TagTypeVorbisComments
	TagTypeMP4Ilst        = types.TagTypeMP4Ilst
	TagTypeRIFFInfo       = types.TagTypeRIFFInfo
	TagTypeAIFFText       = types.TagTypeAIFFText
)

// Re-export the picture type constants.
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureCoverFront        = types.PictureCoverFront
	PictureCoverBack         = types.PictureCoverBack
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureScreenCapture     = types.PictureScreenCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogo          = types.PictureBandLogo
	PicturePublisherLogo     = types.PicturePublisherLogo
)

// Re-export the MIME type constants.
const (
	MimeNone = types.MimeNone
	MimePNG  = types.MimePNG
	MimeJPEG = types.MimeJPEG
	MimeTIFF = types.MimeTIFF
	MimeBMP  = types.MimeBMP
	MimeGIF  = types.MimeGIF
)

// NewTag returns a tag of the given type with every field absent.
func NewTag(tagType TagType) Tag {
	return types.NewTag(tagType)
}

// NewTagBuilder returns a builder for a FilePrimary tag.
func NewTagBuilder() *TagBuilder {
	return types.NewTagBuilder()
}

// ParseTagType parses a tag type name case-insensitively.
func ParseTagType(s string) (TagType, bool) {
	return types.ParseTagType(s)
}

// ParseMimeType maps a MIME string to a MimeType.
func ParseMimeType(s string) MimeType {
	return types.ParseMimeType(s)
}

// MimeTypeFromData detects PNG, JPEG, GIF, BMP and TIFF data from its
// leading bytes. Other data yields MimeNone.
func MimeTypeFromData(data []byte) MimeType {
	return types.MimeTypeFromData(data)
}
