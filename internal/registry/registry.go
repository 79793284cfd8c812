// Package registry connects the unified tag model to the native tag codecs
// and container backends.
//
// Codec and backend packages register themselves from init functions; the
// tables are read-only afterwards.
package registry

import (
	"io"

	"github.com/simonhull/taggy/internal/atomicfile"
	"github.com/simonhull/taggy/internal/types"
)

// NativeTag is a tag in the representation of one native format.
type NativeTag interface {
	// TagType reports which native format this tag belongs to.
	TagType() types.TagType

	// IsEmpty reports whether the tag holds no fields and no pictures.
	// Containers persist an empty native tag as "no tag".
	IsEmpty() bool
}

// Codec converts between the unified model and one native tag format.
type Codec interface {
	// ToNative builds the native tag. Absent fields are omitted and empty
	// pictures are dropped.
	ToNative(tag types.Tag) NativeTag

	// FromNative converts a native tag of this codec's type. Native fields
	// outside the unified field set are dropped.
	FromNative(native NativeTag) (types.Tag, error)
}

// Lossy is implemented by codecs whose ToNative may leave out parts of a
// Tag beyond absent fields and empty pictures.
type Lossy interface {
	// Dropped describes each part of tag that ToNative leaves out.
	Dropped(tag types.Tag) []string
}

// Container is a parsed file bound to its path.
//
// Mutations happen in memory; Save persists them.
type Container interface {
	Format() types.Format
	Properties() types.Properties

	// Warnings lists non-fatal problems found while parsing.
	Warnings() []types.Warning

	// Tags returns the native tags present, in discovery order.
	Tags() []NativeTag

	// Clear removes every tag from the in-memory container.
	Clear()

	// InsertTag adds the tag, replacing any tag of the same type. It
	// returns false when the container cannot host the tag's type.
	InsertTag(tag NativeTag) bool

	// Remove detaches the tag of the given type, if present.
	Remove(tagType types.TagType) (NativeTag, bool)

	// Save writes the in-memory state back to the bound path.
	Save(opts atomicfile.Options) error
}

// Backend parses one container format.
type Backend interface {
	// Open parses the container. The Container may read from r again
	// during Save, so r must stay open until the Container is discarded.
	Open(r io.ReaderAt, size int64, path string) (Container, error)

	// PrimaryTagType is the tag type this container prefers.
	PrimaryTagType() types.TagType

	// SupportedTagTypes lists the tag types this container can host,
	// in discovery order.
	SupportedTagTypes() []types.TagType
}

// codecs maps tag types to their codecs.
var codecs = make(map[types.TagType]Codec)

// backends maps formats to their backends.
var backends = make(map[types.Format]Backend)

// RegisterCodec registers a codec for a tag type.
// This is called by codec packages during initialization (init functions).
func RegisterCodec(tagType types.TagType, codec Codec) {
	codecs[tagType] = codec
}

// GetCodec returns the codec for a tag type.
// Returns nil if no codec is registered for the type.
func GetCodec(tagType types.TagType) Codec {
	return codecs[tagType]
}

// RegisterBackend registers a backend for a format.
// This is called by container packages during initialization (init functions).
func RegisterBackend(format types.Format, backend Backend) {
	backends[format] = backend
}

// GetBackend returns the backend for a format.
// Returns nil if no backend is registered for the format.
func GetBackend(format types.Format) Backend {
	return backends[format]
}

// ToNative converts tag into the native representation of tag.Type.
//
// Returns *types.UnsupportedTagTypeError when no codec handles the type.
// TagTypeFilePrimary must be resolved by the caller first.
func ToNative(tag types.Tag) (NativeTag, error) {
	codec := codecs[tag.Type]
	if codec == nil {
		return nil, &types.UnsupportedTagTypeError{
			TagType: tag.Type,
			Reason:  "no native codec",
		}
	}
	return codec.ToNative(tag), nil
}

// FromNative converts a native tag into the unified model.
func FromNative(native NativeTag) (types.Tag, error) {
	codec := codecs[native.TagType()]
	if codec == nil {
		return types.Tag{}, &types.UnsupportedTagTypeError{
			TagType: native.TagType(),
			Reason:  "no native codec",
		}
	}
	return codec.FromNative(native)
}

// Dropped describes the parts of tag its codec cannot store. Codecs that
// are not Lossy drop nothing.
func Dropped(tag types.Tag) []string {
	if l, ok := codecs[tag.Type].(Lossy); ok {
		return l.Dropped(tag)
	}
	return nil
}

// PrimaryTagTypeOf returns the primary tag type of a container format.
// Formats without a backend report TagTypeFilePrimary.
func PrimaryTagTypeOf(format types.Format) types.TagType {
	if b := backends[format]; b != nil {
		return b.PrimaryTagType()
	}
	return types.TagTypeFilePrimary
}

// SupportedTagTypesOf returns the tag types a container format can host.
// Formats without a backend report nil.
func SupportedTagTypesOf(format types.Format) []types.TagType {
	if b := backends[format]; b != nil {
		return b.SupportedTagTypes()
	}
	return nil
}
