// Package mp3 implements the MP3 container backend.
//
// An MP3 file is laid out as an optional ID3v2 tag, the MPEG audio stream
// and an optional 128-byte ID3v1 trailer. ID3v2 is the primary tag type.
package mp3

import (
	"fmt"
	"io"

	"github.com/simonhull/taggy/internal/atomicfile"
	binutil "github.com/simonhull/taggy/internal/binary"
	"github.com/simonhull/taggy/internal/id3v1"
	"github.com/simonhull/taggy/internal/id3v2"
	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
)

// backend implements registry.Backend for MP3.
type backend struct{}

func (backend) PrimaryTagType() types.TagType { return types.TagTypeID3v2 }

func (backend) SupportedTagTypes() []types.TagType {
	return []types.TagType{types.TagTypeID3v2, types.TagTypeID3v1}
}

// Open parses the tags and audio properties of an MP3 file.
//
// An ID3v2 tag the parser rejects (for example ID3v2.2) is reported as a
// warning and treated as absent; its bytes are still skipped so a save
// drops it instead of leaving it in front of the audio.
func (backend) Open(r io.ReaderAt, size int64, path string) (registry.Container, error) {
	sr := binutil.NewSafeReader(r, size, path)
	f := &file{r: r, path: path, audioEnd: size}

	if header, err := sr.ReadBytes(0, id3v2.HeaderSize, "ID3v2 header"); err == nil {
		if stored, err := id3v2.StoredSize(header); err == nil {
			if stored > size {
				return nil, &types.CorruptedFileError{
					Path:   path,
					Reason: fmt.Sprintf("ID3v2 tag size %d exceeds file size %d", stored, size),
				}
			}
			f.audioStart = stored

			tag, err := id3v2.Parse(io.NewSectionReader(r, 0, stored))
			if err != nil {
				f.warn("metadata", "ID3v2 parsing failed: "+err.Error(), 0)
			} else {
				f.v2 = tag
			}
		}
	}

	v1, err := id3v1.Read(r, size)
	if err != nil {
		f.warn("metadata", "ID3v1 parsing failed: "+err.Error(), size-id3v1.Size)
	} else if v1 != nil {
		f.v1 = v1
		f.audioEnd = size - id3v1.Size
	}

	if f.audioEnd < f.audioStart {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: "ID3v2 tag overlaps ID3v1 tag",
			Offset: f.audioEnd,
		}
	}

	props, err := readProperties(sr, f.audioStart, f.audioEnd)
	if err != nil {
		f.warn("technical", "failed to parse MP3 technical info: "+err.Error(), f.audioStart)
	}
	f.props = props

	return f, nil
}

// file is a parsed MP3 file bound to its path.
type file struct {
	r    io.ReaderAt
	path string

	// Audio stream region, tags excluded
	audioStart int64
	audioEnd   int64

	props    types.Properties
	warnings []types.Warning

	v2 *id3v2.Tag
	v1 *id3v1.Tag
}

func (f *file) warn(stage, msg string, offset int64) {
	f.warnings = append(f.warnings, types.Warning{Stage: stage, Message: msg, Offset: offset})
}

func (f *file) Format() types.Format { return types.FormatMP3 }
func (f *file) Properties() types.Properties { return f.props }
func (f *file) Warnings() []types.Warning { return f.warnings }

// Tags returns the non-empty tags, ID3v2 first.
func (f *file) Tags() []registry.NativeTag {
	var tags []registry.NativeTag
	if f.v2 != nil && !f.v2.IsEmpty() {
		tags = append(tags, f.v2)
	}
	if f.v1 != nil && !f.v1.IsEmpty() {
		tags = append(tags, f.v1)
	}
	return tags
}

func (f *file) Clear() {
	f.v2 = nil
	f.v1 = nil
}

func (f *file) InsertTag(tag registry.NativeTag) bool {
	switch t := tag.(type) {
	case *id3v2.Tag:
		f.v2 = t
	case *id3v1.Tag:
		f.v1 = t
	default:
		return false
	}
	return true
}

func (f *file) Remove(tagType types.TagType) (registry.NativeTag, bool) {
	switch tagType {
	case types.TagTypeID3v2:
		if f.v2 != nil {
			t := f.v2
			f.v2 = nil
			return t, true
		}
	case types.TagTypeID3v1:
		if f.v1 != nil {
			t := f.v1
			f.v1 = nil
			return t, true
		}
	}
	return nil, false
}

// Save rewrites the file as ID3v2 tag, audio stream, ID3v1 tag. Empty or
// missing tags are not written.
func (f *file) Save(opts atomicfile.Options) error {
	return atomicfile.Write(f.path, opts, func(w io.Writer) error {
		if f.v2 != nil {
			if _, err := f.v2.WriteTo(w); err != nil {
				return fmt.Errorf("write ID3v2 tag: %w", err)
			}
		}

		audio := io.NewSectionReader(f.r, f.audioStart, f.audioEnd-f.audioStart)
		if _, err := io.Copy(w, audio); err != nil {
			return fmt.Errorf("copy audio: %w", err)
		}

		if f.v1 != nil && !f.v1.IsEmpty() {
			if _, err := f.v1.WriteTo(w); err != nil {
				return fmt.Errorf("write ID3v1 tag: %w", err)
			}
		}
		return nil
	})
}

func init() {
	registry.RegisterBackend(types.FormatMP3, backend{})
}
