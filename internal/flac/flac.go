// Package flac implements the FLAC container backend.
//
// Metadata blocks are parsed and serialised by github.com/go-flac/go-flac.
// The Vorbis comment block and the PICTURE blocks form the file's single
// tag; every other block is carried through a save unchanged and the audio
// frames are copied byte for byte.
package flac

import (
	"errors"
	"fmt"
	"io"
	"time"

	goflac "github.com/go-flac/go-flac"

	"github.com/simonhull/taggy/internal/atomicfile"
	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
	"github.com/simonhull/taggy/internal/vorbis"
)

// backend implements registry.Backend for FLAC.
type backend struct{}

func (backend) PrimaryTagType() types.TagType { return types.TagTypeVorbisComments }

func (backend) SupportedTagTypes() []types.TagType {
	return []types.TagType{types.TagTypeVorbisComments}
}

// Open parses the metadata blocks of a FLAC file. Audio frames are not
// read until Save.
func (backend) Open(r io.ReaderAt, size int64, path string) (registry.Container, error) {
	sr := io.NewSectionReader(r, 0, size)
	meta, err := goflac.ParseMetadata(sr)
	if err != nil {
		if errors.Is(err, goflac.ErrorNoFLACHeader) {
			return nil, &types.CorruptedFileError{Path: path, Reason: "invalid FLAC magic bytes"}
		}
		return nil, fmt.Errorf("read metadata blocks: %w", err)
	}

	framesStart, err := sr.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	f := &file{
		r:           r,
		path:        path,
		framesStart: framesStart,
		framesEnd:   size,
	}

	var offset int64 = 4
	for _, b := range meta.Meta {
		if vorbis.IsTagBlock(b) {
			if f.tag == nil {
				f.tag = vorbis.New()
			}
			if err := f.tag.AddBlock(b); err != nil {
				f.warn("metadata", err.Error(), offset)
			}
		} else {
			f.blocks = append(f.blocks, b)
		}
		offset += 4 + int64(len(b.Data))
	}

	f.props, err = streamProperties(meta, size-framesStart)
	if err != nil {
		f.warn("technical", "failed to parse STREAMINFO: "+err.Error(), 4)
	}

	return f, nil
}

// streamProperties derives the audio properties from STREAMINFO.
func streamProperties(meta *goflac.File, audioSize int64) (types.Properties, error) {
	if len(meta.Meta) == 0 {
		return types.Properties{}, goflac.ErrorNoStreamInfo
	}
	info, err := meta.GetStreamInfo()
	if err != nil {
		return types.Properties{}, err
	}

	props := types.Properties{
		Codec:      "FLAC",
		SampleRate: info.SampleRate,
		BitDepth:   info.BitDepth,
		Channels:   info.ChannelCount,
	}

	// Total samples may be 0 (unknown)
	if info.SampleRate > 0 && info.SampleCount > 0 {
		seconds := float64(info.SampleCount) / float64(info.SampleRate)
		props.Duration = time.Duration(seconds * float64(time.Second))
		props.Bitrate = int(float64(audioSize*8) / seconds)
	}

	return props, nil
}

// file is a parsed FLAC file bound to its path.
type file struct {
	r    io.ReaderAt
	path string

	// Audio frames region
	framesStart int64
	framesEnd   int64

	// Metadata blocks other than the tag, in file order
	blocks []*goflac.MetaDataBlock
	tag    *vorbis.Tag

	props    types.Properties
	warnings []types.Warning
}

func (f *file) warn(stage, msg string, offset int64) {
	f.warnings = append(f.warnings, types.Warning{Stage: stage, Message: msg, Offset: offset})
}

func (f *file) Format() types.Format { return types.FormatFLAC }
func (f *file) Properties() types.Properties { return f.props }
func (f *file) Warnings() []types.Warning { return f.warnings }

func (f *file) Tags() []registry.NativeTag {
	if f.tag == nil || f.tag.IsEmpty() {
		return nil
	}
	return []registry.NativeTag{f.tag}
}

func (f *file) Clear() {
	f.tag = nil
}

func (f *file) InsertTag(tag registry.NativeTag) bool {
	t, ok := tag.(*vorbis.Tag)
	if !ok {
		return false
	}
	f.tag = t
	return true
}

func (f *file) Remove(tagType types.TagType) (registry.NativeTag, bool) {
	if tagType != types.TagTypeVorbisComments || f.tag == nil {
		return nil, false
	}
	t := f.tag
	f.tag = nil
	return t, true
}

// metadata returns the blocks to write: the tag's blocks go in front of the
// first PADDING block, or last when there is none. An absent or empty tag
// contributes no blocks.
func (f *file) metadata() []*goflac.MetaDataBlock {
	var tagBlocks []*goflac.MetaDataBlock
	if f.tag != nil {
		tagBlocks = f.tag.Blocks()
	}

	out := make([]*goflac.MetaDataBlock, 0, len(f.blocks)+len(tagBlocks))
	inserted := false
	for _, b := range f.blocks {
		if !inserted && b.Type == goflac.Padding {
			out = append(out, tagBlocks...)
			inserted = true
		}
		out = append(out, b)
	}
	if !inserted {
		out = append(out, tagBlocks...)
	}
	return out
}

// Save rewrites the metadata blocks and copies the audio frames.
func (f *file) Save(opts atomicfile.Options) error {
	head := (&goflac.File{Meta: f.metadata()}).Marshal()

	return atomicfile.Write(f.path, opts, func(w io.Writer) error {
		if _, err := w.Write(head); err != nil {
			return fmt.Errorf("write metadata blocks: %w", err)
		}

		frames := io.NewSectionReader(f.r, f.framesStart, f.framesEnd-f.framesStart)
		if _, err := io.Copy(w, frames); err != nil {
			return fmt.Errorf("copy audio frames: %w", err)
		}
		return nil
	})
}

func init() {
	registry.RegisterBackend(types.FormatFLAC, backend{})
}
