package taggy

import (
	"errors"
	"fmt"
	"os"

	"github.com/simonhull/taggy/internal/registry"
	"github.com/simonhull/taggy/internal/types"
)

// ReadAll reads every tag in the file, in the order the container stores
// them.
//
// A file without tags yields a TaggyFile with an empty Tags slice, not an
// error.
//
// Example:
//
//	file, err := taggy.ReadAll("song.mp3")
//	if err != nil {
//		return err
//	}
//	for _, tag := range file.Tags {
//		fmt.Printf("%s: %s - %s\n", tag.Type, tag.Artist, tag.Title)
//	}
func ReadAll(path string, opts ...Option) (*TaggyFile, error) {
	return readAll(path, applyOptions(opts))
}

func readAll(path string, o *options) (*TaggyFile, error) {
	h, err := open(path, os.O_RDONLY, o)
	if err != nil {
		return nil, err
	}
	defer h.close()

	return h.snapshot(), nil
}

// ReadPrimary reads only the tag of the container's primary type, for
// example ID3v2 for MP3. The result holds zero or one tag.
func ReadPrimary(path string, opts ...Option) (*TaggyFile, error) {
	file, err := ReadAll(path, opts...)
	if err != nil {
		return nil, err
	}
	file.Tags = only(file.PrimaryTag())
	return file, nil
}

// ReadAny reads the first tag the container stores, whatever its type.
// The result holds zero or one tag.
func ReadAny(path string, opts ...Option) (*TaggyFile, error) {
	file, err := ReadAll(path, opts...)
	if err != nil {
		return nil, err
	}
	file.Tags = only(file.FirstTag())
	return file, nil
}

func only(tag Tag, ok bool) []Tag {
	if !ok {
		return []Tag{}
	}
	return []Tag{tag}
}

// WriteAll writes each tag into the file and returns the file as read
// back after saving.
//
// With overrideExistent every existing tag is dropped first; otherwise
// tags of types not in tags are kept and tags of the same type are
// replaced. A tag of type TagTypeFilePrimary is written as the container's
// primary type.
//
// A tag the container cannot host (for example APE in an MP3 file) is
// skipped: it is logged, recorded in the result's Warnings, and the other
// tags are still written.
func WriteAll(path string, tags []Tag, overrideExistent bool, opts ...Option) (*TaggyFile, error) {
	o := applyOptions(opts)

	h, err := open(path, os.O_RDWR, o)
	if err != nil {
		return nil, err
	}
	defer h.close()

	if overrideExistent {
		h.container.Clear()
	}

	for _, tag := range tags {
		if tag.Type == TagTypeFilePrimary {
			tag = tag.Retyped(h.primary)
		}
		h.insert(tag)
	}

	return h.commit()
}

// WritePrimary writes tag as the container's primary tag type and returns
// the file as read back after saving.
//
// The type of tag is ignored; callers may pass any type, including
// TagTypeFilePrimary. Unless keepOthers is set, every other tag is
// dropped.
//
// Example:
//
//	tag := taggy.NewTagBuilder().WithTitle("X").Build()
//	file, err := taggy.WritePrimary("song.mp3", tag, false)
func WritePrimary(path string, tag Tag, keepOthers bool, opts ...Option) (*TaggyFile, error) {
	o := applyOptions(opts)

	h, err := open(path, os.O_RDWR, o)
	if err != nil {
		return nil, err
	}
	defer h.close()

	if !keepOthers {
		h.container.Clear()
	}
	h.insert(tag.Retyped(h.primary))

	return h.commit()
}

// RemoveAll deletes every tag in the file.
//
// The container is cleared and an empty tag of the primary type is
// written in its place, which makes the backend drop the stored bytes.
func RemoveAll(path string, opts ...Option) error {
	o := applyOptions(opts)

	h, err := open(path, os.O_RDWR, o)
	if err != nil {
		return err
	}
	defer h.close()

	h.container.Clear()
	h.insertEmpty(h.primary)

	return h.save()
}

// RemoveTag deletes the tag of the given type. A caller holding a Tag
// passes tag.Type; only the type selects what is removed.
//
// If the file has no such tag, RemoveTag returns nil without rewriting the
// file. TagTypeFilePrimary removes the container's primary tag.
func RemoveTag(path string, tagType TagType, opts ...Option) error {
	o := applyOptions(opts)

	h, err := open(path, os.O_RDWR, o)
	if err != nil {
		return err
	}
	defer h.close()

	if tagType == TagTypeFilePrimary {
		tagType = h.primary
	}

	if _, ok := h.container.Remove(tagType); !ok {
		o.logger.Debug().Str("path", path).Stringer("tag_type", tagType).Msg("tag not present, nothing to remove")
		return nil
	}
	h.insertEmpty(tagType)

	return h.save()
}

// errIsDir reports a path that names a directory. Only O_RDWR opens
// reject directories, so bind checks for reads too.
var errIsDir = errors.New("is a directory")

// handle is an open file bound to its parsed container.
type handle struct {
	f         *os.File
	path      string
	size      int64
	container registry.Container
	primary   TagType
	opts      *options

	written  []Tag
	warnings []Warning
}

// open opens path with the given flags and parses its container.
func open(path string, flag int, o *options) (*handle, error) {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	h, err := bind(f, path, o)
	if err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		return nil, err
	}
	return h, nil
}

func bind(f *os.File, path string, o *options) (*handle, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if stat.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errIsDir}
	}
	size := stat.Size()

	format, err := types.DetectFormat(f, size, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	backend := registry.GetBackend(format)
	if backend == nil {
		return nil, &ParseError{
			Path:   path,
			Format: format,
			Err: &UnsupportedFormatError{
				Path:   path,
				Reason: fmt.Sprintf("no backend for %s", format),
			},
		}
	}

	container, err := backend.Open(f, size, path)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	o.logger.Debug().
		Str("path", path).
		Stringer("format", format).
		Int("tags", len(container.Tags())).
		Msg("parsed file")

	return &handle{
		f:         f,
		path:      path,
		size:      size,
		container: container,
		primary:   backend.PrimaryTagType(),
		opts:      o,
	}, nil
}

func (h *handle) close() {
	_ = h.f.Close() //nolint:errcheck // Read-only use; saves go through a temp file
}

// insert converts tag and adds it to the container. A tag the container
// cannot host is skipped with a warning.
func (h *handle) insert(tag Tag) {
	native, err := registry.ToNative(tag)
	if err != nil {
		h.skip(tag.Type, err)
		return
	}
	if !h.container.InsertTag(native) {
		h.skip(tag.Type, nil)
		return
	}
	for _, what := range registry.Dropped(tag) {
		h.opts.logger.Warn().Str("path", h.path).Stringer("tag_type", tag.Type).Str("dropped", what).Msg("tag cannot store everything")
		h.warnings = append(h.warnings, Warning{Stage: "write", Message: fmt.Sprintf("%s: %s not stored", tag.Type, what)})
	}
	h.written = append(h.written, tag)
}

// insertEmpty adds an empty tag of the given type. Backends store an empty
// tag as no tag, so saving clears the bytes the old tag occupied.
func (h *handle) insertEmpty(tagType TagType) {
	native, err := registry.ToNative(NewTag(tagType))
	if err != nil {
		h.skip(tagType, err)
		return
	}
	if !h.container.InsertTag(native) {
		h.skip(tagType, nil)
	}
}

func (h *handle) skip(tagType TagType, cause error) {
	err := &UnsupportedTagTypeError{
		TagType: tagType,
		Format:  h.container.Format(),
		Reason:  "container cannot host it",
	}
	if cause != nil {
		err.Reason = "no native codec"
	}

	h.opts.logger.Warn().Err(err).Str("path", h.path).Msg("skipping tag")
	h.warnings = append(h.warnings, Warning{Stage: "write", Message: err.Error()})
}

func (h *handle) save() error {
	if err := h.container.Save(h.opts.save); err != nil {
		return &SaveError{Path: h.path, Err: err}
	}
	h.opts.logger.Debug().Str("path", h.path).Msg("saved file")
	return nil
}

// commit saves the container and reads the file back.
func (h *handle) commit() (*TaggyFile, error) {
	if err := h.save(); err != nil {
		return nil, err
	}

	file, err := readAll(h.path, h.opts)
	if err != nil {
		return nil, &SaveError{Path: h.path, Err: fmt.Errorf("re-read: %w", err)}
	}
	file.Warnings = append(file.Warnings, h.warnings...)

	if h.opts.validate {
		if err := validate(file, h.written); err != nil {
			return nil, &SaveError{Path: h.path, Err: fmt.Errorf("validation failed: %w", err)}
		}
	}

	return file, nil
}
