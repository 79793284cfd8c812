package taggy

import (
	"fmt"

	"github.com/simonhull/taggy/internal/registry"
)

// snapshot converts the container's native tags into a TaggyFile.
//
// A native tag that fails to convert is left out and reported as a
// warning; the other tags are still returned.
func (h *handle) snapshot() *TaggyFile {
	c := h.container

	file := &TaggyFile{
		Path:        h.path,
		Tags:        []Tag{},
		Properties:  c.Properties(),
		Format:      c.Format(),
		PrimaryType: h.primary,
		Size:        h.size,
	}
	file.Warnings = append(file.Warnings, c.Warnings()...)

	for _, native := range c.Tags() {
		tag, err := registry.FromNative(native)
		if err != nil {
			h.opts.logger.Warn().Err(err).Str("path", h.path).Stringer("tag_type", native.TagType()).Msg("dropping unreadable tag")
			file.Warnings = append(file.Warnings, Warning{
				Stage:   "metadata",
				Message: fmt.Sprintf("convert %s tag: %v", native.TagType(), err),
			})
			continue
		}
		file.Tags = append(file.Tags, tag.Clone())
	}

	return file
}

// lossyText lists tag types whose text fields may be truncated or
// transcoded on disk.
var lossyText = map[TagType]bool{
	TagTypeID3v1: true,
}

// validate checks that each written tag survived the round trip. Empty
// tags must be absent; others must be present with matching title, artist
// and album.
func validate(file *TaggyFile, written []Tag) error {
	for _, want := range written {
		got, ok := file.TagOf(want.Type)
		if want.IsEmpty() {
			if ok {
				return fmt.Errorf("%s tag still present after clearing", want.Type)
			}
			continue
		}
		if !ok {
			return fmt.Errorf("%s tag missing after write", want.Type)
		}
		if lossyText[want.Type] {
			continue
		}
		if got.Title != want.Title {
			return fmt.Errorf("%s title mismatch: wrote %q, read %q", want.Type, want.Title, got.Title)
		}
		if got.Artist != want.Artist {
			return fmt.Errorf("%s artist mismatch: wrote %q, read %q", want.Type, want.Artist, got.Artist)
		}
		if got.Album != want.Album {
			return fmt.Errorf("%s album mismatch: wrote %q, read %q", want.Type, want.Album, got.Album)
		}
	}
	return nil
}
