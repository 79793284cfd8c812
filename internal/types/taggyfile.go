// Package types provides core data structures for audio tag metadata.
//
// This package defines the TaggyFile, Tag, Picture and Properties types
// that represent an audio file's tags across all supported formats.
package types

// TaggyFile is a snapshot of one audio file's tags.
//
// A TaggyFile is built fresh by every read or write operation and is not
// tied to the file afterwards; reading the file again yields a new
// snapshot. Tags holds at most one tag per TagType, in the order the
// backend discovered them.
type TaggyFile struct {
	Path        string     `json:"path" yaml:"path"`
	Tags        []Tag      `json:"tags" yaml:"tags"`
	Warnings    []Warning  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Properties  Properties `json:"properties" yaml:"properties"`
	Format      Format     `json:"format" yaml:"format"`
	PrimaryType TagType    `json:"primary_tag_type" yaml:"primary_tag_type"`
	Size        int64      `json:"size" yaml:"size"`
}

// PrimaryTag returns the tag whose type is the container's primary type.
func (f *TaggyFile) PrimaryTag() (Tag, bool) {
	return f.TagOf(f.PrimaryType)
}

// FirstTag returns the first tag in discovery order, whatever its type.
func (f *TaggyFile) FirstTag() (Tag, bool) {
	if len(f.Tags) == 0 {
		return Tag{}, false
	}
	return f.Tags[0].Clone(), true
}

// TagOf returns the tag of the given type.
func (f *TaggyFile) TagOf(tagType TagType) (Tag, bool) {
	for _, t := range f.Tags {
		if t.Type == tagType {
			return t.Clone(), true
		}
	}
	return Tag{}, false
}
