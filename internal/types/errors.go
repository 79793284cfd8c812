package types

import "fmt"

// NotFoundError is returned when a path cannot be opened.
//
// It covers missing files as well as files that exist but cannot be opened
// with the required access (read-only for reads, read-write for writes).
type NotFoundError struct {
	Err  error
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: cannot open file: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError is returned when a file was opened but its container or tag
// structure could not be interpreted.
type ParseError struct {
	Err    error
	Path   string
	Format Format
}

func (e *ParseError) Error() string {
	if e.Format == FormatUnknown {
		return fmt.Sprintf("%s: parse: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: parse %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SaveError is returned when in-memory changes could not be persisted.
//
// No rollback is attempted; callers should treat the file as possibly
// unmodified.
type SaveError struct {
	Err  error
	Path string
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%s: save: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// UnsupportedTagTypeError describes a tag that could not be inserted
// because the container (or the library) cannot host its type.
//
// This condition is never fatal: operations report it as a Warning and
// continue with the remaining tags.
type UnsupportedTagTypeError struct {
	Reason  string
	TagType TagType
	Format  Format
}

func (e *UnsupportedTagTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("tag type %s not supported for %s: %s", e.TagType, e.Format, e.Reason)
	}
	return fmt.Sprintf("tag type %s not supported for %s", e.TagType, e.Format)
}

// UnsupportedFormatError is returned when the container format is not
// recognised or has no backend.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Warning represents a non-fatal issue encountered during an operation.
//
// Examples include:
//   - A tag type the container cannot host (stage "write")
//   - A native tag that failed to convert (stage "metadata")
//   - Unreadable audio frame headers (stage "technical")
type Warning struct {
	// Stage where the warning occurred
	Stage string `json:"stage" yaml:"stage"` // "metadata", "technical", "write"

	// Warning message
	Message string `json:"message" yaml:"message"`

	// File offset where the issue occurred (0 if not applicable)
	Offset int64 `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
