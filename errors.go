package taggy

import (
	"github.com/simonhull/taggy/internal/types"
)

// NotFoundError is returned when the path cannot be opened with the access
// the operation needs. Re-exported from internal/types.
type NotFoundError = types.NotFoundError

// ParseError is returned when the container or its tags cannot be
// interpreted.
type ParseError = types.ParseError

// SaveError is returned when changes could not be written back.
type SaveError = types.SaveError

// UnsupportedTagTypeError describes a tag that was skipped because the
// container cannot host its type. Operations report it as a Warning.
type UnsupportedTagTypeError = types.UnsupportedTagTypeError

// UnsupportedFormatError is wrapped by ParseError when no backend handles
// the file.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is wrapped by ParseError when the container
// structure is invalid.
type CorruptedFileError = types.CorruptedFileError

// Warning is a non-fatal issue recorded on a TaggyFile.
type Warning = types.Warning
