package taggy

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/simonhull/taggy/internal/atomicfile"
)

// Option configures a read or write operation.
//
// Options use the functional options pattern for clean, extensible APIs.
// Save-related options are ignored by read operations.
//
// Example:
//
//	file, err := taggy.WritePrimary("song.mp3", tag, false,
//	    taggy.WithBackup(".bak"),
//	    taggy.WithValidation(),
//	)
type Option func(*options)

// options holds the configuration of one operation.
type options struct {
	logger   zerolog.Logger
	save     atomicfile.Options
	validate bool // Re-read after write to verify
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: log.Logger,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger that receives warnings and debug events.
//
// By default the global zerolog logger is used. Pass zerolog.Nop() to
// silence the operation; warnings are still recorded in
// TaggyFile.Warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackup keeps the original file next to the rewritten one.
//
// The backup file has the suffix appended to the original filename. For
// example, WithBackup(".bak") keeps "song.mp3.bak" after modifying
// "song.mp3". An existing backup is overwritten.
//
// Example:
//
//	err := taggy.RemoveAll("song.mp3", taggy.WithBackup(".bak"))
//	// Original file preserved as song.mp3.bak
func WithBackup(suffix string) Option {
	return func(o *options) {
		o.save.BackupSuffix = suffix
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time to the current
// time. Use this when retagging should not make files look modified to
// sync tools or backup software.
func WithPreserveModTime() Option {
	return func(o *options) {
		o.save.PreserveModTime = true
	}
}

// WithValidation re-reads the file after writing to verify it.
//
// After saving, the file is parsed again and the title, artist and album
// of every written tag are compared with what was requested. A mismatch
// is reported as a *SaveError; the file has already been replaced by then.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}
