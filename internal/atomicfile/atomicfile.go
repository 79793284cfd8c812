// Package atomicfile replaces a file's contents without leaving a partially
// written file behind.
package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Options controls how Write replaces the target file.
type Options struct {
	// BackupSuffix, when set, keeps the previous file at path+BackupSuffix.
	// An existing backup is overwritten.
	BackupSuffix string

	// PreserveModTime restores the previous modification time after the write.
	PreserveModTime bool
}

// Write replaces path with the bytes produced by fill.
//
// fill writes into a temporary file in the same directory. The temporary
// file is synced, given the permissions of the file it replaces, and
// renamed over path. If any step fails the temporary file is removed and
// path is left as it was.
func Write(path string, opts Options, fill func(w io.Writer) error) error { //nolint:gocyclo // Atomic file operations require sequential steps
	var prev os.FileInfo
	if info, err := os.Stat(path); err == nil {
		prev = info
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".taggy-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := fill(tempFile); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if prev != nil {
		if err := tempFile.Chmod(prev.Mode().Perm()); err != nil {
			return fmt.Errorf("chmod temp file: %w", err)
		}
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if opts.BackupSuffix != "" && prev != nil {
		if err := os.Rename(path, path+opts.BackupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if opts.PreserveModTime && prev != nil {
		_ = os.Chtimes(path, prev.ModTime(), prev.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	return nil
}
