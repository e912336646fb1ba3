// Package fsutil provides file system utilities for goswap: classified
// open/stat errors and durable, atomic output writes.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Open opens a file for reading and returns it along with its mode, which
// callers preserve when writing a transformed copy. Failures are wrapped
// in the package's sentinel errors.
func Open(path string) (*os.File, os.FileMode, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, 0, classify(path, err)
	}

	if stat.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, classify(path, err)
	}

	return f, stat.Mode(), nil
}

func classify(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	if os.IsPermission(err) {
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}
