package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriter streams output into a temporary file next to the target and
// publishes it with a rename on Commit, so the target either keeps its old
// content or gains the complete new content. It never holds the whole
// stream in memory.
//
// The write pattern:
//  1. Create a temp file in the same directory as the target.
//  2. Stream content to it via Write.
//  3. On Commit: sync, set the file mode, rename over the target
//     (atomic on POSIX).
//  4. On Close without Commit: remove the temp file, leaving the target
//     untouched.
type AtomicWriter struct {
	tmp       *os.File
	tmpPath   string
	path      string
	mode      os.FileMode
	committed bool
}

// NewAtomicWriter prepares an atomic write to path. If mode is 0,
// DefaultFileMode is used.
func NewAtomicWriter(path string, mode os.FileMode) (*AtomicWriter, error) {
	if mode == 0 {
		mode = DefaultFileMode
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// Same directory as the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &AtomicWriter{
		tmp:     tmp,
		tmpPath: tmp.Name(),
		path:    path,
		mode:    mode,
	}, nil
}

// Write streams content into the temp file.
func (w *AtomicWriter) Write(p []byte) (int, error) {
	n, err := w.tmp.Write(p)
	if err != nil {
		return n, fmt.Errorf("write temp file: %w", err)
	}
	return n, nil
}

// Commit makes the written content durable and renames it over the target.
func (w *AtomicWriter) Commit() error {
	if err := w.tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := w.tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(w.tmpPath, w.mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	w.committed = true
	return nil
}

// Close discards the temp file when Commit was not reached. Safe to defer
// unconditionally; after a successful Commit it is a no-op.
func (w *AtomicWriter) Close() error {
	if w.committed {
		return nil
	}
	_ = w.tmp.Close()
	_ = os.Remove(w.tmpPath)
	return nil
}

// WriteAtomic writes content to path atomically in one call.
func WriteAtomic(path string, content []byte, mode os.FileMode) error {
	w, err := NewAtomicWriter(path, mode)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if _, err := w.Write(content); err != nil {
		return err
	}

	return w.Commit()
}
