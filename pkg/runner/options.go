// Package runner provides multi-file swap orchestration: it discovers
// input files, streams each one through its own scanner, and writes the
// transformed output durably.
package runner

import "github.com/yaklabco/goswap/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) expanded when a path is a directory.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// ChunkSize is the input read size in bytes per scanner chunk.
	// 0 means config.DefaultChunkSize.
	ChunkSize int

	// Write replaces each input file with its output.
	Write bool

	// OutDir, when set, receives each output at the input's path relative
	// to WorkingDir. Takes precedence over Write.
	OutDir string
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveChunkSize returns the chunk size to use, defaulting if unset.
func (o Options) effectiveChunkSize() int {
	if o.ChunkSize <= 0 {
		return config.DefaultChunkSize
	}
	return o.ChunkSize
}
