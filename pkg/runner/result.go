package runner

// FileOutcome records the result of swapping a single file.
type FileOutcome struct {
	// Path is the input file path.
	Path string

	// OutPath is where the output was written.
	OutPath string

	// BytesIn is the number of input bytes consumed.
	BytesIn int64

	// BytesOut is the number of output bytes produced.
	BytesOut int64

	// Directives is the number of directives resolved in this file.
	Directives int

	// Error is set if the stream failed; no output file was written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesFailed is the number of files whose stream failed.
	FilesFailed int

	// Directives is the total number of directives resolved across files.
	Directives int

	// BytesIn and BytesOut total the stream sizes across files.
	BytesIn  int64
	BytesOut int64
}

// Result is the overall runner result. Files are ordered deterministically
// (by path) regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Directives += outcome.Directives
	r.Stats.BytesIn += outcome.BytesIn
	r.Stats.BytesOut += outcome.BytesOut
}
