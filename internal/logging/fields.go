package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTemplate  = "template"
	FieldData      = "data"
	FieldChunkSize = "chunk_size"
	FieldJobs      = "jobs"
	FieldWrite     = "write"
	FieldOutDir    = "out_dir"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFailed     = "files_failed"
	FieldDirectives      = "directives"
	FieldBytesIn         = "bytes_in"
	FieldBytesOut        = "bytes_out"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
