// Package config defines core configuration types for goswap.
// These types are pure data structures with no dependency on any loader.
package config

// DefaultChunkSize is the number of bytes read from an input stream per
// scanner chunk when no size is configured.
const DefaultChunkSize = 32 * 1024

// DefaultTemplate is the directive template used when none is configured.
const DefaultTemplate = "<! . !>"

// Config is the root configuration structure for goswap.
type Config struct {
	// Template is the raw directive template: three whitespace-separated
	// tokens "<start> <separator> <end>".
	Template string `yaml:"template"`

	// Data is the path to the swap data file (YAML or JSON).
	Data string `yaml:"data"`

	// ChunkSize is the input read size in bytes. 0 means DefaultChunkSize.
	ChunkSize int `yaml:"chunk_size"`

	// Extensions are the file extensions expanded when an input path is a
	// directory.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel workers (0 = number of CPUs).
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Write replaces each input file with its swapped output.
	Write bool `yaml:"-"`

	// OutDir writes each output next to its input's relative path under
	// this directory instead of stdout or in place.
	OutDir string `yaml:"-"`
}

// NewConfig returns a configuration populated with defaults.
func NewConfig() *Config {
	return &Config{
		Template:   DefaultTemplate,
		ChunkSize:  DefaultChunkSize,
		Extensions: DefaultExtensions(),
	}
}

// DefaultExtensions returns the extensions used for directory expansion.
func DefaultExtensions() []string {
	return []string{".txt", ".tmpl"}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Extensions != nil {
		clone.Extensions = make([]string, len(c.Extensions))
		copy(clone.Extensions, c.Extensions)
	}
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	return &clone
}
