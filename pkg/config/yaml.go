package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Fields absent from the
// document keep their zero values; defaults are the loader's concern.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}

// StarterYAML renders the starter configuration written by `goswap init`.
func StarterYAML() []byte {
	return []byte(`# goswap configuration.
# template: the directive syntax, three whitespace-separated tokens:
#   <start> <separator> <end>
template: "` + DefaultTemplate + `"

# data: path to the swap data file (YAML or JSON). Every value must be a
# string or a nested mapping of strings.
data: swapdata.yaml

# chunk_size: input read size in bytes (0 = default).
chunk_size: 0

# extensions: expanded when an input path is a directory.
extensions:
  - .txt
  - .tmpl

# ignore: glob patterns skipped during discovery.
ignore: []

# jobs: parallel workers (0 = number of CPUs).
jobs: 0
`)
}
