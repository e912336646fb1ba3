package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goswap/pkg/config"
)

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Template = ">>< / <<>"
	cfg.Data = "data.json"
	cfg.ChunkSize = 4096
	cfg.Ignore = []string{"*.bak"}
	cfg.Jobs = 2

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Template, parsed.Template)
	assert.Equal(t, cfg.Data, parsed.Data)
	assert.Equal(t, cfg.ChunkSize, parsed.ChunkSize)
	assert.Equal(t, cfg.Extensions, parsed.Extensions)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
	assert.Equal(t, cfg.Jobs, parsed.Jobs)
}

func TestFromYAML_CLIFieldsNotPersisted(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Write = true
	cfg.OutDir = "out"

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.False(t, parsed.Write)
	assert.Empty(t, parsed.OutDir)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("template: [unclosed"))
	require.Error(t, err)
}

func TestStarterYAML_Parses(t *testing.T) {
	t.Parallel()

	parsed, err := config.FromYAML(config.StarterYAML())
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTemplate, parsed.Template)
	assert.Equal(t, "swapdata.yaml", parsed.Data)
	assert.Equal(t, config.DefaultExtensions(), parsed.Extensions)

	// Comments must survive the YAML parser.
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(config.StarterYAML(), &doc))
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"a"}

	clone := cfg.Clone()
	clone.Ignore[0] = "b"
	clone.Extensions[0] = ".other"

	assert.Equal(t, "a", cfg.Ignore[0])
	assert.Equal(t, config.DefaultExtensions()[0], cfg.Extensions[0])
}

func TestClone_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	assert.Nil(t, cfg.Clone())
}
