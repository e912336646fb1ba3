// Package configloader provides configuration loading and resolution:
// XDG-compliant discovery, an upward project-config search, environment
// variable overrides, and hierarchical merging.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/goswap/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project/user config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOSWAP_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goswap.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/goswap/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	if opts.ExplicitPath != "" {
		loaded, err := loadFile(opts.ExplicitPath)
		if err != nil {
			return nil, err
		}
		cfg = merge(cfg, loaded)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else {
		paths, err := DiscoverPaths(ctx, workDir)
		if err != nil {
			return nil, err
		}

		// Lowest-precedence file first so later merges win.
		for _, path := range []string{paths.User, paths.Project} {
			if path == "" {
				continue
			}
			loaded, err := loadFile(path)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("skipping config %s: %v", path, err))
				continue
			}
			cfg = merge(cfg, loaded)
			result.LoadedFrom = append(result.LoadedFrom, path)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	cfg = merge(cfg, opts.CLIConfig)

	result.Config = cfg
	return result, nil
}

// loadFile reads and parses one YAML config file.
func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// merge combines two configurations, with override taking precedence.
// Scalars overwrite when non-zero; slices replace entirely when non-nil;
// unset values in override never clobber base.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Template != "" {
		result.Template = override.Template
	}
	if override.Data != "" {
		result.Data = override.Data
	}
	if override.ChunkSize != 0 {
		result.ChunkSize = override.ChunkSize
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	// Booleans: false is the zero value, so CLI true overrides but a
	// config file cannot unset a flag.
	if override.Write {
		result.Write = true
	}
	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}

	return &result
}
