package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/goswap/pkg/config"
)

// envVarPrefix is the prefix for all goswap environment variables.
const envVarPrefix = "GOSWAP_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with GOSWAP_ (e.g., GOSWAP_TEMPLATE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "TEMPLATE"); v != "" {
		cfg.Template = v
	}
	if v := os.Getenv(envVarPrefix + "DATA"); v != "" {
		cfg.Data = v
	}
	if v := os.Getenv(envVarPrefix + "CHUNK_SIZE"); v != "" {
		n, err := parseEnvInt(envVarPrefix+"CHUNK_SIZE", v)
		if err != nil {
			return err
		}
		cfg.ChunkSize = n
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		n, err := parseEnvInt(envVarPrefix+"JOBS", v)
		if err != nil {
			return err
		}
		cfg.Jobs = n
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = splitEnvList(v)
	}

	return nil
}

func parseEnvInt(envVar, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid integer in %s=%q: %w", envVar, value, err)
	}
	return n, nil
}

// splitEnvList splits a comma-separated environment value, trimming
// whitespace and dropping empty entries.
func splitEnvList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
