package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswap/internal/logging"
	"github.com/yaklabco/goswap/pkg/config"
	"github.com/yaklabco/goswap/pkg/fsutil"
)

// defaultConfigFile is the file written by `goswap init`.
const defaultConfigFile = ".goswap.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new goswap configuration file",
		Long: `Create a new .goswap.yml configuration file in the current directory
with commented defaults: the directive template, the swap data file path,
chunk size, and discovery options.

Examples:
  goswap init                  Create .goswap.yml
  goswap init -o custom.yml    Write to a custom file path
  goswap init --force          Overwrite an existing file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .goswap.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	path := flags.output
	if path == "" {
		path = defaultConfigFile
	}

	if !flags.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s already exists (use --force to overwrite)", ErrUsage, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := fsutil.WriteAtomic(path, config.StarterYAML(), 0); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	return nil
}
