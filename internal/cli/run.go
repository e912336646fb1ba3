package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswap/internal/configloader"
	"github.com/yaklabco/goswap/internal/logging"
	"github.com/yaklabco/goswap/internal/ui/pretty"
	"github.com/yaklabco/goswap/pkg/config"
	"github.com/yaklabco/goswap/pkg/datatree"
	"github.com/yaklabco/goswap/pkg/fsutil"
	"github.com/yaklabco/goswap/pkg/runner"
	"github.com/yaklabco/goswap/pkg/swap"
	"github.com/yaklabco/goswap/pkg/template"
)

// Sentinel errors for exit-code mapping.
var (
	// ErrSwapFailed is returned when one or more streams failed.
	ErrSwapFailed = errors.New("swap failed")

	// ErrUsage is returned for invalid flag/argument combinations.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig is returned for configuration problems detected before
	// any stream processing.
	ErrConfig = errors.New("configuration error")
)

type runFlags struct {
	template  string
	data      string
	chunkSize int
	outDir    string
	write     bool
	jobs      int
	ignore    []string
	ext       []string
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Swap directives in text streams",
		Long:  runLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, flags)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

const runLongDescription = `Swap directives in text streams.

Reads stdin when no paths are given (or when the sole path is "-").
A single file without --write or
--out-dir goes to stdout; multiple files or directories require one of
the two. Directories are expanded using the configured extensions.

Examples:
  goswap run < page.in > page.out          # stdin to stdout
  goswap run -d data.yaml page.txt         # single file to stdout
  goswap run -d data.yaml --write src/     # rewrite files in place
  goswap run -d data.yaml -o out/ src/     # mirror outputs under out/
  goswap run -t ">>< . <<>" page.txt       # custom directive tokens`

func runRun(cmd *cobra.Command, args []string, flags *runFlags) error {
	logger := logging.Default()

	// Map flags to typed config values. Only values explicitly provided
	// on the CLI may override lower-precedence sources.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("template") {
		cliCfg.Template = flags.template
	}
	if cmd.Flags().Changed("data") {
		cliCfg.Data = flags.data
	}
	if cmd.Flags().Changed("chunk-size") {
		cliCfg.ChunkSize = flags.chunkSize
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	cliCfg.Ignore = flags.ignore
	cliCfg.Extensions = flags.ext
	cliCfg.Write = flags.write
	cliCfg.OutDir = flags.outDir

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldTemplate, finalCfg.Template,
		logging.FieldData, finalCfg.Data,
		logging.FieldChunkSize, finalCfg.ChunkSize,
		logging.FieldJobs, finalCfg.Jobs,
	)

	tmpl, err := template.Parse(finalCfg.Template)
	if err != nil {
		return err
	}

	if finalCfg.Data == "" {
		return fmt.Errorf("%w: no swap data file; set --data or the config's data field", ErrConfig)
	}
	tree, err := datatree.DecodeFile(finalCfg.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	// Stream modes: stdin or a single file to stdout.
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return swapStream(ctx, cmd, tmpl, tree, cmd.InOrStdin(), finalCfg)
	}
	for _, arg := range args {
		if arg == "-" {
			return fmt.Errorf("%w: %q cannot be combined with file paths", ErrUsage, "-")
		}
	}
	if !finalCfg.Write && finalCfg.OutDir == "" {
		if len(args) > 1 {
			return fmt.Errorf("%w: multiple inputs need --write or --out-dir", ErrUsage)
		}
		in, _, err := fsutil.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = in.Close() }()
		return swapStream(ctx, cmd, tmpl, tree, in, finalCfg)
	}

	// Batch mode over discovered files.
	swapRunner := runner.New(tmpl, tree)
	opts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		ChunkSize:    finalCfg.ChunkSize,
		Write:        finalCfg.Write,
		OutDir:       finalCfg.OutDir,
	}

	logger.Debug("starting run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := swapRunner.Run(ctx, opts)
	if err != nil {
		return errors.Join(errors.New("run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	width := pretty.TerminalWidth(cmd.ErrOrStderr())
	if failures := styles.FormatFailures(result, width); failures != "" {
		fmt.Fprint(cmd.ErrOrStderr(), failures)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))

	if result.HasFailures() {
		return fmt.Errorf("%w: %d of %d files", ErrSwapFailed, result.Stats.FilesFailed, result.Stats.FilesDiscovered)
	}

	return nil
}

// swapStream pipes one reader through a fresh scanner to stdout.
func swapStream(
	ctx context.Context,
	cmd *cobra.Command,
	tmpl template.Template,
	tree datatree.Node,
	in io.Reader,
	cfg *config.Config,
) error {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = config.DefaultChunkSize
	}

	sc := swap.NewScanner(tmpl, tree)
	bytesIn, bytesOut, err := runner.Swap(ctx, in, cmd.OutOrStdout(), sc, chunkSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSwapFailed, err)
	}

	logging.FromContext(ctx).Debug("stream complete",
		logging.FieldBytesIn, bytesIn,
		logging.FieldBytesOut, bytesOut,
		logging.FieldDirectives, sc.Directives(),
	)

	return nil
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVarP(&flags.template, "template", "t", config.DefaultTemplate,
		"directive template: \"<start> <separator> <end>\"")
	cmd.Flags().StringVarP(&flags.data, "data", "d", "", "path to swap data file (YAML or JSON)")
	cmd.Flags().IntVar(&flags.chunkSize, "chunk-size", config.DefaultChunkSize, "input read size in bytes")
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "write outputs under this directory")
	cmd.Flags().BoolVar(&flags.write, "write", false, "rewrite input files in place")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.ext, "ext", nil, "extensions expanded for directory inputs")
}
