package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaklabco/goswap/pkg/datatree"
	"github.com/yaklabco/goswap/pkg/fsutil"
	"github.com/yaklabco/goswap/pkg/swap"
	"github.com/yaklabco/goswap/pkg/template"
)

// Runner orchestrates swapping across multiple files. The template and
// data tree are immutable and shared by every worker; each stream gets its
// own scanner.
type Runner struct {
	Template template.Template
	Tree     datatree.Node
}

// New creates a Runner over the given directive template and data tree.
func New(tmpl template.Template, tree datatree.Node) *Runner {
	return &Runner{Template: tmpl, Tree: tree}
}

// Run discovers files under opts.Paths and processes them concurrently,
// writing each output atomically (in place with opts.Write, or under
// opts.OutDir). A file whose stream fails writes nothing; other files are
// unaffected. Results are ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect by path first.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir string,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, workDir, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile streams one file through a fresh scanner into an atomic
// writer, committing only on success.
func (r *Runner) processFile(ctx context.Context, path, workDir string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	in, mode, err := fsutil.Open(path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	defer func() { _ = in.Close() }()

	outPath, err := outputPath(path, workDir, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.OutPath = outPath

	w, err := fsutil.NewAtomicWriter(outPath, mode)
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", outPath, err)
		return outcome
	}
	defer func() { _ = w.Close() }()

	sc := swap.NewScanner(r.Template, r.Tree)

	bytesIn, bytesOut, err := Swap(ctx, in, w, sc, opts.effectiveChunkSize())
	outcome.BytesIn = bytesIn
	outcome.BytesOut = bytesOut
	outcome.Directives = sc.Directives()

	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}

	if err := w.Commit(); err != nil {
		outcome.Error = fmt.Errorf("%s: %w", outPath, err)
	}

	return outcome
}

// outputPath decides where a file's output goes: under OutDir at the
// input's workDir-relative path, or in place.
func outputPath(path, workDir string, opts Options) (string, error) {
	if opts.OutDir == "" {
		return path, nil
	}

	rel, err := filepath.Rel(workDir, path)
	if err != nil || filepath.IsAbs(rel) || rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		// Inputs outside the working directory land flat in OutDir.
		rel = filepath.Base(path)
	}

	outPath := filepath.Join(opts.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	return outPath, nil
}
