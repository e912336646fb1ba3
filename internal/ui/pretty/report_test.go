package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goswap/internal/ui/pretty"
	"github.com/yaklabco/goswap/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	got := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed: 3,
		Directives:     14,
		BytesIn:        1200,
		BytesOut:       1300,
	})

	assert.Contains(t, got, "14 directives swapped")
	assert.Contains(t, got, "in 3 files")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestFormatSummaryOneLine_SingularAndFailures(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	got := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed: 1,
		FilesFailed:    1,
		Directives:     2,
	})

	assert.Contains(t, got, "in 1 file ")
	assert.Contains(t, got, "1 file failed")
}

func TestFormatFailures(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "ok.txt"},
			{Path: "bad.txt", Error: errors.New("unknown key")},
		},
	}
	result.Stats.FilesFailed = 1

	got := styles.FormatFailures(result, 0)
	assert.Contains(t, got, "bad.txt")
	assert.Contains(t, got, "unknown key")
	assert.NotContains(t, got, "ok.txt")
}

func TestFormatFailures_TruncatesToWidth(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "bad.txt", Error: errors.New(strings.Repeat("long message ", 20))},
		},
	}
	result.Stats.FilesFailed = 1

	got := styles.FormatFailures(result, 60)
	line := strings.TrimSuffix(got, "\n")
	assert.LessOrEqual(t, len(line), 60)
	assert.Contains(t, line, "...")
}

func TestFormatFailures_Empty(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatFailures(nil, 0))
	assert.Empty(t, styles.FormatFailures(&runner.Result{}, 0))
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, pretty.IsColorEnabled("always", nil))
	assert.False(t, pretty.IsColorEnabled("never", nil))
	// Non-file writer in auto mode is never a TTY.
	assert.False(t, pretty.IsColorEnabled("auto", &strings.Builder{}))
}
