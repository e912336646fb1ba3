package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goswap/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "14 directives swapped in 3 files (1.2 kB in, 1.3 kB out)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	msg := s.Success.Render(fmt.Sprintf("%d directives swapped", stats.Directives)) +
		fmt.Sprintf(" in %d %s ", stats.FilesProcessed, fileWord) +
		s.Dim.Render(fmt.Sprintf("(%s in, %s out)", formatBytes(stats.BytesIn), formatBytes(stats.BytesOut)))

	if stats.FilesFailed > 0 {
		failWord := wordFiles
		if stats.FilesFailed == 1 {
			failWord = wordFile
		}
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesFailed, failWord))
	}

	return msg + "\n"
}

// FormatFailures renders one line per failed file, or the empty string
// when every file succeeded. Messages longer than width are truncated;
// width <= 0 disables truncation.
func (s *Styles) FormatFailures(result *runner.Result, width int) string {
	if result == nil || !result.HasFailures() {
		return ""
	}

	var b strings.Builder
	for _, outcome := range result.Files {
		if outcome.Error == nil {
			continue
		}
		prefix := "error " + outcome.Path + ": "
		msg := outcome.Error.Error()
		if width > 0 {
			msg = truncate(msg, width-len(prefix))
		}
		b.WriteString(s.Error.Render("error"))
		b.WriteString(" ")
		b.WriteString(s.FilePath.Render(outcome.Path))
		b.WriteString(": ")
		b.WriteString(s.Message.Render(msg))
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens s to max bytes, appending an ellipsis. Very small
// budgets keep at least a few characters so the line stays readable.
func truncate(s string, max int) string {
	const minBudget = 16
	if max < minBudget {
		max = minBudget
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatBytes renders a byte count in a compact human form.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
