package cli

import (
	"errors"

	"github.com/yaklabco/goswap/pkg/datatree"
	"github.com/yaklabco/goswap/pkg/fsutil"
	"github.com/yaklabco/goswap/pkg/template"
)

// Exit codes for goswap.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitSwapFailed indicates one or more streams failed
	// (resolution errors, unterminated or oversized directives).
	ExitSwapFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration, template, or data errors
	// detected before any stream processing.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error to the process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSwapFailed):
		return ExitSwapFailed
	case errors.Is(err, template.ErrTooFewTokens),
		errors.Is(err, template.ErrTooManyTokens),
		errors.Is(err, datatree.ErrInvalidNode),
		errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
