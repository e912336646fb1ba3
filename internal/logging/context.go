package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is the private key type for loggers carried in a context.
type ctxKey struct{}

// WithLogger returns a child context carrying logger. The run command
// attaches its configured logger once; downstream helpers recover it with
// FromContext instead of taking a *log.Logger parameter.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, falling back to the
// package default when none was attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
