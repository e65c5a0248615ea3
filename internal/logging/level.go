package logging

import (
	"context"
	"log/slog"
	"strings"
)

// LevelTrace is more verbose than slog.LevelDebug and is enabled with -vvv.
const LevelTrace = slog.Level(-8)

// LevelFromVerbosity maps the count of -v flags to a log level.
// Zero (or negative) keeps the CLI quiet except for warnings.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// ResolveLevel picks the level of an invocation. quiet wins over
// everything; without -v flags the DebugEnv variable is consulted.
func ResolveLevel(verbosity int, quiet bool, lookup func(string) (string, bool)) slog.Level {
	if quiet {
		return slog.LevelError
	}
	if verbosity == 0 && lookup != nil {
		if val, ok := lookup(DebugEnv); ok {
			switch strings.ToLower(val) {
			case "1", "true":
				verbosity = 2
			case "2":
				verbosity = 3
			}
		}
	}
	return LevelFromVerbosity(verbosity)
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
