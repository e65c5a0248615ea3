package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/thoreinstein/devagents/internal/errors"
)

// DebugEnv raises the level when no -v flag is given: "1" or "true" is
// debug, "2" is trace.
const DebugEnv = "DEV_AGENTS_DEBUG"

// Format is the --log-format value.
type Format string

const (
	// FormatText is the colour TTY handler.
	FormatText Format = "text"
	// FormatJSON is slog's JSON handler.
	FormatJSON Format = "json"
)

// ParseFormat validates a --log-format value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf("unknown log format %q", s)
	}
}

// Options describes the logger of one invocation.
type Options struct {
	Level  slog.Level
	Format Format
	// Output receives the primary stream. Nil means os.Stderr.
	Output io.Writer
	// File, when set, additionally receives every record as JSON.
	File io.Writer
}

// New builds the logger for opts.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}

	var h slog.Handler
	if opts.Format == FormatJSON {
		h = slog.NewJSONHandler(out, hopts)
	} else {
		h = NewHandler(out, hopts)
	}
	if opts.File != nil {
		h = fanOut{h, slog.NewJSONHandler(opts.File, hopts)}
	}
	return slog.New(h)
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
