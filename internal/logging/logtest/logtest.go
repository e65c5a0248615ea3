// Package logtest provides loggers for tests.
package logtest

import (
	"log/slog"
	"testing"

	"github.com/thoreinstein/devagents/internal/logging"
)

// New returns a trace-level logger writing to t's output, so log lines show
// up next to the failing test (or always with -v).
func New(t *testing.T) *slog.Logger {
	t.Helper()
	return logging.New(logging.Options{
		Level:  logging.LevelTrace,
		Format: logging.FormatText,
		Output: t.Output(),
	})
}
