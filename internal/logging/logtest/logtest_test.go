package logtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/devagents/internal/logging"
)

func TestNew(t *testing.T) {
	logger := New(t)

	assert.True(t, logger.Enabled(context.Background(), logging.LevelTrace))
	logger.Debug("copied", "command", "commit")
}
