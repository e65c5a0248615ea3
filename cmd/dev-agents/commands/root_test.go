package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/devagents/cmd"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	// Save/Restore original state
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"DEV_AGENTS_DEBUG=1", "1", slog.LevelDebug},
		{"DEV_AGENTS_DEBUG=true", "true", slog.LevelDebug},
		{"DEV_AGENTS_DEBUG=2", "2", logging.LevelTrace},
		{"DEV_AGENTS_DEBUG=0", "0", slog.LevelWarn},
		{"DEV_AGENTS_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("DEV_AGENTS_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel == slog.LevelDebug && logger.Enabled(t.Context(), logging.LevelTrace) {
				t.Error("expected Trace level to be disabled when DEV_AGENTS_DEBUG=1")
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "-q", "-v", "list")
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	env := newTestEnv(t)
	logPath := filepath.Join(t.TempDir(), "dev-agents.log")

	_, _, err := execute(t, "", "--log-file", logPath, "-vv", "add", "commit")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"installed command"`)
	assert.Contains(t, string(data), filepath.Join(env.project, ".claude", "commands", "commit.md"))
}

func TestSetupLogging_LogFormat(t *testing.T) {
	newTestEnv(t)

	_, stderr, err := execute(t, "", "--log-format", "json", "-vv", "add", "review")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"installed command"`)
	assert.Contains(t, stderr, `"command":"review"`)

	_, _, err = execute(t, "", "--log-format", "xml", "list")
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
}

func TestSetupLogging_ContextLogger(t *testing.T) {
	newTestEnv(t)

	_, stderr, err := execute(t, "", "-vv", "add", "review")
	require.NoError(t, err)
	assert.Contains(t, stderr, "installed command")
	assert.Contains(t, stderr, "command=review")
}

func TestConfigError(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "--config", "/non/existent/config.yaml", "list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.NotEmpty(t, exitErr.Suggestion)
}

func TestConfigFile(t *testing.T) {
	env := newTestEnv(t)
	global := filepath.Join(t.TempDir(), "g")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("global_dir: "+global+"\n"), 0o600))

	_, _, err := execute(t, "", "--config", configPath, "global")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(global, "commands", "commit.md"))
	assert.NoDirExists(t, env.global)
}

func TestVersion(t *testing.T) {
	newTestEnv(t)

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)

	info := cmd.BuildInfo()
	assert.Equal(t, "dev-agents version "+info.Version+"\n"+
		"  commit: "+info.Commit+"\n"+
		"  built:  "+info.BuildDate+"\n", out)
}

func TestVersion_IgnoresConfigErrors(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "--config", "/non/existent/config.yaml", "version")
	require.NoError(t, err)
}

func TestExamples(t *testing.T) {
	newTestEnv(t)

	out, _, err := execute(t, "", "examples")
	require.NoError(t, err)

	assert.Contains(t, out, "After running `dev-agents init`, use these in Claude Code:")
	for _, ex := range usageExamples {
		assert.Contains(t, out, ex[0])
		assert.Contains(t, out, ex[1])
	}
	assert.Less(t, strings.Index(out, "/new-project"), strings.Index(out, "/review"))
}

func TestRoot_UnknownSubcommand(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "frobnicate")
	require.Error(t, err)
}

func TestGenDoc(t *testing.T) {
	newTestEnv(t)
	dir := t.TempDir()

	_, _, err := execute(t, "", "gen-doc", "--dir", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dev-agents.md"))
	assert.FileExists(t, filepath.Join(dir, "dev-agents_init.md"))
	data, err := os.ReadFile(filepath.Join(dir, "dev-agents_mcp.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\ntitle: \"dev-agents mcp\""))
}

func TestGenDoc_Man(t *testing.T) {
	newTestEnv(t)
	dir := t.TempDir()

	_, _, err := execute(t, "", "gen-doc", "--dir", dir, "--format", "man")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dev-agents-list.1"))
}
