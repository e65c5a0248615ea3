package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/devagents/internal/errors"
)

func TestDoctor_AfterInit(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "init", "--all")
	require.NoError(t, err)

	out, _, err := execute(t, "", "doctor")
	require.NoError(t, err)

	assert.Contains(t, out, "commands: all 6 commands installed")
	assert.Contains(t, out, "settings: 3 MCP server(s) configured")
	assert.Contains(t, out, "scripts: 3 script(s) executable")
	assert.Contains(t, out, "credentials: no credentials file")
}

func TestDoctor_EmptyProject(t *testing.T) {
	newTestEnv(t)

	out, _, err := execute(t, "", "doctor")
	require.NoError(t, err, "warnings do not fail the run")
	assert.Contains(t, out, "no commands directory")
	assert.Contains(t, out, "Run `dev-agents init`")
}

func TestDoctor_FixCredentials(t *testing.T) {
	env := newTestEnv(t)
	creds := filepath.Join(env.home, ".dev-agents-env")
	require.NoError(t, os.WriteFile(creds, []byte("x"), 0o644))
	require.NoError(t, os.Chmod(creds, 0o644))

	_, _, err := execute(t, "", "doctor")
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))

	out, _, err := execute(t, "", "doctor", "--fix")
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed "+creds)

	info, err := os.Stat(creds)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDoctor_JSON(t *testing.T) {
	newTestEnv(t)

	out, _, err := execute(t, "", "doctor", "--json")
	require.NoError(t, err)

	var got struct {
		Results []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"results"`
		Summary struct {
			Warnings int `json:"warnings"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Results, 4)
	assert.Equal(t, "commands", got.Results[0].Name)
	assert.Equal(t, "warning", got.Results[0].Status)
	assert.Equal(t, 1, got.Summary.Warnings)
}

func TestDoctor_Global(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "global")
	require.NoError(t, err)

	out, _, err := execute(t, "", "doctor", "-g")
	require.NoError(t, err)
	assert.Contains(t, out, "commands: all 6 commands installed")
}
