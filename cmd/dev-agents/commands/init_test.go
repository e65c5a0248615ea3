package commands

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/errors"
)

func TestInit_All(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := execute(t, "", "init", "--all")
	require.NoError(t, err)

	for _, name := range catalog.CommandNames() {
		assert.FileExists(t, filepath.Join(env.project, ".claude", "commands", name+".md"))
	}
	assert.FileExists(t, filepath.Join(env.project, "agents", "code-review.md"))
	assert.FileExists(t, filepath.Join(env.project, "templates", "pr", "feature.md"))
	assert.FileExists(t, filepath.Join(env.project, ".claude", "settings.json"))
	assert.FileExists(t, filepath.Join(env.project, "CLAUDE.md"))

	info, err := os.Stat(filepath.Join(env.project, "scripts", "create-pr.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	assert.Contains(t, out, "Installed 6 commands")
	assert.Contains(t, out, "Dev Agents installed successfully!")
	assert.Contains(t, out, "/new-project")
	assert.Contains(t, out, "3. Run `dev-agents mcp` to configure API tokens")
}

func TestInit_Minimal(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := execute(t, "", "init", "--minimal")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(env.project, ".claude", "commands"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"commit.md", "pr.md", "review.md"}, names)

	assert.NoDirExists(t, filepath.Join(env.project, "agents"))
	assert.NoFileExists(t, filepath.Join(env.project, ".claude", "settings.json"))
	assert.NotContains(t, out, "dev-agents mcp")
}

func TestInit_AllWinsOverMinimal(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := execute(t, "", "init", "--minimal", "--all")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(env.project, ".claude", "commands", "ticket.md"))
	assert.DirExists(t, filepath.Join(env.project, "scripts"))
}

func TestInit_Interactive(t *testing.T) {
	tests := []struct {
		name         string
		stdin        string
		wantCommands []string
		wantSettings bool
		wantAgents   bool
	}{
		{
			name:         "accept defaults",
			stdin:        "\n\n",
			wantCommands: catalog.CommandNames(),
			wantSettings: true,
		},
		{
			name:         "toggle commands and extras",
			stdin:        "n\n3\n\n1 4\n\n",
			wantCommands: []string{"commit"},
			wantAgents:   true,
		},
		{
			name:         "nothing selected",
			stdin:        "n\n\nn\n\n",
			wantCommands: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, _, err := execute(t, tt.stdin, "init")
			require.NoError(t, err)

			for _, name := range catalog.CommandNames() {
				path := filepath.Join(env.project, ".claude", "commands", name+".md")
				if slices.Contains(tt.wantCommands, name) {
					assert.FileExists(t, path)
				} else {
					assert.NoFileExists(t, path)
				}
			}
			assert.DirExists(t, filepath.Join(env.project, ".claude", "commands"))

			settings := filepath.Join(env.project, ".claude", "settings.json")
			if tt.wantSettings {
				assert.FileExists(t, settings)
			} else {
				assert.NoFileExists(t, settings)
			}
			if tt.wantAgents {
				assert.DirExists(t, filepath.Join(env.project, "agents"))
			} else {
				assert.NoDirExists(t, filepath.Join(env.project, "agents"))
			}
		})
	}
}

func TestInit_InteractiveCancelled(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
	}{
		{"quit at commands", "q\n"},
		{"eof at commands", ""},
		{"quit at extras", "\nq\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, _, err := execute(t, tt.stdin, "init")
			require.NoError(t, err)

			assert.NoDirExists(t, filepath.Join(env.project, ".claude"))
			assert.NoFileExists(t, filepath.Join(env.project, "CLAUDE.md"))
		})
	}
}

func TestInit_Global(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := execute(t, "", "init", "--global", "--all")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(env.global, "commands", "commit.md"))
	assert.FileExists(t, filepath.Join(env.global, "settings.json"))
	assert.FileExists(t, filepath.Join(env.global, "agents", "git.md"))
	assert.NoFileExists(t, filepath.Join(env.global, "CLAUDE.md"))
	assert.NoDirExists(t, filepath.Join(env.global, ".claude"))
	assert.NoDirExists(t, filepath.Join(env.project, ".claude"))
}

func TestInit_GlobalDirFromEnv(t *testing.T) {
	newTestEnv(t)
	dir := filepath.Join(t.TempDir(), "claude-home")
	t.Setenv("DEV_AGENTS_GLOBAL_DIR", dir)

	_, _, err := execute(t, "", "init", "-g", "--minimal")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "commands", "review.md"))
}

func TestInit_KeepsExistingFiles(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.project, ".claude"), 0o755))
	settings := filepath.Join(env.project, ".claude", "settings.json")
	doc := filepath.Join(env.project, "CLAUDE.md")
	require.NoError(t, os.WriteFile(settings, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(doc, []byte("mine"), 0o644))

	_, _, err := execute(t, "", "init", "--all")
	require.NoError(t, err)

	got, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
	got, err = os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(got))
}

func TestInit_TemplatesDirOverride(t *testing.T) {
	env := newTestEnv(t)
	store := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(store, "commands"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(store, "commands", "commit.md"), []byte("custom"), 0o644))
	t.Setenv("DEV_AGENTS_TEMPLATES_DIR", store)

	out, _, err := execute(t, "", "init", "--all")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(env.project, ".claude", "commands", "commit.md"))
	require.NoError(t, err)
	assert.Equal(t, "custom", string(got))
	assert.NoFileExists(t, filepath.Join(env.project, ".claude", "commands", "pr.md"))
	assert.Contains(t, out, "Installed 1 commands")
}

func TestInit_MissingTemplatesDir(t *testing.T) {
	newTestEnv(t)
	t.Setenv("DEV_AGENTS_TEMPLATES_DIR", filepath.Join(t.TempDir(), "missing"))

	_, _, err := execute(t, "", "init", "--all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
}

func TestInit_UnwritableProject(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	env := newTestEnv(t)
	require.NoError(t, os.Chmod(env.project, 0o555))
	t.Cleanup(func() { _ = os.Chmod(env.project, 0o755) })

	out, _, err := execute(t, "", "init", "--all")
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.NotEmpty(t, exitErr.Suggestion)
	assert.Contains(t, out, "Installation failed")
}

func TestInit_RejectsArgs(t *testing.T) {
	newTestEnv(t)

	_, _, err := execute(t, "", "init", "extra")
	require.Error(t, err)
}
