package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/devagents/internal/errors"
)

func TestResolveHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveHome()
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestResolveHome_Unset(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := ResolveHome()
	if err == nil {
		// Some platforms fall back to other variables; only assert the sentinel on failure.
		t.Skip("home directory resolved without $HOME on this platform")
	}
	assert.True(t, errors.Is(err, ErrHomeDirNotFound))
}

func TestDefaultGlobalDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DefaultGlobalDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude"), got)
}

func TestDefaultCredentialsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DefaultCredentialsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".dev-agents-env"), got)
}

func TestConfigDir(t *testing.T) {
	got := ConfigDir()
	assert.True(t, filepath.IsAbs(got), "ConfigDir() = %q, want absolute path", got)
	assert.Equal(t, AppName, filepath.Base(got))
}

func TestEnsureDir(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "a", "b", "c")

		require.NoError(t, EnsureDir(target, 0))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("idempotent", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "exists")
		require.NoError(t, EnsureDir(target, 0o755))
		require.NoError(t, EnsureDir(target, 0o755))
	})

	t.Run("fails under a regular file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := EnsureDir(filepath.Join(file, "sub"), 0)
		assert.Error(t, err)
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	ok, err := Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.False(t, ok)
}
