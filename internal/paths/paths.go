package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the config directory under the XDG config home.
const AppName = "dev-agents"

// Fixed names inside a target.
const (
	// ClaudeDirName is the per-project configuration directory.
	ClaudeDirName = ".claude"
	// CommandsDirName holds slash-command markdown files.
	CommandsDirName = "commands"
	// SettingsFileName is the Claude settings file written from the MCP template.
	SettingsFileName = "settings.json"
	// InstructionsFileName is the root documentation file of a project.
	InstructionsFileName = "CLAUDE.md"
	// CredentialsFileName is the shell-sourceable credentials file in $HOME.
	CredentialsFileName = ".dev-agents-env"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the permission for directories created in a target.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating directory %s", path)
}

// ResolveHome returns the user's home directory, honouring $HOME.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving $HOME")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/dev-agents.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultGlobalDir returns ~/.claude, the user-scope install directory.
func DefaultGlobalDir() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ClaudeDirName), nil
}

// DefaultCredentialsPath returns ~/.dev-agents-env.
func DefaultCredentialsPath() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, CredentialsFileName), nil
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned so callers never mistake a permission problem for absence.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, errors.Wrapf(err, "checking %s", path)
	}
}
