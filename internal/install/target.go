package install

import (
	"path/filepath"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/paths"
)

// Target is the destination of one invocation. It is resolved once by the
// CLI and every installer operation derives its paths from it.
//
// A project target keeps Claude configuration in <root>/.claude and content
// directories (agents, templates, scripts) plus CLAUDE.md at the root. A
// global target uses the global directory for both.
type Target struct {
	// Root receives agents/, templates/, scripts/ and CLAUDE.md.
	Root string
	// ConfigDir receives commands/ and settings.json.
	ConfigDir string
	// Global is true for the user-scope target.
	Global bool
}

// ProjectTarget returns the target for a project rooted at dir.
func ProjectTarget(dir string) Target {
	return Target{
		Root:      dir,
		ConfigDir: filepath.Join(dir, paths.ClaudeDirName),
	}
}

// GlobalTarget returns the user-scope target rooted at dir (usually ~/.claude).
func GlobalTarget(dir string) Target {
	return Target{
		Root:      dir,
		ConfigDir: dir,
		Global:    true,
	}
}

// CommandsDir is where command templates are installed.
func (t Target) CommandsDir() string {
	return filepath.Join(t.ConfigDir, paths.CommandsDirName)
}

// CommandPath is the installed location of one command.
func (t Target) CommandPath(name string) string {
	return filepath.Join(t.CommandsDir(), name+".md")
}

// SettingsPath is where the MCP settings template is installed.
func (t Target) SettingsPath() string {
	return filepath.Join(t.ConfigDir, paths.SettingsFileName)
}

// CategoryDir is the destination of a copied extra category. Only agents,
// templates and scripts are directory categories.
func (t Target) CategoryDir(e catalog.Extra) string {
	return filepath.Join(t.Root, string(e))
}

// RootDocPath is the project documentation file.
func (t Target) RootDocPath() string {
	return filepath.Join(t.Root, paths.InstructionsFileName)
}
