// Package templates provides the Template Store: the read-only tree of files
// that dev-agents installs into projects.
//
// The default store is embedded in the binary. A directory on disk can be
// used instead (config key templates_dir), which is how template authors
// try out changes without rebuilding.
package templates

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/thoreinstein/devagents/internal/errors"
)

//go:embed store
var embedded embed.FS

// Layout of a store.
const (
	CommandsDir  = "commands"
	AgentsDir    = "agents"
	TemplatesDir = "templates"
	ScriptsDir   = "scripts"
	SettingsFile = "mcp-settings.json"
	RootDocFile  = "CLAUDE.md"
	// ScriptSuffix marks files made executable after the scripts copy.
	ScriptSuffix = ".sh"
)

// Embedded returns the store compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "store")
	if err != nil {
		// fs.Sub only fails for an invalid path literal.
		panic(err)
	}
	return sub
}

// Open returns the store rooted at dir, or the embedded store when dir is
// empty.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "opening template store %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf("template store %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// CommandFile returns the store path of the template for a command.
func CommandFile(name string) string {
	return path.Join(CommandsDir, name+".md")
}
