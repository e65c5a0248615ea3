package install

import (
	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/internal/selection"
)

// directoryExtras are the extras that are copied as directory trees.
var directoryExtras = []catalog.Extra{
	catalog.ExtraAgents,
	catalog.ExtraTemplates,
	catalog.ExtraScripts,
}

// Directories lists the directories a selection needs in target: always the
// commands directory, then one directory per selected directory extra.
func Directories(t Target, sel selection.Selection) []string {
	dirs := []string{t.CommandsDir()}
	for _, e := range directoryExtras {
		if sel.HasExtra(e) {
			dirs = append(dirs, t.CategoryDir(e))
		}
	}
	return dirs
}

// Materialize creates every directory in dirs with missing parents.
// Existing directories are left alone, so running it twice is harmless.
func Materialize(dirs []string) error {
	for _, dir := range dirs {
		if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
			return err
		}
	}
	return nil
}
