// Package install copies templates from the Template Store into a Target.
package install

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/logging"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/internal/selection"
	"github.com/thoreinstein/devagents/internal/templates"
)

// Reporter receives progress for each installation step.
type Reporter interface {
	Start(msg string)
	Succeed(msg string)
	Fail(msg string)
}

type nopReporter struct{}

func (nopReporter) Start(string)   {}
func (nopReporter) Succeed(string) {}
func (nopReporter) Fail(string)    {}

// Option configures an Installer.
type Option func(*Installer)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(i *Installer) {
		if r != nil {
			i.reporter = r
		}
	}
}

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l *slog.Logger) Option {
	return func(i *Installer) {
		if l != nil {
			i.logger = l
		}
	}
}

// Installer copies templates from a store into a target.
type Installer struct {
	store    fs.FS
	target   Target
	reporter Reporter
	logger   *slog.Logger
}

// New creates an Installer for target reading from store.
func New(store fs.FS, target Target, opts ...Option) *Installer {
	i := &Installer{
		store:    store,
		target:   target,
		reporter: nopReporter{},
		logger:   logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Target returns the destination of the installer.
func (i *Installer) Target() Target {
	return i.target
}

// Result describes what an installation wrote.
type Result struct {
	// Directories are the directories ensured before copying.
	Directories []string
	// Commands are the commands whose template was copied.
	Commands []string
	// Files counts files copied by category copies.
	Files int
	// Scripts are the script names marked executable.
	Scripts []string
	// Settings is true when settings.json was created.
	Settings bool
	// RootDoc is true when CLAUDE.md was created.
	RootDoc bool
}

// Install runs the full installation for sel. The first filesystem error
// stops the run; files already written stay in place.
func (i *Installer) Install(sel selection.Selection) (*Result, error) {
	res := &Result{}

	err := i.step("Creating directories...", func() (string, error) {
		res.Directories = Directories(i.target, sel)
		return "Directories created", Materialize(res.Directories)
	})
	if err != nil {
		return res, err
	}

	err = i.step("Installing commands...", func() (string, error) {
		installed, err := i.InstallCommands(sel.Commands)
		res.Commands = installed
		return fmt.Sprintf("Installed %d commands", len(installed)), err
	})
	if err != nil {
		return res, err
	}

	for _, e := range directoryExtras {
		if !sel.HasExtra(e) {
			continue
		}
		title := strings.ToUpper(string(e[:1])) + string(e[1:])
		err = i.step(fmt.Sprintf("Installing %s...", e), func() (string, error) {
			n, err := i.InstallCategory(e)
			res.Files += n
			if err != nil || e != catalog.ExtraScripts {
				return title + " installed", err
			}
			res.Scripts, err = markScripts(i.target.CategoryDir(e), templates.ScriptSuffix)
			return title + " installed", err
		})
		if err != nil {
			return res, err
		}
	}

	if sel.HasExtra(catalog.ExtraMCP) {
		err = i.step("Installing MCP config...", func() (string, error) {
			written, err := i.InstallSettings()
			res.Settings = written
			if !written && err == nil {
				return "MCP config kept (settings.json exists)", nil
			}
			return "MCP config installed", err
		})
		if err != nil {
			return res, err
		}
	}

	if !i.target.Global {
		written, err := i.InstallRootDoc()
		if err != nil {
			i.reporter.Fail("Creating " + paths.InstructionsFileName)
			return res, err
		}
		if written {
			res.RootDoc = true
			i.reporter.Succeed("Created " + paths.InstructionsFileName)
		}
	}

	return res, nil
}

// step reports one installation step. fn returns the success message.
func (i *Installer) step(start string, fn func() (string, error)) error {
	i.reporter.Start(start)
	done, err := fn()
	if err != nil {
		i.reporter.Fail(strings.TrimSuffix(start, "..."))
		return err
	}
	i.reporter.Succeed(done)
	return nil
}

// InstallCommands copies <name>.md for every name whose template exists,
// overwriting installed copies. Names without a template are skipped.
// The commands directory must exist.
func (i *Installer) InstallCommands(names []string) ([]string, error) {
	var installed []string
	for _, name := range names {
		src := templates.CommandFile(name)
		ok, err := storeExists(i.store, src)
		if err != nil {
			return installed, err
		}
		if !ok {
			i.logger.Debug("no template for command, skipping", "command", name)
			continue
		}

		dst := i.target.CommandPath(name)
		if err := copyFile(i.store, src, dst); err != nil {
			return installed, errors.Wrapf(err, "installing command %s", name)
		}
		i.logger.Debug("installed command", "command", name, "path", dst)
		installed = append(installed, name)
	}
	return installed, nil
}

// InstallCategory recursively copies one directory extra (agents,
// templates or scripts) into the target. It returns the number of files copied.
func (i *Installer) InstallCategory(e catalog.Extra) (int, error) {
	dst := i.target.CategoryDir(e)
	n, err := copyTree(i.store, string(e), dst)
	if err != nil {
		return n, errors.Wrapf(err, "installing %s", e)
	}
	i.logger.Debug("installed category", "category", string(e), "files", n, "path", dst)
	return n, nil
}

// InstallSettings copies the MCP settings template unless settings.json
// already exists in the target. It reports whether the file was written.
func (i *Installer) InstallSettings() (bool, error) {
	if err := paths.EnsureDir(i.target.ConfigDir, paths.DefaultDirPerm); err != nil {
		return false, err
	}
	written, err := copyFileIfAbsent(i.store, templates.SettingsFile, i.target.SettingsPath())
	if err != nil {
		return false, errors.Wrap(err, "installing MCP settings")
	}
	i.logger.Debug("settings", "path", i.target.SettingsPath(), "written", written)
	return written, nil
}

// InstallRootDoc copies CLAUDE.md into a project target when it is missing.
// Global targets never receive one.
func (i *Installer) InstallRootDoc() (bool, error) {
	if i.target.Global {
		return false, nil
	}
	written, err := copyFileIfAbsent(i.store, templates.RootDocFile, i.target.RootDocPath())
	if err != nil {
		return false, errors.Wrap(err, "installing "+paths.InstructionsFileName)
	}
	return written, nil
}

// AddCommand installs a single catalog command. Unknown names return
// ErrUnknownCommand before anything is written; a catalog command without
// a template returns ErrTemplateNotFound.
func (i *Installer) AddCommand(name string) error {
	if _, ok := catalog.LookupCommand(name); !ok {
		return errors.Wrapf(errors.ErrUnknownCommand, "%s", name)
	}

	if err := paths.EnsureDir(i.target.CommandsDir(), paths.DefaultDirPerm); err != nil {
		return err
	}

	installed, err := i.InstallCommands([]string{name})
	if err != nil {
		return err
	}
	if len(installed) == 0 {
		return errors.Wrapf(errors.ErrTemplateNotFound, "%s", name)
	}
	return nil
}

// InstallGlobal copies every command template in the store, whether or not
// it is in the catalog, plus the MCP settings when absent.
func (i *Installer) InstallGlobal() (*Result, error) {
	res := &Result{Directories: []string{i.target.CommandsDir()}}

	if err := Materialize(res.Directories); err != nil {
		return res, err
	}

	entries, err := fs.ReadDir(i.store, templates.CommandsDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return res, errors.Wrap(err, "reading command templates")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := path.Join(templates.CommandsDir, entry.Name())
		dst := filepath.Join(i.target.CommandsDir(), entry.Name())
		if err := copyFile(i.store, src, dst); err != nil {
			return res, err
		}
		res.Commands = append(res.Commands, strings.TrimSuffix(entry.Name(), ".md"))
	}

	written, err := i.InstallSettings()
	res.Settings = written
	return res, err
}
