package doctor

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/install"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/internal/templates"
)

// CommandsCheck reports which catalog commands are installed in a target.
type CommandsCheck struct {
	target install.Target
}

var _ Check = (*CommandsCheck)(nil)

// NewCommandsCheck creates a commands check for target.
func NewCommandsCheck(target install.Target) *CommandsCheck {
	return &CommandsCheck{target: target}
}

// Name returns the unique identifier for this check.
func (c *CommandsCheck) Name() string {
	return "commands"
}

// Category returns the grouping for this check.
func (c *CommandsCheck) Category() string {
	return "install"
}

// Run executes the check.
func (c *CommandsCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}
	dir := c.target.CommandsDir()

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityWarning
		result.Message = "no commands directory at " + dir
		result.FixHint = "Run `dev-agents init`"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read %s: %v", dir, err)
		return result
	case !info.IsDir():
		result.Status = SeverityError
		result.Message = dir + " is not a directory"
		return result
	}

	var installed, missing []string
	for _, name := range catalog.CommandNames() {
		ok, err := paths.Exists(c.target.CommandPath(name))
		switch {
		case err != nil:
			result.Status = SeverityError
			result.Message = err.Error()
			return result
		case ok:
			installed = append(installed, name)
		default:
			missing = append(missing, name)
		}
	}

	result.Details = map[string]any{
		"directory": dir,
		"installed": installed,
	}
	if len(missing) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d commands installed", len(installed))
		return result
	}

	result.Status = SeverityInfo
	result.Message = fmt.Sprintf("%d of %d commands installed", len(installed), len(installed)+len(missing))
	result.Details["missing"] = missing
	result.FixHint = "Run `dev-agents add <command>` to add one"
	return result
}

// SettingsCheck validates that the installed settings.json parses and
// declares MCP servers.
type SettingsCheck struct {
	target install.Target
}

var _ Check = (*SettingsCheck)(nil)

// NewSettingsCheck creates a settings check for target.
func NewSettingsCheck(target install.Target) *SettingsCheck {
	return &SettingsCheck{target: target}
}

// Name returns the unique identifier for this check.
func (c *SettingsCheck) Name() string {
	return "settings"
}

// Category returns the grouping for this check.
func (c *SettingsCheck) Category() string {
	return "install"
}

// Run executes the check.
func (c *SettingsCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}
	path := c.target.SettingsPath()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityInfo
		result.Message = "no settings.json; MCP servers not configured"
		result.FixHint = "Run `dev-agents init` and select MCP config"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read %s: %v", path, err)
		return result
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		result.Status = SeverityError
		result.Message = formatJSONError(err, data)
		result.Details = map[string]any{"path": path}
		return result
	}

	servers, ok := settings["mcpServers"].(map[string]any)
	if !ok {
		result.Status = SeverityWarning
		result.Message = "settings.json has no mcpServers section"
		result.Details = map[string]any{"path": path}
		return result
	}

	names := slices.Sorted(maps.Keys(servers))
	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d MCP server(s) configured", len(servers))
	result.Details = map[string]any{"path": path, "servers": names}
	return result
}

// ScriptsCheck verifies that installed top-level shell scripts are executable.
type ScriptsCheck struct {
	permissionFixer
	target install.Target
}

var (
	_ Check = (*ScriptsCheck)(nil)
	_ Fixer = (*ScriptsCheck)(nil)
)

// NewScriptsCheck creates a scripts check for target.
func NewScriptsCheck(target install.Target) *ScriptsCheck {
	return &ScriptsCheck{target: target}
}

// Name returns the unique identifier for this check.
func (c *ScriptsCheck) Name() string {
	return "scripts"
}

// Category returns the grouping for this check.
func (c *ScriptsCheck) Category() string {
	return "install"
}

// Run executes the check.
func (c *ScriptsCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}
	dir := c.target.CategoryDir(catalog.ExtraScripts)

	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityPass
		result.Message = "no scripts installed"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read %s: %v", dir, err)
		return result
	}

	var issues []modeIssue
	checked := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templates.ScriptSuffix) {
			continue
		}
		checked++
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0o100 == 0 {
			issues = append(issues, modeIssue{
				Path: filepath.Join(dir, entry.Name()),
				Have: info.Mode().Perm(),
				Want: info.Mode().Perm() | 0o755,
			})
		}
	}
	c.setIssues(issues)

	if len(issues) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d script(s) executable", checked)
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d of %d script(s) not executable", len(issues), checked)
	result.Details = map[string]any{"paths": issuePaths(issues)}
	result.Fixable = true
	result.FixHint = "Run `dev-agents doctor --fix`"
	return result
}

// CredentialsCheck verifies the credentials file is private to its owner.
type CredentialsCheck struct {
	permissionFixer
	path string
}

var (
	_ Check = (*CredentialsCheck)(nil)
	_ Fixer = (*CredentialsCheck)(nil)
)

// NewCredentialsCheck creates a credentials check for the file at path.
func NewCredentialsCheck(path string) *CredentialsCheck {
	return &CredentialsCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *CredentialsCheck) Name() string {
	return "credentials"
}

// Category returns the grouping for this check.
func (c *CredentialsCheck) Category() string {
	return "credentials"
}

// Run executes the check.
func (c *CredentialsCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	info, err := os.Stat(c.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityInfo
		result.Message = "no credentials file at " + c.path
		result.FixHint = "Run `dev-agents mcp`"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat %s: %v", c.path, err)
		return result
	}

	perm := info.Mode().Perm()
	result.Details = map[string]any{"path": c.path, "permissions": formatPermissions(perm)}
	if perm&0o077 == 0 {
		c.setIssues(nil)
		result.Status = SeverityPass
		result.Message = "credentials file is private"
		return result
	}

	c.setIssues([]modeIssue{{Path: c.path, Have: perm, Want: 0o600}})
	result.Status = SeverityError
	result.Message = fmt.Sprintf("credentials file is readable by others (%s)", formatPermissions(perm))
	result.Fixable = true
	result.FixHint = "Run `dev-agents doctor --fix` or chmod 600 " + c.path
	return result
}

func issuePaths(issues []modeIssue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Path
	}
	return out
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(data, int(typeErr.Offset))
		return fmt.Sprintf("JSON type error at line %d, column %d: %s", line, col, typeErr.Error())
	}

	return fmt.Sprintf("JSON error: %v", err)
}

// offsetToLineCol converts a byte offset to line and column numbers.
// Lines and columns are 1-indexed.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}

	line = 1
	lineStart := 0

	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}
