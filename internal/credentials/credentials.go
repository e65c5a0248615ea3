// Package credentials collects GitHub and Jira credentials and writes them as
// a shell-sourceable export file.
package credentials

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/pkg/fileutil"
)

// FilePerm is the mode of the written credentials file.
const FilePerm = 0o600

// Prompt messages.
const (
	PromptGitHubToken  = "GitHub Token (leave empty to skip)"
	PromptJiraHost     = "Jira Host (e.g., company.atlassian.net)"
	PromptJiraEmail    = "Jira Email"
	PromptJiraAPIToken = "Jira API Token"
)

// Record holds the collected values. Any field may be empty.
type Record struct {
	GitHubToken  string
	JiraHost     string
	JiraEmail    string
	JiraAPIToken string
}

// Prompter asks for plain and masked values. *prompt.Terminal implements it.
type Prompter interface {
	Input(message, initial string) (string, error)
	Password(message string) (string, error)
}

// Guide is told which integration is being asked about, so the caller can
// print setup instructions before the related prompts. It may be nil.
type Guide func(section string)

// Sections passed to a Guide.
const (
	SectionGitHub = "github"
	SectionJira   = "jira"
)

// Collect asks for the four values. The Jira email and API token are only
// asked for when a Jira host was entered. Any prompt error, including
// cancellation, aborts collection and is returned unchanged.
func Collect(p Prompter, guide Guide) (Record, error) {
	if guide == nil {
		guide = func(string) {}
	}

	var rec Record
	var err error

	guide(SectionGitHub)
	if rec.GitHubToken, err = p.Password(PromptGitHubToken); err != nil {
		return Record{}, err
	}

	guide(SectionJira)
	if rec.JiraHost, err = p.Input(PromptJiraHost, ""); err != nil {
		return Record{}, err
	}

	if rec.JiraHost != "" {
		if rec.JiraEmail, err = p.Input(PromptJiraEmail, ""); err != nil {
			return Record{}, err
		}
		if rec.JiraAPIToken, err = p.Password(PromptJiraAPIToken); err != nil {
			return Record{}, err
		}
	}

	return rec, nil
}

// Render returns the content of the credentials file at path for rec.
func Render(rec Record, path string) string {
	var sb strings.Builder
	sb.WriteString("# Dev Agents MCP Configuration\n")
	sb.WriteString("# Source this file: " + SourceCommand(path) + "\n")
	sb.WriteString("\n")
	sb.WriteString("# GitHub\n")
	writeExport(&sb, "GITHUB_TOKEN", rec.GitHubToken)
	sb.WriteString("\n")
	sb.WriteString("# Jira\n")
	writeExport(&sb, "JIRA_HOST", rec.JiraHost)
	writeExport(&sb, "JIRA_EMAIL", rec.JiraEmail)
	writeExport(&sb, "JIRA_API_TOKEN", rec.JiraAPIToken)
	return sb.String()
}

func writeExport(sb *strings.Builder, name, value string) {
	sb.WriteString("export ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(Quote(value))
	sb.WriteString("\"\n")
}

var shellEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// SourceCommand returns the shell line that loads the file at path. Paths
// under $HOME are written with ~; anything else the shell would split or
// expand is single-quoted in full.
func SourceCommand(path string) string {
	if home, err := paths.ResolveHome(); err == nil {
		rel, err := filepath.Rel(home, path)
		if err == nil && rel != "." && !strings.HasPrefix(rel, "..") && !needsQuoting(rel) {
			return "source ~/" + filepath.ToSlash(rel)
		}
	}
	if needsQuoting(path) {
		return "source " + singleQuote(path)
	}
	return "source " + path
}

// ProfileCommand returns the command appending SourceCommand(path) to the
// shell profile file.
func ProfileCommand(path, profile string) string {
	return "echo " + singleQuote(SourceCommand(path)) + " >> " + profile
}

func needsQuoting(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		default:
			return !strings.ContainsRune("/._-+=:,@%", r)
		}
	}) >= 0
}

func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Quote escapes s for use inside a double-quoted shell string.
func Quote(s string) string {
	return shellEscaper.Replace(s)
}

// Write renders rec to path with FilePerm, replacing any existing file.
func Write(path string, rec Record) error {
	if err := fileutil.AtomicWriteFile(path, []byte(Render(rec, path)), FilePerm); err != nil {
		return errors.Wrapf(err, "writing credentials to %s", path)
	}
	return nil
}
