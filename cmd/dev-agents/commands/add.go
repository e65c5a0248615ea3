package commands

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/cli/prompt"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/install"
	"github.com/thoreinstein/devagents/internal/logging"
	"github.com/thoreinstein/devagents/internal/selection"
	"github.com/thoreinstein/devagents/internal/ui"
	"github.com/thoreinstein/devagents/pkg/frontmatter"
)

// pickCommand opens the fuzzy picker. Tests replace it.
var pickCommand = prompt.Pick

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [command]",
	Short: "Add a single command to this project",
	Long: `Add one slash command to .claude/commands/ in the current project.

Without an argument on a terminal, a fuzzy finder lets you pick the command.
The installed copy is replaced if it already exists.`,
	Example: `  # Add the commit command
  dev-agents add commit

  # Pick from the catalog
  dev-agents add

  See Also: dev-agents list, dev-agents init`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return catalog.CommandNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := ui.New(cmd.OutOrStdout())
	logger := logging.FromContext(cmd.Context())

	store, err := openStore()
	if err != nil {
		return err
	}

	var name string
	switch {
	case len(args) == 1:
		name = args[0]
	case stdinIsTerminal(cmd):
		picked, err := pickCommand("Command> ", commandPreviews(store, logger))
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "picking command")
		}
		name = picked
	default:
		out.Warn("No command given")
		printAvailableCommands(out)
		return nil
	}

	target, err := resolveTarget(false)
	if err != nil {
		return err
	}

	out.Start(fmt.Sprintf("Adding /%s...", name))
	err = install.New(store, target, install.WithLogger(logger)).AddCommand(name)
	switch {
	case errors.Is(err, errors.ErrUnknownCommand):
		out.Fail("Unknown command: " + name)
		printAvailableCommands(out)
		return nil
	case errors.Is(err, errors.ErrTemplateNotFound):
		out.Fail("Template not found for " + name)
		return nil
	case err != nil:
		out.Fail("Adding /" + name)
		return errors.NewInstallError(err, fmt.Sprintf("Check that %s is writable", target.CommandsDir()))
	}

	out.Succeed("Added /" + name)
	return nil
}

// commandMeta is the frontmatter of a command template.
type commandMeta struct {
	Description  string `yaml:"description"`
	AllowedTools string `yaml:"allowed-tools"`
}

// commandPreviews attaches the template text to each catalog choice.
// Templates that are missing or unparsable keep the catalog hint.
func commandPreviews(store fs.FS, logger *slog.Logger) []prompt.Choice {
	choices := selection.CommandChoices()
	for i := range choices {
		name := path.Join("commands", choices[i].Value+".md")
		meta, body, err := frontmatter.ParseFS[commandMeta](store, name)
		switch {
		case errors.Is(err, frontmatter.ErrNoFrontmatter):
			meta = &commandMeta{Description: choices[i].Hint}
		case err != nil:
			logger.Debug("no preview", "command", choices[i].Value, "error", err)
			continue
		}
		choices[i].Preview = renderPreview(choices[i].Label, meta, body)
	}
	return choices
}

func renderPreview(label string, meta *commandMeta, body []byte) string {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString("\n\n")
	if meta.Description != "" {
		sb.WriteString(meta.Description)
		sb.WriteString("\n")
	}
	if meta.AllowedTools != "" {
		fmt.Fprintf(&sb, "Tools: %s\n", meta.AllowedTools)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.TrimSpace(string(body)))
	return sb.String()
}

func printAvailableCommands(out *ui.Printer) {
	out.Println()
	out.Heading("Available commands:", "")
	width := commandWidth() - 1
	for _, c := range catalog.Commands() {
		out.Item(c.Name, width, c.Description)
	}
}
