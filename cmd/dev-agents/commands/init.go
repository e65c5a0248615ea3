package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/cli/prompt"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/install"
	"github.com/thoreinstein/devagents/internal/logging"
	"github.com/thoreinstein/devagents/internal/selection"
	"github.com/thoreinstein/devagents/internal/ui"
)

var (
	initGlobal  bool
	initAll     bool
	initMinimal bool
)

func init() {
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "Install to the global directory (~/.claude)")
	initCmd.Flags().BoolVar(&initAll, "all", false, "Install all commands and components without prompting")
	initCmd.Flags().BoolVar(&initMinimal, "minimal", false, "Install only commit, pr and review without prompting")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install commands and components into this project",
	Long: `Install slash commands and optional components into the current project.

Without flags, you choose the commands and components interactively.
Commands go to .claude/commands/, agent definitions, templates and scripts
to the project root. CLAUDE.md is created when the project has none, and an
existing .claude/settings.json is never replaced.

With --global the same installation targets ~/.claude instead.
--all takes precedence over --minimal.`,
	Example: `  # Choose interactively
  dev-agents init

  # Everything, no prompts
  dev-agents init --all

  # commit, pr and review only
  dev-agents init --minimal

  # Install into ~/.claude
  dev-agents init --global --all

  See Also: dev-agents add, dev-agents global`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := ui.New(cmd.OutOrStdout())
	logger := logging.FromContext(cmd.Context())

	target, err := resolveTarget(initGlobal)
	if err != nil {
		return err
	}

	out.Banner("Dev Agents Setup", "AI-powered development commands for Claude Code")

	mode := selection.ModeFromFlags(initAll, initMinimal)
	logger.Debug("resolving selection", "mode", mode.String(), "target", target.Root, "global", target.Global)

	terminal, stop := newTerminal(cmd)
	sel, err := selection.NewResolver(terminal).Resolve(mode)
	stop()
	if errors.Is(err, prompt.ErrCancelled) {
		logger.Info("selection cancelled")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "selecting components")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	inst := install.New(store, target, install.WithReporter(out), install.WithLogger(logger))
	res, err := inst.Install(sel)
	if err != nil {
		out.Fail("Installation failed")
		return errors.NewInstallError(err, fmt.Sprintf("Check that %s is writable", target.Root))
	}

	printInstallSummary(out, res, sel)
	return nil
}

func printInstallSummary(out *ui.Printer, res *install.Result, sel selection.Selection) {
	out.Println()
	out.Succeed("Dev Agents installed successfully!")
	out.Println()

	if len(res.Commands) > 0 {
		out.Heading("Available commands:", "")
		width := commandWidth()
		for _, name := range res.Commands {
			desc := ""
			if d, ok := catalog.LookupCommand(name); ok {
				desc = d.Description
			}
			out.Item("/"+name, width, desc)
		}
		out.Println()
	}

	out.Heading("Next steps:", "")
	out.Dim("  1. Open this project in Claude Code")
	out.Dim("  2. Type a command like /new-project or /commit")
	if sel.HasExtra(catalog.ExtraMCP) {
		out.Dim("  3. Run `dev-agents mcp` to configure API tokens")
	}
	out.Println()
}

// commandWidth is the column width of "/<name>" for the widest catalog command.
func commandWidth() int {
	width := 0
	for _, c := range catalog.Commands() {
		width = max(width, len(c.Name)+1)
	}
	return width
}
