package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/install"
	"github.com/thoreinstein/devagents/internal/logging"
	"github.com/thoreinstein/devagents/internal/ui"
)

func init() {
	rootCmd.AddCommand(globalCmd)
}

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Install every command globally",
	Long: `Copy every bundled command template into ~/.claude/commands so the
commands are available in all projects. The MCP settings are written to
~/.claude/settings.json unless that file already exists.`,
	Example: `  dev-agents global

  See Also: dev-agents init --global`,
	Args: cobra.NoArgs,
	RunE: runGlobal,
}

func runGlobal(cmd *cobra.Command, _ []string) error {
	out := ui.New(cmd.OutOrStdout())
	logger := logging.FromContext(cmd.Context())

	target, err := resolveTarget(true)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}

	out.Start("Installing globally to " + target.Root + "...")
	res, err := install.New(store, target, install.WithLogger(logger)).InstallGlobal()
	if err != nil {
		out.Fail("Global installation failed")
		return errors.NewInstallError(err, "Check that "+target.Root+" is writable")
	}
	out.Succeed("Installed globally")

	out.Println()
	out.Succeed("Commands available in all projects!")
	out.Println()
	out.Heading("Installed commands:", "")
	for _, name := range res.Commands {
		out.Code("/" + name)
	}
	out.Println()
	return nil
}
