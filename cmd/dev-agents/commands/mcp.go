package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/internal/cli/prompt"
	"github.com/thoreinstein/devagents/internal/credentials"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/logging"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/internal/ui"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Configure GitHub and Jira tokens for the MCP servers",
	Long: `Ask for a GitHub token and Jira credentials and write them to
~/.dev-agents-env (or credentials_file) as shell exports. The file is readable only by you and
is replaced on every run.

Leave the Jira host empty to skip the Jira questions.`,
	Example: `  dev-agents mcp
  source ~/.dev-agents-env

  See Also: dev-agents init`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	out := ui.New(cmd.OutOrStdout())
	logger := logging.FromContext(cmd.Context())

	path := currentConfig().CredentialsFile
	if path == "" {
		var err error
		if path, err = paths.DefaultCredentialsPath(); err != nil {
			return errors.NewInstallError(err, "Set credentials_file in the config file or DEV_AGENTS_CREDENTIALS_FILE")
		}
	}

	out.Banner("MCP Server Configuration", "Configure API tokens for GitHub and Jira integration.")

	terminal, stop := newTerminal(cmd)
	defer stop()

	rec, err := credentials.Collect(terminal, func(section string) {
		switch section {
		case credentials.SectionGitHub:
			out.Heading("GitHub Configuration", "")
			out.Dim("Create token at: https://github.com/settings/tokens")
			out.Dim("Required scopes: repo, read:user")
			out.Println()
		case credentials.SectionJira:
			out.Println()
			out.Heading("Jira Configuration", "")
			out.Dim("Create token at: https://id.atlassian.com/manage-profile/security/api-tokens")
			out.Println()
		}
	})
	if errors.Is(err, prompt.ErrCancelled) {
		logger.Info("credential entry cancelled")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reading credentials")
	}

	logger.Debug("writing credentials", "path", path, "github", rec.GitHubToken != "", "jira_host", rec.JiraHost)
	if err := credentials.Write(path, rec); err != nil {
		return errors.NewInstallError(err, "Check that the directory of "+path+" exists and is writable")
	}

	out.Println()
	out.Succeed("Configuration saved!")
	out.Println()
	out.Println("Add to your shell profile:")
	out.Code(credentials.ProfileCommand(path, "~/.zshrc"))
	out.Println()
	out.Println("Or run:")
	out.Code(credentials.SourceCommand(path))
	out.Println()
	return nil
}
