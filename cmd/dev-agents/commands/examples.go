package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/internal/ui"
)

// usageExamples pairs a slash-command invocation with what it does.
var usageExamples = [][2]string{
	{"/new-project", "Create Expo, React, Next.js project"},
	{"/feature auth", "Implement authentication feature"},
	{"/commit", "Generate conventional commit message"},
	{"/pr", "Create pull request with description"},
	{"/ticket", "Create Jira ticket"},
	{"/review", "Code review with suggestions"},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show usage examples",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := ui.New(cmd.OutOrStdout())
		out.Println()
		out.Heading("Usage Examples", "")
		out.Println()
		out.Println("After running `dev-agents init`, use these in Claude Code:")
		out.Println()
		for _, ex := range usageExamples {
			out.Item(ex[0], 15, ex[1])
		}
		out.Println()
	},
}
