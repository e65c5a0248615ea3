package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/ui"
)

// Output formats of the list command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var listFormat string

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", formatText, "Output format: text, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available commands, agents and templates",
	Long: `List the bundled slash commands, agent definitions and templates.

Structured formats print the same catalog for use by scripts.`,
	Example: `  # Human-readable listing
  dev-agents list

  # Machine-readable
  dev-agents list --format json

  See Also: dev-agents add, dev-agents examples`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runListWithWriter(cmd.OutOrStdout(), listFormat)
	},
}

// listOutput is the structured form of the catalog.
type listOutput struct {
	Commands  []catalog.Descriptor `json:"commands" yaml:"commands" toml:"commands"`
	Agents    []catalog.Descriptor `json:"agents" yaml:"agents" toml:"agents"`
	Templates []string             `json:"templates" yaml:"templates" toml:"templates"`
}

func newListOutput() listOutput {
	var tmpls []string
	for _, group := range catalog.TemplateGroups() {
		tmpls = append(tmpls, group...)
	}
	return listOutput{
		Commands:  catalog.Commands(),
		Agents:    catalog.Agents(),
		Templates: tmpls,
	}
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer, format string) error {
	switch format {
	case formatText, "":
		outputListText(ui.New(w))
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newListOutput()), "encoding JSON")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newListOutput()); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case formatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(newListOutput()), "encoding TOML")
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", format),
			"Use one of: text, json, yaml, toml")
	}
}

func outputListText(out *ui.Printer) {
	title := cases.Title(language.English)

	out.Println()
	out.Heading("Available Commands", "")
	out.Println()

	out.Heading(title.String("slash commands"), "(/.claude/commands/):")
	width := commandWidth()
	for _, c := range catalog.Commands() {
		out.Item("/"+c.Name, width, c.Description)
	}

	out.Println()
	out.Heading(title.String(string(catalog.ExtraAgents)), "(/agents/):")
	width = 0
	for _, a := range catalog.Agents() {
		width = max(width, len(a.Name))
	}
	for _, a := range catalog.Agents() {
		out.Item(a.Name, width, a.Description)
	}

	out.Println()
	out.Heading(title.String(string(catalog.ExtraTemplates)), "(/templates/):")
	for _, group := range catalog.TemplateGroups() {
		out.Dim("  " + strings.Join(group, ", "))
	}
	out.Println()
}
