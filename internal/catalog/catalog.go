// Package catalog holds the static tables of installable items: slash
// commands, agents, extra component categories and the bundled template
// listing. The tables are fixed at build time and returned as copies.
package catalog

import "slices"

// Descriptor names an installable item.
type Descriptor struct {
	// Name is the identifier; for commands it is also the slash name and the
	// template file stem.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Description is a short human-readable summary.
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Extra is a category of bundled non-command files.
type Extra string

// Extra categories.
const (
	ExtraAgents    Extra = "agents"
	ExtraTemplates Extra = "templates"
	ExtraScripts   Extra = "scripts"
	ExtraMCP       Extra = "mcp"
)

// ExtraInfo describes an extra for prompts and listings.
type ExtraInfo struct {
	Extra Extra
	Label string
	Hint  string
}

var commands = []Descriptor{
	{Name: "new-project", Description: "Create new projects (Expo, React Native, React, Next.js)"},
	{Name: "feature", Description: "Implement complete features with components, hooks, tests"},
	{Name: "commit", Description: "Generate conventional commit messages"},
	{Name: "pr", Description: "Create pull requests with proper descriptions"},
	{Name: "ticket", Description: "Create Jira tickets with templates"},
	{Name: "review", Description: "Code review with actionable feedback"},
}

var agents = []Descriptor{
	{Name: "project", Description: "Project scaffolding agent"},
	{Name: "feature", Description: "Feature development agent"},
	{Name: "git", Description: "Git workflow agent (commits, PRs)"},
	{Name: "jira", Description: "Jira ticket agent"},
	{Name: "code-review", Description: "Code review agent"},
}

var extras = []ExtraInfo{
	{Extra: ExtraAgents, Label: "Agent definitions", Hint: "Detailed agent behaviors"},
	{Extra: ExtraTemplates, Label: "Templates", Hint: "PR, commit, Jira templates"},
	{Extra: ExtraScripts, Label: "Shell scripts", Hint: "Automation scripts"},
	{Extra: ExtraMCP, Label: "MCP config", Hint: "GitHub, Jira, Git servers"},
}

// templateGroups is the listing of bundled document templates, grouped by
// subdirectory of the templates category.
var templateGroups = [][]string{
	{"pr/feature.md", "pr/bugfix.md"},
	{"jira/story.md", "jira/bug.md"},
	{"commit/examples.md"},
}

var minimal = []string{"commit", "pr", "review"}

// Commands returns the command catalog in display order.
func Commands() []Descriptor {
	return slices.Clone(commands)
}

// CommandNames returns every command identifier in catalog order.
func CommandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// LookupCommand returns the descriptor for name.
func LookupCommand(name string) (Descriptor, bool) {
	i := slices.IndexFunc(commands, func(d Descriptor) bool { return d.Name == name })
	if i < 0 {
		return Descriptor{}, false
	}
	return commands[i], true
}

// Agents returns the agent catalog in display order.
func Agents() []Descriptor {
	return slices.Clone(agents)
}

// Extras returns the extra categories in prompt order.
func Extras() []ExtraInfo {
	return slices.Clone(extras)
}

// AllExtras returns every extra category.
func AllExtras() []Extra {
	out := make([]Extra, len(extras))
	for i, e := range extras {
		out[i] = e.Extra
	}
	return out
}

// MinimalCommands returns the fixed preset used by --minimal.
func MinimalCommands() []string {
	return slices.Clone(minimal)
}

// TemplateGroups returns the bundled document templates for display.
func TemplateGroups() [][]string {
	out := make([][]string, len(templateGroups))
	for i, g := range templateGroups {
		out[i] = slices.Clone(g)
	}
	return out
}
