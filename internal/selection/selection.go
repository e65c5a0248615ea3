// Package selection resolves which commands and extras an invocation installs.
package selection

import (
	"slices"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/cli/prompt"
	"github.com/thoreinstein/devagents/internal/errors"
)

// Mode selects how a Selection is produced.
type Mode int

// Selection modes.
const (
	// ModeInteractive asks the operator.
	ModeInteractive Mode = iota
	// ModeAll installs every command and every extra.
	ModeAll
	// ModeMinimal installs the minimal command preset and no extras.
	ModeMinimal
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeMinimal:
		return "minimal"
	default:
		return "interactive"
	}
}

// ModeFromFlags maps the init flags to a Mode. --all takes precedence over
// --minimal.
func ModeFromFlags(all, minimal bool) Mode {
	switch {
	case all:
		return ModeAll
	case minimal:
		return ModeMinimal
	default:
		return ModeInteractive
	}
}

// Selection is the resolved set of commands and extras for one invocation.
type Selection struct {
	// Commands are catalog identifiers in catalog order, without duplicates.
	Commands []string
	// Extras are extra categories in catalog order, without duplicates.
	Extras []catalog.Extra
}

// HasExtra reports whether e was selected.
func (s Selection) HasExtra(e catalog.Extra) bool {
	return slices.Contains(s.Extras, e)
}

// Asker is the blocking multi-choice boundary. *prompt.Terminal implements it.
type Asker interface {
	MultiSelect(message string, choices []prompt.Choice, defaults []string) ([]string, error)
}

// Resolver produces Selections.
type Resolver struct {
	asker Asker
}

// NewResolver creates a Resolver. asker is only used in ModeInteractive and
// may be nil otherwise.
func NewResolver(asker Asker) *Resolver {
	return &Resolver{asker: asker}
}

// Resolve returns the Selection for mode.
//
// In ModeInteractive the commands prompt is followed by the extras prompt.
// If either is cancelled or fails, nothing of the partial answer is kept:
// the zero Selection is returned with the error.
func (r *Resolver) Resolve(mode Mode) (Selection, error) {
	switch mode {
	case ModeAll:
		return Selection{
			Commands: catalog.CommandNames(),
			Extras:   catalog.AllExtras(),
		}, nil
	case ModeMinimal:
		return Selection{
			Commands: catalog.MinimalCommands(),
			Extras:   []catalog.Extra{},
		}, nil
	case ModeInteractive:
		return r.ask()
	default:
		return Selection{}, errors.Newf("unknown selection mode %d", int(mode))
	}
}

func (r *Resolver) ask() (Selection, error) {
	if r.asker == nil {
		return Selection{}, errors.New("interactive selection requires a prompt")
	}

	commands, err := r.asker.MultiSelect("Select commands to install", CommandChoices(), catalog.CommandNames())
	if err != nil {
		return Selection{}, errors.Wrap(err, "selecting commands")
	}

	extras, err := r.asker.MultiSelect("Select additional components", extraChoices(), []string{string(catalog.ExtraMCP)})
	if err != nil {
		return Selection{}, errors.Wrap(err, "selecting components")
	}

	return Normalize(commands, extras), nil
}

// Normalize builds a Selection from raw identifiers: unknown identifiers and
// duplicates are dropped and catalog order is restored.
func Normalize(commands, extras []string) Selection {
	sel := Selection{
		Commands: []string{},
		Extras:   []catalog.Extra{},
	}
	for _, name := range catalog.CommandNames() {
		if slices.Contains(commands, name) {
			sel.Commands = append(sel.Commands, name)
		}
	}
	for _, e := range catalog.AllExtras() {
		if slices.Contains(extras, string(e)) {
			sel.Extras = append(sel.Extras, e)
		}
	}
	return sel
}

// CommandChoices returns the command catalog as prompt choices labelled
// with their slash name.
func CommandChoices() []prompt.Choice {
	cmds := catalog.Commands()
	choices := make([]prompt.Choice, len(cmds))
	for i, c := range cmds {
		choices[i] = prompt.Choice{Value: c.Name, Label: "/" + c.Name, Hint: c.Description}
	}
	return choices
}

func extraChoices() []prompt.Choice {
	extras := catalog.Extras()
	choices := make([]prompt.Choice, len(extras))
	for i, e := range extras {
		choices[i] = prompt.Choice{Value: string(e.Extra), Label: e.Label, Hint: e.Hint}
	}
	return choices
}
