package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/devagents/internal/catalog"
	"github.com/thoreinstein/devagents/internal/cli/prompt"
	"github.com/thoreinstein/devagents/internal/errors"
)

type mockAsker struct {
	mock.Mock
}

func (m *mockAsker) MultiSelect(message string, choices []prompt.Choice, defaults []string) ([]string, error) {
	args := m.Called(message, choices, defaults)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

const (
	commandsMsg = "Select commands to install"
	extrasMsg   = "Select additional components"
)

func TestResolve_All(t *testing.T) {
	sel, err := NewResolver(nil).Resolve(ModeAll)
	require.NoError(t, err)

	assert.Equal(t, catalog.CommandNames(), sel.Commands)
	assert.Equal(t, []catalog.Extra{catalog.ExtraAgents, catalog.ExtraTemplates, catalog.ExtraScripts, catalog.ExtraMCP}, sel.Extras)
}

func TestResolve_Minimal(t *testing.T) {
	sel, err := NewResolver(nil).Resolve(ModeMinimal)
	require.NoError(t, err)

	assert.Equal(t, []string{"commit", "pr", "review"}, sel.Commands)
	assert.Empty(t, sel.Extras)
}

func TestResolve_Interactive(t *testing.T) {
	m := &mockAsker{}
	m.On("MultiSelect", commandsMsg, mock.Anything, catalog.CommandNames()).
		Return([]string{"review", "commit"}, nil).Once()
	m.On("MultiSelect", extrasMsg, mock.Anything, []string{"mcp"}).
		Return([]string{"scripts", "mcp"}, nil).Once()

	sel, err := NewResolver(m).Resolve(ModeInteractive)
	require.NoError(t, err)

	assert.Equal(t, []string{"commit", "review"}, sel.Commands, "catalog order restored")
	assert.Equal(t, []catalog.Extra{catalog.ExtraScripts, catalog.ExtraMCP}, sel.Extras)
	m.AssertExpectations(t)
}

func TestResolve_InteractiveChoices(t *testing.T) {
	m := &mockAsker{}
	m.On("MultiSelect", commandsMsg, mock.MatchedBy(func(c []prompt.Choice) bool {
		return len(c) == 6 && c[0].Value == "new-project" && c[0].Label == "/new-project"
	}), mock.Anything).Return([]string{}, nil).Once()
	m.On("MultiSelect", extrasMsg, mock.MatchedBy(func(c []prompt.Choice) bool {
		return len(c) == 4 && c[3].Value == "mcp"
	}), mock.Anything).Return([]string{}, nil).Once()

	sel, err := NewResolver(m).Resolve(ModeInteractive)
	require.NoError(t, err)
	assert.Empty(t, sel.Commands)
	assert.Empty(t, sel.Extras)
	m.AssertExpectations(t)
}

func TestResolve_InteractiveCancelDiscardsEverything(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *mockAsker)
	}{
		{
			name: "cancel on commands",
			setup: func(m *mockAsker) {
				m.On("MultiSelect", commandsMsg, mock.Anything, mock.Anything).
					Return(nil, prompt.ErrCancelled).Once()
			},
		},
		{
			name: "cancel on extras after commands confirmed",
			setup: func(m *mockAsker) {
				m.On("MultiSelect", commandsMsg, mock.Anything, mock.Anything).
					Return([]string{"commit"}, nil).Once()
				m.On("MultiSelect", extrasMsg, mock.Anything, mock.Anything).
					Return(nil, prompt.ErrCancelled).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockAsker{}
			tt.setup(m)

			sel, err := NewResolver(m).Resolve(ModeInteractive)
			assert.True(t, errors.Is(err, prompt.ErrCancelled), "got %v", err)
			assert.Empty(t, sel.Commands)
			assert.Empty(t, sel.Extras)
			m.AssertExpectations(t)
		})
	}
}

func TestResolve_InteractiveWithoutAsker(t *testing.T) {
	_, err := NewResolver(nil).Resolve(ModeInteractive)
	assert.Error(t, err)
}

func TestModeFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		all     bool
		minimal bool
		want    Mode
	}{
		{"no flags", false, false, ModeInteractive},
		{"all", true, false, ModeAll},
		{"minimal", false, true, ModeMinimal},
		{"all wins over minimal", true, true, ModeAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeFromFlags(tt.all, tt.minimal))
		})
	}
}

func TestNormalize(t *testing.T) {
	sel := Normalize(
		[]string{"pr", "bogus", "pr", "new-project"},
		[]string{"mcp", "plugins", "agents", "mcp"},
	)
	assert.Equal(t, []string{"new-project", "pr"}, sel.Commands)
	assert.Equal(t, []catalog.Extra{catalog.ExtraAgents, catalog.ExtraMCP}, sel.Extras)
}

func TestSelection_HasExtra(t *testing.T) {
	sel := Selection{Extras: []catalog.Extra{catalog.ExtraScripts}}
	assert.True(t, sel.HasExtra(catalog.ExtraScripts))
	assert.False(t, sel.HasExtra(catalog.ExtraMCP))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "all", ModeAll.String())
	assert.Equal(t, "minimal", ModeMinimal.String())
	assert.Equal(t, "interactive", ModeInteractive.String())
}
