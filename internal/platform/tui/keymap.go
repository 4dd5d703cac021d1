package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sortviz/internal/core"
)

// KeyMap defines the key bindings of the visualizer.
type KeyMap struct {
	Reset           key.Binding
	Start           key.Binding
	ToggleOrder     key.Binding
	SwitchAlgorithm key.Binding
	Quit            key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Start, k.ToggleOrder, k.SwitchAlgorithm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Start},
		{k.ToggleOrder, k.SwitchAlgorithm},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start sorting"),
		),
		ToggleOrder: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "toggle order"),
		),
		SwitchAlgorithm: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "switch algorithm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to visualizer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Reset):
		return core.ActionReset, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.ToggleOrder):
		return core.ActionToggleOrder, false
	case key.Matches(msg, km.keys.SwitchAlgorithm):
		return core.ActionSwitchAlgorithm, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
