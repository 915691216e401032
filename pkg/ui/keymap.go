package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ToggleEOF   key.Binding
	CycleEscape key.Binding
	Clear       key.Binding
	Help        key.Binding
	Quit        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

var keys = keyMap{
	ToggleEOF: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "toggle EOF sentinel"),
	),
	CycleEscape: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "cycle string escapes"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear editor"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q", "esc"),
		key.WithHelp("ctrl+c", "quit"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll tokens up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll tokens down"),
	),
}
