package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	RunLeft    key.Binding
	RunRight   key.Binding
	Jump       key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RunRight, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight},
		{k.Jump, k.Down, k.Confirm},
		{k.Pause, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings. Terminals do not report
// a bare shift press, so running is bound to the shifted arrows and keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "walk right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("shift+left", "A", "H"),
			key.WithHelp("S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("shift+right", "D", "L"),
			key.WithHelp("S-→", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", "k", " ", "shift+up", "W", "K"),
			key.WithHelp("↑/space", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
