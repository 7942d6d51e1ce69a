package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pager key bindings with built-in help text.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down", "pgdown", " "),
			key.WithHelp("j/↓/space", "next page"),
		),
		Previous: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
			key.WithHelp("k/↑", "previous page"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in ov"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.First},
		{k.Open, k.Help, k.Quit},
	}
}
