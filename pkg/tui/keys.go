package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the preview.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
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

// ShortHelp returns the footer help text.
func (k KeyMap) ShortHelp() string {
	return "↑↓ select  r reload  ? help  q quit"
}

// FullHelp returns all key bindings for the help view.
func (k KeyMap) FullHelp() [][]string {
	return [][]string{
		{"↑/k", "Select previous task"},
		{"↓/j", "Select next task"},
		{"r", "Reload the config file"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
