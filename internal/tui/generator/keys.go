package generator

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the widget key bindings.
type KeyMap struct {
	Generate key.Binding
	Copy     key.Binding
	Theme    key.Binding
	Shorter  key.Binding
	Longer   key.Binding
	Classes  [4]key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Generate: key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g/enter", "generate")),
		Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Shorter:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "shorter")),
		Longer:   key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→/l", "longer")),
		Classes: [4]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "uppercase")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "lowercase")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "numbers")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "symbols")),
		},
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy, k.Theme},
		{k.Shorter, k.Longer},
		k.Classes[:],
		{k.Help, k.Quit},
	}
}
