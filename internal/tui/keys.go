package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Invert key.Binding
	Meta   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Invert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert display")),
		Meta:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metadata")),
		Help:   key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Invert, k.Meta, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Invert, k.Meta}, {k.Help, k.Quit}}
}
