package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	save    key.Binding
	clear   key.Binding
	copy    key.Binding
	info    key.Binding
	quit    key.Binding
	dismiss key.Binding
}

var keys = keyMap{
	save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy to clipboard")),
	info:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter / esc", "close")),
}

func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
