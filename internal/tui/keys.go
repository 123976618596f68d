package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ToggleMode key.Binding
	Submit     key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	ToggleMode: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "file/comments"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "analyze"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func helpLine() string {
	bindings := []key.Binding{keys.ToggleMode, keys.Submit, keys.Quit}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  •  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
