package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	refresh key.Binding
	copy    key.Binding
	logout  key.Binding
	signup  key.Binding
	forgot  key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	signup:  key.NewBinding(key.WithKeys("ctrl+n")),
	forgot:  key.NewBinding(key.WithKeys("ctrl+f")),
}
