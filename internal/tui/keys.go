package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	reset    key.Binding
	copy     key.Binding
	password key.Binding
	logout   key.Binding
	enter    key.Binding
	esc      key.Binding
}

var keys = keyMap{
	reset:    key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	password: key.NewBinding(key.WithKeys("p")),
	logout:   key.NewBinding(key.WithKeys("l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
}
