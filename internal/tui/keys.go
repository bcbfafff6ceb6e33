package tui

import "charm.land/bubbles/v2/key"

// keyMap binds keys for vertical writing: rows run down a column and
// columns advance to the left.
type keyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	NextColumn key.Binding
	PrevColumn key.Binding
	Newline    key.Binding
	Delete     key.Binding
	Backspace  key.Binding
	Save       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Forward:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next character")),
		Backward:   key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous character")),
		NextColumn: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "next column")),
		PrevColumn: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "previous column")),
		Newline:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "line break")),
		Delete:     key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete backward")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "save and quit")),
	}
}
