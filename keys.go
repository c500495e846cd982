package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Grab    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Find    key.Binding
	Recent  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "column")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("", "")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "card")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("", "")),
		Grab:    key.NewBinding(key.WithKeys(" ", "g"), key.WithHelp("space", "grab")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Find:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Recent:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recent")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Grab, k.Find, k.Recent, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Up, k.Grab, k.Confirm, k.Cancel, k.Find, k.Recent, k.Quit}}
}

type grabKeyMap struct {
	keyMap
}

func (k grabKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Confirm, k.Cancel, k.Quit}
}
