package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Select   key.Binding
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
}

// Keys are checked while text is being typed, so no binding uses a
// printable character.
var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev pane")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "prev")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "next")),
}

// Hints renders bindings as "key:desc" pairs for the status bar.
func Hints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+":"+b.Help().Desc)
	}
	return strings.Join(parts, "  ")
}
