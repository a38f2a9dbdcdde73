// Package input is the single-line query field of the search box. It is a
// controlled component: its value is always set back from the search state.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/typeahead-tui/internal/ui"
)

// Event is reported to the owner of the input.
type Event interface{}

// ChangedEvent carries the edited text before the owner accepts it.
type ChangedEvent struct {
	Value string
}

// KeyEvent forwards a navigation or command key without interpreting it.
type KeyEvent struct {
	Key   tea.KeyMsg
	Value string
}

// FocusEvent is reported when the field is clicked while unfocused.
type FocusEvent struct{}

type Model struct {
	input   textinput.Model
	originY int
}

// New returns an unlimited field. Any limit would let the shown text drift
// from the query it mirrors.
func New(placeholder string) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "

	return Model{input: ti}
}

func (m Model) Value() string { return m.input.Value() }

// SetValue shows v. The caret jumps to the end only when the text changes
// from outside, so typing keeps its position.
func (m *Model) SetValue(v string) {
	if v == m.input.Value() {
		return
	}
	m.input.SetValue(v)
	m.input.CursorEnd()
}

func (m *Model) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	m.input.Width = w
}

// SetOrigin records the screen row the field is drawn on.
func (m *Model) SetOrigin(y int) { m.originY = y }

func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

func (m *Model) Blur() { m.input.Blur() }

func (m Model) Focused() bool { return m.input.Focused() }

func (m Model) Update(msg tea.Msg) (Model, Event, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.input.Focused() || msg.Y != m.originY {
			return m, nil, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, FocusEvent{}, nil
		}
		return m, nil, nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil, nil
		}
		if key.Matches(msg, ui.Keys.Select, ui.Keys.Close, ui.Keys.Up, ui.Keys.Down) {
			return m, KeyEvent{Key: msg, Value: m.input.Value()}, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			return m, ChangedEvent{Value: after}, cmd
		}
		return m, nil, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, nil, cmd
}

func (m Model) View() string {
	return m.input.View()
}
