// Package suggestions renders the suggestion list under the search input.
// It keeps no search state of its own: items and cursor are handed in, and
// pointer and key input are reported back to the owner.
package suggestions

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/altinukshini/typeahead-tui/internal/ui"
)

type Event interface{}

// HoveredEvent is reported when the pointer moves onto a row.
type HoveredEvent struct {
	Index int
}

// ClickedEvent is reported on a left click on a row.
type ClickedEvent struct {
	Index int
	Text  string
}

// KeyEvent forwards a key pressed while a row holds focus.
type KeyEvent struct {
	Key tea.KeyMsg
}

const (
	noRow      = -1
	caretWidth = 2
	minWidth   = 8
)

type Model struct {
	items   []string
	cursor  int
	focused int
	originX int
	originY int
	width   int
}

func New() Model {
	return Model{cursor: noRow, focused: noRow, width: 40}
}

// SetItems replaces the rendered rows. cursor is the highlighted row or -1.
func (m *Model) SetItems(items []string, cursor int) {
	m.items = append([]string{}, items...)
	m.cursor = cursor
	if m.focused >= len(m.items) {
		m.focused = noRow
	}
}

func (m Model) Items() []string {
	return append([]string{}, m.items...)
}

func (m Model) Len() int { return len(m.items) }

// Focus moves keyboard focus to row index.
func (m *Model) Focus(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	m.focused = index
}

func (m *Model) Blur() { m.focused = noRow }

// Focused returns the row holding keyboard focus.
func (m Model) Focused() (int, bool) {
	return m.focused, m.focused != noRow
}

func (m *Model) SetWidth(w int) {
	if w < minWidth {
		w = minWidth
	}
	m.width = w
}

// SetOrigin records where the top-left corner of the list is drawn.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// ItemAt maps screen coordinates to a row index, or -1.
func (m Model) ItemAt(x, y int) int {
	if x < m.originX || x >= m.originX+m.width {
		return noRow
	}
	row := y - m.originY - 1 // top border
	if row < 0 || row >= len(m.items) {
		return noRow
	}
	return row
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, Event) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focused == noRow {
			return m, nil
		}
		return m, KeyEvent{Key: msg}

	case tea.MouseMsg:
		idx := m.ItemAt(msg.X, msg.Y)
		if idx == noRow {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			return m, ClickedEvent{Index: idx, Text: m.items[idx]}
		case msg.Action == tea.MouseActionMotion && idx != m.cursor:
			return m, HoveredEvent{Index: idx}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}

	inner := m.width - 2
	textWidth := inner - caretWidth

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		caret := strings.Repeat(" ", caretWidth)
		if i == m.focused {
			caret = ui.StyleCaret.Render("›") + " "
		}
		text := runewidth.FillRight(runewidth.Truncate(item, textWidth, "…"), textWidth)
		style := ui.StyleSuggestion
		if i == m.cursor {
			style = ui.StyleSuggestionActive
		}
		rows[i] = caret + style.Render(text)
	}

	return ui.PaneStyle(m.focused != noRow).
		Width(inner).
		Render(strings.Join(rows, "\n"))
}
