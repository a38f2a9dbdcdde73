// Package history renders the list of committed searches.
package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/typeahead-tui/internal/ui"
)

type Model struct {
	viewport viewport.Model
	entries  []string
	width    int
	height   int
	ready    bool
}

func New() Model {
	return Model{}
}

// SetEntries replaces the shown history and scrolls to the newest entry.
func (m *Model) SetEntries(entries []string) {
	m.entries = append([]string{}, entries...)
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoBottom()
	}
}

func (m Model) Len() int { return len(m.entries) }

// SetSize sets the outer size; one line is reserved for the title.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	bodyH := h - 1
	if bodyH < 1 {
		bodyH = 1
	}
	if !m.ready {
		m.viewport = viewport.New(w, bodyH)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = bodyH
	}
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) render() string {
	if len(m.entries) == 0 {
		return ui.StyleMuted.Render("  Nothing searched yet")
	}
	digits := len(fmt.Sprint(len(m.entries)))
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		num := ui.StyleMuted.Render(fmt.Sprintf("%*d.", digits, i+1))
		b.WriteString(fmt.Sprintf("  %s %s", num, e))
	}
	return b.String()
}

func (m Model) View() string {
	title := ui.StyleTitle.Render("  Your last searches")
	if !m.ready {
		return title + "\n" + m.render()
	}
	return title + "\n" + m.viewport.View()
}
