package searchbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/typeahead-tui/internal/model"
	"github.com/altinukshini/typeahead-tui/internal/tui/input"
	"github.com/altinukshini/typeahead-tui/internal/tui/suggestions"
	"github.com/altinukshini/typeahead-tui/internal/typeahead"
	"github.com/altinukshini/typeahead-tui/internal/ui"
)

type Options struct {
	Placeholder   string
	ShowNoResults bool
	Observer      typeahead.Observer
}

// Model wires the query input and the suggestion list to a typeahead
// controller. The controller and the list are shared between copies of the
// model; the list is the controller's focus target.
type Model struct {
	ctrl    *typeahead.Controller
	input   input.Model
	display *suggestions.Model

	showNoResults bool
	typed         bool // last query change came from typing
	active        bool
	width         int
}

func New(matcher typeahead.Matcher, opts Options) Model {
	if opts.Placeholder == "" {
		opts.Placeholder = "Type to search"
	}

	display := suggestions.New()
	ctrlOpts := []typeahead.Option{typeahead.WithFocuser(&display)}
	if opts.Observer != nil {
		ctrlOpts = append(ctrlOpts, typeahead.WithObserver(opts.Observer))
	}

	return Model{
		ctrl:          typeahead.NewController(matcher, ctrlOpts...),
		input:         input.New(opts.Placeholder),
		display:       &display,
		showNoResults: opts.ShowNoResults,
	}
}

// State returns a snapshot of the search state.
func (m Model) State() model.SearchState {
	return m.ctrl.State()
}

func (m Model) Query() string { return m.input.Value() }

func (m Model) IsActive() bool { return m.active }

// Activate gives the search box keyboard focus.
func (m *Model) Activate() tea.Cmd {
	m.active = true
	m.display.Blur()
	cmd := m.input.Focus()
	m.ctrl.Dispatch(typeahead.Focus{})
	m.sync()
	return cmd
}

// Deactivate takes keyboard focus away from the search box.
func (m *Model) Deactivate() {
	m.active = false
	m.display.Blur()
	m.input.Blur()
	m.ctrl.Dispatch(typeahead.Blur{})
	m.sync()
}

func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.SetWidth(w - 4)
	m.display.SetWidth(w)
}

// SetOrigin records the screen position of the input row. The suggestion
// list is drawn directly below it.
func (m *Model) SetOrigin(x, y int) {
	m.input.SetOrigin(y)
	m.display.SetOrigin(x, y+1)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		if _, ok := m.display.Focused(); ok {
			return m.updateFromList(msg)
		}
		return m.updateFromInput(msg)

	case tea.MouseMsg:
		var ev suggestions.Event
		*m.display, ev = m.display.Update(msg)
		switch ev := ev.(type) {
		case suggestions.HoveredEvent:
			m.ctrl.Dispatch(typeahead.HoverCursor{Index: ev.Index})
			m.sync()
			return m, nil
		case suggestions.ClickedEvent:
			cmd := m.selectResult(ev.Text)
			return m, cmd
		}
		return m.updateFromInput(msg)
	}

	var cmd tea.Cmd
	m.input, _, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFromInput(msg tea.Msg) (Model, tea.Cmd) {
	var (
		ev  input.Event
		cmd tea.Cmd
	)
	m.input, ev, cmd = m.input.Update(msg)

	switch ev := ev.(type) {
	case input.ChangedEvent:
		m.ctrl.Dispatch(typeahead.ChangeQuery{Text: ev.Value})
		m.typed = true
		m.sync()
	case input.KeyEvent:
		keyCmd := m.handleKey(ev.Key, ev.Value)
		return m, tea.Batch(cmd, keyCmd)
	case input.FocusEvent:
		focusCmd := m.Activate()
		return m, tea.Batch(cmd, focusCmd, func() tea.Msg { return FocusedMsg{} })
	}
	return m, cmd
}

func (m Model) updateFromList(msg tea.KeyMsg) (Model, tea.Cmd) {
	var ev suggestions.Event
	*m.display, ev = m.display.Update(msg)
	kev, ok := ev.(suggestions.KeyEvent)
	if !ok {
		return m, nil
	}

	if toKey(kev.Key) != typeahead.KeyOther {
		cmd := m.handleKey(kev.Key, m.input.Value())
		return m, cmd
	}
	if !editsText(kev.Key) {
		return m, nil
	}

	// Typing on a suggestion row hands the key back to the input.
	cmd := m.Activate()
	var next tea.Cmd
	m, next = m.updateFromInput(kev.Key)
	return m, tea.Batch(cmd, next)
}

func (m *Model) handleKey(msg tea.KeyMsg, raw string) tea.Cmd {
	k := toKey(msg)
	switch k {
	case typeahead.KeyEnter:
		return m.selectResult(raw)
	case typeahead.KeyUp, typeahead.KeyDown:
		// No navigation over a list that is not on screen.
		if !listVisible(m.ctrl.State()) {
			return nil
		}
	}

	m.ctrl.HandleKey(k, raw)
	if _, ok := m.display.Focused(); ok {
		m.input.Blur()
	}
	return m.sync()
}

func (m *Model) selectResult(text string) tea.Cmd {
	m.ctrl.Dispatch(typeahead.SelectResult{Text: text})
	m.typed = false
	m.display.Blur()
	cmd := m.sync()
	return tea.Batch(cmd, func() tea.Msg { return ui.SelectedMsg{Text: text} })
}

// sync pushes the search state into the input and the list. It refocuses
// the input when the list no longer holds focus.
func (m *Model) sync() tea.Cmd {
	st := m.ctrl.State()
	m.input.SetValue(st.Query)

	if listVisible(st) {
		m.display.SetItems(st.Results, st.CursorPosition)
	} else {
		m.display.SetItems(nil, model.NoCursor)
	}

	if _, ok := m.display.Focused(); !ok && m.active && !m.input.Focused() {
		return m.input.Focus()
	}
	return nil
}

func listVisible(st model.SearchState) bool {
	return st.IsFocused && len(st.Results) > 0
}

func (m Model) View() string {
	st := m.ctrl.State()

	var b strings.Builder
	b.WriteString(m.input.View())

	switch {
	case listVisible(st):
		b.WriteString("\n" + m.display.View())
	case m.showNoResults && m.typed && st.IsFocused && st.Query != "":
		b.WriteString("\n" + ui.StyleMuted.Render(fmt.Sprintf("  No results for %q", st.Query)))
	}
	return b.String()
}

// FocusedMsg is emitted when a click on the input gives it focus.
type FocusedMsg struct{}

func toKey(msg tea.KeyMsg) typeahead.Key {
	switch {
	case key.Matches(msg, ui.Keys.Select):
		return typeahead.KeyEnter
	case key.Matches(msg, ui.Keys.Up):
		return typeahead.KeyUp
	case key.Matches(msg, ui.Keys.Down):
		return typeahead.KeyDown
	case key.Matches(msg, ui.Keys.Close):
		return typeahead.KeyEscape
	}
	return typeahead.KeyOther
}

func editsText(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
		return true
	}
	return false
}
