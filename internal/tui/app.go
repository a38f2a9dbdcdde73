package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/typeahead-tui/internal/config"
	"github.com/altinukshini/typeahead-tui/internal/search"
	"github.com/altinukshini/typeahead-tui/internal/tui/history"
	"github.com/altinukshini/typeahead-tui/internal/tui/searchbox"
	"github.com/altinukshini/typeahead-tui/internal/typeahead"
	"github.com/altinukshini/typeahead-tui/internal/ui"
)

type Pane int

const (
	PaneSearch Pane = iota
	PaneHistory
)

type App struct {
	cfg     config.Config
	matcher *search.Matcher

	searchBox   searchbox.Model
	historyView history.Model

	focusedPane Pane
	width       int
	height      int
	status      string
	showHelp    bool
}

func NewApp(cfg config.Config, matcher *search.Matcher, observer typeahead.Observer) App {
	box := searchbox.New(matcher, searchbox.Options{
		Placeholder:   cfg.Placeholder,
		ShowNoResults: cfg.ShowNoResults,
		Observer:      observer,
	})
	box.Activate()

	return App{
		cfg:         cfg,
		matcher:     matcher,
		searchBox:   box,
		historyView: history.New(),
		focusedPane: PaneSearch,
		status:      fmt.Sprintf("%d candidates loaded", len(matcher.Candidates())),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.searchBox.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case ui.SelectedMsg:
		a.historyView.SetEntries(a.searchBox.State().History)
		a.status = fmt.Sprintf("Selected %q", msg.Text)
		return &a, nil

	case searchbox.FocusedMsg:
		a.focusedPane = PaneSearch
		return &a, nil

	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return &a, nil
		}
		switch {
		case key.Matches(msg, ui.Keys.Quit):
			return &a, tea.Quit
		case key.Matches(msg, ui.Keys.Help):
			a.showHelp = true
			return &a, nil
		case key.Matches(msg, ui.Keys.Tab, ui.Keys.ShiftTab):
			return &a, a.togglePane()
		}

		if a.focusedPane == PaneHistory {
			var cmd tea.Cmd
			a.historyView, cmd = a.historyView.Update(msg)
			return &a, cmd
		}

	case tea.MouseMsg:
		if a.showHelp {
			return &a, nil
		}
	}

	var cmd tea.Cmd
	a.searchBox, cmd = a.searchBox.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return &a, tea.Batch(cmds...)
}

func (a *App) togglePane() tea.Cmd {
	if a.focusedPane == PaneSearch {
		a.searchBox.Deactivate()
		a.focusedPane = PaneHistory
		return nil
	}
	a.focusedPane = PaneSearch
	return a.searchBox.Activate()
}

// Layout: header, panes with borders, status bar(1). The search pane is
// on the left; its input sits on the first row inside the border.
func (a *App) propagateSize() {
	contentH := a.height - 4
	if contentH < 1 {
		contentH = 1
	}
	leftW, rightW := a.paneWidths()

	a.searchBox.SetWidth(leftW)
	a.searchBox.SetOrigin(1, lipgloss.Height(a.header())+1)
	a.historyView.SetSize(rightW, contentH)
}

func (a App) paneWidths() (int, int) {
	leftW := a.width * 55 / 100
	if leftW > 60 {
		leftW = 60
	}
	rightW := a.width - leftW - 4
	if rightW < 1 {
		rightW = 1
	}
	return leftW, rightW
}

// --- View ---

func (a App) header() string {
	return RenderHeader(a.matcher.Mode(), len(a.matcher.Candidates()), a.matcher.MaxResults(), a.width)
}

func (a App) View() string {
	header := a.header()

	var content string
	if a.showHelp {
		content = a.renderHelp()
	} else {
		content = a.renderPanes()
	}

	statusBar := RenderStatusBar(a.focusedPane, a.searchBox.State(), a.status, a.contextHints(), a.width)

	maxContentLines := a.height - 2
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + content + "\n" + statusBar
}

func (a App) renderPanes() string {
	contentH := a.height - 4
	if contentH < 1 {
		contentH = 1
	}
	leftW, rightW := a.paneWidths()

	left := ui.PaneStyle(a.focusedPane == PaneSearch).
		Width(leftW).
		Height(contentH).
		Render(a.searchBox.View())
	right := ui.PaneStyle(a.focusedPane == PaneHistory).
		Width(rightW).
		Height(contentH).
		Render(a.historyView.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a App) contextHints() string {
	if a.focusedPane == PaneHistory {
		return ui.Hints(ui.Keys.Up, ui.Keys.Down, ui.Keys.Tab, ui.Keys.Help, ui.Keys.Quit)
	}
	return ui.Hints(ui.Keys.Down, ui.Keys.Select, ui.Keys.Close, ui.Keys.Tab, ui.Keys.Help, ui.Keys.Quit)
}

func (a App) renderHelp() string {
	contentH := a.height - 4
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Search") + "\n\n")
	b.WriteString(row("type", "Filter candidates"))
	b.WriteString(row("down / up", "Move through suggestions"))
	b.WriteString(row("enter", "Commit the text in the input"))
	b.WriteString(row("esc", "Close suggestions"))
	b.WriteString(row("mouse", "Hover to highlight, click to select"))

	b.WriteString("\n" + bold.Render("  General") + "\n\n")
	b.WriteString(row("tab", "Switch between search and history"))
	b.WriteString(row("f1", "Toggle this help"))
	b.WriteString(row("ctrl+c", "Quit"))

	b.WriteString("\n" + ui.StyleMuted.Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
