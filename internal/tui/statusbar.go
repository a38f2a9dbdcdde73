package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/typeahead-tui/internal/model"
	"github.com/altinukshini/typeahead-tui/internal/ui"
)

var paneLabels = map[Pane]string{
	PaneSearch:  "SEARCH",
	PaneHistory: "HISTORY",
}

// RenderStatusBar shows the focused pane, where the cursor sits in the
// suggestions, the last status line and the key hints.
func RenderStatusBar(pane Pane, st model.SearchState, status, hints string, width int) string {
	badge := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorText).
		Background(ui.ColorPrimary).
		Padding(0, 1).
		Render(paneLabels[pane])

	left := badge + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  "+statusLine(st, status))
	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(left + padding + help)
}

func statusLine(st model.SearchState, status string) string {
	if text, ok := st.Highlighted(); ok {
		return fmt.Sprintf("%d/%d %s", st.CursorPosition+1, len(st.Results), text)
	}
	if st.IsFocused && len(st.Results) > 0 {
		return fmt.Sprintf("%d matches", len(st.Results))
	}
	return status
}
