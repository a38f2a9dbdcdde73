package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/typeahead-tui/internal/search"
	"github.com/altinukshini/typeahead-tui/internal/ui"
)

// RenderHeader draws the top bar. It is always exactly one row high so the
// panes below it keep a fixed screen position for mouse hit testing.
func RenderHeader(mode search.Mode, candidates, maxResults, width int) string {
	title := ui.StyleHeader.Render("typeahead")

	info := lipgloss.NewStyle().Foreground(ui.ColorSuccess).
		Render(fmt.Sprintf("%s | %d candidates | max %d ", mode, candidates, maxResults))

	gap := width - lipgloss.Width(title) - lipgloss.Width(info)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(title + padding + info)
}
