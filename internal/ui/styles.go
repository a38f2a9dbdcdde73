package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")
	ColorText      = lipgloss.Color("#F9FAFB")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleSuggestion = lipgloss.NewStyle().Foreground(ColorText)

	StyleSuggestionActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Background(ColorHighlight)

	StyleCaret = lipgloss.NewStyle().Foreground(ColorPrimary)
)

// PaneStyle picks the border style for a pane.
func PaneStyle(focused bool) lipgloss.Style {
	if focused {
		return StylePaneFocused
	}
	return StylePane
}
