package ui

// SelectedMsg is emitted after a search has been committed to the history.
type SelectedMsg struct {
	Text string
}
