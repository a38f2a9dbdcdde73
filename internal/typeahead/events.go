package typeahead

import "fmt"

// Event is a named transition of the search state.
type Event interface {
	Name() string
}

// ChangeQuery replaces the query. Results is filled in by the controller
// from its matcher before the event reaches the reducer.
type ChangeQuery struct {
	Text    string
	Results []string
}

// SelectResult commits Text to the history and closes the suggestions.
type SelectResult struct {
	Text string
}

type Focus struct{}

type Blur struct{}

// HoverCursor highlights a suggestion without touching the query.
type HoverCursor struct {
	Index int
}

// NavigateCursor highlights a suggestion and copies it into the query.
type NavigateCursor struct {
	Index int
}

func (ChangeQuery) Name() string    { return "CHANGE_QUERY" }
func (SelectResult) Name() string   { return "SELECT_RESULT" }
func (Focus) Name() string          { return "FOCUS" }
func (Blur) Name() string           { return "BLUR" }
func (HoverCursor) Name() string    { return "HOVER_CURSOR" }
func (NavigateCursor) Name() string { return "NAVIGATE_CURSOR" }

func (e ChangeQuery) String() string    { return fmt.Sprintf("%s(%q)", e.Name(), e.Text) }
func (e SelectResult) String() string   { return fmt.Sprintf("%s(%q)", e.Name(), e.Text) }
func (e Focus) String() string          { return e.Name() }
func (e Blur) String() string           { return e.Name() }
func (e HoverCursor) String() string    { return fmt.Sprintf("%s(%d)", e.Name(), e.Index) }
func (e NavigateCursor) String() string { return fmt.Sprintf("%s(%d)", e.Name(), e.Index) }
