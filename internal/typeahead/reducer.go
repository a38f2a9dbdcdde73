package typeahead

import "github.com/altinukshini/typeahead-tui/internal/model"

// Reduce applies e to s and returns the next state. It never fails: cursor
// events that point outside the current results leave s unchanged. The
// returned state shares no slices with s.
func Reduce(s model.SearchState, e Event) model.SearchState {
	next := s.Clone()

	switch e := e.(type) {
	case ChangeQuery:
		results := e.Results
		if len(results) > model.MaxResults {
			results = results[:model.MaxResults]
		}
		next.Query = e.Text
		next.Results = append([]string{}, results...)
		next.CursorPosition = model.NoCursor
		next.IsFocused = true

	case SelectResult:
		next.Query = e.Text
		next.Results = []string{}
		next.History = append(next.History, e.Text)
		next.CursorPosition = model.NoCursor

	case Focus:
		next.IsFocused = true
		next.CursorPosition = model.NoCursor

	case Blur:
		next.IsFocused = false
		next.CursorPosition = model.NoCursor

	case HoverCursor:
		if !inResults(s, e.Index) {
			return next
		}
		next.CursorPosition = e.Index

	case NavigateCursor:
		if !inResults(s, e.Index) {
			return next
		}
		next.Query = s.Results[e.Index]
		next.CursorPosition = e.Index
	}

	return next
}

func inResults(s model.SearchState, idx int) bool {
	return idx >= 0 && idx < len(s.Results)
}
