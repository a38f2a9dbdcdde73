package model

// MaxResults caps the number of suggestions a search may produce.
const MaxResults = 10

// NoCursor marks that no suggestion is highlighted.
const NoCursor = -1

// SearchState is the complete state of one typeahead widget.
type SearchState struct {
	IsFocused      bool
	Query          string
	Results        []string // len(Results) <= MaxResults
	History        []string // append-only
	CursorPosition int      // NoCursor or an index into Results
}

func NewSearchState() SearchState {
	return SearchState{
		Results:        []string{},
		History:        []string{},
		CursorPosition: NoCursor,
	}
}

// Clone returns a copy that shares no slices with s.
func (s SearchState) Clone() SearchState {
	c := s
	c.Results = append([]string{}, s.Results...)
	c.History = append([]string{}, s.History...)
	return c
}

// Highlighted returns the result under the cursor, if any.
func (s SearchState) Highlighted() (string, bool) {
	if !s.ValidCursor(s.CursorPosition) || s.CursorPosition == NoCursor {
		return "", false
	}
	return s.Results[s.CursorPosition], true
}

// ValidCursor reports whether idx is NoCursor or an index into Results.
func (s SearchState) ValidCursor(idx int) bool {
	return idx == NoCursor || (idx >= 0 && idx < len(s.Results))
}

// LastSearch returns the most recent history entry.
func (s SearchState) LastSearch() (string, bool) {
	if len(s.History) == 0 {
		return "", false
	}
	return s.History[len(s.History)-1], true
}
