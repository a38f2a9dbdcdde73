// Package typeahead holds the search state machine shared by the text input
// and the suggestion display.
package typeahead

import "github.com/altinukshini/typeahead-tui/internal/model"

// Matcher produces suggestions for a query.
type Matcher interface {
	Match(query string) []string
}

// Focuser is implemented by the suggestion display so keyboard navigation
// can move focus onto a suggestion row.
type Focuser interface {
	Focus(index int)
}

// Transition describes one dispatched event.
type Transition struct {
	Event  Event
	Before model.SearchState
	After  model.SearchState
}

type Observer func(Transition)

type Option func(*Controller)

// WithObserver registers fn to be called after every dispatched event.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

func WithFocuser(f Focuser) Option {
	return func(c *Controller) { c.focuser = f }
}

// Controller owns the single SearchState of a widget. All mutations go
// through Dispatch.
type Controller struct {
	matcher   Matcher
	state     model.SearchState
	focuser   Focuser
	observers []Observer
}

func NewController(m Matcher, opts ...Option) *Controller {
	c := &Controller{
		matcher: m,
		state:   model.NewSearchState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() model.SearchState {
	return c.state.Clone()
}

// Dispatch applies e and returns the resulting state. ChangeQuery events get
// their results from the matcher regardless of what the caller filled in.
func (c *Controller) Dispatch(e Event) model.SearchState {
	if cq, ok := e.(ChangeQuery); ok {
		cq.Results = c.match(cq.Text)
		e = cq
	}

	before := c.state
	c.state = Reduce(before, e)

	for _, fn := range c.observers {
		fn(Transition{Event: e, Before: before.Clone(), After: c.state.Clone()})
	}
	return c.State()
}

func (c *Controller) match(query string) []string {
	if c.matcher == nil {
		return []string{}
	}
	return c.matcher.Match(query)
}

// HandleKey applies the keyboard navigation policy. rawInput is the value
// currently shown by the text input. It reports whether the key belongs to
// the widget, in which case the input must not process it further.
func (c *Controller) HandleKey(k Key, rawInput string) bool {
	s := c.state

	switch k {
	case KeyEnter:
		c.Dispatch(SelectResult{Text: rawInput})
		return true

	case KeyDown:
		if s.CursorPosition < len(s.Results) {
			next := s.CursorPosition + 1
			if next > len(s.Results)-1 {
				next = 0
			}
			c.navigate(next)
		}
		return true

	case KeyUp:
		if s.CursorPosition > 0 {
			next := s.CursorPosition - 1
			if next < 0 {
				next = len(s.Results) - 1
			}
			c.navigate(next)
		}
		return true

	case KeyEscape:
		c.Dispatch(Blur{})
		return true
	}
	return false
}

func (c *Controller) navigate(index int) {
	// Nothing is rendered to focus when there are no results.
	if index < 0 || index >= len(c.state.Results) {
		return
	}
	if c.focuser != nil {
		c.focuser.Focus(index)
	}
	c.Dispatch(NavigateCursor{Index: index})
}
