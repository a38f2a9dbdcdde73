package typeahead

// Key is a key the navigation policy cares about.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyUp
	KeyDown
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "esc"
	default:
		return "other"
	}
}
