// Package input turns device state into discrete game events.
package input

import "iter"

// Kind is the type of an input event.
type Kind int

const (
	Quit Kind = iota
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	}
	return "unknown"
}

// Key is a logical game key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyJump
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	}
	return "none"
}

// Event is one decoded input event. Key is KeyNone for Quit.
type Event struct {
	Kind Kind
	Key  Key
}

func (e Event) String() string {
	if e.Kind == Quit {
		return e.Kind.String()
	}
	return e.Key.String() + " " + e.Kind.String()
}

// Source yields the events collected for the current tick, in order.
// Each call to Events returns a new single-pass sequence.
type Source interface {
	Events() iter.Seq[Event]
}
