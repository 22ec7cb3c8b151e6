package interact

import "fmt"

type Kind int

const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is a pointer event in logical view coordinates.
type Event struct {
	Kind Kind
	X, Y float64
}

func (e Event) String() string { return fmt.Sprintf("%s(%.1f, %.1f)", e.Kind, e.X, e.Y) }

// Source yields the pointer events that arrived since the last poll.
type Source interface {
	Poll() []Event
}

// Replay is a Source that returns its events once.
type Replay []Event

func (r *Replay) Poll() []Event {
	evs := *r
	*r = nil
	return evs
}
