package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/topograph/internal/interact"
)

// Mouse turns the raylib left button into pointer events.
type Mouse struct {
	surface *Surface
	last    rl.Vector2
}

func NewMouse(s *Surface) *Mouse { return &Mouse{surface: s} }

func (m *Mouse) Poll() []interact.Event {
	pos := rl.GetMousePosition()
	moved := pos != m.last
	m.last = pos

	p := m.surface.ToLogical(pos)
	var evs []interact.Event
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		evs = append(evs, interact.Event{Kind: interact.Down, X: p.X, Y: p.Y})
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		evs = append(evs, interact.Event{Kind: interact.Up, X: p.X, Y: p.Y})
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && moved:
		evs = append(evs, interact.Event{Kind: interact.Move, X: p.X, Y: p.Y})
	}
	return evs
}
