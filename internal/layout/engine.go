package layout

import (
	"errors"

	"github.com/san-kum/topograph/internal/graph"
)

// ErrTickLimit indicates Settle stopped before the layout came to rest.
var ErrTickLimit = errors.New("layout: tick limit reached before rest")

// Engine is the contract the view and the interaction controller rely on.
type Engine interface {
	SetGraph(g *graph.Graph)
	OnTick(fn func())
	Tick() bool
	Restart()
	Stop()
	Running() bool
	Alpha() float64
	AlphaTarget() float64
	SetAlphaTarget(v float64)
	Find(x, y, radius float64) *graph.Node
}

// Force contributes velocity to nodes on every step.
type Force interface {
	Initialize(nodes []*graph.Node, rnd Jiggler)
	Apply(alpha float64)
}

// Jiggler produces tiny random offsets used to split coincident nodes.
type Jiggler interface {
	Float64() float64
}

func jiggle(r Jiggler) float64 {
	return (r.Float64() - 0.5) * 1e-6
}
