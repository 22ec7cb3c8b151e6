package layout

import (
	"context"
	"math"

	"github.com/san-kum/topograph/internal/graph"
)

const (
	initialRadius        = 10.0
	DefaultAlphaMin      = 0.001
	DefaultVelocityDecay = 0.4
)

var (
	initialAngle = math.Pi * (3 - math.Sqrt(5))

	// DefaultAlphaDecay cools alpha from 1 to DefaultAlphaMin in 300 ticks.
	DefaultAlphaDecay = 1 - math.Pow(DefaultAlphaMin, 1.0/300)
)

type namedForce struct {
	name  string
	force Force
}

// Simulation is the default Engine.
type Simulation struct {
	g         *graph.Graph
	forces    []namedForce
	listeners []func()
	rnd       Jiggler

	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64
	running       bool
}

func NewSimulation(g *graph.Graph, rnd Jiggler) *Simulation {
	s := &Simulation{
		rnd:           rnd,
		alpha:         1,
		alphaMin:      DefaultAlphaMin,
		alphaDecay:    DefaultAlphaDecay,
		velocityDecay: DefaultVelocityDecay,
		running:       true,
	}
	s.SetGraph(g)
	return s
}

// SetGraph registers the node and link collections and re-initialises all
// forces against them.
func (s *Simulation) SetGraph(g *graph.Graph) {
	if g == nil {
		g = graph.New()
	}
	s.g = g
	for i, n := range g.Nodes {
		if fx, fy, ok := n.Fixed(); ok && !n.Placed() {
			n.X, n.Y = fx, fy
		}
		if !n.Placed() {
			r := initialRadius * math.Sqrt(0.5+float64(i))
			sin, cos := math.Sincos(float64(i) * initialAngle)
			n.X, n.Y = r*cos, r*sin
		}
		if math.IsNaN(n.VX) || math.IsNaN(n.VY) {
			n.VX, n.VY = 0, 0
		}
	}
	for _, f := range s.forces {
		f.force.Initialize(g.Nodes, s.rnd)
	}
}

func (s *Simulation) Graph() *graph.Graph { return s.g }

// AddForce appends a force; forces apply in registration order.
func (s *Simulation) AddForce(name string, f Force) {
	f.Initialize(s.g.Nodes, s.rnd)
	s.forces = append(s.forces, namedForce{name: name, force: f})
}

// Force returns the force registered under name, or nil.
func (s *Simulation) Force(name string) Force {
	for _, f := range s.forces {
		if f.name == name {
			return f.force
		}
	}
	return nil
}

func (s *Simulation) OnTick(fn func()) { s.listeners = append(s.listeners, fn) }

// Tick advances one step when running and notifies tick listeners after
// positions are updated. It reports whether the simulation is still
// running afterwards.
func (s *Simulation) Tick() bool {
	if !s.running {
		return false
	}
	s.Step()
	for _, fn := range s.listeners {
		fn()
	}
	if s.alpha < s.alphaMin {
		s.running = false
	}
	return s.running
}

// Step applies one iteration without notifying listeners.
func (s *Simulation) Step() {
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay

	for _, f := range s.forces {
		f.force.Apply(s.alpha)
	}

	damp := 1 - s.velocityDecay
	for _, n := range s.g.Nodes {
		if fx, fy, ok := n.Fixed(); ok {
			n.X, n.Y = fx, fy
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX *= damp
		n.VY *= damp
		n.X += n.VX
		n.Y += n.VY
	}
}

func (s *Simulation) Restart()      { s.running = true }
func (s *Simulation) Stop()         { s.running = false }
func (s *Simulation) Running() bool { return s.running }

func (s *Simulation) Alpha() float64             { return s.alpha }
func (s *Simulation) SetAlpha(v float64)         { s.alpha = v }
func (s *Simulation) AlphaMin() float64          { return s.alphaMin }
func (s *Simulation) SetAlphaMin(v float64)      { s.alphaMin = v }
func (s *Simulation) AlphaTarget() float64       { return s.alphaTarget }
func (s *Simulation) SetAlphaTarget(v float64)   { s.alphaTarget = v }
func (s *Simulation) SetAlphaDecay(v float64)    { s.alphaDecay = v }
func (s *Simulation) SetVelocityDecay(v float64) { s.velocityDecay = v }

// Find returns the node closest to (x, y) within radius, or nil. A
// non-positive radius searches without bound.
func (s *Simulation) Find(x, y, radius float64) *graph.Node {
	best := math.Inf(1)
	if radius > 0 {
		best = radius * radius
	}
	var closest *graph.Node
	for _, n := range s.g.Nodes {
		dx, dy := x-n.X, y-n.Y
		if d2 := dx*dx + dy*dy; d2 < best {
			closest, best = n, d2
		}
	}
	return closest
}

// Settle ticks until the layout rests, ctx is done, or maxTicks steps have
// run (maxTicks <= 0 means no cap). It returns the number of ticks taken.
func (s *Simulation) Settle(ctx context.Context, maxTicks int) (int, error) {
	ticks := 0
	for s.running {
		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		default:
		}

		if maxTicks > 0 && ticks >= maxTicks {
			return ticks, ErrTickLimit
		}
		s.Tick()
		ticks++
	}
	return ticks, nil
}
