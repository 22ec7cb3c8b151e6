package topology

import (
	"context"
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/interact"
	"github.com/san-kum/topograph/internal/layout"
	"github.com/san-kum/topograph/internal/render"
)

var (
	ErrNoSurface      = errors.New("topology: no drawing surface available")
	ErrLegendDisabled = errors.New("topology: legend is disabled")
)

// Host offers drawing surfaces when Options.Surface is not set.
type Host interface {
	Surfaces() []render.Surface
}

type Options struct {
	Surface render.Surface
	Host    Host

	Width, Height float64
	Scale         float64
	PickRadius    float64

	Layout config.Layout
	Style  render.Style
	Nodes  graph.Defaults
	Logger *log.Logger

	// DeferDraw skips the frame Init and Reload would draw, for hosts
	// that may only draw inside their own frame.
	DeferDraw bool
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Scale:      cfg.Scale,
		PickRadius: cfg.PickRadius,
		Layout:     cfg.Layout,
		Style:      cfg.Style,
		Nodes:      cfg.Nodes.Graph(),
	}
}

type Hooks struct {
	OnTick      func()
	OnDragStart func(*graph.Node)
	OnDragEnd   func(*graph.Node)
}

type Topology struct {
	opts     Options
	log      *log.Logger
	surface  render.Surface
	pipeline *render.Pipeline

	sim   *layout.Simulation
	ctrl  *interact.Controller
	hooks Hooks
}

// New acquires the drawing surface and applies the device scale once.
func New(opts Options) (*Topology, error) {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	if opts.Style == (render.Style{}) {
		opts.Style = def.Style
	}
	if opts.Nodes == (graph.Defaults{}) {
		opts.Nodes = def.Nodes
	}
	if opts.Layout == (config.Layout{}) {
		opts.Layout = def.Layout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := opts.Surface
	if s == nil && opts.Host != nil {
		if ss := opts.Host.Surfaces(); len(ss) > 0 {
			s = ss[0]
		}
	}
	if s == nil {
		return nil, ErrNoSurface
	}

	s.Scale(opts.Scale)
	view := render.View{Width: opts.Width, Height: opts.Height, Scale: opts.Scale}
	return &Topology{
		opts:     opts,
		log:      opts.Logger,
		surface:  s,
		pipeline: render.NewPipeline(s, view, opts.Style),
	}, nil
}

// Init builds the graph from p, starts the layout and draws the first
// frame unless DeferDraw is set. A payload that cannot be built yields an
// empty graph.
func (t *Topology) Init(p graph.Payload, hooks Hooks) {
	g, err := graph.Build(p, t.opts.Nodes)
	if err != nil {
		t.log.Warn("invalid payload, starting with an empty graph", "err", err)
		g = graph.New()
	}

	lc := t.opts.Layout
	sim := layout.NewSimulation(g, rand.New(rand.NewSource(lc.Seed)))
	t.configureForces(sim, g, lc)

	sim.OnTick(func() {
		t.pipeline.Redraw(g)
		if hooks.OnTick != nil {
			hooks.OnTick()
		}
	})

	t.sim, t.hooks = sim, hooks
	t.ctrl = interact.NewController(sim, interact.Options{
		Width:       t.opts.Width,
		Height:      t.opts.Height,
		PickRadius:  t.opts.PickRadius,
		Reheat:      lc.Reheat,
		OnDragStart: hooks.OnDragStart,
		OnDragEnd:   hooks.OnDragEnd,
	})

	if !t.opts.DeferDraw {
		t.pipeline.Redraw(g)
	}
	t.log.Debug("topology ready", "nodes", g.Len(), "links", len(g.Links))
}

// Reload replaces the graph with one built from p, keeping the hooks given
// to Init. Any drag in progress is dropped.
func (t *Topology) Reload(p graph.Payload) {
	t.Init(p, t.hooks)
}

func (t *Topology) configureForces(sim *layout.Simulation, g *graph.Graph, lc config.Layout) {
	cx, cy := t.opts.Width/2, t.opts.Height/2

	sim.AddForce("link", layout.NewLink(g.Links, lc.LinkDistance))

	charge := layout.NewManyBody(lc.ChargeStrength)
	if lc.ChargeDistanceMax > 0 {
		charge.DistanceMax = lc.ChargeDistanceMax
	}
	sim.AddForce("charge", charge)
	sim.AddForce("center", layout.NewCenter(cx, cy))
	sim.AddForce("x", layout.NewX(cx, lc.XStrength))
	sim.AddForce("y", layout.NewY(cy, lc.YStrength))
	if lc.CollidePadding > 0 {
		sim.AddForce("collide", layout.NewCollide(lc.CollidePadding, lc.CollideIterations))
	}
	// Zero rates come from a hand-built Options and keep the engine
	// defaults; config validation rejects them.
	if lc.VelocityDecay > 0 {
		sim.SetVelocityDecay(lc.VelocityDecay)
	}
	if lc.AlphaMin > 0 {
		sim.SetAlphaMin(lc.AlphaMin)
	}
	if lc.AlphaDecay > 0 {
		sim.SetAlphaDecay(lc.AlphaDecay)
	}
}

func (t *Topology) HandlePointer(ev interact.Event) {
	if t.ctrl == nil {
		return
	}
	t.log.Debug("pointer", "event", ev)
	t.ctrl.Handle(ev)
}

func (t *Topology) Consume(src interact.Source) {
	for _, ev := range src.Poll() {
		t.HandlePointer(ev)
	}
}

// Tick advances the layout one step and reports whether it is still
// running.
func (t *Topology) Tick() bool {
	if t.sim == nil {
		return false
	}
	return t.sim.Tick()
}

// Settle runs the layout to rest headlessly; see layout.Simulation.Settle.
func (t *Topology) Settle(ctx context.Context, maxTicks int) (int, error) {
	if t.sim == nil {
		return 0, nil
	}
	n, err := t.sim.Settle(ctx, maxTicks)
	t.log.Debug("settled", "ticks", n, "alpha", t.sim.Alpha(), "err", err)
	return n, err
}

// Reheat restarts the layout at full energy.
func (t *Topology) Reheat() {
	if t.sim == nil {
		return
	}
	t.sim.SetAlpha(1)
	t.sim.Restart()
}

func (t *Topology) Graph() *graph.Graph {
	if t.sim == nil {
		return nil
	}
	return t.sim.Graph()
}

func (t *Topology) Engine() layout.Engine {
	if t.sim == nil {
		return nil
	}
	return t.sim
}

func (t *Topology) View() render.View { return t.pipeline.View() }

// Dragging returns the node under the pointer, or nil.
func (t *Topology) Dragging() *graph.Node {
	if t.ctrl == nil {
		return nil
	}
	return t.ctrl.Subject()
}

func (t *Topology) Redraw() {
	if g := t.Graph(); g != nil {
		t.pipeline.Redraw(g)
	}
}

// Legend is not drawn yet.
func (t *Topology) Legend() error { return ErrLegendDisabled }
