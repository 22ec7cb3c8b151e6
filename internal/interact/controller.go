package interact

import (
	"github.com/san-kum/topograph/internal/geom"
	"github.com/san-kum/topograph/internal/graph"
)

// DefaultReheat is the alpha target held while a node is dragged.
const DefaultReheat = 0.3

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Layout is the part of the layout engine the controller drives.
type Layout interface {
	Find(x, y, radius float64) *graph.Node
	SetAlphaTarget(v float64)
	Restart()
}

type Options struct {
	// Width and Height bound pointer coordinates.
	Width, Height float64

	// PickRadius limits subject search; <= 0 picks the nearest node anywhere.
	PickRadius float64
	Reheat     float64

	OnDragStart func(*graph.Node)
	OnDragEnd   func(*graph.Node)
}

type Controller struct {
	layout  Layout
	opts    Options
	state   State
	subject *graph.Node
	active  int
}

func NewController(l Layout, opts Options) *Controller {
	if opts.Reheat <= 0 {
		opts.Reheat = DefaultReheat
	}
	return &Controller{layout: l, opts: opts}
}

func (c *Controller) State() State { return c.state }

// Subject is the node being dragged, or nil when idle.
func (c *Controller) Subject() *graph.Node { return c.subject }

// Consume drains src through Handle.
func (c *Controller) Consume(src Source) {
	for _, ev := range src.Poll() {
		c.Handle(ev)
	}
}

func (c *Controller) Handle(ev Event) {
	p := geom.Clamp(geom.Pt(ev.X, ev.Y), c.opts.Width, c.opts.Height)
	switch ev.Kind {
	case Down:
		c.down(p)
	case Move:
		c.move(p)
	case Up:
		c.up()
	}
}

func (c *Controller) down(p geom.Point) {
	if c.state == Dragging {
		return
	}
	n := c.layout.Find(p.X, p.Y, c.opts.PickRadius)
	if n == nil {
		return
	}

	if c.active == 0 {
		c.layout.SetAlphaTarget(c.opts.Reheat)
		c.layout.Restart()
	}
	c.active++
	n.Pin(n.X, n.Y)
	c.subject, c.state = n, Dragging

	if c.opts.OnDragStart != nil {
		c.opts.OnDragStart(n)
	}
}

func (c *Controller) move(p geom.Point) {
	if c.state != Dragging {
		return
	}
	c.subject.Pin(p.X, p.Y)
}

func (c *Controller) up() {
	if c.state != Dragging {
		return
	}
	n := c.subject
	n.Unpin()
	c.active--
	if c.active == 0 {
		c.layout.SetAlphaTarget(0)
	}
	c.subject, c.state = nil, Idle

	if c.opts.OnDragEnd != nil {
		c.opts.OnDragEnd(n)
	}
}
