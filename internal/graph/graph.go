package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/topograph/internal/geom"
)

var (
	// ErrUnknownNode indicates a link endpoint that names no node.
	ErrUnknownNode = errors.New("graph: link references unknown node")

	// ErrDuplicateNode indicates two nodes sharing an id.
	ErrDuplicateNode = errors.New("graph: duplicate node id")
)

type Node struct {
	ID     string
	Index  int
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  string

	fx, fy float64
	pinned bool
}

// Pin fixes the node at (x, y); the layout engine stops moving it.
func (n *Node) Pin(x, y float64) {
	n.fx, n.fy, n.pinned = x, y, true
}

// Unpin returns the node to free movement.
func (n *Node) Unpin() {
	n.fx, n.fy, n.pinned = 0, 0, false
}

// Fixed reports the pin coordinates, if any.
func (n *Node) Fixed() (fx, fy float64, ok bool) {
	return n.fx, n.fy, n.pinned
}

func (n *Node) Placed() bool {
	return !math.IsNaN(n.X) && !math.IsNaN(n.Y)
}

func (n *Node) Pos() geom.Point { return geom.Pt(n.X, n.Y) }

func (n *Node) Circle() geom.Circle { return geom.Circle{C: n.Pos(), R: n.Radius} }

type Link struct {
	Source *Node
	Target *Node
	Color  string
	Index  int
}

// SelfLoop reports whether both ends are the same node.
func (l *Link) SelfLoop() bool { return l.Source == l.Target }

type Graph struct {
	Nodes []*Node
	Links []*Link
	byID  map[string]*Node
}

func New() *Graph {
	return &Graph{byID: make(map[string]*Node)}
}

// AddNode appends n and indexes it by id.
func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.byID[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	n.Index = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	g.byID[n.ID] = n
	return nil
}

// Connect resolves source and target ids and appends the link.
func (g *Graph) Connect(source, target, color string) (*Link, error) {
	src, ok := g.byID[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, source)
	}
	dst, ok := g.byID[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, target)
	}
	l := &Link{Source: src, Target: dst, Color: color, Index: len(g.Links)}
	g.Links = append(g.Links, l)
	return l, nil
}

func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

func (g *Graph) Len() int { return len(g.Nodes) }

// Degree counts link endpoints per node index.
func (g *Graph) Degree() []int {
	deg := make([]int, len(g.Nodes))
	for _, l := range g.Links {
		deg[l.Source.Index]++
		deg[l.Target.Index]++
	}
	return deg
}
