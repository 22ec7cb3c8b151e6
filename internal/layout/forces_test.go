package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/topograph/internal/graph"
)

func twoNodes(ax, ay, bx, by float64) []*graph.Node {
	return []*graph.Node{
		{ID: "a", X: ax, Y: ay, Radius: 10},
		{ID: "b", X: bx, Y: by, Radius: 10},
	}
}

func TestLinkForcePullsTogether(t *testing.T) {
	nodes := twoNodes(0, 0, 200, 0)
	link := &graph.Link{Source: nodes[0], Target: nodes[1]}
	f := NewLink([]*graph.Link{link}, 50)
	f.Initialize(nodes, rand.New(rand.NewSource(1)))
	f.Apply(1)

	if nodes[0].VX <= 0 {
		t.Errorf("source should move toward target, vx=%f", nodes[0].VX)
	}
	if nodes[1].VX >= 0 {
		t.Errorf("target should move toward source, vx=%f", nodes[1].VX)
	}
}

func TestManyBodyRepels(t *testing.T) {
	nodes := twoNodes(0, 0, 10, 0)
	f := NewManyBody(-30)
	f.Initialize(nodes, rand.New(rand.NewSource(1)))
	f.Apply(1)

	if nodes[0].VX >= 0 || nodes[1].VX <= 0 {
		t.Errorf("expected repulsion, got vx %f and %f", nodes[0].VX, nodes[1].VX)
	}
}

func TestManyBodyDistanceMax(t *testing.T) {
	nodes := twoNodes(0, 0, 500, 0)
	f := NewManyBody(-30)
	f.DistanceMax = 100
	f.Initialize(nodes, rand.New(rand.NewSource(1)))
	f.Apply(1)

	if nodes[0].VX != 0 || nodes[1].VX != 0 {
		t.Error("nodes beyond DistanceMax should not interact")
	}
}

func TestCenterForce(t *testing.T) {
	nodes := twoNodes(0, 0, 10, 20)
	f := NewCenter(100, 100)
	f.Initialize(nodes, nil)
	f.Apply(1)

	mx := (nodes[0].X + nodes[1].X) / 2
	my := (nodes[0].Y + nodes[1].Y) / 2
	if math.Abs(mx-100) > 1e-9 || math.Abs(my-100) > 1e-9 {
		t.Errorf("expected mean (100, 100), got (%f, %f)", mx, my)
	}
}

func TestAxisForcesAreIndependent(t *testing.T) {
	nodes := twoNodes(0, 0, 0, 0)
	fx := NewX(100, 0.1)
	fy := NewY(100, 0.3)
	fx.Initialize(nodes, nil)
	fy.Initialize(nodes, nil)
	fx.Apply(1)
	fy.Apply(1)

	n := nodes[0]
	if math.Abs(n.VX-10) > 1e-9 {
		t.Errorf("expected vx 10, got %f", n.VX)
	}
	if math.Abs(n.VY-30) > 1e-9 {
		t.Errorf("expected vy 30, got %f", n.VY)
	}
}

func TestCollideSeparatesOverlap(t *testing.T) {
	nodes := twoNodes(0, 0, 5, 0)
	f := NewCollide(1, 1)
	f.Initialize(nodes, rand.New(rand.NewSource(1)))
	f.Apply(1)

	if nodes[0].VX >= 0 || nodes[1].VX <= 0 {
		t.Errorf("overlapping nodes should be pushed apart, got vx %f and %f", nodes[0].VX, nodes[1].VX)
	}
}

func TestCollidePadding(t *testing.T) {
	// 25 apart: clear of radius 10 circles, overlapping with padding 2
	tests := []struct {
		padding float64
		touch   bool
	}{
		{1, false},
		{2, true},
	}
	for _, tt := range tests {
		nodes := twoNodes(0, 0, 25, 0)
		f := NewCollide(tt.padding, 1)
		f.Initialize(nodes, rand.New(rand.NewSource(1)))
		f.Apply(1)

		moved := nodes[0].VX != 0
		if moved != tt.touch {
			t.Errorf("padding %f: expected collision %v, got %v", tt.padding, tt.touch, moved)
		}
	}
}

func TestCoincidentNodesAreSplit(t *testing.T) {
	nodes := twoNodes(3, 3, 3, 3)
	f := NewManyBody(-30)
	f.Initialize(nodes, rand.New(rand.NewSource(7)))
	f.Apply(1)

	if math.IsNaN(nodes[0].VX) || math.IsInf(nodes[0].VX, 0) {
		t.Fatalf("coincident nodes produced invalid velocity %f", nodes[0].VX)
	}
}
