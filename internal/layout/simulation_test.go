package layout

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/topograph/internal/graph"
)

func buildGraph(t *testing.T, p graph.Payload) *graph.Graph {
	t.Helper()
	g, err := graph.Build(p, graph.DefaultDefaults())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return g
}

func newTestSim(g *graph.Graph) *Simulation {
	s := NewSimulation(g, rand.New(rand.NewSource(1)))
	s.AddForce("link", NewLink(g.Links, 60))
	s.AddForce("charge", NewManyBody(-120))
	s.AddForce("center", NewCenter(480, 300))
	s.AddForce("x", NewX(480, 0.02))
	s.AddForce("y", NewY(300, 0.06))
	s.AddForce("collide", NewCollide(2, 3))
	return s
}

func TestPhyllotaxisPlacement(t *testing.T) {
	g := buildGraph(t, graph.Payload{Nodes: []graph.NodeSpec{{ID: "a"}, {ID: "b"}, {ID: "c"}}})
	NewSimulation(g, rand.New(rand.NewSource(1)))

	seen := map[[2]float64]bool{}
	for _, n := range g.Nodes {
		if !n.Placed() {
			t.Fatalf("node %s left unplaced", n.ID)
		}
		key := [2]float64{n.X, n.Y}
		if seen[key] {
			t.Errorf("node %s placed on top of another node", n.ID)
		}
		seen[key] = true
	}
}

func TestSimulationSettles(t *testing.T) {
	g := buildGraph(t, graph.Sample())
	s := newTestSim(g)

	ticks, err := s.Settle(context.Background(), 1000)
	if err != nil {
		t.Fatalf("settle failed after %d ticks: %v", ticks, err)
	}
	if s.Running() {
		t.Error("expected simulation to stop at rest")
	}
	if s.Alpha() >= s.AlphaMin() {
		t.Errorf("expected alpha below %f, got %f", s.AlphaMin(), s.Alpha())
	}
	// 1 - 0.001^(1/300) decay reaches alphaMin in ~300 steps
	if ticks < 250 || ticks > 350 {
		t.Errorf("expected ~300 ticks, got %d", ticks)
	}
	for _, n := range g.Nodes {
		if math.IsNaN(n.X) || math.IsNaN(n.Y) {
			t.Fatalf("node %s diverged", n.ID)
		}
	}
}

func TestSettleTickLimit(t *testing.T) {
	s := newTestSim(buildGraph(t, graph.Sample()))
	ticks, err := s.Settle(context.Background(), 10)
	if !errors.Is(err, ErrTickLimit) {
		t.Errorf("expected ErrTickLimit, got %v", err)
	}
	if ticks != 10 {
		t.Errorf("expected 10 ticks, got %d", ticks)
	}
}

func TestSettleCanceled(t *testing.T) {
	s := newTestSim(buildGraph(t, graph.Sample()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Settle(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTickNotifiesAfterUpdate(t *testing.T) {
	g := buildGraph(t, graph.Sample())
	s := newTestSim(g)

	var seen []float64
	s.OnTick(func() { seen = append(seen, g.Nodes[1].X) })

	s.Tick()
	if len(seen) != 1 {
		t.Fatalf("expected one notification, got %d", len(seen))
	}
	if seen[0] != g.Nodes[1].X {
		t.Error("listener should observe positions after the step is applied")
	}
}

func TestStoppedSimulationDoesNotTick(t *testing.T) {
	s := newTestSim(buildGraph(t, graph.Sample()))
	calls := 0
	s.OnTick(func() { calls++ })

	s.Stop()
	if s.Tick() {
		t.Error("stopped simulation should report not running")
	}
	if calls != 0 {
		t.Errorf("expected no notifications, got %d", calls)
	}

	s.Restart()
	s.Tick()
	if calls != 1 {
		t.Errorf("expected one notification after restart, got %d", calls)
	}
}

func TestPinnedNodeHoldsPosition(t *testing.T) {
	g := buildGraph(t, graph.Sample())
	s := newTestSim(g)

	hub := g.Nodes[0]
	hub.Pin(50, 50)
	for i := 0; i < 20; i++ {
		s.Tick()
		if hub.X != 50 || hub.Y != 50 {
			t.Fatalf("tick %d: pinned node moved to (%f, %f)", i, hub.X, hub.Y)
		}
	}

	hub.Unpin()
	s.SetAlpha(1)
	s.Restart()
	s.Tick()
	if hub.X == 50 && hub.Y == 50 {
		t.Error("unpinned node should be free to move")
	}
}

func TestAlphaTargetHoldsSimulationHot(t *testing.T) {
	s := newTestSim(buildGraph(t, graph.Sample()))
	s.SetAlphaTarget(0.3)

	for i := 0; i < 2000; i++ {
		if !s.Tick() {
			t.Fatalf("simulation cooled at tick %d despite alpha target", i)
		}
	}
	if math.Abs(s.Alpha()-0.3) > 0.01 {
		t.Errorf("expected alpha near 0.3, got %f", s.Alpha())
	}
}

func TestFind(t *testing.T) {
	x1, y1, x2, y2 := 0.0, 0.0, 100.0, 0.0
	g := buildGraph(t, graph.Payload{Nodes: []graph.NodeSpec{
		{ID: "a", X: &x1, Y: &y1},
		{ID: "b", X: &x2, Y: &y2},
	}})
	s := NewSimulation(g, rand.New(rand.NewSource(1)))

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   string
	}{
		{"nearest a", 10, 5, 0, "a"},
		{"nearest b", 70, 0, 0, "b"},
		{"within radius", 95, 3, 10, "b"},
		{"outside radius", 50, 50, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := s.Find(tt.x, tt.y, tt.radius)
			got := ""
			if n != nil {
				got = n.ID
			}
			if got != tt.want {
				t.Errorf("Find(%f, %f, %f) = %q, want %q", tt.x, tt.y, tt.radius, got, tt.want)
			}
		})
	}
}

func TestFindEmptyGraph(t *testing.T) {
	s := NewSimulation(nil, rand.New(rand.NewSource(1)))
	if n := s.Find(0, 0, 0); n != nil {
		t.Errorf("expected nil in empty graph, got %s", n.ID)
	}
}
