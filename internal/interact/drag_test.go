package interact_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/interact"
	"github.com/san-kum/topograph/internal/layout"
)

var _ = Describe("dragging a node", func() {
	var (
		g    *graph.Graph
		sim  *layout.Simulation
		ctrl *interact.Controller
		node *graph.Node
	)

	BeforeEach(func() {
		x0, y0, x1, y1 := 200.0, 200.0, 260.0, 210.0
		var err error
		g, err = graph.Build(graph.Payload{
			Nodes: []graph.NodeSpec{
				{ID: "a", X: &x0, Y: &y0, Radius: 10},
				{ID: "b", X: &x1, Y: &y1, Radius: 10},
			},
			Links: []graph.LinkSpec{{Source: "a", Target: "b"}},
		}, graph.DefaultDefaults())
		Expect(err).NotTo(HaveOccurred())

		sim = layout.NewSimulation(g, rand.New(rand.NewSource(3)))
		sim.AddForce("link", layout.NewLink(g.Links, 40))
		sim.AddForce("charge", layout.NewManyBody(-60))
		_, _ = sim.Settle(context.Background(), 0)

		ctrl = interact.NewController(sim, interact.Options{Width: 960, Height: 600, PickRadius: 20})
		node, _ = g.Node("a")
	})

	Context("from rest to (50, 50)", func() {
		It("pins the node under the pointer while dragging", func() {
			Expect(sim.Running()).To(BeFalse())

			ctrl.Handle(interact.Event{Kind: interact.Down, X: node.X, Y: node.Y})
			Expect(ctrl.State()).To(Equal(interact.Dragging))
			Expect(sim.Running()).To(BeTrue())
			Expect(sim.AlphaTarget()).To(BeNumerically("==", interact.DefaultReheat))

			ctrl.Handle(interact.Event{Kind: interact.Move, X: 50, Y: 50})
			fx, fy, ok := node.Fixed()
			Expect(ok).To(BeTrue())
			Expect(fx).To(BeNumerically("==", 50))
			Expect(fy).To(BeNumerically("==", 50))

			sim.Tick()
			Expect(node.X).To(BeNumerically("==", 50))
			Expect(node.Y).To(BeNumerically("==", 50))
		})

		It("clears the pin and cools the layout on release", func() {
			ctrl.Handle(interact.Event{Kind: interact.Down, X: node.X, Y: node.Y})
			ctrl.Handle(interact.Event{Kind: interact.Move, X: 50, Y: 50})
			sim.Tick()
			ctrl.Handle(interact.Event{Kind: interact.Up, X: 50, Y: 50})

			_, _, ok := node.Fixed()
			Expect(ok).To(BeFalse())
			Expect(sim.AlphaTarget()).To(BeZero())
			Expect(ctrl.State()).To(Equal(interact.Idle))

			// the link pulls the released node back toward its neighbour
			sim.Tick()
			Expect(node.X).NotTo(BeNumerically("==", 50))
		})

		It("lets the layout return to rest after release", func() {
			ctrl.Handle(interact.Event{Kind: interact.Down, X: node.X, Y: node.Y})
			ctrl.Handle(interact.Event{Kind: interact.Up, X: node.X, Y: node.Y})

			ticks, err := sim.Settle(context.Background(), 2000)
			Expect(err).NotTo(HaveOccurred())
			Expect(ticks).To(BeNumerically(">", 0))
			Expect(sim.Running()).To(BeFalse())
		})
	})

	Context("when the pointer misses every node", func() {
		It("ignores the gesture", func() {
			ctrl.Handle(interact.Event{Kind: interact.Down, X: 900, Y: 20})
			Expect(ctrl.State()).To(Equal(interact.Idle))
			Expect(sim.Running()).To(BeFalse())
			Expect(sim.AlphaTarget()).To(BeZero())
		})
	})
})
