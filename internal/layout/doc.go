// Package layout provides the force-directed layout engine behind the
// topology view.
//
// The view depends only on the [Engine] interface: graph registration, a
// per-step tick notification, alpha controls and a nearest-node query.
// [Simulation] is the default implementation and follows the d3-force
// model:
//
//   - alpha decays toward alphaTarget by alphaDecay every step
//   - each [Force] adds to node velocities, scaled by alpha
//   - velocities are damped by velocityDecay and added to positions
//   - pinned nodes snap to their pin with zero velocity
//
// # Example
//
//	sim := layout.NewSimulation(g, rand.New(rand.NewSource(1)))
//	sim.AddForce("link", layout.NewLink(g.Links, 60))
//	sim.AddForce("charge", layout.NewManyBody(-120))
//	sim.OnTick(func() { pipeline.Redraw(g) })
//	ticks, err := sim.Settle(ctx, 1000)
//
// # Thread Safety
//
// Simulation is NOT safe for concurrent use. Hosts drive Tick and pointer
// handling from a single goroutine.
package layout
