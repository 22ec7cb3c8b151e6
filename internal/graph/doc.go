// Package graph holds the node-link data rendered by the topology view.
//
// A [Graph] owns its [Node] and [Link] slices. Links reference nodes by
// pointer, resolved by id when the graph is built from a [Payload]. The
// layout engine writes positions and velocities in place; the interaction
// controller writes the pin; the renderer only reads.
package graph
