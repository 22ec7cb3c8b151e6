// Package topology wires a graph, its force layout, the drawing pipeline
// and pointer interaction into a single view that a host drives one tick
// at a time.
package topology
