// Package geom provides the plane geometry used to draw a node-link graph.
//
// All functions are pure and work in logical (pre-scale) coordinates:
//
//   - [Angle]: four-quadrant direction of the vector a→b
//   - [BoundaryOffset]: point on a circle's rim in a given direction
//   - [TrimmedSource], [TrimmedTarget]: link endpoints clipped to node rims
//   - [Arrowhead]: chevron triangle anchored at a link tip
//
// # Example
//
//	src := geom.Circle{C: geom.Pt(100, 100), R: 10}
//	dst := geom.Circle{C: geom.Pt(200, 100), R: 10}
//	start := geom.TrimmedSource(src, dst) // (110, 100)
//	end := geom.TrimmedTarget(src, dst)   // (190, 100)
//	tri := geom.Arrowhead(end, geom.Angle(src.C, dst.C), 6)
package geom
