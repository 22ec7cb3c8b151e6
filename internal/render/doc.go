// Package render draws a graph onto a [Surface].
//
// A Surface is a shape-level drawing target working in logical
// coordinates. Backends map logical units to device pixels through a
// one-time [Surface.Scale] call made at setup, so nothing here knows about
// device pixel ratios.
//
// [Pipeline.Redraw] clears the surface, draws every link (trimmed to the
// node rims, with an arrowhead at the target) and then every node, so
// nodes cover link interiors while arrow tips stay visible at the rim.
//
// Backends live in other packages:
//
//   - gui: raylib window
//   - viz: braille terminal canvas
//   - export: PNG (fogleman/gg) and SVG snapshots
//
// [Recorder] is an in-memory Surface that keeps every call, used for tests
// and dry runs.
package render
