// Package viz is the terminal front end: the graph is drawn on a braille
// canvas and nodes are dragged with the mouse.
//
// # Key Bindings
//
//	Space - Pause/Resume the layout
//	R     - Reheat the layout
//	T     - Cycle color themes
//	Q     - Quit
package viz
