// Package interact turns pointer input into layout pin operations.
//
// A [Controller] runs a single-gesture state machine:
//
//	Idle --down on a node--> Dragging --move--> Dragging --up--> Idle
//
// On entering Dragging the layout is reheated (alpha target raised and
// stepping restarted) and the subject is pinned where it stands. Moves
// re-pin it under the pointer. Releasing unpins it and lets the layout
// cool back to rest.
//
// Input reaches the controller as [Event] values, either one at a time
// through [Controller.Handle] or drained from a [Source]. Hosts (raylib,
// bubbletea) adapt their device events; tests feed a [Replay].
package interact
