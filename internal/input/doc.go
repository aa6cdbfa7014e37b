// Package input tracks the frame-by-frame state of discrete input
// controls: keyboard keys, mouse buttons, gamepad buttons, or any other
// enumerable symbol a device can hold down and let go of.
//
// # Model
//
// State is a generic tri-set tracker. For each frame it answers three
// questions about a symbol:
//
//   - IsPressed: is it held right now, regardless of when it went down?
//   - JustPressed: did it go down during this frame?
//   - JustReleased: did it come up during this frame?
//
// A frame begins with Advance, which clears the two transient sets and
// carries the held set over. Device adapters then fold that frame's raw
// events into the tracker with Press and Release. Queries are valid from
// the end of the fold until the next Advance.
//
// # Edges
//
// Press only records a just-pressed edge for a symbol that was not
// already held, so device auto-repeat never re-triggers the edge.
// Release records a just-released edge unconditionally, even when no
// matching press was observed; raw device streams can open mid-hold and
// the consumer still wants to know a release happened this frame.
//
// # Ownership
//
// A State is owned by a single goroutine. One driver advances it and
// folds events exactly once per frame; everything else only queries it
// between frames. If a host must share a State across goroutines, it
// locks around the whole advance-and-fold step, never around individual
// calls.
package input
