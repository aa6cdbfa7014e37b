package input

import (
	"iter"
	"maps"
)

// State tracks held symbols and per-frame press/release edges for one
// symbol alphabet. The zero value is not usable; call NewState.
type State[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// NewState returns an empty tracker.
func NewState[T comparable]() *State[T] {
	return &State[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Advance begins a new frame. Both transient sets are cleared; held
// symbols carry over untouched. Call exactly once per frame, before any
// Press or Release for that frame. Calling it mid-frame discards the
// edges recorded so far.
func (s *State[T]) Advance() {
	clear(s.justPressed)
	clear(s.justReleased)
}

// Press records a press edge for t. A symbol that is already held is
// left alone, so duplicate press events and device auto-repeat never
// re-trigger the just-pressed edge.
func (s *State[T]) Press(t T) {
	if _, held := s.pressed[t]; held {
		return
	}
	s.pressed[t] = struct{}{}
	s.justPressed[t] = struct{}{}
}

// Release removes t from the held set and records a release edge for
// it. The edge is recorded even when t was not held; a raw event stream
// can begin mid-hold, and the release still happened this frame.
func (s *State[T]) Release(t T) {
	delete(s.pressed, t)
	s.justReleased[t] = struct{}{}
}

// IsPressed reports whether t is currently held.
func (s *State[T]) IsPressed(t T) bool {
	_, ok := s.pressed[t]
	return ok
}

// JustPressed reports whether t went down during the current frame.
func (s *State[T]) JustPressed(t T) bool {
	_, ok := s.justPressed[t]
	return ok
}

// JustReleased reports whether a release edge for t was seen during the
// current frame.
func (s *State[T]) JustReleased(t T) bool {
	_, ok := s.justReleased[t]
	return ok
}

// Pressed returns an iterator over the currently held symbols, in no
// particular order. The sequence can be ranged over more than once and
// reflects the held set as of each range.
func (s *State[T]) Pressed() iter.Seq[T] {
	return maps.Keys(s.pressed)
}
