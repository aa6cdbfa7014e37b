// Package keyboard folds raw keyboard events into a key tracker once
// per frame.
package keyboard

import (
	"github.com/dshills/framekey/internal/input"
	"github.com/dshills/framekey/internal/input/key"
)

// Event is one raw keyboard transition as reported by a source.
type Event struct {
	// ScanCode is the device-level code, kept for diagnostics.
	ScanCode uint32

	// Code is the resolved key, or key.CodeNone when the source could
	// not resolve one.
	Code key.Code

	// Transition says whether the key went down or came up.
	Transition input.Transition
}

// ApplyFrame begins a new frame on st and folds events into it in
// arrival order. Events without a resolved code are skipped, as are
// events with an unknown transition; neither is an error. st is mutated
// in place.
func ApplyFrame(st *input.State[key.Code], events []Event) {
	st.Advance()
	for _, ev := range events {
		if ev.Code == key.CodeNone {
			continue
		}
		switch ev.Transition {
		case input.TransitionPress:
			st.Press(ev.Code)
		case input.TransitionRelease:
			st.Release(ev.Code)
		}
	}
}
