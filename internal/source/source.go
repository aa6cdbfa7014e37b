// Package source produces per-frame batches of raw input events.
//
// A Source is the delivery side of the tracker pipeline: the frame
// loop asks it for one Batch per frame and folds the batch into the
// device trackers. Sources are free to synthesize events the device
// cannot report; the terminal source infers key releases this way.
package source

import (
	"github.com/dshills/framekey/internal/input/gamepad"
	"github.com/dshills/framekey/internal/input/keyboard"
	"github.com/dshills/framekey/internal/input/mouse"
)

// Batch is the raw events for one frame, in arrival order per device.
type Batch struct {
	Keys  []keyboard.Event
	Mouse []mouse.Event
	Pads  []gamepad.Event
}

// Empty reports whether the batch carries no events.
func (b Batch) Empty() bool {
	return len(b.Keys) == 0 && len(b.Mouse) == 0 && len(b.Pads) == 0
}

// Source delivers one batch of raw events per frame.
type Source interface {
	// Next returns the events for the coming frame. It does not
	// block. ok is false once the source is exhausted.
	Next() (Batch, bool)

	// Close releases the source. It is safe to call after Next
	// returned false.
	Close() error
}
