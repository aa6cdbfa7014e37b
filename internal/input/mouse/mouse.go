// Package mouse folds raw mouse button events into a button tracker
// once per frame.
package mouse

import (
	"strings"

	"github.com/dshills/framekey/internal/input"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown ||
		b == ButtonScrollLeft || b == ButtonScrollRight
}

// ButtonFromName returns the Button for a given name
// (case-insensitive). Returns ButtonNone if the name is not recognized.
func ButtonFromName(name string) Button {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return ButtonLeft
	case "middle":
		return ButtonMiddle
	case "right":
		return ButtonRight
	case "scroll-up", "wheel-up":
		return ButtonScrollUp
	case "scroll-down", "wheel-down":
		return ButtonScrollDown
	case "scroll-left", "wheel-left":
		return ButtonScrollLeft
	case "scroll-right", "wheel-right":
		return ButtonScrollRight
	case "back":
		return ButtonBack
	case "forward":
		return ButtonForward
	default:
		return ButtonNone
	}
}

// Event represents one raw mouse button transition.
type Event struct {
	// X, Y are the pointer position at the time of the event.
	X int
	Y int

	// Button is the mouse button involved.
	Button Button

	// Transition says whether the button went down or came up.
	Transition input.Transition
}

// ApplyFrame begins a new frame on st and folds events into it in
// arrival order. Events carrying ButtonNone or an unknown transition
// are skipped. st is mutated in place.
func ApplyFrame(st *input.State[Button], events []Event) {
	st.Advance()
	for _, ev := range events {
		if ev.Button == ButtonNone {
			continue
		}
		switch ev.Transition {
		case input.TransitionPress:
			st.Press(ev.Button)
		case input.TransitionRelease:
			st.Release(ev.Button)
		}
	}
}
