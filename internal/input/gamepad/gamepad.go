// Package gamepad folds raw gamepad button events into a button
// tracker once per frame. Only digital buttons are tracked; analog
// sticks and trigger pressure have no press/release edges to track.
package gamepad

import (
	"strings"

	"github.com/dshills/framekey/internal/input"
)

// Button represents a gamepad button. Face buttons are named by
// compass position rather than label, so the catalog works across
// controller families.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonSouth is the lower face button (A on Xbox, Cross on PlayStation).
	ButtonSouth
	// ButtonEast is the right face button (B on Xbox, Circle on PlayStation).
	ButtonEast
	// ButtonNorth is the upper face button (Y on Xbox, Triangle on PlayStation).
	ButtonNorth
	// ButtonWest is the left face button (X on Xbox, Square on PlayStation).
	ButtonWest
	// ButtonLeftBumper is the left shoulder button.
	ButtonLeftBumper
	// ButtonRightBumper is the right shoulder button.
	ButtonRightBumper
	// ButtonLeftTrigger is the left trigger treated as a digital button.
	ButtonLeftTrigger
	// ButtonRightTrigger is the right trigger treated as a digital button.
	ButtonRightTrigger
	// ButtonSelect is the select/back/share button.
	ButtonSelect
	// ButtonStart is the start/menu button.
	ButtonStart
	// ButtonMode is the vendor button (guide, home).
	ButtonMode
	// ButtonLeftThumb is the left stick click.
	ButtonLeftThumb
	// ButtonRightThumb is the right stick click.
	ButtonRightThumb
	// ButtonDPadUp is up on the directional pad.
	ButtonDPadUp
	// ButtonDPadDown is down on the directional pad.
	ButtonDPadDown
	// ButtonDPadLeft is left on the directional pad.
	ButtonDPadLeft
	// ButtonDPadRight is right on the directional pad.
	ButtonDPadRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonSouth:
		return "south"
	case ButtonEast:
		return "east"
	case ButtonNorth:
		return "north"
	case ButtonWest:
		return "west"
	case ButtonLeftBumper:
		return "left-bumper"
	case ButtonRightBumper:
		return "right-bumper"
	case ButtonLeftTrigger:
		return "left-trigger"
	case ButtonRightTrigger:
		return "right-trigger"
	case ButtonSelect:
		return "select"
	case ButtonStart:
		return "start"
	case ButtonMode:
		return "mode"
	case ButtonLeftThumb:
		return "left-thumb"
	case ButtonRightThumb:
		return "right-thumb"
	case ButtonDPadUp:
		return "dpad-up"
	case ButtonDPadDown:
		return "dpad-down"
	case ButtonDPadLeft:
		return "dpad-left"
	case ButtonDPadRight:
		return "dpad-right"
	default:
		return "none"
	}
}

// buttonNames maps button names (lowercase) to Button values.
var buttonNames = map[string]Button{
	"south":         ButtonSouth,
	"east":          ButtonEast,
	"north":         ButtonNorth,
	"west":          ButtonWest,
	"left-bumper":   ButtonLeftBumper,
	"right-bumper":  ButtonRightBumper,
	"left-trigger":  ButtonLeftTrigger,
	"right-trigger": ButtonRightTrigger,
	"select":        ButtonSelect,
	"start":         ButtonStart,
	"mode":          ButtonMode,
	"left-thumb":    ButtonLeftThumb,
	"right-thumb":   ButtonRightThumb,
	"dpad-up":       ButtonDPadUp,
	"dpad-down":     ButtonDPadDown,
	"dpad-left":     ButtonDPadLeft,
	"dpad-right":    ButtonDPadRight,
}

// ButtonFromName returns the Button for a given name
// (case-insensitive). Returns ButtonNone if the name is not recognized.
func ButtonFromName(name string) Button {
	if b, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b
	}
	return ButtonNone
}

// Event represents one raw gamepad button transition.
type Event struct {
	// Button is the gamepad button involved.
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
