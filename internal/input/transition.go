package input

import "strings"

// Transition is the direction of a raw input edge.
type Transition uint8

const (
	// TransitionNone indicates no transition.
	TransitionNone Transition = iota
	// TransitionPress indicates the control went down.
	TransitionPress
	// TransitionRelease indicates the control came up.
	TransitionRelease
)

// String returns a string representation of the transition.
func (t Transition) String() string {
	switch t {
	case TransitionPress:
		return "press"
	case TransitionRelease:
		return "release"
	default:
		return "none"
	}
}

// TransitionFromName returns the Transition for a given name
// (case-insensitive). Returns TransitionNone if the name is not
// recognized.
func TransitionFromName(name string) Transition {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "press", "down":
		return TransitionPress
	case "release", "up":
		return TransitionRelease
	default:
		return TransitionNone
	}
}
