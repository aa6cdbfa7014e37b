package mouse

import (
	"testing"

	"github.com/dshills/framekey/internal/input"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonScrollUp, "scroll-up"},
		{ButtonScrollDown, "scroll-down"},
		{ButtonScrollLeft, "scroll-left"},
		{ButtonScrollRight, "scroll-right"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
		{Button(99), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestButtonFromName(t *testing.T) {
	tests := []struct {
		name string
		want Button
	}{
		{"left", ButtonLeft},
		{"LEFT", ButtonLeft},
		{" right ", ButtonRight},
		{"scroll-up", ButtonScrollUp},
		{"wheel-up", ButtonScrollUp},
		{"wheel-down", ButtonScrollDown},
		{"forward", ButtonForward},
		{"", ButtonNone},
		{"thumb", ButtonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ButtonFromName(tt.name); got != tt.want {
				t.Errorf("ButtonFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestButtonIsScroll(t *testing.T) {
	tests := []struct {
		button Button
		want   bool
	}{
		{ButtonScrollUp, true},
		{ButtonScrollDown, true},
		{ButtonScrollLeft, true},
		{ButtonScrollRight, true},
		{ButtonLeft, false},
		{ButtonNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			if got := tt.button.IsScroll(); got != tt.want {
				t.Errorf("Button.IsScroll() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyFrame(t *testing.T) {
	st := input.NewState[Button]()

	ApplyFrame(st, []Event{{X: 4, Y: 2, Button: ButtonLeft, Transition: input.TransitionPress}})
	if !st.IsPressed(ButtonLeft) {
		t.Error("IsPressed(left) = false, want true")
	}
	if !st.JustPressed(ButtonLeft) {
		t.Error("JustPressed(left) = false, want true")
	}

	ApplyFrame(st, []Event{{X: 4, Y: 3, Button: ButtonLeft, Transition: input.TransitionRelease}})
	if st.IsPressed(ButtonLeft) {
		t.Error("IsPressed(left) = true, want false")
	}
	if !st.JustReleased(ButtonLeft) {
		t.Error("JustReleased(left) = false, want true")
	}
}

func TestApplyFrameSkipsNoneButton(t *testing.T) {
	st := input.NewState[Button]()
	ApplyFrame(st, []Event{{Button: ButtonNone, Transition: input.TransitionPress}})

	if st.IsPressed(ButtonNone) {
		t.Error("IsPressed(none) = true, want false")
	}
	if st.JustPressed(ButtonNone) {
		t.Error("JustPressed(none) = true, want false")
	}
}
