package input

import (
	"slices"
	"testing"
)

func TestPressRecordsEdgeAndHold(t *testing.T) {
	st := NewState[string]()
	st.Advance()
	st.Press("a")

	if !st.IsPressed("a") {
		t.Error(`IsPressed("a") = false, want true`)
	}
	if !st.JustPressed("a") {
		t.Error(`JustPressed("a") = false, want true`)
	}
	if st.JustReleased("a") {
		t.Error(`JustReleased("a") = true, want false`)
	}
	if st.IsPressed("b") {
		t.Error(`IsPressed("b") = true, want false`)
	}
}

func TestPressIdempotentWithinFrame(t *testing.T) {
	st := NewState[string]()
	st.Advance()
	st.Press("a")
	st.Press("a")

	if !st.IsPressed("a") {
		t.Error(`IsPressed("a") = false, want true`)
	}
	if !st.JustPressed("a") {
		t.Error(`JustPressed("a") = false, want true`)
	}
	if got := slices.Collect(st.Pressed()); len(got) != 1 {
		t.Errorf("len(Pressed()) = %d, want 1", len(got))
	}
}

func TestRepeatAcrossFramesDoesNotRetrigger(t *testing.T) {
	st := NewState[string]()
	st.Advance()
	st.Press("a")
	st.Advance()
	// Auto-repeat shows up as another press for a key still held.
	st.Press("a")

	if !st.IsPressed("a") {
		t.Error(`IsPressed("a") = false, want true`)
	}
	if st.JustPressed("a") {
		t.Error(`JustPressed("a") = true, want false`)
	}
}

func TestReleaseEdgeIsUnconditional(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(st *State[string])
		release string
	}{
		{"held symbol", func(st *State[string]) { st.Press("x") }, "x"},
		{"never pressed", func(st *State[string]) {}, "x"},
		{"released twice", func(st *State[string]) { st.Release("x") }, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState[string]()
			st.Advance()
			tt.setup(st)
			st.Release(tt.release)

			if st.IsPressed(tt.release) {
				t.Errorf("IsPressed(%q) = true, want false", tt.release)
			}
			if !st.JustReleased(tt.release) {
				t.Errorf("JustReleased(%q) = false, want true", tt.release)
			}
		})
	}
}

func TestAdvanceClearsTransientsKeepsHeld(t *testing.T) {
	st := NewState[int]()
	st.Advance()
	st.Press(1)
	st.Press(2)
	st.Release(3)

	before := slices.Sorted(st.Pressed())
	st.Advance()
	after := slices.Sorted(st.Pressed())

	if !slices.Equal(before, after) {
		t.Errorf("Pressed() after Advance() = %v, want %v", after, before)
	}
	for _, n := range []int{1, 2, 3} {
		if st.JustPressed(n) {
			t.Errorf("JustPressed(%d) = true after Advance(), want false", n)
		}
		if st.JustReleased(n) {
			t.Errorf("JustReleased(%d) = true after Advance(), want false", n)
		}
	}
}

func TestHoldAndReleaseOverFrames(t *testing.T) {
	st := NewState[string]()

	// Frame 1: key goes down.
	st.Advance()
	st.Press("space")
	if !st.JustPressed("space") {
		t.Fatal(`frame 1: JustPressed("space") = false, want true`)
	}

	// Frame 2: key is held, no events.
	st.Advance()
	if !st.IsPressed("space") {
		t.Error(`frame 2: IsPressed("space") = false, want true`)
	}
	if st.JustPressed("space") {
		t.Error(`frame 2: JustPressed("space") = true, want false`)
	}

	// Frame 3: key comes up.
	st.Advance()
	st.Release("space")
	if st.IsPressed("space") {
		t.Error(`frame 3: IsPressed("space") = true, want false`)
	}
	if !st.JustReleased("space") {
		t.Error(`frame 3: JustReleased("space") = false, want true`)
	}

	// Frame 4: everything quiet again.
	st.Advance()
	if st.IsPressed("space") || st.JustPressed("space") || st.JustReleased("space") {
		t.Error(`frame 4: "space" still visible in some set, want all clear`)
	}
}

func TestEdgeSetsStayConsistent(t *testing.T) {
	st := NewState[string]()
	st.Advance()
	st.Press("a")
	st.Press("b")
	st.Advance()
	st.Release("b")
	st.Press("c")

	// Every just-pressed symbol is held; no just-released symbol is.
	for _, sym := range []string{"a", "b", "c"} {
		if st.JustPressed(sym) && !st.IsPressed(sym) {
			t.Errorf("JustPressed(%q) without IsPressed(%q)", sym, sym)
		}
		if st.JustReleased(sym) && st.IsPressed(sym) {
			t.Errorf("JustReleased(%q) while IsPressed(%q)", sym, sym)
		}
	}
}

func TestPressedIteratorRestartable(t *testing.T) {
	st := NewState[int]()
	st.Advance()
	for _, n := range []int{3, 1, 2} {
		st.Press(n)
	}

	seq := st.Pressed()
	first := slices.Sorted(seq)
	second := slices.Sorted(seq)

	want := []int{1, 2, 3}
	if !slices.Equal(first, want) {
		t.Errorf("first pass = %v, want %v", first, want)
	}
	if !slices.Equal(second, want) {
		t.Errorf("second pass = %v, want %v", second, want)
	}
}

func TestPressedIteratorEarlyStop(t *testing.T) {
	st := NewState[int]()
	st.Advance()
	for n := range 10 {
		st.Press(n)
	}

	var seen int
	for range st.Pressed() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("stopped after %d symbols, want 3", seen)
	}
}

func TestPressedEmptyState(t *testing.T) {
	st := NewState[string]()
	if got := slices.Collect(st.Pressed()); len(got) != 0 {
		t.Errorf("Pressed() on empty state = %v, want empty", got)
	}
}
