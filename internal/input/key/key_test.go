package key

import (
	"strings"
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeNone, "None"},
		{Code1, "1"},
		{Code0, "0"},
		{CodeA, "A"},
		{CodeZ, "Z"},
		{CodeEscape, "Escape"},
		{CodeF1, "F1"},
		{CodeF24, "F24"},
		{CodeSnapshot, "Snapshot"},
		{CodeBack, "Back"},
		{CodeReturn, "Return"},
		{CodeSpace, "Space"},
		{CodeNumpad0, "Numpad0"},
		{CodeNumpadAdd, "NumpadAdd"},
		{CodeOEM102, "OEM102"},
		{CodeYen, "Yen"},
		{CodeCut, "Cut"},
		{Code(9999), "Code(9999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Code
	}{
		{"a", CodeA},
		{"A", CodeA},
		{" Space ", CodeSpace},
		{"escape", CodeEscape},
		{"esc", CodeEscape},
		{"enter", CodeReturn},
		{"return", CodeReturn},
		{"backspace", CodeBack},
		{"back", CodeBack},
		{"pgup", CodePageUp},
		{"printscreen", CodeSnapshot},
		{"capslock", CodeCapital},
		{"numpad5", CodeNumpad5},
		{"numpad-divide", CodeNumpadDivide},
		{"page_down", CodePageDown},
		{"none", CodeNone},
		{"", CodeNone},
		{"hyperspace", CodeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.name); got != tt.want {
				t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFromNameRoundTrip(t *testing.T) {
	for c := range Codes() {
		if got := FromName(strings.ToLower(c.String())); got != c {
			t.Errorf("FromName(%q) = %v, want %v", strings.ToLower(c.String()), got, c)
		}
	}
}

func TestCodesCatalog(t *testing.T) {
	var count int
	for c := range Codes() {
		if c == CodeNone {
			t.Error("Codes() yielded CodeNone")
		}
		count++
	}
	if want := int(CodeCut); count != want {
		t.Errorf("Codes() yielded %d codes, want %d", count, want)
	}
}

func TestCodeIsModifier(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeLShift, true},
		{CodeRShift, true},
		{CodeLControl, true},
		{CodeRAlt, true},
		{CodeLWin, true},
		{CodeA, false},
		{CodeEscape, false},
		{CodeCapital, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsModifier(); got != tt.want {
				t.Errorf("Code.IsModifier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsFunction(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeF1, true},
		{CodeF12, true},
		{CodeF24, true},
		{CodeEscape, false},
		{Code1, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsFunction(); got != tt.want {
				t.Errorf("Code.IsFunction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharMapped(t *testing.T) {
	tests := []struct {
		code Code
		want rune
	}{
		{Code1, '1'},
		{Code2, '2'},
		{Code3, '3'},
		{Code4, '4'},
		{Code5, '5'},
		{Code6, '6'},
		{Code7, '7'},
		{Code8, '8'},
		{Code9, '9'},
		{Code0, '0'},
		{CodeNumpad1, '1'},
		{CodeNumpad2, '2'},
		{CodeNumpad3, '3'},
		{CodeNumpad4, '4'},
		{CodeNumpad5, '5'},
		{CodeNumpad6, '6'},
		{CodeNumpad7, '7'},
		{CodeNumpad8, '8'},
		{CodeNumpad9, '9'},
		{CodeNumpad0, '0'},
		{CodeA, 'a'},
		{CodeM, 'm'},
		{CodeZ, 'z'},
		{CodeCaret, '^'},
		{CodeApostrophe, '\''},
		{CodeAsterisk, '*'},
		{CodeNumpadMultiply, '*'},
		{CodePlus, '+'},
		{CodeNumpadAdd, '+'},
		{CodeAt, '@'},
		{CodeBackslash, '\\'},
		{CodeColon, ':'},
		{CodeComma, ','},
		{CodeNumpadComma, ','},
		{CodePeriod, '.'},
		{CodeNumpadDecimal, '.'},
		{CodeSlash, '/'},
		{CodeNumpadDivide, '/'},
		{CodeEquals, '='},
		{CodeNumpadEquals, '='},
		{CodeGrave, '`'},
		{CodeMinus, '-'},
		{CodeNumpadSubtract, '-'},
		{CodeSemicolon, ';'},
		{CodeYen, '¥'},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			got, ok := tt.code.Char()
			if !ok {
				t.Fatalf("Code.Char() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Code.Char() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCharUnmapped(t *testing.T) {
	tests := []Code{
		CodeNone,
		CodeEscape,
		CodeF1,
		CodeF24,
		CodeLShift,
		CodeSpace,
		CodeReturn,
		CodeBack,
		CodeTab,
		CodeLeft,
		CodeNumlock,
		CodeWebSearch,
	}

	for _, code := range tests {
		t.Run(code.String(), func(t *testing.T) {
			if got, ok := code.Char(); ok {
				t.Errorf("Code.Char() = %q, true, want false", got)
			}
		})
	}
}
