package key

import (
	"fmt"
	"iter"
	"strings"
)

// Code identifies a physical keyboard key.
type Code uint16

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// Digit row, 1 through 9 then 0, matching the physical order.
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	// Letters
	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	CodeEscape

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20
	CodeF21
	CodeF22
	CodeF23
	CodeF24

	// CodeSnapshot is Print Screen/SysRq.
	CodeSnapshot
	// CodeScroll is Scroll Lock.
	CodeScroll
	CodePause

	// Navigation block
	CodeInsert
	CodeHome
	CodeDelete
	CodeEnd
	CodePageDown
	CodePageUp

	// Arrow keys
	CodeLeft
	CodeUp
	CodeRight
	CodeDown

	// CodeBack is the Backspace key.
	CodeBack
	// CodeReturn is the Enter key.
	CodeReturn
	CodeSpace

	// CodeCompose is the Compose key found on some Linux layouts.
	CodeCompose

	CodeCaret

	// Numeric keypad
	CodeNumlock
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9

	CodeAbntC1
	CodeAbntC2
	CodeNumpadAdd
	CodeApostrophe
	CodeApps
	CodeAsterisk
	CodePlus
	CodeAt
	CodeAx
	CodeBackslash
	CodeCalculator
	// CodeCapital is Caps Lock.
	CodeCapital
	CodeColon
	CodeComma
	CodeConvert
	CodeNumpadDecimal
	CodeNumpadDivide
	CodeEquals
	CodeGrave
	CodeKana
	CodeKanji
	CodeLAlt
	CodeLBracket
	CodeLControl
	CodeLShift
	CodeLWin
	CodeMail
	CodeMediaSelect
	CodeMediaStop
	CodeMinus
	CodeNumpadMultiply
	CodeMute
	CodeMyComputer
	CodeNavigateForward
	CodeNavigateBackward
	CodeNextTrack
	CodeNoConvert
	CodeNumpadComma
	CodeNumpadEnter
	CodeNumpadEquals
	CodeOEM102
	CodePeriod
	CodePlayPause
	CodePower
	CodePrevTrack
	CodeRAlt
	CodeRBracket
	CodeRControl
	CodeRShift
	CodeRWin
	CodeSemicolon
	CodeSlash
	CodeSleep
	CodeStop
	CodeNumpadSubtract
	CodeSysrq
	CodeTab
	CodeUnderline
	CodeUnlabeled
	CodeVolumeDown
	CodeVolumeUp
	CodeWake
	CodeWebBack
	CodeWebFavorites
	CodeWebForward
	CodeWebHome
	CodeWebRefresh
	CodeWebSearch
	CodeWebStop
	CodeYen
	CodeCopy
	CodePaste
	CodeCut
)

// codeNames holds the canonical name for every Code, indexed by value.
var codeNames = [...]string{
	CodeNone:             "None",
	Code1:                "1",
	Code2:                "2",
	Code3:                "3",
	Code4:                "4",
	Code5:                "5",
	Code6:                "6",
	Code7:                "7",
	Code8:                "8",
	Code9:                "9",
	Code0:                "0",
	CodeA:                "A",
	CodeB:                "B",
	CodeC:                "C",
	CodeD:                "D",
	CodeE:                "E",
	CodeF:                "F",
	CodeG:                "G",
	CodeH:                "H",
	CodeI:                "I",
	CodeJ:                "J",
	CodeK:                "K",
	CodeL:                "L",
	CodeM:                "M",
	CodeN:                "N",
	CodeO:                "O",
	CodeP:                "P",
	CodeQ:                "Q",
	CodeR:                "R",
	CodeS:                "S",
	CodeT:                "T",
	CodeU:                "U",
	CodeV:                "V",
	CodeW:                "W",
	CodeX:                "X",
	CodeY:                "Y",
	CodeZ:                "Z",
	CodeEscape:           "Escape",
	CodeF1:               "F1",
	CodeF2:               "F2",
	CodeF3:               "F3",
	CodeF4:               "F4",
	CodeF5:               "F5",
	CodeF6:               "F6",
	CodeF7:               "F7",
	CodeF8:               "F8",
	CodeF9:               "F9",
	CodeF10:              "F10",
	CodeF11:              "F11",
	CodeF12:              "F12",
	CodeF13:              "F13",
	CodeF14:              "F14",
	CodeF15:              "F15",
	CodeF16:              "F16",
	CodeF17:              "F17",
	CodeF18:              "F18",
	CodeF19:              "F19",
	CodeF20:              "F20",
	CodeF21:              "F21",
	CodeF22:              "F22",
	CodeF23:              "F23",
	CodeF24:              "F24",
	CodeSnapshot:         "Snapshot",
	CodeScroll:           "Scroll",
	CodePause:            "Pause",
	CodeInsert:           "Insert",
	CodeHome:             "Home",
	CodeDelete:           "Delete",
	CodeEnd:              "End",
	CodePageDown:         "PageDown",
	CodePageUp:           "PageUp",
	CodeLeft:             "Left",
	CodeUp:               "Up",
	CodeRight:            "Right",
	CodeDown:             "Down",
	CodeBack:             "Back",
	CodeReturn:           "Return",
	CodeSpace:            "Space",
	CodeCompose:          "Compose",
	CodeCaret:            "Caret",
	CodeNumlock:          "Numlock",
	CodeNumpad0:          "Numpad0",
	CodeNumpad1:          "Numpad1",
	CodeNumpad2:          "Numpad2",
	CodeNumpad3:          "Numpad3",
	CodeNumpad4:          "Numpad4",
	CodeNumpad5:          "Numpad5",
	CodeNumpad6:          "Numpad6",
	CodeNumpad7:          "Numpad7",
	CodeNumpad8:          "Numpad8",
	CodeNumpad9:          "Numpad9",
	CodeAbntC1:           "AbntC1",
	CodeAbntC2:           "AbntC2",
	CodeNumpadAdd:        "NumpadAdd",
	CodeApostrophe:       "Apostrophe",
	CodeApps:             "Apps",
	CodeAsterisk:         "Asterisk",
	CodePlus:             "Plus",
	CodeAt:               "At",
	CodeAx:               "Ax",
	CodeBackslash:        "Backslash",
	CodeCalculator:       "Calculator",
	CodeCapital:          "Capital",
	CodeColon:            "Colon",
	CodeComma:            "Comma",
	CodeConvert:          "Convert",
	CodeNumpadDecimal:    "NumpadDecimal",
	CodeNumpadDivide:     "NumpadDivide",
	CodeEquals:           "Equals",
	CodeGrave:            "Grave",
	CodeKana:             "Kana",
	CodeKanji:            "Kanji",
	CodeLAlt:             "LAlt",
	CodeLBracket:         "LBracket",
	CodeLControl:         "LControl",
	CodeLShift:           "LShift",
	CodeLWin:             "LWin",
	CodeMail:             "Mail",
	CodeMediaSelect:      "MediaSelect",
	CodeMediaStop:        "MediaStop",
	CodeMinus:            "Minus",
	CodeNumpadMultiply:   "NumpadMultiply",
	CodeMute:             "Mute",
	CodeMyComputer:       "MyComputer",
	CodeNavigateForward:  "NavigateForward",
	CodeNavigateBackward: "NavigateBackward",
	CodeNextTrack:        "NextTrack",
	CodeNoConvert:        "NoConvert",
	CodeNumpadComma:      "NumpadComma",
	CodeNumpadEnter:      "NumpadEnter",
	CodeNumpadEquals:     "NumpadEquals",
	CodeOEM102:           "OEM102",
	CodePeriod:           "Period",
	CodePlayPause:        "PlayPause",
	CodePower:            "Power",
	CodePrevTrack:        "PrevTrack",
	CodeRAlt:             "RAlt",
	CodeRBracket:         "RBracket",
	CodeRControl:         "RControl",
	CodeRShift:           "RShift",
	CodeRWin:             "RWin",
	CodeSemicolon:        "Semicolon",
	CodeSlash:            "Slash",
	CodeSleep:            "Sleep",
	CodeStop:             "Stop",
	CodeNumpadSubtract:   "NumpadSubtract",
	CodeSysrq:            "Sysrq",
	CodeTab:              "Tab",
	CodeUnderline:        "Underline",
	CodeUnlabeled:        "Unlabeled",
	CodeVolumeDown:       "VolumeDown",
	CodeVolumeUp:         "VolumeUp",
	CodeWake:             "Wake",
	CodeWebBack:          "WebBack",
	CodeWebFavorites:     "WebFavorites",
	CodeWebForward:       "WebForward",
	CodeWebHome:          "WebHome",
	CodeWebRefresh:       "WebRefresh",
	CodeWebSearch:        "WebSearch",
	CodeWebStop:          "WebStop",
	CodeYen:              "Yen",
	CodeCopy:             "Copy",
	CodePaste:            "Paste",
	CodeCut:              "Cut",
}

// String returns the canonical name for the code.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// IsModifier returns true if this is a modifier key.
func (c Code) IsModifier() bool {
	switch c {
	case CodeLAlt, CodeLControl, CodeLShift, CodeLWin,
		CodeRAlt, CodeRControl, CodeRShift, CodeRWin:
		return true
	}
	return false
}

// IsFunction returns true if this is a function key (F1-F24).
func (c Code) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF24
}

// codeAliases maps alternate spellings (lowercase) to codes.
var codeAliases = map[string]Code{
	"esc":         CodeEscape,
	"enter":       CodeReturn,
	"cr":          CodeReturn,
	"backspace":   CodeBack,
	"bs":          CodeBack,
	"del":         CodeDelete,
	"ins":         CodeInsert,
	"pgup":        CodePageUp,
	"pgdn":        CodePageDown,
	"printscreen": CodeSnapshot,
	"scrolllock":  CodeScroll,
	"capslock":    CodeCapital,
}

// nameToCode maps canonical names and aliases (lowercase) to codes.
var nameToCode = func() map[string]Code {
	m := make(map[string]Code, len(codeNames)+len(codeAliases))
	for c, name := range codeNames {
		m[strings.ToLower(name)] = Code(c)
	}
	for name, c := range codeAliases {
		m[name] = c
	}
	return m
}()

var nameSeparators = strings.NewReplacer("-", "", "_", "", " ", "")

// FromName returns the Code for a given name. Lookup is
// case-insensitive and ignores separators, so "PageDown", "page-down"
// and "page_down" all resolve. Returns CodeNone if the name is not
// recognized.
func FromName(name string) Code {
	name = nameSeparators.Replace(strings.ToLower(strings.TrimSpace(name)))
	if c, ok := nameToCode[name]; ok {
		return c
	}
	return CodeNone
}

// Codes returns an iterator over the whole catalog in declaration
// order, CodeNone excluded.
func Codes() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for c := Code1; c <= CodeCut; c++ {
			if !yield(c) {
				return
			}
		}
	}
}
