package key

// Char returns the printable character for the code, if it has one.
// Letters map to their lowercase form and the numpad digits and
// operators share the main-row characters. Keys without a natural
// character (function keys, modifiers, navigation keys) report false.
func (c Code) Char() (rune, bool) {
	switch c {
	case Code1, CodeNumpad1:
		return '1', true
	case Code2, CodeNumpad2:
		return '2', true
	case Code3, CodeNumpad3:
		return '3', true
	case Code4, CodeNumpad4:
		return '4', true
	case Code5, CodeNumpad5:
		return '5', true
	case Code6, CodeNumpad6:
		return '6', true
	case Code7, CodeNumpad7:
		return '7', true
	case Code8, CodeNumpad8:
		return '8', true
	case Code9, CodeNumpad9:
		return '9', true
	case Code0, CodeNumpad0:
		return '0', true
	case CodeA:
		return 'a', true
	case CodeB:
		return 'b', true
	case CodeC:
		return 'c', true
	case CodeD:
		return 'd', true
	case CodeE:
		return 'e', true
	case CodeF:
		return 'f', true
	case CodeG:
		return 'g', true
	case CodeH:
		return 'h', true
	case CodeI:
		return 'i', true
	case CodeJ:
		return 'j', true
	case CodeK:
		return 'k', true
	case CodeL:
		return 'l', true
	case CodeM:
		return 'm', true
	case CodeN:
		return 'n', true
	case CodeO:
		return 'o', true
	case CodeP:
		return 'p', true
	case CodeQ:
		return 'q', true
	case CodeR:
		return 'r', true
	case CodeS:
		return 's', true
	case CodeT:
		return 't', true
	case CodeU:
		return 'u', true
	case CodeV:
		return 'v', true
	case CodeW:
		return 'w', true
	case CodeX:
		return 'x', true
	case CodeY:
		return 'y', true
	case CodeZ:
		return 'z', true
	case CodeCaret:
		return '^', true
	case CodeApostrophe:
		return '\'', true
	case CodeAsterisk, CodeNumpadMultiply:
		return '*', true
	case CodePlus, CodeNumpadAdd:
		return '+', true
	case CodeAt:
		return '@', true
	case CodeBackslash:
		return '\\', true
	case CodeColon:
		return ':', true
	case CodeComma, CodeNumpadComma:
		return ',', true
	case CodePeriod, CodeNumpadDecimal:
		return '.', true
	case CodeSlash, CodeNumpadDivide:
		return '/', true
	case CodeEquals, CodeNumpadEquals:
		return '=', true
	case CodeGrave:
		return '`', true
	case CodeMinus, CodeNumpadSubtract:
		return '-', true
	case CodeSemicolon:
		return ';', true
	case CodeYen:
		return '¥', true
	}
	return 0, false
}
