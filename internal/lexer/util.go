package lexer

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isSymbolByte reports whether b may appear in a simple SMT-LIB symbol
// (digits are handled separately because they cannot start one).
func isSymbolByte(b byte) bool {
	if isAlpha(b) {
		return true
	}
	switch b {
	case '~', '!', '@', '$', '%', '^', '&', '*', '_', '-', '+', '=', '<', '>', '.', '?', '/':
		return true
	default:
		return false
	}
}
