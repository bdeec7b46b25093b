package lexer

import (
	"smtfuzz/internal/diag"
	"smtfuzz/internal/token"
)

// scanNumber lexes a numeral: [0-9]+ with an optional fractional part
// ("2.6" shows up in set-info values). A digit run followed by symbol
// characters (e.g. "2x") is an error token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.DecLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if isSymbolByte(lx.cursor.Peek()) {
		for isSymbolByte(lx.cursor.Peek()) || isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "symbol may not start with a digit")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
