package lexer

import (
	"smtfuzz/internal/diag"
	"smtfuzz/internal/token"
)

// scanSymbol lexes a simple symbol: letters, digits, and the SMT-LIB
// symbol punctuation set, not starting with a digit.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if isSymbolByte(b) || isDec(b) || b >= 0x80 {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Symbol, Span: sp, Text: lx.text(sp)}
}

// scanKeyword lexes a ':'-prefixed attribute keyword like ':status'.
func (lx *Lexer) scanKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'
	if b := lx.cursor.Peek(); !isSymbolByte(b) && !isDec(b) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "':' must begin a keyword")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	for {
		b := lx.cursor.Peek()
		if isSymbolByte(b) || isDec(b) {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Keyword, Span: sp, Text: lx.text(sp)}
}
