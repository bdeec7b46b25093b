package lexer

import (
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/token"
)

// scanString lexes a double-quoted string literal. Escapes stay undecoded
// in Token.Text; the parser decodes them through the dialect tables.
//
// The old dialect continues past backslash-escaped quotes (\"), the new
// dialect past doubled quotes ("").
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '"' {
			lx.cursor.Bump()
			if lx.opts.Dialect == dialect.New {
				// "" continues the literal in the new dialect.
				if lx.cursor.Eat('"') {
					continue
				}
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}

		if b == '\\' {
			// Consume '\' plus the escaped byte; decoding happens later.
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanQuotedSymbol lexes a |...| symbol. SMT-LIB forbids '\' inside; we
// keep lexing but report it.
func (lx *Lexer) scanQuotedSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '|'
	sawBackslash := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '|' {
			sp := lx.cursor.SpanFrom(start)
			if sawBackslash {
				lx.errLex(diag.LexBadEscape, sp, "backslash inside quoted symbol")
			}
			return token.Token{Kind: token.Symbol, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			sawBackslash = true
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedQuoted, sp, "unterminated quoted symbol")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
