package token

import (
	"smtfuzz/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, DecLit, StringLit:
		return true
	default:
		return false
	}
}

// IsAtom reports whether the token can stand alone as an expression atom.
func (t Token) IsAtom() bool {
	return t.Kind == Symbol || t.Kind == Keyword || t.IsLiteral()
}
