package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen

	// Symbol is a simple or |quoted| SMT-LIB symbol.
	Symbol
	// Keyword is a ':'-prefixed attribute keyword, e.g. ':status'.
	Keyword
	// IntLit is a non-negative decimal numeral.
	IntLit
	// DecLit is a decimal fraction, e.g. '2.6' in set-info values.
	DecLit
	// StringLit is a double-quoted string literal, escapes undecoded.
	StringLit
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Symbol:
		return "Symbol"
	case Keyword:
		return "Keyword"
	case IntLit:
		return "IntLit"
	case DecLit:
		return "DecLit"
	case StringLit:
		return "StringLit"
	}
	return "Unknown"
}
