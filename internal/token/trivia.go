package token

import "smtfuzz/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "comment"
	}
	return "unknown"
}

// Trivia is whitespace or a ';' comment preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
