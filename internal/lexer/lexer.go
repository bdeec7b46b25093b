package lexer

import (
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/source"
	"smtfuzz/internal/token"
)

// Lexer produces SMT-LIB tokens over a single file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Dialect == dialect.Unknown {
		opts.Dialect = dialect.New
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Dialect returns the escape convention the lexer was configured with.
func (lx *Lexer) Dialect() dialect.Dialect {
	return lx.opts.Dialect
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next significant token with its leading trivia
// attached. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '(':
		tok = lx.scanPunct(token.LParen)
	case ch == ')':
		tok = lx.scanPunct(token.RParen)
	case ch == '"':
		tok = lx.scanString()
	case ch == '|':
		tok = lx.scanQuotedSymbol()
	case ch == ':':
		tok = lx.scanKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case isSymbolByte(ch) || ch >= 0x80:
		tok = lx.scanSymbol()
	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character")
		tok = token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanPunct(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
