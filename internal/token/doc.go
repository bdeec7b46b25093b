// Package token defines lexical token kinds and trivia for SMT-LIB input.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments (';' to end of line) are represented as leading Trivia and
//     never appear in the main token stream.
//   - Built-in theory names (str.len, re.range, ...) are plain Symbol
//     tokens. They are recognized by the dialect layer, not the lexer.
package token
