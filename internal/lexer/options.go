package lexer

import (
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/source"
)

type Options struct {
	// Dialect selects the string-literal escape convention. Zero value
	// lexes as the new dialect.
	Dialect dialect.Dialect
	// Reporter may be nil; errors are then dropped but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
