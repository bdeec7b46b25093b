package parser

import (
	"smtfuzz/internal/ast"
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/lexer"
	"smtfuzz/internal/source"
	"smtfuzz/internal/token"
)

type Options struct {
	// MaxErrors stops the parser after this many errors; 0 means no limit.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Nodes []*ast.Node
	Bag   *diag.Bag
}

// Parser holds the state for one problem file.
type Parser struct {
	lx       *lexer.Lexer
	d        dialect.Dialect
	opts     Options
	lastSpan source.Span
}

// ParseFile parses a whole problem into a top-level node sequence.
// The dialect comes from the lexer so both layers agree on escaping.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		d:        lx.Dialect(),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	nodes := p.parseTopLevel()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Nodes: nodes, Bag: bag}
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}

func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) parseTopLevel() []*ast.Node {
	var nodes []*ast.Node
	for !p.opts.Enough() {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return nodes
		case token.LParen:
			if n := p.parseForm(); n != nil {
				nodes = append(nodes, n)
			}
		case token.RParen:
			p.next()
			p.err(diag.SynUnexpectedRParen, tok.Span, "unmatched ')'")
		default:
			p.next()
			p.err(diag.SynUnexpectedTopLevel, tok.Span,
				"expected '(' at top level, got "+tok.Kind.String())
		}
	}
	return nodes
}

// parseForm parses one top-level '(' ... ')' and classifies it as a
// setting, meta command, or expression.
func (p *Parser) parseForm() *ast.Node {
	open := p.next() // '('
	head := p.lx.Peek()

	if head.Kind != token.Symbol {
		// Headless top-level lists are unknown forms, not expressions.
		p.err(diag.SynExpectSymbol, head.Span, "expected command symbol after '('")
		p.skipToClose()
		return nil
	}
	p.next()
	name := symbolText(head.Text)

	args := p.parseArgs()
	closeSpan := p.expectClose(open.Span)
	span := open.Span.Cover(closeSpan)

	switch {
	case isSetting(name):
		return ast.NewSetting(name, args, span)
	case isMetaCommand(name):
		return ast.NewMeta(name, args, span)
	default:
		return p.classify(dialect.Canonical(p.d, name), args, span)
	}
}

// parseArgs consumes expressions until ')' or EOF.
func (p *Parser) parseArgs() []*ast.Node {
	var args []*ast.Node
	for !p.opts.Enough() {
		tok := p.lx.Peek()
		if tok.Kind == token.RParen || tok.Kind == token.EOF {
			return args
		}
		if n := p.parseExpr(); n != nil {
			args = append(args, n)
		}
	}
	return args
}

// parseExpr parses a nested expression: an atom or a list.
func (p *Parser) parseExpr() *ast.Node {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LParen:
		return p.parseList()
	case token.Symbol:
		p.next()
		return ast.NewSymbol(dialect.Canonical(p.d, symbolText(tok.Text)), tok.Span)
	case token.Keyword, token.DecLit:
		p.next()
		return ast.NewSymbol(tok.Text, tok.Span)
	case token.IntLit:
		p.next()
		return ast.NewInt(tok.Text, tok.Span)
	case token.StringLit:
		p.next()
		body := tok.Text[1 : len(tok.Text)-1]
		return ast.NewString(dialect.DecodeStringBody(p.d, body), tok.Span)
	default:
		p.next()
		p.err(diag.SynUnexpectedToken, tok.Span, "unexpected "+tok.Kind.String())
		return nil
	}
}

// parseList parses '(' ... ')' in expression position. A leading symbol
// becomes the application head; otherwise the list is a bare group
// (parameter lists, empty sort lists) with an empty head.
func (p *Parser) parseList() *ast.Node {
	open := p.next() // '('
	var name string
	if head := p.lx.Peek(); head.Kind == token.Symbol {
		p.next()
		name = dialect.Canonical(p.d, symbolText(head.Text))
	}
	args := p.parseArgs()
	closeSpan := p.expectClose(open.Span)
	return p.classify(name, args, open.Span.Cover(closeSpan))
}

// classify tags regex-range and string-to-regex applications when their
// shape matches; everything else stays a plain symbol application.
func (p *Parser) classify(name string, args []*ast.Node, span source.Span) *ast.Node {
	n := ast.NewApp(name, args, span)
	switch {
	case name == dialect.ReRangeSymbol && len(args) == 2:
		n.Class = ast.ClassReRange
	case name == dialect.StrToReSymbol && len(args) == 1:
		n.Class = ast.ClassStrToRe
	}
	return n
}

func (p *Parser) expectClose(openSpan source.Span) source.Span {
	tok := p.lx.Peek()
	if tok.Kind == token.RParen {
		p.next()
		return tok.Span
	}
	p.err(diag.SynUnclosedParen, openSpan, "unclosed '('")
	return p.lastSpan
}

// skipToClose discards tokens up to and including the matching ')'.
func (p *Parser) skipToClose() {
	depth := 1
	for depth > 0 {
		tok := p.next()
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.EOF:
			return
		}
	}
}

// symbolText strips the pipes from a |quoted| symbol.
func symbolText(text string) string {
	if len(text) >= 2 && text[0] == '|' && text[len(text)-1] == '|' {
		return text[1 : len(text)-1]
	}
	return text
}

func isSetting(name string) bool {
	switch name {
	case "set-logic", "set-option", "set-info":
		return true
	default:
		return false
	}
}

func isMetaCommand(name string) bool {
	switch name {
	case "check-sat", "check-sat-using", "push", "pop", "exit", "reset",
		"reset-assertions",
		"declare-fun", "declare-const", "define-fun", "declare-sort", "define-sort":
		return true
	default:
		return false
	}
}

// IsDeclaration reports whether a meta command introduces symbols.
func IsDeclaration(name string) bool {
	switch name {
	case "declare-fun", "declare-const", "define-fun", "declare-sort":
		return true
	default:
		return false
	}
}
