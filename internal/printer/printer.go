package printer

import (
	"smtfuzz/internal/ast"
	"smtfuzz/internal/dialect"
)

type printer struct {
	w Writer
	d dialect.Dialect
}

// Print serializes a top-level node sequence for dialect d, one form per
// line with a trailing newline.
func Print(nodes []*ast.Node, d dialect.Dialect) []byte {
	p := printer{d: d}
	for _, n := range nodes {
		p.printNode(n)
		p.w.WriteByte('\n')
	}
	return p.w.Bytes()
}

// PrintNode serializes a single node without a trailing newline.
func PrintNode(n *ast.Node, d dialect.Dialect) []byte {
	p := printer{d: d}
	p.printNode(n)
	return p.w.Bytes()
}

func (p *printer) printNode(n *ast.Node) {
	switch n.Kind {
	case ast.NodeSetting, ast.NodeMeta:
		p.printForm(n.Symbol, n.Children)
	case ast.NodeExpr:
		p.printExpr(n)
	}
}

func (p *printer) printExpr(n *ast.Node) {
	switch n.Class {
	case ast.ClassString:
		p.w.WriteByte('"')
		p.w.WriteString(dialect.EncodeStringBody(p.d, n.Symbol))
		p.w.WriteByte('"')
	case ast.ClassInt:
		p.w.WriteString(n.Symbol)
	default:
		// Atoms print bare; applications and headless groups print as
		// parenthesized forms.
		if len(n.Children) == 0 && n.Symbol != "" {
			p.printSymbol(dialect.Surface(p.d, n.Symbol))
			return
		}
		p.printForm(dialect.Surface(p.d, n.Symbol), n.Children)
	}
}

func (p *printer) printForm(head string, children []*ast.Node) {
	p.w.WriteByte('(')
	needSpace := false
	if head != "" {
		p.printSymbol(head)
		needSpace = true
	}
	for _, c := range children {
		if needSpace {
			p.w.WriteByte(' ')
		}
		p.printExprOrNode(c)
		needSpace = true
	}
	p.w.WriteByte(')')
}

// Nested settings/meta cannot occur in parser output, but printing them
// as forms keeps hand-built trees from producing garbage.
func (p *printer) printExprOrNode(n *ast.Node) {
	if n.Kind == ast.NodeExpr {
		p.printExpr(n)
		return
	}
	p.printForm(n.Symbol, n.Children)
}

func (p *printer) printSymbol(sym string) {
	if needsPipes(sym) {
		p.w.WriteByte('|')
		p.w.WriteString(sym)
		p.w.WriteByte('|')
		return
	}
	p.w.WriteString(sym)
}

// needsPipes reports whether a symbol must be |quoted| to survive
// re-lexing. Keywords, numerals, and simple symbols pass bare.
func needsPipes(sym string) bool {
	if sym == "" {
		return true
	}
	if sym[0] == ':' {
		return false
	}
	if isNumeral(sym) {
		return false
	}
	if sym[0] >= '0' && sym[0] <= '9' {
		return true
	}
	for i := 0; i < len(sym); i++ {
		if !isSimpleSymbolByte(sym[i]) {
			return true
		}
	}
	return false
}

// isNumeral matches the spellings the lexer produces for IntLit/DecLit.
func isNumeral(sym string) bool {
	dot := false
	for i := 0; i < len(sym); i++ {
		b := sym[i]
		if b == '.' {
			if dot || i == 0 || i == len(sym)-1 {
				return false
			}
			dot = true
			continue
		}
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

func isSimpleSymbolByte(b byte) bool {
	if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b >= 0x80 {
		return true
	}
	switch b {
	case '~', '!', '@', '$', '%', '^', '&', '*', '_', '-', '+', '=', '<', '>', '.', '?', '/':
		return true
	default:
		return false
	}
}
