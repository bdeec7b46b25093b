package ast

import (
	"smtfuzz/internal/source"
)

// NodeKind discriminates the three top-level node shapes.
type NodeKind uint8

const (
	// NodeSetting is a solver configuration directive:
	// set-logic, set-option, set-info.
	NodeSetting NodeKind = iota
	// NodeMeta is a structural directive: check-sat, push/pop, exit,
	// reset, and symbol declarations.
	NodeMeta
	// NodeExpr is everything else: applications, literals, bare symbols.
	NodeExpr
)

func (k NodeKind) String() string {
	switch k {
	case NodeSetting:
		return "Setting"
	case NodeMeta:
		return "Meta"
	case NodeExpr:
		return "Expr"
	}
	return "Unknown"
}

// ExprClass refines NodeExpr nodes.
type ExprClass uint8

const (
	// ClassSymbol is a bare symbol or an application headed by one.
	ClassSymbol ExprClass = iota
	// ClassString is a string literal; Symbol holds the decoded contents.
	ClassString
	// ClassInt is an integer literal; Symbol holds the decimal text.
	ClassInt
	// ClassReRange is a two-argument character-range regex literal.
	ClassReRange
	// ClassStrToRe is a single-argument string-to-regex coercion.
	ClassStrToRe
)

func (c ExprClass) String() string {
	switch c {
	case ClassSymbol:
		return "Symbol"
	case ClassString:
		return "String"
	case ClassInt:
		return "Int"
	case ClassReRange:
		return "ReRange"
	case ClassStrToRe:
		return "StrToRe"
	}
	return "Unknown"
}

// Node is one vertex of the problem tree.
//
// Symbol holds the canonical operator/command name for applications and
// meta commands, the setting name for settings, the decoded contents for
// string literals, and the decimal text for integer literals.
type Node struct {
	Kind     NodeKind
	Class    ExprClass
	Symbol   string
	Children []*Node
	Span     source.Span
}

// NewSetting builds a setting node; args are the raw setting arguments.
func NewSetting(name string, args []*Node, span source.Span) *Node {
	return &Node{Kind: NodeSetting, Symbol: name, Children: args, Span: span}
}

// NewMeta builds a meta-command node.
func NewMeta(command string, args []*Node, span source.Span) *Node {
	return &Node{Kind: NodeMeta, Symbol: command, Children: args, Span: span}
}

// NewApp builds an application of a symbol to zero or more children.
func NewApp(symbol string, children []*Node, span source.Span) *Node {
	return &Node{Kind: NodeExpr, Class: ClassSymbol, Symbol: symbol, Children: children, Span: span}
}

// NewSymbol builds a bare symbol atom.
func NewSymbol(symbol string, span source.Span) *Node {
	return &Node{Kind: NodeExpr, Class: ClassSymbol, Symbol: symbol, Span: span}
}

// NewString builds a string literal from decoded contents.
func NewString(contents string, span source.Span) *Node {
	return &Node{Kind: NodeExpr, Class: ClassString, Symbol: contents, Span: span}
}

// NewInt builds an integer literal from its decimal text.
func NewInt(text string, span source.Span) *Node {
	return &Node{Kind: NodeExpr, Class: ClassInt, Symbol: text, Span: span}
}

// IsLiteral reports whether the node is a string or integer literal.
func (n *Node) IsLiteral() bool {
	return n.Kind == NodeExpr && (n.Class == ClassString || n.Class == ClassInt)
}

// Arity returns the number of children.
func (n *Node) Arity() int {
	return len(n.Children)
}

// Clone returns a fully independent deep copy of the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:   n.Kind,
		Class:  n.Class,
		Symbol: n.Symbol,
		Span:   n.Span,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// CloneSeq deep-copies a top-level node sequence.
func CloneSeq(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Equal reports structural equality, ignoring spans.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Class != other.Class || n.Symbol != other.Symbol {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// EqualSeq reports structural equality of two sequences, ignoring spans.
func EqualSeq(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
