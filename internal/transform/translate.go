package transform

import (
	"math/rand"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/parser"
)

// Translate consistently renames every user-declared symbol to a fresh
// random name. Each declared name maps to exactly one fresh name, and
// every occurrence of it, including the declaration itself, is rewritten.
// Builtins are never renamed.
type Translate struct {
	// RenameInts also renames symbols whose declared result sort is Int.
	// Off by default: integer constants often carry bounds the rest of
	// the problem depends on by name.
	RenameInts bool
	// IncludeReRange also rewrites symbol occurrences inside re.range
	// applications. Off by default for symmetry with the other operators;
	// range bounds are string literals, so this rarely matters.
	IncludeReRange bool
}

func (Translate) Op() Op { return OpTranslate }

func (Translate) Validate() error { return nil }

func (t Translate) Apply(nodes []*ast.Node, rng *rand.Rand) []*ast.Node {
	out := ast.CloneSeq(nodes)

	taken := make(map[string]bool)
	ast.WalkSeq(out, func(n *ast.Node) bool {
		if n.Class == ast.ClassSymbol && n.Symbol != "" {
			taken[n.Symbol] = true
		}
		return true
	})

	renames := make(map[string]string)
	for _, top := range out {
		if top.Kind != ast.NodeMeta || !parser.IsDeclaration(top.Symbol) {
			continue
		}
		name := declaredName(top)
		if name == "" || dialect.Builtin(name) {
			continue
		}
		if _, done := renames[name]; done {
			continue
		}
		if !t.RenameInts && resultSort(top) == "Int" {
			continue
		}
		renames[name] = freshName(rng, taken)
	}
	if len(renames) == 0 {
		return out
	}

	ast.WalkSeq(out, func(n *ast.Node) bool {
		if n.Class == ast.ClassReRange && !t.IncludeReRange {
			return false
		}
		if n.Class == ast.ClassSymbol {
			if fresh, ok := renames[n.Symbol]; ok {
				n.Symbol = fresh
			}
		}
		return true
	})
	return out
}

// declaredName extracts the symbol a declaration introduces: the first
// argument of declare-fun, declare-const, define-fun, and declare-sort.
func declaredName(meta *ast.Node) string {
	if len(meta.Children) == 0 {
		return ""
	}
	first := meta.Children[0]
	if first.Class != ast.ClassSymbol {
		return ""
	}
	return first.Symbol
}

// resultSort returns the declared result sort symbol, or "" when the
// declaration has no recognizable sort position.
func resultSort(meta *ast.Node) string {
	var pos int
	switch meta.Symbol {
	case "declare-const":
		pos = 1
	case "declare-fun", "define-fun":
		pos = 2
	default:
		return ""
	}
	if pos >= len(meta.Children) {
		return ""
	}
	sort := meta.Children[pos]
	if sort.Class != ast.ClassSymbol {
		return ""
	}
	return sort.Symbol
}

const freshAlphabet = "abcdefghijklmnopqrstuvwxyz"

// freshName draws random lowercase names until one misses both the
// problem's symbols and the names already handed out, then claims it.
func freshName(rng *rand.Rand, taken map[string]bool) string {
	for {
		b := make([]byte, 8)
		for i := range b {
			b[i] = freshAlphabet[rng.Intn(len(freshAlphabet))]
		}
		name := string(b)
		if !taken[name] && !dialect.Builtin(name) {
			taken[name] = true
			return name
		}
	}
}
