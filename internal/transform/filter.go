package transform

import (
	"smtfuzz/internal/ast"
	"smtfuzz/internal/parser"
)

// queryDenylist names expression heads that request solver output; they
// are meaningless once the problem has been mutated and resubmitted.
var queryDenylist = map[string]struct{}{
	"get-model":      {},
	"get-value":      {},
	"get-info":       {},
	"get-assignment": {},
	"get-unsat-core": {},
	"get-proof":      {},
	"get-assertions": {},
	"echo":           {},
}

// ShouldKeep decides whether a top-level node survives filtering.
// Settings never do. Meta commands are dropped except declarations, which
// the translate operator must be able to rewrite. Query expressions on
// the denylist are dropped; everything else stays.
func ShouldKeep(n *ast.Node) bool {
	switch n.Kind {
	case ast.NodeSetting:
		return false
	case ast.NodeMeta:
		return parser.IsDeclaration(n.Symbol)
	default:
		_, denied := queryDenylist[n.Symbol]
		return !denied
	}
}

// Filter drops the nodes a transformer should never see. It is
// idempotent and preserves the order of survivors. The nop operator
// bypasses it entirely.
func Filter(nodes []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, 0, len(nodes))
	for _, n := range nodes {
		if ShouldKeep(n) {
			out = append(out, n)
		}
	}
	return out
}
