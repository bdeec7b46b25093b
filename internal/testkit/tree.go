// Package testkit holds invariant checkers shared by tests across the
// repo. Production code must not import it.
package testkit

import (
	"testing"

	"smtfuzz/internal/ast"
)

// CheckForest fails when any node is reachable through two different
// paths. Operators that rewrite trees must hand back forests with
// exclusive ownership, otherwise a later in-place edit corrupts a
// sibling.
func CheckForest(t *testing.T, nodes []*ast.Node) {
	t.Helper()
	seen := make(map[*ast.Node]bool)
	for _, n := range nodes {
		checkNode(t, n, seen)
	}
}

func checkNode(t *testing.T, n *ast.Node, seen map[*ast.Node]bool) {
	t.Helper()
	if n == nil {
		t.Fatalf("nil node in tree")
	}
	if seen[n] {
		t.Fatalf("node %q reachable twice", n.Symbol)
	}
	seen[n] = true
	for _, c := range n.Children {
		checkNode(t, c, seen)
	}
}

// CheckDisjoint fails when the two forests share a node. Clone-based
// operators must never leak input nodes into their output.
func CheckDisjoint(t *testing.T, a, b []*ast.Node) {
	t.Helper()
	inA := make(map[*ast.Node]bool)
	for _, n := range a {
		ast.Walk(n, func(n *ast.Node) bool {
			inA[n] = true
			return true
		})
	}
	for _, n := range b {
		ast.Walk(n, func(n *ast.Node) bool {
			if inA[n] {
				t.Fatalf("forests share node %q", n.Symbol)
			}
			return true
		})
	}
}
