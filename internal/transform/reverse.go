package transform

import (
	"math/rand"

	"smtfuzz/internal/ast"
)

// Reverse flips the order of the top-level sequence. Subtrees are shared,
// not copied: the operator never writes through them.
type Reverse struct{}

func (Reverse) Op() Op { return OpReverse }

func (Reverse) Validate() error { return nil }

func (Reverse) Apply(nodes []*ast.Node, _ *rand.Rand) []*ast.Node {
	out := make([]*ast.Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
