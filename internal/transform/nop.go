package transform

import (
	"math/rand"

	"smtfuzz/internal/ast"
)

// Nop returns its input untouched. It is the one operator the driver
// never filters for, so a nop run reproduces the whole problem modulo
// re-lexing.
type Nop struct{}

func (Nop) Op() Op { return OpNop }

func (Nop) Validate() error { return nil }

func (Nop) Apply(nodes []*ast.Node, _ *rand.Rand) []*ast.Node {
	return nodes
}
