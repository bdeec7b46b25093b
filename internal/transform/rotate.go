package transform

import (
	"math/rand"

	"smtfuzz/internal/ast"
)

// Rotate cyclically shifts the top-level sequence by a random offset in
// [0, len). Empty and singleton sequences are returned as-is without
// consuming randomness, so they stay no-ops under any seed.
type Rotate struct{}

func (Rotate) Op() Op { return OpRotate }

func (Rotate) Validate() error { return nil }

func (Rotate) Apply(nodes []*ast.Node, rng *rand.Rand) []*ast.Node {
	if len(nodes) < 2 {
		return nodes
	}
	k := rng.Intn(len(nodes))
	out := make([]*ast.Node, 0, len(nodes))
	out = append(out, nodes[k:]...)
	out = append(out, nodes[:k]...)
	return out
}
