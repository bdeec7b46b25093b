package transform

import (
	"math/rand"

	"smtfuzz/internal/ast"
)

// Unprintable injects one random control byte (0x00..0x1f) at a random
// position into every string literal. The literal keeps its class; the
// printer later hex-escapes the byte, so the output file stays printable
// even though the solver sees a control character.
type Unprintable struct {
	// IncludeReRange also injects into re.range bounds, which turns
	// single-character bounds into two-byte ones.
	IncludeReRange bool
}

func (Unprintable) Op() Op { return OpUnprintable }

func (Unprintable) Validate() error { return nil }

func (u Unprintable) Apply(nodes []*ast.Node, rng *rand.Rand) []*ast.Node {
	out := ast.CloneSeq(nodes)
	ast.WalkSeq(out, func(n *ast.Node) bool {
		if n.Class == ast.ClassReRange && !u.IncludeReRange {
			return false
		}
		if n.Class == ast.ClassString {
			n.Symbol = injectControl(n.Symbol, rng)
		}
		return true
	})
	return out
}

func injectControl(s string, rng *rand.Rand) string {
	ctrl := byte(rng.Intn(0x20))
	at := rng.Intn(len(s) + 1)
	b := make([]byte, 0, len(s)+1)
	b = append(b, s[:at]...)
	b = append(b, ctrl)
	b = append(b, s[at:]...)
	return string(b)
}
