package transform

import (
	"math/big"
	"math/rand"
	"strings"

	"smtfuzz/internal/ast"
)

// Multiply scales every literal in the tree: integer literals are
// multiplied arithmetically, string literals are repeated Factor times.
// A literal's class never changes.
//
// Factor 0 is defined: integers become 0, strings become "". Negative
// factors are a configuration error.
type Multiply struct {
	// Factor is the multiplier; default 2.
	Factor int
	// IncludeReRange also rewrites the bounds of re.range literals,
	// which usually produces multi-character bounds most solvers reject.
	IncludeReRange bool
}

func (Multiply) Op() Op { return OpMultiply }

func (m Multiply) Validate() error {
	if m.Factor < 0 {
		return &ConfigError{Op: OpMultiply, Field: "factor", Msg: "must be >= 0"}
	}
	return nil
}

func (m Multiply) Apply(nodes []*ast.Node, _ *rand.Rand) []*ast.Node {
	out := ast.CloneSeq(nodes)
	factor := big.NewInt(int64(m.Factor))
	ast.WalkSeq(out, func(n *ast.Node) bool {
		if n.Class == ast.ClassReRange && !m.IncludeReRange {
			return false
		}
		switch n.Class {
		case ast.ClassInt:
			// Integer literals can exceed 64 bits, so scale as bignums.
			if v, ok := new(big.Int).SetString(n.Symbol, 10); ok {
				n.Symbol = v.Mul(v, factor).String()
			}
		case ast.ClassString:
			n.Symbol = strings.Repeat(n.Symbol, m.Factor)
		}
		return true
	})
	return out
}
