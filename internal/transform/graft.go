package transform

import (
	"math/rand"

	"smtfuzz/internal/ast"
)

// Graft replaces one randomly chosen expression slot with a copy of
// another randomly chosen subtree from the same forest. The donor is
// cloned before the recipient slot is rewritten, so donor and recipient
// may overlap structurally without ever sharing nodes.
type Graft struct {
	// IncludeStrToRe allows string-to-regex coercion nodes to act as
	// donor or recipient. Off by default: swapping a coercion for an
	// arbitrary expression almost always changes the sort.
	IncludeStrToRe bool
}

func (Graft) Op() Op { return OpGraft }

func (Graft) Validate() error { return nil }

// slot addresses one child position inside a parent application.
type slot struct {
	parent *ast.Node
	idx    int
}

func (g Graft) Apply(nodes []*ast.Node, rng *rand.Rand) []*ast.Node {
	out := ast.CloneSeq(nodes)
	slots := g.collectSlots(out)
	if len(slots) < 2 {
		return out
	}

	donor := slots[rng.Intn(len(slots))]
	graft := donor.parent.Children[donor.idx].Clone()

	recipient := slots[rng.Intn(len(slots))]
	if recipient == donor {
		// Grafting a subtree onto itself is a guaranteed no-op; take the
		// next slot instead so the operator always changes something.
		for i, s := range slots {
			if s == donor {
				recipient = slots[(i+1)%len(slots)]
				break
			}
		}
	}

	recipient.parent.Children[recipient.idx] = graft
	return out
}

// collectSlots gathers every eligible child position across the
// top-level expression trees. Settings and meta commands (declarations)
// are not graft territory: rewriting them breaks the problem's frame.
func (g Graft) collectSlots(nodes []*ast.Node) []slot {
	var slots []slot
	for _, top := range nodes {
		if top.Kind != ast.NodeExpr {
			continue
		}
		ast.Walk(top, func(n *ast.Node) bool {
			if !g.IncludeStrToRe && n.Class == ast.ClassStrToRe {
				return true // children may still host deeper slots
			}
			for i, c := range n.Children {
				if c.Kind != ast.NodeExpr {
					continue
				}
				if !g.IncludeStrToRe && c.Class == ast.ClassStrToRe {
					continue
				}
				slots = append(slots, slot{parent: n, idx: i})
			}
			return true
		})
	}
	return slots
}
