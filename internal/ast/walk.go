package ast

// Walk calls fn for n and every node below it, parents before children,
// siblings in order. fn returning false prunes the subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// WalkSeq walks every tree of a top-level sequence in order.
func WalkSeq(nodes []*Node, fn func(*Node) bool) {
	for _, n := range nodes {
		Walk(n, fn)
	}
}

// Count returns the number of nodes in the sequence satisfying pred.
func Count(nodes []*Node, pred func(*Node) bool) int {
	total := 0
	WalkSeq(nodes, func(n *Node) bool {
		if pred(n) {
			total++
		}
		return true
	})
	return total
}
