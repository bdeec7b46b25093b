package ast

import (
	"smtfuzz/internal/source"
	"testing"
)

func sp() source.Span { return source.Span{} }

func sampleAssert() *Node {
	// (assert (= (str.len x) 3))
	return NewApp("assert", []*Node{
		NewApp("=", []*Node{
			NewApp("str.len", []*Node{NewSymbol("x", sp())}, sp()),
			NewInt("3", sp()),
		}, sp()),
	}, sp())
}

func TestClone_Independent(t *testing.T) {
	orig := sampleAssert()
	cp := orig.Clone()

	if !orig.Equal(cp) {
		t.Fatalf("clone is not structurally equal to original")
	}

	// Mutating the clone must not be visible through the original.
	cp.Children[0].Children[1].Symbol = "9"
	if orig.Children[0].Children[1].Symbol != "3" {
		t.Fatalf("clone shares literal storage with original")
	}

	cp.Children[0].Children = cp.Children[0].Children[:1]
	if len(orig.Children[0].Children) != 2 {
		t.Fatalf("clone shares child slice with original")
	}
}

func TestClone_Nil(t *testing.T) {
	var n *Node
	if n.Clone() != nil {
		t.Fatalf("Clone of nil must be nil")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{name: "identical trees", a: sampleAssert(), b: sampleAssert(), want: true},
		{name: "different literal", a: NewInt("3", sp()), b: NewInt("4", sp()), want: false},
		{name: "different class same text", a: NewInt("3", sp()), b: NewString("3", sp()), want: false},
		{name: "different kind", a: NewMeta("check-sat", nil, sp()), b: NewSymbol("check-sat", sp()), want: false},
		{name: "span ignored", a: NewSymbol("x", sp()), b: NewSymbol("x", source.Span{Start: 5, End: 6}), want: true},
		{name: "arity mismatch", a: NewApp("f", []*Node{NewSymbol("x", sp())}, sp()), b: NewApp("f", nil, sp()), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalk_OrderAndPrune(t *testing.T) {
	tree := sampleAssert()

	var order []string
	Walk(tree, func(n *Node) bool {
		order = append(order, n.Symbol)
		return true
	})
	want := []string{"assert", "=", "str.len", "x", "3"}
	if len(order) != len(want) {
		t.Fatalf("Walk visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", order, want)
		}
	}

	// Pruning at '=' must hide its children.
	var pruned []string
	Walk(tree, func(n *Node) bool {
		pruned = append(pruned, n.Symbol)
		return n.Symbol != "="
	})
	if len(pruned) != 2 {
		t.Fatalf("pruned walk visited %v, want [assert =]", pruned)
	}
}

func TestCount(t *testing.T) {
	seq := []*Node{sampleAssert(), NewMeta("check-sat", nil, sp())}
	lits := Count(seq, func(n *Node) bool { return n.IsLiteral() })
	if lits != 1 {
		t.Fatalf("Count literals = %d, want 1", lits)
	}
}
