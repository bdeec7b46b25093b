package transform

import "testing"

const filterSrc = `(set-logic QF_S)
(set-option :produce-models true)
(declare-fun x () String)
(declare-const n Int)
(assert (= (str.len x) 3))
(check-sat)
(get-model)
(echo "done")
`

func TestFilterKeepsDeclarationsAndAsserts(t *testing.T) {
	nodes := parseForms(t, filterSrc)
	got := render(Filter(nodes))
	want := "(declare-fun x () String)\n" +
		"(declare-const n Int)\n" +
		"(assert (= (str.len x) 3))\n"
	if got != want {
		t.Fatalf("filter output:\n%s\nwant:\n%s", got, want)
	}
}

func TestFilterIdempotent(t *testing.T) {
	nodes := parseForms(t, filterSrc)
	once := Filter(nodes)
	twice := Filter(once)
	if len(once) != len(twice) {
		t.Fatalf("second filter dropped nodes: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("second filter replaced node %d", i)
		}
	}
}

func TestShouldKeep(t *testing.T) {
	tests := []struct {
		src  string
		keep bool
	}{
		{"(set-logic QF_S)", false},
		{"(set-info :status sat)", false},
		{"(declare-fun x () String)", true},
		{"(define-fun y () Int 1)", true},
		{"(declare-sort Pair 2)", true},
		{"(check-sat)", false},
		{"(push 1)", false},
		{"(exit)", false},
		{"(get-model)", false},
		{"(get-value (x))", false},
		{`(echo "hi")`, false},
		{"(assert true)", true},
		{"(maximize n)", true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			nodes := parseForms(t, tt.src)
			if len(nodes) != 1 {
				t.Fatalf("want 1 node, got %d", len(nodes))
			}
			if got := ShouldKeep(nodes[0]); got != tt.keep {
				t.Fatalf("ShouldKeep = %v, want %v", got, tt.keep)
			}
		})
	}
}
