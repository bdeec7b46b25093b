package transform

import (
	"math/rand"
	"strings"
	"testing"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/testkit"
)

const fuzzSrc = `(declare-fun x () String)
(assert (= (str.len x) 3))
(assert (str.contains (str.++ x "abc") "b"))
(assert (str.in.re x (re.range "a" "f")))
`

func TestFuzzDeterministic(t *testing.T) {
	nodes := parseForms(t, fuzzSrc)
	a := render(Fuzz{}.Apply(nodes, rand.New(rand.NewSource(5))))
	b := render(Fuzz{}.Apply(nodes, rand.New(rand.NewSource(5))))
	if a != b {
		t.Fatalf("same seed produced different corruption:\n%s\nvs\n%s", a, b)
	}
}

func TestFuzzPreservesShape(t *testing.T) {
	nodes := parseForms(t, fuzzSrc)
	before := render(nodes)
	for seed := int64(0); seed < 16; seed++ {
		out := Fuzz{}.Apply(nodes, rand.New(rand.NewSource(seed)))
		if len(out) != len(nodes) {
			t.Fatalf("seed %d changed top-level count", seed)
		}
		for i := range out {
			if out[i].Kind != nodes[i].Kind {
				t.Fatalf("seed %d changed node kind at %d", seed, i)
			}
		}
		testkit.CheckForest(t, out)
		testkit.CheckDisjoint(t, nodes, out)
	}
	if render(nodes) != before {
		t.Fatalf("input forest was mutated")
	}
}

func TestFuzzSkipsRangeBounds(t *testing.T) {
	src := `(assert (str.in.re x (re.range "a" "f")))`
	nodes := parseForms(t, src)
	for seed := int64(0); seed < 16; seed++ {
		out := Fuzz{}.Apply(nodes, rand.New(rand.NewSource(seed)))
		rng := findRange(out)
		if rng == nil {
			t.Fatalf("seed %d lost the re.range node:\n%s", seed, render(out))
		}
		if rng.Children[0].Symbol != "a" || rng.Children[1].Symbol != "f" {
			t.Fatalf("seed %d corrupted range bounds:\n%s", seed, render(out))
		}
	}
}

func findRange(nodes []*ast.Node) *ast.Node {
	var found *ast.Node
	ast.WalkSeq(nodes, func(n *ast.Node) bool {
		if n.Class == ast.ClassReRange {
			found = n
			return false
		}
		return true
	})
	return found
}

func TestFuzzEventuallyMutates(t *testing.T) {
	nodes := parseForms(t, fuzzSrc)
	before := render(nodes)
	for seed := int64(0); seed < 64; seed++ {
		if render(Fuzz{}.Apply(nodes, rand.New(rand.NewSource(seed)))) != before {
			return
		}
	}
	t.Fatalf("no seed out of 64 produced a visible mutation")
}

func TestUnprintableInjectsOneControlByte(t *testing.T) {
	nodes := parseForms(t, fuzzSrc)
	out := Unprintable{}.Apply(nodes, rand.New(rand.NewSource(13)))
	checked := 0
	ast.WalkSeq(out, func(n *ast.Node) bool {
		if n.Class == ast.ClassReRange {
			return false
		}
		if n.Class != ast.ClassString {
			return true
		}
		checked++
		if strings.IndexFunc(n.Symbol, func(r rune) bool { return r < 0x20 }) < 0 {
			t.Fatalf("string %q has no control byte", n.Symbol)
		}
		return true
	})
	if checked != 2 {
		t.Fatalf("checked %d string literals, want 2", checked)
	}
}

func TestUnprintableSkipsRangeBounds(t *testing.T) {
	nodes := parseForms(t, fuzzSrc)
	out := Unprintable{}.Apply(nodes, rand.New(rand.NewSource(13)))
	rng := findRange(out)
	if rng == nil {
		t.Fatalf("re.range node lost")
	}
	if rng.Children[0].Symbol != "a" || rng.Children[1].Symbol != "f" {
		t.Fatalf("unprintable touched range bounds: %q %q",
			rng.Children[0].Symbol, rng.Children[1].Symbol)
	}
}

func TestUnprintableRendersEscaped(t *testing.T) {
	nodes := parseForms(t, `(assert (= x "ab"))`)
	out := Unprintable{}.Apply(nodes, rand.New(rand.NewSource(2)))
	if got := render(out); !strings.Contains(got, `\x`) {
		t.Fatalf("control byte not hex-escaped in output: %q", got)
	}
}

func TestDefaultOperatorsAreDeterministic(t *testing.T) {
	nodes := parseForms(t, fuzzSrc)
	for _, op := range Ops() {
		t.Run(op.String(), func(t *testing.T) {
			tr := Default(op)
			if err := tr.Validate(); err != nil {
				t.Fatalf("default options invalid: %v", err)
			}
			a := render(tr.Apply(nodes, rand.New(rand.NewSource(77))))
			b := render(tr.Apply(nodes, rand.New(rand.NewSource(77))))
			if a != b {
				t.Fatalf("same seed produced different output:\n%s\nvs\n%s", a, b)
			}
		})
	}
}
