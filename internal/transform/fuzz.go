package transform

import (
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"smtfuzz/internal/ast"
)

// Fuzz corrupts the tree at random: literals get new values, known
// operators get swapped for a same-arity sibling, and argument lists get
// shuffled pairs. Every decision comes from the caller's generator, so a
// seed reproduces the exact corruption.
type Fuzz struct {
	// IncludeReRange also corrupts re.range bounds. Off by default: a
	// multi-character or reordered bound makes the range trivially empty
	// or ill-formed, which drowns out more interesting mutations.
	IncludeReRange bool
}

func (Fuzz) Op() Op { return OpFuzz }

func (Fuzz) Validate() error { return nil }

// Substitution groups: operators that accept the same argument shape.
// re.range and str.to.re stay out; both carry a class tag the rest of
// the pipeline dispatches on.
var operatorKin = [][]string{
	{"re.++", "re.union", "re.inter"},
	{"re.*", "re.+", "re.opt"},
	{"str.prefixof", "str.suffixof", "str.contains"},
}

func (f Fuzz) Apply(nodes []*ast.Node, rng *rand.Rand) []*ast.Node {
	out := ast.CloneSeq(nodes)
	ast.WalkSeq(out, func(n *ast.Node) bool {
		if n.Class == ast.ClassReRange && !f.IncludeReRange {
			return false
		}
		switch n.Class {
		case ast.ClassInt:
			if rng.Intn(3) == 0 {
				n.Symbol = strconv.FormatInt(rng.Int63n(1<<16)-(1<<8), 10)
			}
		case ast.ClassString:
			if rng.Intn(3) == 0 {
				n.Symbol = mutateString(n.Symbol, rng)
			}
		default:
			if len(n.Children) > 0 {
				fuzzApplication(n, rng)
			}
		}
		return true
	})
	return out
}

func fuzzApplication(n *ast.Node, rng *rand.Rand) {
	if kin := kinOf(n.Symbol); kin != nil && rng.Intn(4) == 0 {
		pick := kin[rng.Intn(len(kin))]
		for pick == n.Symbol {
			pick = kin[rng.Intn(len(kin))]
		}
		n.Symbol = pick
	}
	if len(n.Children) >= 2 && rng.Intn(4) == 0 {
		i := rng.Intn(len(n.Children) - 1)
		n.Children[i], n.Children[i+1] = n.Children[i+1], n.Children[i]
	}
}

func kinOf(sym string) []string {
	for _, kin := range operatorKin {
		if len(kin) < 2 {
			continue
		}
		for _, s := range kin {
			if s == sym {
				return kin
			}
		}
	}
	return nil
}

// fuzzRunes mixes plain ASCII with letters that have combining forms, so
// normalization below has real work to do.
var fuzzRunes = []rune("abcxyz012 !?éüñàè")

// mutateString rewrites roughly half the runes of s and renormalizes the
// result to NFC, so the literal stays a canonically composed string no
// matter which code points the generator picked.
func mutateString(s string, rng *rand.Rand) string {
	runes := []rune(s)
	if len(runes) == 0 {
		runes = append(runes, fuzzRunes[rng.Intn(len(fuzzRunes))])
	}
	var b strings.Builder
	for _, r := range runes {
		if rng.Intn(2) == 0 {
			b.WriteRune(fuzzRunes[rng.Intn(len(fuzzRunes))])
		} else {
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}
