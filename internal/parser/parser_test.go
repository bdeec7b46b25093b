package parser

import (
	"testing"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/lexer"
	"smtfuzz/internal/source"
	"smtfuzz/internal/testkit"
)

func parseText(t *testing.T, input string, d dialect.Dialect) ([]*ast.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.smt2", []byte(input))
	bag := diag.NewBag(32)
	lx := lexer.New(fs.Get(id), lexer.Options{Dialect: d, Reporter: diag.BagReporter{Bag: bag}})
	res := ParseFile(lx, Options{MaxErrors: 32, Reporter: diag.BagReporter{Bag: bag}})
	return res.Nodes, bag
}

func mustParse(t *testing.T, input string, d dialect.Dialect) []*ast.Node {
	t.Helper()
	nodes, bag := parseText(t, input, d)
	if bag.HasErrors() {
		t.Fatalf("parse errors for %q: %+v", input, bag.Items())
	}
	return nodes
}

func TestParse_Classification(t *testing.T) {
	input := `(set-logic QF_S)
(set-info :smt-lib-version 2.6)
(declare-fun x () String)
(assert (= (str.len x) 3))
(check-sat)
(get-model)
`
	nodes := mustParse(t, input, dialect.New)
	if len(nodes) != 6 {
		t.Fatalf("got %d top-level nodes, want 6", len(nodes))
	}

	wantKinds := []ast.NodeKind{
		ast.NodeSetting, ast.NodeSetting, ast.NodeMeta,
		ast.NodeExpr, ast.NodeMeta, ast.NodeExpr,
	}
	for i, k := range wantKinds {
		if nodes[i].Kind != k {
			t.Fatalf("node %d kind = %v, want %v", i, nodes[i].Kind, k)
		}
	}

	if nodes[2].Symbol != "declare-fun" {
		t.Fatalf("declaration symbol = %q", nodes[2].Symbol)
	}
	if nodes[5].Symbol != "get-model" {
		t.Fatalf("query symbol = %q", nodes[5].Symbol)
	}
}

func TestParse_ExpressionShape(t *testing.T) {
	nodes := mustParse(t, "(assert (= (str.len x) 3))", dialect.New)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}

	assert := nodes[0]
	if assert.Symbol != "assert" || assert.Arity() != 1 {
		t.Fatalf("assert node = %+v", assert)
	}
	eq := assert.Children[0]
	if eq.Symbol != "=" || eq.Arity() != 2 {
		t.Fatalf("eq node = %+v", eq)
	}
	strlen := eq.Children[0]
	if strlen.Symbol != "str.len" || strlen.Arity() != 1 {
		t.Fatalf("str.len node = %+v", strlen)
	}
	lit := eq.Children[1]
	if lit.Class != ast.ClassInt || lit.Symbol != "3" {
		t.Fatalf("literal node = %+v", lit)
	}
}

func TestParse_OldDialectFoldsToCanonical(t *testing.T) {
	oldNodes := mustParse(t, `(assert (RegexIn x (Str2Reg "ab")))`, dialect.Old)
	newNodes := mustParse(t, `(assert (str.in.re x (str.to.re "ab")))`, dialect.New)

	if !ast.EqualSeq(oldNodes, newNodes) {
		t.Fatalf("old and new dialect parses differ structurally")
	}

	coerce := oldNodes[0].Children[0].Children[1]
	if coerce.Class != ast.ClassStrToRe {
		t.Fatalf("Str2Reg class = %v, want StrToRe", coerce.Class)
	}
}

func TestParse_ReRangeClass(t *testing.T) {
	nodes := mustParse(t, `(assert (str.in.re x (re.range "a" "z")))`, dialect.New)
	rng := nodes[0].Children[0].Children[1]
	if rng.Class != ast.ClassReRange {
		t.Fatalf("re.range class = %v, want ReRange", rng.Class)
	}
	if rng.Children[0].Class != ast.ClassString || rng.Children[0].Symbol != "a" {
		t.Fatalf("range lower bound = %+v", rng.Children[0])
	}

	// Wrong arity leaves the node untagged.
	nodes = mustParse(t, `(assert (re.range "a"))`, dialect.New)
	if nodes[0].Children[0].Class != ast.ClassSymbol {
		t.Fatalf("unary re.range should stay a plain application")
	}
}

func TestParse_HeadlessGroups(t *testing.T) {
	nodes := mustParse(t, `(define-fun f ((a String)) Bool (= a "x"))`, dialect.New)
	def := nodes[0]
	if def.Kind != ast.NodeMeta || def.Arity() != 4 {
		t.Fatalf("define-fun node = %+v", def)
	}
	params := def.Children[1]
	if params.Symbol != "" || params.Arity() != 1 {
		t.Fatalf("parameter group = %+v", params)
	}
	if params.Children[0].Symbol != "a" {
		t.Fatalf("parameter binding head = %+v", params.Children[0])
	}

	// Empty sort list in declarations.
	nodes = mustParse(t, `(declare-fun x () String)`, dialect.New)
	if empty := nodes[0].Children[1]; empty.Symbol != "" || empty.Arity() != 0 {
		t.Fatalf("empty sort list = %+v", empty)
	}
}

func TestParse_StringDecoding(t *testing.T) {
	nodes := mustParse(t, `(assert (= x "a""b"))`, dialect.New)
	lit := nodes[0].Children[0].Children[1]
	if lit.Class != ast.ClassString || lit.Symbol != `a"b` {
		t.Fatalf("decoded literal = %+v", lit)
	}

	nodes = mustParse(t, `(assert (= x "a\"b"))`, dialect.Old)
	lit = nodes[0].Children[0].Children[1]
	if lit.Symbol != `a"b` {
		t.Fatalf("old dialect decoded literal = %+v", lit)
	}
}

func TestParse_SpanInvariants(t *testing.T) {
	input := `(set-logic QF_S)
(declare-fun x () String)
(assert (str.in.re x (re.++ (str.to.re "a") (re.range "0" "9"))))
(check-sat)
`
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.smt2", []byte(input))
	bag := diag.NewBag(32)
	lx := lexer.New(fs.Get(id), lexer.Options{Dialect: dialect.New, Reporter: diag.BagReporter{Bag: bag}})
	res := ParseFile(lx, Options{MaxErrors: 32, Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %+v", bag.Items())
	}
	if err := testkit.CheckSpanInvariants(res.Nodes, fs.Get(id)); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{name: "unmatched close", input: "(check-sat))", code: diag.SynUnexpectedRParen},
		{name: "unclosed open", input: "(assert (= x y)", code: diag.SynUnclosedParen},
		{name: "top-level atom", input: "assert", code: diag.SynUnexpectedTopLevel},
		{name: "headless top form", input: "((x))", code: diag.SynExpectSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseText(t, tt.input, dialect.New)
			d, ok := bag.FirstError()
			if !ok {
				t.Fatalf("expected parse error for %q", tt.input)
			}
			if d.Code != tt.code {
				t.Fatalf("code = %v, want %v (items %+v)", d.Code, tt.code, bag.Items())
			}
		})
	}
}

func TestParse_ErrorPositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.smt2", []byte("(check-sat)\n)\n"))
	bag := diag.NewBag(8)
	lx := lexer.New(fs.Get(id), lexer.Options{Dialect: dialect.New, Reporter: diag.BagReporter{Bag: bag}})
	ParseFile(lx, Options{Reporter: diag.BagReporter{Bag: bag}})

	d, ok := bag.FirstError()
	if !ok {
		t.Fatalf("expected error")
	}
	start, _ := fs.Resolve(d.Primary)
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("error at %d:%d, want 2:1", start.Line, start.Col)
	}
}
