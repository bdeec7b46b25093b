package transform

import (
	"testing"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/lexer"
	"smtfuzz/internal/parser"
	"smtfuzz/internal/printer"
	"smtfuzz/internal/source"
)

func parseForms(t *testing.T, src string) []*ast.Node {
	t.Helper()
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("test.smt2", []byte(src))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fileSet.Get(id), lexer.Options{Dialect: dialect.New, Reporter: reporter})
	res := parser.ParseFile(lx, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		first, _ := bag.FirstError()
		t.Fatalf("parse failed: %s", first.Message)
	}
	return res.Nodes
}

func render(nodes []*ast.Node) string {
	return string(printer.Print(nodes, dialect.New))
}
