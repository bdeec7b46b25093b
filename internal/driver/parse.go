package driver

import (
	"fortio.org/safecast"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/lexer"
	"smtfuzz/internal/parser"
	"smtfuzz/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Nodes   []*ast.Node
	Bag     *diag.Bag
}

// Parse loads and parses one problem file from disk.
func Parse(path string, d dialect.Dialect, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, d, maxDiagnostics)
}

// ParseBytes parses an in-memory problem (stdin, tests, campaign jobs).
func ParseBytes(name string, content []byte, d dialect.Dialect, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fileID, d, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, d dialect.Dialect, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Dialect: d, Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseFile(lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Nodes:   result.Nodes,
		Bag:     bag,
	}, nil
}
