package driver

import (
	"fmt"
	"math/rand"

	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/observ"
	"smtfuzz/internal/printer"
	"smtfuzz/internal/transform"
)

// MutateRequest binds one operator run: which transformer, which escape
// conventions on each side, and the seed that makes it reproducible.
type MutateRequest struct {
	Transformer transform.Transformer
	InDialect   dialect.Dialect
	// OutDialect defaults to InDialect when unset.
	OutDialect     dialect.Dialect
	Seed           int64
	MaxDiagnostics int
	// Timer, when non-nil, records per-phase durations.
	Timer *observ.Timer
}

type MutateResult struct {
	Output []byte
	Bag    *diag.Bag
}

// ParseError reports that the input problem does not parse. Line and Col
// are 1-based.
type ParseError struct {
	Path string
	Line uint32
	Col  uint32
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Msg)
}

// Mutate runs the whole pipeline over one file on disk:
// parse, filter, apply, print. Option validation happens before any
// tree work, and a nop transformer bypasses filtering so its output is
// the full problem.
func Mutate(path string, req MutateRequest) (*MutateResult, error) {
	if err := req.Transformer.Validate(); err != nil {
		return nil, err
	}
	phase := beginPhase(req.Timer, "parse")
	parsed, err := Parse(path, req.InDialect, req.MaxDiagnostics)
	endPhase(req.Timer, phase, path)
	if err != nil {
		return nil, err
	}
	return mutateParsed(parsed, req)
}

// MutateBytes is Mutate over an in-memory problem.
func MutateBytes(name string, content []byte, req MutateRequest) (*MutateResult, error) {
	if err := req.Transformer.Validate(); err != nil {
		return nil, err
	}
	phase := beginPhase(req.Timer, "parse")
	parsed, err := ParseBytes(name, content, req.InDialect, req.MaxDiagnostics)
	endPhase(req.Timer, phase, name)
	if err != nil {
		return nil, err
	}
	return mutateParsed(parsed, req)
}

func mutateParsed(parsed *ParseResult, req MutateRequest) (*MutateResult, error) {
	if parsed.Bag.HasErrors() {
		first, _ := parsed.Bag.FirstError()
		start, _ := parsed.FileSet.Resolve(first.Primary)
		return nil, &ParseError{
			Path: parsed.File.Path,
			Line: start.Line,
			Col:  start.Col,
			Msg:  first.Message,
		}
	}

	nodes := parsed.Nodes
	tr := req.Transformer

	if tr.Op() != transform.OpNop {
		phase := beginPhase(req.Timer, "filter")
		nodes = transform.Filter(nodes)
		endPhase(req.Timer, phase, fmt.Sprintf("%d forms", len(nodes)))
	}

	phase := beginPhase(req.Timer, tr.Op().String())
	rng := rand.New(rand.NewSource(req.Seed))
	nodes = tr.Apply(nodes, rng)
	endPhase(req.Timer, phase, "")

	out := req.OutDialect
	if out == dialect.Unknown {
		out = req.InDialect
	}

	phase = beginPhase(req.Timer, "print")
	output := printer.Print(nodes, out)
	endPhase(req.Timer, phase, fmt.Sprintf("%d bytes", len(output)))

	return &MutateResult{Output: output, Bag: parsed.Bag}, nil
}

func beginPhase(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func endPhase(t *observ.Timer, idx int, note string) {
	if t == nil {
		return
	}
	t.End(idx, note)
}
