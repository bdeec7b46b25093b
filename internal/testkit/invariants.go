package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// forest:
// 1) every top-level span is non-empty and within file content bounds
// 2) every child span is contained in its parent's span
// Nodes built by transformers carry synthesized (possibly empty) spans,
// so this check only makes sense on freshly parsed trees.
func CheckSpanInvariants(nodes []*ast.Node, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("nil top-level node at %d", i)
		}
		if n.Span.End <= n.Span.Start {
			return fmt.Errorf("empty top-level span: %v", n.Span)
		}
		if n.Span.File != sf.ID {
			return fmt.Errorf("top-level span points to different file id: got=%d want=%d", n.Span.File, sf.ID)
		}
		if n.Span.End > lenContent {
			return fmt.Errorf("span end beyond content: %d > %d", n.Span.End, lenContent)
		}
		if err := checkChildSpans(n); err != nil {
			return err
		}
	}
	return nil
}

func checkChildSpans(n *ast.Node) error {
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("nil child under %q", n.Symbol)
		}
		if c.Span.Start < n.Span.Start || c.Span.End > n.Span.End {
			return fmt.Errorf("child span %v is outside parent span %v", c.Span, n.Span)
		}
		if err := checkChildSpans(c); err != nil {
			return err
		}
	}
	return nil
}
