package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"smtfuzz/internal/ast"
	"smtfuzz/internal/source"
)

type NodeOutput struct {
	Kind     string       `json:"kind"`
	Class    string       `json:"class,omitempty"`
	Symbol   string       `json:"symbol,omitempty"`
	Span     source.Span  `json:"span"`
	Children []NodeOutput `json:"children,omitempty"`
}

// FormatNodesPretty writes the forest as an indented tree, one node per
// line with its kind, class, and symbol.
func FormatNodesPretty(w io.Writer, nodes []*ast.Node, fs *source.FileSet) error {
	for _, n := range nodes {
		printNodePretty(w, n, fs, 0)
	}
	return nil
}

func printNodePretty(w io.Writer, n *ast.Node, fs *source.FileSet, depth int) {
	start, _ := fs.Resolve(n.Span)
	indent := strings.Repeat("  ", depth)

	label := n.Kind.String()
	if n.Kind == ast.NodeExpr {
		label = n.Class.String()
	}
	fmt.Fprintf(w, "%s%s", indent, label)
	if n.Symbol != "" {
		fmt.Fprintf(w, " %q", n.Symbol)
	}
	fmt.Fprintf(w, " at %d:%d\n", start.Line, start.Col)

	for _, c := range n.Children {
		printNodePretty(w, c, fs, depth+1)
	}
}

// FormatNodesJSON writes the forest as an indented JSON array.
func FormatNodesJSON(w io.Writer, nodes []*ast.Node) error {
	output := make([]NodeOutput, 0, len(nodes))
	for _, n := range nodes {
		output = append(output, nodeOutput(n))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func nodeOutput(n *ast.Node) NodeOutput {
	out := NodeOutput{
		Kind:   n.Kind.String(),
		Symbol: n.Symbol,
		Span:   n.Span,
	}
	if n.Kind == ast.NodeExpr {
		out.Class = n.Class.String()
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, nodeOutput(c))
	}
	return out
}
