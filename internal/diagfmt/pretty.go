package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"smtfuzz/internal/diag"
	"smtfuzz/internal/source"
)

// Pretty renders diagnostics one per block:
// <path>:<line>:<col>: <SEV> <CODE>: <message>, then the offending source
// line with a caret underline, then notes. Callers should bag.Sort()
// first for stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, &d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := severityLabel(d.Severity)
	code := d.Code.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, sev, code, d.Message)
	printSourceLine(w, file, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %s (%d:%d)\n", note.Msg, noteStart.Line, noteStart.Col)
		}
	}
}

func printSourceLine(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	lines := strings.Split(string(file.Content), "\n")
	if start.Line == 0 || int(start.Line) > len(lines) {
		return
	}
	line := lines[start.Line-1]
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, line)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	marker := strings.Repeat("~", width)
	marker = "^" + marker[1:]
	if opts.Color {
		marker = severityColor(diag.SevError).Sprint(marker)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
