package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is how many source lines to show around the primary span.
	Context   int8
	ShowNotes bool
}
