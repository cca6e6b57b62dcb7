package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int // context lines shown before the primary line
	ShowNotes bool
}
