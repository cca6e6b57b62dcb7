// Package diagfmt renders diagnostics, token streams, and declaration
// trees for the CLI. It owns all formatting; internal/diag stays pure data.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"modmap/internal/diag"
	"modmap/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	caretMark = color.New(color.FgRed)
)

// Pretty renders the bag's diagnostics in a human-readable form, one per
// block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <context lines>
//	  <primary line>
//	  ^~~~ underline
//
// Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
	// a full bag means later diagnostics were dropped at the limit
	if bag.Len() > 0 && bag.Len() >= int(bag.Cap()) {
		fmt.Fprintf(w, "diagnostic limit (%d) reached; further diagnostics were dropped\n", bag.Cap())
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := severityColor(d.Severity)
	if opts.Color {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			posColor.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col),
			sev.Sprint(d.Severity.String()),
			d.Code.ID(),
			d.Message)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			f.Path, start.Line, start.Col, d.Severity.String(), d.Code.ID(), d.Message)
	}

	writeContext(w, f, start, end, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %d:%d: %s\n", nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func writeContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := int(start.Line) - opts.Context
	if first < 1 {
		first = 1
	}
	for ln := uint32(first); ln < start.Line; ln++ {
		fmt.Fprintf(w, "  %4d | %s\n", ln, f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, line)

	// underline the span on its first line
	colEnd := end.Col
	if end.Line != start.Line {
		colEnd = uint32(len(line)) + 1
	}
	if colEnd <= start.Col {
		colEnd = start.Col + 1
	}
	prefixWidth := runewidth.StringWidth(truncateCols(line, start.Col-1))
	underline := "^" + strings.Repeat("~", int(colEnd-start.Col)-1)
	if opts.Color {
		underline = caretMark.Sprint(underline)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", prefixWidth), underline)
}

// truncateCols returns the first n bytes of line, clamped.
func truncateCols(line string, n uint32) string {
	if int(n) > len(line) {
		return line
	}
	return line[:n]
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
