package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fjson/internal/diag"
	"fjson/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order
// (call bag.Sort() first for stable output) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~
//
// followed by notes in the same shape when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		printContext(w, fs, d.Primary)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printNote(w, fs, n, opts)
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	label := severityLabel(sev)
	if opts.Color {
		label = severityColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, label, code.ID(), msg)
}

func printNote(w io.Writer, fs *source.FileSet, n diag.Note, opts PrettyOpts) {
	file := fs.Get(n.Span.File)
	start, _ := fs.Resolve(n.Span)
	label := "NOTE"
	if opts.Color {
		label = color.New(color.FgCyan).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file.Path, start.Line, start.Col, label, n.Msg)
	printContext(w, fs, n.Span)
}

// printContext shows the offending source line with a caret run under the
// span. Column math uses display widths so tabs and wide runes line up.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	prefixCols := int(start.Col) - 1
	if prefixCols > len(line) {
		prefixCols = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixCols])

	span := 1
	if end.Line == start.Line && end.Col > start.Col {
		hiEnd := int(end.Col) - 1
		if hiEnd > len(line) {
			hiEnd = len(line)
		}
		span = runewidth.StringWidth(line[prefixCols:hiEnd])
		if span < 1 {
			span = 1
		}
	}
	fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", span-1))
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "ERROR"
	case diag.SevWarning:
		return "WARN"
	default:
		return "INFO"
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgBlue)
	}
}
