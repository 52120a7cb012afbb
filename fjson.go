// Package fjson formats JSON with comments and trailing commas.
//
// The input grammar is a JSON superset: C-style line and block comments
// plus one optional trailing comma per container. Three formatting modes
// are offered. FormatAnnotated keeps comments and blank lines and is meant
// for files humans maintain; FormatPretty and FormatCompact emit strict
// RFC 8259 JSON for machine consumers.
//
// All functions are pure and safe for concurrent use.
package fjson

import (
	"fmt"
	"io"

	"fjson/internal/ast"
	"fjson/internal/diag"
	"fjson/internal/format"
	"fjson/internal/lexer"
	"fjson/internal/parser"
	"fjson/internal/source"
)

// Error describes the first lexical or syntactic failure in the input.
type Error struct {
	Code   string // stable diagnostic ID, e.g. "SYN2004"
	Msg    string
	Offset uint32 // byte offset into the input
	Line   uint32 // 1-based
	Col    uint32 // 1-based
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Code, e.Msg)
}

// FormatAnnotated renders the input with comments and blank lines
// preserved, using two-space indentation.
func FormatAnnotated(input string) (string, error) {
	return render(input, format.ModeAnnotated)
}

// FormatPretty renders the input as strict indented JSON. Comments, blank
// lines, and trailing commas are removed.
func FormatPretty(input string) (string, error) {
	return render(input, format.ModePretty)
}

// FormatCompact renders the input as strict JSON with no insignificant
// whitespace and no trailing newline.
func FormatCompact(input string) (string, error) {
	return render(input, format.ModeCompact)
}

// FormatAnnotatedTo is FormatAnnotated writing to w.
func FormatAnnotatedTo(w io.Writer, input string) error {
	return renderTo(w, input, format.ModeAnnotated)
}

// FormatPrettyTo is FormatPretty writing to w.
func FormatPrettyTo(w io.Writer, input string) error {
	return renderTo(w, input, format.ModePretty)
}

// FormatCompactTo is FormatCompact writing to w.
func FormatCompactTo(w io.Writer, input string) error {
	return renderTo(w, input, format.ModeCompact)
}

func render(input string, mode format.Mode) (string, error) {
	doc, err := parse(input)
	if err != nil {
		return "", err
	}
	out, err := format.Render(doc, format.Options{Mode: mode})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func renderTo(w io.Writer, input string, mode format.Mode) error {
	out, err := render(input, mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func parse(input string) (*ast.Document, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("input.jsonc", []byte(input)))

	bag := diag.NewBag(diagLimit)
	rep := &diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	if res.Doc == nil {
		return nil, firstError(fs, bag)
	}
	return res.Doc, nil
}

const diagLimit = 32

// firstError converts the earliest reported diagnostic into an *Error.
func firstError(fs *source.FileSet, bag *diag.Bag) error {
	d, ok := bag.FirstError()
	if !ok {
		return &Error{Code: "E0000", Msg: "unknown parse failure", Line: 1, Col: 1}
	}
	start, _ := fs.Resolve(d.Primary)
	return &Error{
		Code:   d.Code.ID(),
		Msg:    d.Message,
		Offset: d.Primary.Start,
		Line:   start.Line,
		Col:    start.Col,
	}
}
