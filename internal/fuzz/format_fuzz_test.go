package fuzztests

import (
	"bytes"
	"encoding/json"
	"testing"

	"fjson/internal/ast"
	"fjson/internal/diag"
	"fjson/internal/format"
	"fjson/internal/lexer"
	"fjson/internal/parser"
	"fjson/internal/source"
)

// parseBytes runs the front half of the pipeline; the document is nil when
// the input does not parse.
func parseBytes(input []byte) *ast.Document {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.jsonc", input))

	bag := diag.NewBag(64)
	rep := &diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	return res.Doc
}

// FuzzStrictModesEmitValidJSON checks that whenever an input parses, the
// pretty and compact renderings are accepted by encoding/json.
func FuzzStrictModesEmitValidJSON(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		doc := parseBytes(input)
		if doc == nil {
			return
		}

		compact, err := format.Render(doc, format.Options{Mode: format.ModeCompact})
		if err != nil {
			t.Fatalf("compact render failed: %v", err)
		}
		if !json.Valid(compact) {
			t.Errorf("compact output is not valid JSON\ninput:  %q\noutput: %q", input, compact)
		}

		pretty, err := format.Render(doc, format.Options{Mode: format.ModePretty})
		if err != nil {
			t.Fatalf("pretty render failed: %v", err)
		}
		if !json.Valid(pretty) {
			t.Errorf("pretty output is not valid JSON\ninput:  %q\noutput: %q", input, pretty)
		}
	})
}

// FuzzAnnotatedRoundTrip checks that annotated output parses back and is a
// fixed point: formatting it again must reproduce it byte for byte.
func FuzzAnnotatedRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		doc := parseBytes(input)
		if doc == nil {
			return
		}

		first, err := format.Render(doc, format.Options{Mode: format.ModeAnnotated})
		if err != nil {
			t.Fatalf("annotated render failed: %v", err)
		}
		redoc := parseBytes(first)
		if redoc == nil {
			t.Fatalf("annotated output does not parse back\ninput:  %q\noutput: %q", input, first)
		}
		second, err := format.Render(redoc, format.Options{Mode: format.ModeAnnotated})
		if err != nil {
			t.Fatalf("second annotated render failed: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("annotated output is not a fixed point\ninput:  %q\nfirst:  %q\nsecond: %q", input, first, second)
		}
	})
}
