package format_test

import (
	"encoding/json"
	"testing"

	"fjson/internal/ast"
	"fjson/internal/diag"
	"fjson/internal/format"
	"fjson/internal/lexer"
	"fjson/internal/parser"
	"fjson/internal/source"
)

func parseDoc(t *testing.T, input string) *ast.Document {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.jsonc", []byte(input)))

	bag := diag.NewBag(64)
	rep := &diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	if res.Doc == nil {
		first, _ := bag.FirstError()
		t.Fatalf("parse failed for %q: %s %s", input, first.Code.ID(), first.Message)
	}
	return res.Doc
}

func render(t *testing.T, input string, mode format.Mode) string {
	t.Helper()
	out, err := format.Render(parseDoc(t, input), format.Options{Mode: mode})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return string(out)
}

func expect(t *testing.T, input string, mode format.Mode, want string) {
	t.Helper()
	if got := render(t, input, mode); got != want {
		t.Errorf("mode %v\ninput:\n%s\ngot:\n%q\nwant:\n%q", mode, input, got, want)
	}
}

func TestWriterLazyIndent(t *testing.T) {
	w := format.NewWriter(format.Options{IndentWidth: 2}, 0)
	w.WriteByte('{')
	w.IndentPush()
	w.Newline()
	w.WriteByte('"')
	w.WriteString("a")
	w.WriteString(`": `)
	w.WriteString("1")
	w.IndentPop()
	w.Newline()
	w.Newline() // blank line carries no indent
	w.WriteByte('}')

	want := "{\n  \"a\": 1\n\n}"
	if got := string(w.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

const readmeInput = "// c1\n{\n  /* c2 */\n  \"project\": \"fjson\",\n  \"license\": [\n    \"MIT\",\n  ],\n\n\n  // c3\n  \"public\": true,\n}"

func TestReadmeExampleAnnotated(t *testing.T) {
	want := "// c1\n" +
		"{\n" +
		"  /* c2 */\n" +
		"  \"project\": \"fjson\",\n" +
		"  \"license\": [\"MIT\"],\n" +
		"\n" +
		"  // c3\n" +
		"  \"public\": true\n" +
		"}\n"
	expect(t, readmeInput, format.ModeAnnotated, want)
}

func TestReadmeExamplePretty(t *testing.T) {
	want := "{\n" +
		"  \"project\": \"fjson\",\n" +
		"  \"license\": [\"MIT\"],\n" +
		"  \"public\": true\n" +
		"}\n"
	expect(t, readmeInput, format.ModePretty, want)
}

func TestReadmeExampleCompact(t *testing.T) {
	expect(t, readmeInput, format.ModeCompact,
		`{"project":"fjson","license":["MIT"],"public":true}`)
}

func TestScalarCollapsing(t *testing.T) {
	input := "{\"a\": [\n \"x\",\n \"y\"\n]}"
	expect(t, input, format.ModeAnnotated, "{\n  \"a\": [\"x\", \"y\"]\n}\n")
	expect(t, input, format.ModePretty, "{\n  \"a\": [\"x\", \"y\"]\n}\n")

	// a comment inside the array forces the expanded form
	commented := "{\"a\": [\n \"x\", // why\n \"y\"\n]}"
	expect(t, commented, format.ModeAnnotated,
		"{\n  \"a\": [\n    \"x\", // why\n    \"y\"\n  ]\n}\n")
	// but not in pretty mode, where comments are gone anyway
	expect(t, commented, format.ModePretty, "{\n  \"a\": [\"x\", \"y\"]\n}\n")
}

func TestInlineContainers(t *testing.T) {
	expect(t, `{"a":1,"b":2}`, format.ModeAnnotated, "{ \"a\": 1, \"b\": 2 }\n")
	expect(t, "[1,\n2,\n3]", format.ModeAnnotated, "[1, 2, 3]\n")
	expect(t, "{}", format.ModeAnnotated, "{}\n")
	expect(t, "[]", format.ModePretty, "[]\n")
	expect(t, `{"a":{}}`, format.ModeAnnotated, "{\n  \"a\": {}\n}\n")
}

func TestBlankLineCollapse(t *testing.T) {
	input := "[\n  1,\n\n\n\n  2\n]"
	expect(t, input, format.ModeAnnotated, "[\n  1,\n\n  2\n]\n")

	// no blank lines in, none out
	expect(t, "[\n  1,\n  2\n]", format.ModeAnnotated, "[1, 2]\n")
}

func TestTrailingCommaDropped(t *testing.T) {
	expect(t, "[1, 2,]", format.ModeAnnotated, "[1, 2]\n")
	expect(t, "[1, 2,]", format.ModeCompact, "[1,2]")
	expect(t, "{\"a\": 1,}", format.ModePretty, "{ \"a\": 1 }\n")
}

func TestDanglingComments(t *testing.T) {
	expect(t, "[\n  1,\n  // last\n]", format.ModeAnnotated, "[\n  1\n  // last\n]\n")
	expect(t, "{ /* nothing */ }", format.ModeAnnotated, "{\n  /* nothing */\n}\n")
	expect(t, "{ /* nothing */ }", format.ModePretty, "{}\n")
}

func TestDocumentLevelTrivia(t *testing.T) {
	input := "// above\n1 // beside\n// below\n"
	expect(t, input, format.ModeAnnotated, "// above\n1 // beside\n// below\n")
	expect(t, input, format.ModePretty, "1\n")
	expect(t, input, format.ModeCompact, "1")
}

func TestLiteralsPreservedVerbatim(t *testing.T) {
	// escapes and number spellings must survive untouched
	expect(t, `"a\u00e9\n\t"`, format.ModeCompact, `"a\u00e9\n\t"`)
	expect(t, "[1.50e+2, -0.0, 1E-9]", format.ModeCompact, "[1.50e+2,-0.0,1E-9]")
}

func TestAnnotatedIdempotence(t *testing.T) {
	inputs := []string{
		readmeInput,
		"[\n  1,\n  // last\n]",
		"{ // start\n\"a\": [true, null], /* mid */\n\n\"b\": {\"c\": []},\n}",
		"// above\n\n\n{\n  \"x\": 1 // beside\n}\n// below",
		"[[[\"deep\"]]]",
	}
	for _, input := range inputs {
		once := render(t, input, format.ModeAnnotated)
		twice := render(t, once, format.ModeAnnotated)
		if once != twice {
			t.Errorf("not idempotent for %q:\nfirst:\n%q\nsecond:\n%q", input, once, twice)
		}
	}
}

func TestPrettyOutputIsValidJSON(t *testing.T) {
	out := render(t, readmeInput, format.ModePretty)
	if !json.Valid([]byte(out)) {
		t.Fatalf("pretty output is not valid JSON:\n%s", out)
	}

	var meta struct {
		Project string   `json:"project"`
		License []string `json:"license"`
		Public  bool     `json:"public"`
	}
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		t.Fatalf("typed decode failed: %v", err)
	}
	if meta.Project != "fjson" || len(meta.License) != 1 || meta.License[0] != "MIT" || !meta.Public {
		t.Fatalf("decoded unexpected content: %+v", meta)
	}
}

func TestCompactWhitespaceFree(t *testing.T) {
	inputs := []string{
		readmeInput,
		"{\"spaced out\": \" padded \", \"t\\tab\": \"a b c\"}",
		"[\n  \"with \\\"quotes\\\" and spaces\",\n  {\"k\": \"v\"}\n]",
	}
	for _, input := range inputs {
		out := render(t, input, format.ModeCompact)
		inString := false
		escaped := false
		for i := 0; i < len(out); i++ {
			b := out[i]
			if inString {
				switch {
				case escaped:
					escaped = false
				case b == '\\':
					escaped = true
				case b == '"':
					inString = false
				}
				continue
			}
			if b == '"' {
				inString = true
				continue
			}
			if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
				t.Fatalf("whitespace at offset %d outside strings in %q", i, out)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for arg, want := range map[string]format.Mode{
		"annotated": format.ModeAnnotated,
		"jsonc":     format.ModeAnnotated,
		"pretty":    format.ModePretty,
		"json":      format.ModePretty,
		"compact":   format.ModeCompact,
	} {
		got, err := format.ParseMode(arg)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", arg, got, err, want)
		}
	}
	if _, err := format.ParseMode("yaml"); err == nil {
		t.Error("expected an error for unknown mode")
	}
}
