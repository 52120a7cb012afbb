package lexer_test

import (
	"fmt"
	"testing"

	"fjson/internal/diag"
	"fjson/internal/lexer"
	"fjson/internal/source"
	"fjson/internal/token"
)

// testReporter collects every diagnostic emitted by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.jsonc", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the token kind sequence produced for input (EOF excluded).
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1] // drop EOF

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\nerrors: %v",
			len(expected), len(tokens), input, reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that input produces exactly one token before EOF.
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("input %q: expected kind %v, got %v (errors: %v)",
			input, expectedKind, tok.Kind, reporter.ErrorMessages())
	}
	if tok.Text != expectedText {
		t.Errorf("input %q: expected text %q, got %q", input, expectedText, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("input %q: expected EOF after token, got %v", input, next.Kind)
	}
}

// expectError checks that lexing input reports the given diagnostic code.
func expectError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	collectAllTokens(lx)

	for _, d := range reporter.diagnostics {
		if d.Code == code {
			return
		}
	}
	t.Errorf("input %q: expected diagnostic %s, got %v", input, code.ID(), reporter.ErrorMessages())
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "{}[],:", []token.Kind{
		token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.Comma, token.Colon,
	})
}

func TestKeywords(t *testing.T) {
	expectSingleToken(t, "true", token.True, "true")
	expectSingleToken(t, "false", token.False, "false")
	expectSingleToken(t, "null", token.Null, "null")

	expectError(t, "truth", diag.LexUnknownChar)
	expectError(t, "nul", diag.LexUnknownChar)
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.String, `"hello"`)
	expectSingleToken(t, `""`, token.String, `""`)
	expectSingleToken(t, `"sp ace"`, token.String, `"sp ace"`)
	expectSingleToken(t, `"\" \\ \/ \b \f \n \r \t"`, token.String, `"\" \\ \/ \b \f \n \r \t"`)
	expectSingleToken(t, `"é"`, token.String, `"é"`)
	expectSingleToken(t, `"// not a comment"`, token.String, `"// not a comment"`)
	// multibyte passes through untouched
	expectSingleToken(t, `"héllo ✨"`, token.String, `"héllo ✨"`)
}

func TestStringErrors(t *testing.T) {
	expectError(t, `"unterminated`, diag.LexUnterminatedString)
	expectError(t, `"ends in escape\`, diag.LexUnterminatedString)
	expectError(t, `"\q"`, diag.LexInvalidEscape)
	expectError(t, `"\u12g4"`, diag.LexInvalidEscape)
	expectError(t, `"\u12"`, diag.LexInvalidEscape)
	expectError(t, "\"raw\nnewline\"", diag.LexControlInString)
	expectError(t, "\"tab\there\"", diag.LexControlInString)
}

func TestNumbers(t *testing.T) {
	cases := []string{
		"0", "-0", "7", "42", "-13",
		"3.14", "-0.5", "10.25",
		"1e10", "1E10", "2.5e-3", "-1.25E+6", "0e0",
	}
	for _, input := range cases {
		expectSingleToken(t, input, token.Number, input)
	}
}

func TestNumberErrors(t *testing.T) {
	cases := []string{
		"01", "-012", // leading zeros
		"-",       // bare sign
		"1.",      // dangling fraction
		".5",      // missing integer part (dot surfaces as unknown char first)
		"1e", "1e+", // dangling exponent
	}
	for _, input := range cases {
		lx, reporter := makeTestLexer(input)
		collectAllTokens(lx)
		if !reporter.HasErrors() {
			t.Errorf("input %q: expected an error, got none", input)
		}
	}
	expectError(t, "01", diag.LexBadNumber)
	expectError(t, "1.e5", diag.LexBadNumber)
	expectError(t, "3e", diag.LexBadNumber)
}

func TestLeadingTriviaAttachment(t *testing.T) {
	input := "// header\n\n  /* block */ 1"
	lx, reporter := makeTestLexer(input)
	tok := lx.Next()

	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if tok.Kind != token.Number || tok.Text != "1" {
		t.Fatalf("expected number token, got %v %q", tok.Kind, tok.Text)
	}

	kinds := make([]token.TriviaKind, 0, len(tok.Leading))
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaLineComment,
		token.TriviaNewline,
		token.TriviaSpace,
		token.TriviaBlockComment,
		token.TriviaSpace,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d trivia, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("trivia %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
	// the newline run keeps its length so blank lines survive round trips
	if nl := tok.Leading[1]; nl.NewlineCount() != 2 {
		t.Errorf("expected newline run of 2, got %d (%q)", nl.NewlineCount(), nl.Text)
	}
}

func TestCommentText(t *testing.T) {
	lx, _ := makeTestLexer("/* keep * stars */ // tail\ntrue")
	tok := lx.Next()
	if tok.Kind != token.True {
		t.Fatalf("expected true, got %v", tok.Kind)
	}

	var comments []string
	for _, tr := range tok.Leading {
		if tr.IsComment() {
			comments = append(comments, tr.Text)
		}
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d: %v", len(comments), comments)
	}
	if comments[0] != "/* keep * stars */" {
		t.Errorf("block comment text: got %q", comments[0])
	}
	if comments[1] != "// tail" {
		t.Errorf("line comment text: got %q", comments[1])
	}
}

func TestEOFCarriesTrivia(t *testing.T) {
	lx, _ := makeTestLexer("null // after\n")
	first := lx.Next()
	if first.Kind != token.Null {
		t.Fatalf("expected null, got %v", first.Kind)
	}
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	found := false
	for _, tr := range eof.Leading {
		if tr.Kind == token.TriviaLineComment && tr.Text == "// after" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected trailing comment attached to EOF, got %v", eof.Leading)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	expectError(t, "/* never closes", diag.LexUnterminatedBlockComment)

	// the comment is still kept as trivia on the EOF token
	lx, _ := makeTestLexer("1 /* open")
	lx.Next()
	eof := lx.Next()
	if len(eof.Leading) == 0 {
		t.Fatal("expected trivia on EOF token")
	}
	last := eof.Leading[len(eof.Leading)-1]
	if last.Kind != token.TriviaBlockComment || last.Text != "/* open" {
		t.Errorf("expected unterminated block comment trivia, got %v %q", last.Kind, last.Text)
	}
}

func TestLoneSlash(t *testing.T) {
	expectError(t, "/", diag.LexUnknownChar)
	expectError(t, "1 / 2", diag.LexUnknownChar)
}

func TestPeek(t *testing.T) {
	lx, _ := makeTestLexer("[1]")
	if p := lx.Peek(); p.Kind != token.LBracket {
		t.Fatalf("peek: expected LBracket, got %v", p.Kind)
	}
	if n := lx.Next(); n.Kind != token.LBracket {
		t.Fatalf("next after peek: expected LBracket, got %v", n.Kind)
	}
	if n := lx.Next(); n.Kind != token.Number {
		t.Fatalf("expected Number, got %v", n.Kind)
	}
}

func TestDocumentStream(t *testing.T) {
	input := `{
	// comment
	"a": [1, 2.5, true], // trailing
	"b": null,
}`
	expectTokens(t, input, []token.Kind{
		token.LBrace,
		token.String, token.Colon,
		token.LBracket, token.Number, token.Comma, token.Number, token.Comma, token.True, token.RBracket,
		token.Comma,
		token.String, token.Colon, token.Null, token.Comma,
		token.RBrace,
	})
}
