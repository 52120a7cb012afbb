package parser

import (
	"fjson/internal/ast"
	"fjson/internal/diag"
	"fjson/internal/lexer"
	"fjson/internal/source"
	"fjson/internal/token"
)

// DefaultMaxDepth bounds container nesting so hostile inputs cannot blow
// the goroutine stack.
const DefaultMaxDepth = 128

type Options struct {
	MaxDepth int // 0 means DefaultMaxDepth
	Reporter diag.Reporter
}

type Result struct {
	Doc *ast.Document // nil when parsing failed
	Bag *diag.Bag     // set when Reporter is a *diag.BagReporter
}

// Parser is the per-file parse state. Parsing is fail-fast: the first
// error aborts and Result.Doc is nil.
type Parser struct {
	lx    *lexer.Lexer
	doc   *ast.Document
	opts  Options
	depth int
}

// ParseFile is the entry point for parsing one file. It requires an
// already constructed lexer over a source.File.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Parser{
		lx:   lx,
		doc:  ast.NewDocument(lx.EmptySpan().File, 16),
		opts: opts,
	}

	ok := p.parseDocument()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	if !ok {
		return Result{Doc: nil, Bag: bag}
	}
	return Result{Doc: p.doc, Bag: bag}
}

// parseDocument parses exactly one root value plus the trivia around it.
func (p *Parser) parseDocument() bool {
	tok := p.lx.Next()
	p.doc.Above = piecesAll(tok.Leading, true)

	if tok.Kind == token.EOF {
		p.report(diag.SynUnexpectedEOF, tok.Span, "expected a value, found end of file", nil)
		return false
	}

	root, ok := p.parseValue(tok)
	if !ok {
		return false
	}
	p.doc.Root = root

	end := p.lx.Next()
	sameLine, pieces := splitLeading(end.Leading)
	p.doc.Trailing = sameLine
	p.doc.Below = pieces.TrimTrailingBlanks()

	if end.Kind != token.EOF {
		p.report(diag.SynUnexpectedToken, end.Span,
			"expected end of file after the root value, found "+end.Kind.String(), nil)
		return false
	}
	return true
}

// parseValue parses the value started by tok.
func (p *Parser) parseValue(tok token.Token) (ast.ValueID, bool) {
	switch tok.Kind {
	case token.LBrace:
		return p.parseObject(tok)
	case token.LBracket:
		return p.parseArray(tok)
	case token.String:
		inner := tok.Text[1 : len(tok.Text)-1]
		return p.doc.Alloc(ast.Value{Kind: ast.ValueString, Span: tok.Span, Text: inner}), true
	case token.Number:
		return p.doc.Alloc(ast.Value{Kind: ast.ValueNumber, Span: tok.Span, Text: tok.Text}), true
	case token.True:
		return p.doc.Alloc(ast.Value{Kind: ast.ValueBool, Span: tok.Span, Bool: true}), true
	case token.False:
		return p.doc.Alloc(ast.Value{Kind: ast.ValueBool, Span: tok.Span, Bool: false}), true
	case token.Null:
		return p.doc.Alloc(ast.Value{Kind: ast.ValueNull, Span: tok.Span}), true
	case token.EOF:
		p.report(diag.SynUnexpectedEOF, tok.Span, "expected a value, found end of file", nil)
		return ast.NoValueID, false
	case token.Invalid:
		// the lexer already reported this one
		return ast.NoValueID, false
	default:
		p.report(diag.SynUnexpectedToken, tok.Span,
			"expected a value, found "+tok.Kind.String(), nil)
		return ast.NoValueID, false
	}
}

// enter checks the nesting bound before descending into a container.
func (p *Parser) enter(sp source.Span) bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.report(diag.SynMaxDepthExceeded, sp, "maximum nesting depth exceeded", nil)
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string, notes []diag.Note) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, notes)
	}
}

// warn reports a diagnostic that does not abort parsing.
func (p *Parser) warn(code diag.Code, sp source.Span, msg string, notes []diag.Note) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevWarning, sp, msg, notes)
	}
}

func openerNote(sp source.Span) []diag.Note {
	return []diag.Note{{Span: sp, Msg: "container opened here"}}
}
