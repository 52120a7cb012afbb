package lexer

import (
	"fjson/internal/diag"
	"fjson/internal/source"
	"fjson/internal/token"
)

// Lexer produces significant tokens with attached leading trivia from a
// single source file. It is a single forward pass; after EOF it keeps
// returning EOF.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1-element lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with its Leading trivia collected.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		// Leading trivia still attaches to EOF so the parser can route
		// comments after the last value.
		tok = token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	} else {
		switch b := lx.cursor.Peek(); {
		case b == '{' || b == '}' || b == '[' || b == ']' || b == ':' || b == ',':
			tok = lx.scanPunct()
		case b == '"':
			tok = lx.scanString()
		case b == '-' || isDec(b):
			tok = lx.scanNumber()
		case b == 't' || b == 'f' || b == 'n':
			tok = lx.scanKeyword()
		default:
			tok = lx.scanUnknown()
		}
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	default:
		kind = token.Invalid
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanKeyword recognises the literals true, false, and null.
func (lx *Lexer) scanKeyword() token.Token {
	start := lx.cursor.Mark()
	for isASCIILower(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	var kind token.Kind
	switch text {
	case "true":
		kind = token.True
	case "false":
		kind = token.False
	case "null":
		kind = token.Null
	default:
		lx.errLex(diag.LexUnknownChar, sp, "unexpected literal "+text)
		kind = token.Invalid
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+string(lx.file.Content[sp.Start:sp.End]))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isASCIILower(b byte) bool {
	return b >= 'a' && b <= 'z'
}
