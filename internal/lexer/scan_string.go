package lexer

import (
	"fmt"

	"fjson/internal/diag"
	"fjson/internal/token"
)

// scanString scans a JSON string literal. Escape rules follow RFC 8259:
// \" \\ \/ \b \f \n \r \t and \uXXXX; anything else is reported as an
// invalid escape. Raw control bytes (including newlines) are rejected so
// strict output is always valid JSON.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			escStart := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			e := lx.cursor.Bump()
			switch e {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				for i := 0; i < 4; i++ {
					if lx.cursor.EOF() || !isHex(lx.cursor.Peek()) {
						sp := lx.cursor.SpanFrom(escStart)
						lx.errLex(diag.LexInvalidEscape, sp, "\\u escape requires 4 hex digits")
						return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
					}
					lx.cursor.Bump()
				}
			default:
				sp := lx.cursor.SpanFrom(escStart)
				lx.errLex(diag.LexInvalidEscape, sp, fmt.Sprintf("invalid escape sequence \\%c", e))
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			continue
		}
		if b < 0x20 {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexControlInString, sp, "control character in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	// EOF without a closing quote
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
