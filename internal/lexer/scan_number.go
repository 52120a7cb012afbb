package lexer

import (
	"fjson/internal/diag"
	"fjson/internal/token"
)

// scanNumber scans a number literal with the RFC 8259 grammar:
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / digit1-9 *DIGIT
//	frac   = "." 1*DIGIT
//	exp    = ("e" / "E") [ "-" / "+" ] 1*DIGIT
//
// Leading zeros ("01"), bare signs ("-"), and dangling fraction or
// exponent parts ("1.", "1e") are rejected.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Eat('-')

	bad := func(msg string) token.Token {
		// swallow the rest of the numeric run so one malformed literal
		// produces one diagnostic, not a cascade
		for {
			b := lx.cursor.Peek()
			if !isDec(b) && b != '.' && b != '+' && b != '-' && b != 'e' && b != 'E' {
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	// integer part
	switch b := lx.cursor.Peek(); {
	case b == '0':
		lx.cursor.Bump()
		if isDec(lx.cursor.Peek()) {
			return bad("leading zeros are not allowed in number literals")
		}
	case isDec(b):
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	default:
		return bad("number literal requires at least one digit")
	}

	// fraction
	if lx.cursor.Eat('.') {
		if !isDec(lx.cursor.Peek()) {
			return bad("fraction requires at least one digit")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return bad("exponent requires at least one digit")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}
