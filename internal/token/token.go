package token

import (
	"fjson/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a string, number, boolean, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Number, True, False, Null:
		return true
	default:
		return false
	}
}

// StartsValue reports whether the token can begin a JSON value.
func (t Token) StartsValue() bool {
	return t.IsLiteral() || t.Kind == LBrace || t.Kind == LBracket
}
