package token

import (
	"strings"

	"fjson/internal/source"
)

// TriviaKind represents the category of non-semantic source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is a run of non-semantic source text preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or block comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}

// NewlineCount returns the number of physical line breaks the trivia covers.
func (t Trivia) NewlineCount() int {
	if t.Kind != TriviaNewline {
		return 0
	}
	return strings.Count(t.Text, "\n")
}
