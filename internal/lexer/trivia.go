package lexer

import (
	"fjson/internal/diag"
	"fjson/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
//   - ' ', '\t', and stray '\r' coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline (Text keeps the run)
//   - //... up to \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (no nesting; unterminated is reported
//     and the trivia is cut at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs/carriage returns
		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// newlines (coalesce the run)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// comments
		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		// no more trivia
		break
	}
}

// //... or /*...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	b := lx.cursor.Peek()
	switch b {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: lx.text(sp),
		})
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: lx.text(sp),
		})
		return true
	default:
		// not a comment; rewind and let it surface as an unknown character
		lx.cursor.Reset(start)
		return false
	}
}
