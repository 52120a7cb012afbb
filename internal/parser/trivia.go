package parser

import (
	"fjson/internal/ast"
	"fjson/internal/token"
)

// Trivia routing. The lexer attaches all trivia to the token that follows
// it, so where a comment belongs depends on the position of that token:
//
//   - after a value (the next token is a comma, closer, or EOF), comments
//     before the first line break stay on the value's line (Trailing);
//     everything after the break opens the next sibling's Leading run;
//   - right after an opener, a key, or a colon, every comment is hoisted
//     onto its own line above the entry being parsed.
//
// Blank lines ride along as markers: a break of two or more physical
// newlines yields one PieceBlank, so any stretch of blank source lines
// collapses to a single blank output line. Space runs are transparent, so
// a line holding only spaces still counts as blank.

func toComment(tr token.Trivia) ast.Comment {
	kind := ast.CommentLine
	if tr.Kind == token.TriviaBlockComment {
		kind = ast.CommentBlock
	}
	return ast.Comment{Kind: kind, Span: tr.Span, Text: tr.Text}
}

// splitLeading partitions a token's leading trivia into same-line trailing
// comments (before the first newline) and own-line pieces (after it).
func splitLeading(leading []token.Trivia) (sameLine []ast.Comment, pieces ast.TriviaRun) {
	sawNewline := false
	newlines := 0
	for _, tr := range leading {
		switch tr.Kind {
		case token.TriviaSpace:
			// transparent
		case token.TriviaNewline:
			sawNewline = true
			newlines += tr.NewlineCount()
		case token.TriviaLineComment, token.TriviaBlockComment:
			if !sawNewline {
				sameLine = append(sameLine, toComment(tr))
				continue
			}
			if newlines >= 2 {
				pieces = append(pieces, ast.BlankPiece())
			}
			newlines = 0
			pieces = append(pieces, ast.CommentPiece(toComment(tr)))
		}
	}
	if sawNewline && newlines >= 2 {
		pieces = append(pieces, ast.BlankPiece())
	}
	return sameLine, pieces
}

// piecesAll turns every comment in the leading trivia into an own-line
// piece, including comments that share a line with the previous token.
// Used right after openers, keys, colons, and at the start of a document,
// where there is no finished value for a comment to trail.
func piecesAll(leading []token.Trivia, dropLeadingBlanks bool) ast.TriviaRun {
	var pieces ast.TriviaRun
	newlines := 0
	for _, tr := range leading {
		switch tr.Kind {
		case token.TriviaSpace:
			// transparent
		case token.TriviaNewline:
			newlines += tr.NewlineCount()
		case token.TriviaLineComment, token.TriviaBlockComment:
			if newlines >= 2 && !(dropLeadingBlanks && len(pieces) == 0) {
				pieces = append(pieces, ast.BlankPiece())
			}
			newlines = 0
			pieces = append(pieces, ast.CommentPiece(toComment(tr)))
		}
	}
	if newlines >= 2 && !(dropLeadingBlanks && len(pieces) == 0) {
		pieces = append(pieces, ast.BlankPiece())
	}
	return pieces
}
