package ast

import "fjson/internal/source"

// CommentKind distinguishes //-style and /* */-style comments.
type CommentKind uint8

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// Comment is a single comment with its delimiters preserved verbatim.
type Comment struct {
	Kind CommentKind
	Span source.Span
	Text string // includes the "//" or "/*"+"*/" delimiters
}

// PieceKind is the category of a TriviaRun entry.
type PieceKind uint8

const (
	// PieceBlank marks one blank line. Consecutive blank source lines
	// collapse into a single PieceBlank.
	PieceBlank PieceKind = iota
	PieceComment
)

// Piece is one vertical slot in a trivia run: a blank line or a comment
// standing on its own line.
type Piece struct {
	Kind    PieceKind
	Comment Comment // valid when Kind == PieceComment
}

func BlankPiece() Piece {
	return Piece{Kind: PieceBlank}
}

func CommentPiece(c Comment) Piece {
	return Piece{Kind: PieceComment, Comment: c}
}

// TriviaRun is an ordered sequence of blank lines and own-line comments
// that sit between two semantic positions.
type TriviaRun []Piece

func (r TriviaRun) IsEmpty() bool { return len(r) == 0 }

func (r TriviaRun) HasComment() bool {
	for _, p := range r {
		if p.Kind == PieceComment {
			return true
		}
	}
	return false
}

func (r TriviaRun) HasBlank() bool {
	for _, p := range r {
		if p.Kind == PieceBlank {
			return true
		}
	}
	return false
}

// TrimTrailingBlanks drops blank pieces at the end of the run.
func (r TriviaRun) TrimTrailingBlanks() TriviaRun {
	n := len(r)
	for n > 0 && r[n-1].Kind == PieceBlank {
		n--
	}
	return r[:n]
}

// TrimLeadingBlanks drops blank pieces at the start of the run.
func (r TriviaRun) TrimLeadingBlanks() TriviaRun {
	i := 0
	for i < len(r) && r[i].Kind == PieceBlank {
		i++
	}
	return r[i:]
}
