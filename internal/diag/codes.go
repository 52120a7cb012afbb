package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexInvalidEscape            Code = 1005
	LexControlInString          Code = 1006

	// Syntactic
	SynUnexpectedToken        Code = 2001
	SynUnexpectedEOF          Code = 2002
	SynDuplicateTrailingComma Code = 2003
	SynUnclosedContainer      Code = 2004
	SynMaxDepthExceeded       Code = 2005
	SynDuplicateKey           Code = 2006
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexUnknownChar:              "unexpected character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",
	LexInvalidEscape:            "invalid escape sequence",
	LexControlInString:          "control character in string literal",
	SynUnexpectedToken:          "unexpected token",
	SynUnexpectedEOF:            "unexpected end of input",
	SynDuplicateTrailingComma:   "duplicate trailing comma",
	SynUnclosedContainer:        "unclosed object or array",
	SynMaxDepthExceeded:         "maximum nesting depth exceeded",
	SynDuplicateKey:             "duplicate object key",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
