package ast

import "fjson/internal/source"

type ValueKind uint8

const (
	ValueObject ValueKind = iota
	ValueArray
	ValueString
	ValueNumber
	ValueBool
	ValueNull
)

func (k ValueKind) String() string {
	switch k {
	case ValueObject:
		return "object"
	case ValueArray:
		return "array"
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "bool"
	case ValueNull:
		return "null"
	}
	return "unknown"
}

// Value is a node in the document tree. Strings and numbers keep their raw
// source text so output never re-encodes a literal.
type Value struct {
	Kind ValueKind
	Span source.Span

	// Text holds the string contents without quotes (ValueString) or the
	// raw literal (ValueNumber).
	Text string
	Bool bool // valid for ValueBool

	Members  []Member  // ValueObject
	Elements []Element // ValueArray

	// Dangling is trivia between the last child (or the opener, when the
	// container is empty) and the closing brace/bracket.
	Dangling TriviaRun
}

// IsLeaf reports whether the value is a scalar (not an object or array).
func (v *Value) IsLeaf() bool {
	return v.Kind != ValueObject && v.Kind != ValueArray
}

// Member is one key/value entry of an object. Duplicate keys are preserved
// in document order.
type Member struct {
	Key     string // raw inner text, without quotes
	KeySpan source.Span
	Value   ValueID

	Leading  TriviaRun // blank lines and own-line comments before the key
	Trailing []Comment // same-line comments after the value (or its comma)
}

// Element is one entry of an array.
type Element struct {
	Value ValueID

	Leading  TriviaRun
	Trailing []Comment
}
