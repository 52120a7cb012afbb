package ast

import "fjson/internal/source"

// Document is a parsed file: one root value plus the trivia that sits
// outside it.
type Document struct {
	arena *Arena[Value]

	File source.FileID
	Root ValueID

	Above    TriviaRun // before the root value
	Trailing []Comment // same line as the root value's end
	Below    TriviaRun // after the root value, own lines
}

func NewDocument(file source.FileID, capHint uint) *Document {
	return &Document{
		arena: NewArena[Value](capHint),
		File:  file,
	}
}

// Alloc stores a value and returns its ID.
func (d *Document) Alloc(v Value) ValueID {
	return ValueID(d.arena.Allocate(v))
}

// Get returns the value for id, or nil for NoValueID.
func (d *Document) Get(id ValueID) *Value {
	return d.arena.Get(uint32(id))
}

// Len returns the number of allocated values.
func (d *Document) Len() uint32 {
	return d.arena.Len()
}
