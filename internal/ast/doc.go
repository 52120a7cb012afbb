// Package ast defines the document tree produced by the parser.
//
// Values live in an arena and refer to each other through 1-based ValueIDs,
// so a Document is a handful of flat slices rather than a pointer web.
// Comments and blank lines are first-class: they attach to the member or
// element they precede (Leading), to the value they share a line with
// (Trailing), or to the enclosing container when nothing follows them
// (Dangling). The formatter reproduces them from these positions.
package ast
