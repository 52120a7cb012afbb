// Package format renders a parsed document back to text.
//
// Three modes share one tree walk: annotated output keeps comments and
// blank lines, pretty output is strict indented JSON, and compact output
// is strict single-line JSON. All three are deterministic: the same tree
// always produces the same bytes, and string and number literals are
// copied verbatim from the source, never re-encoded.
package format
