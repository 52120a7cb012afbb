// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is the central record: a Severity, a stable Code, a message, and
// a primary source.Span, plus optional Notes pointing at related spans (for
// example the opener of an unclosed container). Producers emit diagnostics
// through the Reporter interface; BagReporter collects them into a Bag.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt, and the public API boundary converts the first error in a
// Bag into the caller-facing error value.
package diag
