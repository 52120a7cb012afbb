// Package fuzztests houses Go fuzz harnesses that exercise the formatting
// pipeline (source -> lexer -> parser -> format) on arbitrary inputs. They
// guard the properties the formatter promises unconditionally: no panics
// anywhere in the pipeline, strict output modes always emit RFC 8259 JSON,
// and annotated output is a fixed point of the formatter.
package fuzztests
