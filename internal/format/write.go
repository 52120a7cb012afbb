package format

// Writer accumulates formatted output and provides helpers for emitting
// canonical whitespace. Indentation is lazy: a line break only marks the
// line start, and the indent is written when the next visible text
// arrives, so blank lines never carry trailing spaces.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options, capHint int) *Writer {
	return &Writer{
		opt: opt.withDefaults(),
		buf: make([]byte, 0, capHint),
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for i := 0; i < w.indentLevel; i++ {
			w.buf = append(w.buf, '\t')
		}
	} else {
		spaceCount := w.indentLevel * w.opt.IndentWidth
		for i := 0; i < spaceCount; i++ {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

// WriteByte writes a single byte to the output, handling indentation. The
// error is always nil; the signature matches io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.writeIndent()
	w.buf = append(w.buf, b)
	return nil
}

// Space writes a single space.
func (w *Writer) Space() {
	w.writeIndent()
	w.buf = append(w.buf, ' ')
}

// Newline always writes a line break; consecutive calls produce blank
// lines, which the annotated mode relies on.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
