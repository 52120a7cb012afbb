package format

import (
	"errors"
	"io"

	"fjson/internal/ast"
)

// Render formats a parsed document according to opt.Mode. Annotated and
// pretty output end with exactly one newline; compact output has none.
func Render(doc *ast.Document, opt Options) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("format: nil document")
	}
	if !doc.Root.IsValid() {
		return nil, errors.New("format: document has no root value")
	}

	opt = opt.withDefaults()
	w := NewWriter(opt, 256)
	pr := printer{doc: doc, w: w, mode: opt.Mode}

	switch opt.Mode {
	case ModeCompact:
		pr.compactValue(doc.Root)
	case ModePretty:
		pr.value(doc.Root)
		w.Newline()
	default:
		for _, p := range doc.Above {
			pr.ownLinePiece(p)
			w.Newline()
		}
		pr.value(doc.Root)
		pr.trailing(doc.Trailing)
		w.Newline()
		for _, p := range doc.Below {
			pr.ownLinePiece(p)
			w.Newline()
		}
	}
	return w.Bytes(), nil
}

// RenderTo writes the formatted document to an io.Writer.
func RenderTo(out io.Writer, doc *ast.Document, opt Options) error {
	b, err := Render(doc, opt)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

type printer struct {
	doc  *ast.Document
	w    *Writer
	mode Mode
}

func (p *printer) annotated() bool { return p.mode == ModeAnnotated }

// value renders one value for the annotated and pretty modes.
func (p *printer) value(id ast.ValueID) {
	v := p.doc.Get(id)
	switch v.Kind {
	case ast.ValueObject:
		p.object(v)
	case ast.ValueArray:
		p.array(v)
	default:
		p.scalar(v)
	}
}

func (p *printer) scalar(v *ast.Value) {
	switch v.Kind {
	case ast.ValueString:
		p.w.WriteByte('"')
		p.w.WriteString(v.Text)
		p.w.WriteByte('"')
	case ast.ValueNumber:
		p.w.WriteString(v.Text)
	case ast.ValueBool:
		if v.Bool {
			p.w.WriteString("true")
		} else {
			p.w.WriteString("false")
		}
	case ast.ValueNull:
		p.w.WriteString("null")
	}
}

func (p *printer) object(v *ast.Value) {
	if len(v.Members) == 0 && (!p.annotated() || v.Dangling.IsEmpty()) {
		p.w.WriteString("{}")
		return
	}
	if canInline(p.doc, v, p.annotated()) {
		p.w.WriteByte('{')
		for i := range v.Members {
			m := &v.Members[i]
			p.w.Space()
			p.key(m.Key)
			p.value(m.Value)
			if i < len(v.Members)-1 {
				p.w.WriteByte(',')
			}
		}
		p.w.Space()
		p.w.WriteByte('}')
		return
	}

	p.w.WriteByte('{')
	p.w.IndentPush()
	for i := range v.Members {
		m := &v.Members[i]
		if p.annotated() {
			for _, piece := range m.Leading {
				p.w.Newline()
				p.ownLinePiece(piece)
			}
		}
		p.w.Newline()
		p.key(m.Key)
		p.value(m.Value)
		if i < len(v.Members)-1 {
			p.w.WriteByte(',')
		}
		if p.annotated() {
			p.trailing(m.Trailing)
		}
	}
	if p.annotated() {
		for _, piece := range v.Dangling {
			p.w.Newline()
			p.ownLinePiece(piece)
		}
	}
	p.w.IndentPop()
	p.w.Newline()
	p.w.WriteByte('}')
}

func (p *printer) array(v *ast.Value) {
	if len(v.Elements) == 0 && (!p.annotated() || v.Dangling.IsEmpty()) {
		p.w.WriteString("[]")
		return
	}
	if canInline(p.doc, v, p.annotated()) {
		p.w.WriteByte('[')
		for i := range v.Elements {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.value(v.Elements[i].Value)
		}
		p.w.WriteByte(']')
		return
	}

	p.w.WriteByte('[')
	p.w.IndentPush()
	for i := range v.Elements {
		e := &v.Elements[i]
		if p.annotated() {
			for _, piece := range e.Leading {
				p.w.Newline()
				p.ownLinePiece(piece)
			}
		}
		p.w.Newline()
		p.value(e.Value)
		if i < len(v.Elements)-1 {
			p.w.WriteByte(',')
		}
		if p.annotated() {
			p.trailing(e.Trailing)
		}
	}
	if p.annotated() {
		for _, piece := range v.Dangling {
			p.w.Newline()
			p.ownLinePiece(piece)
		}
	}
	p.w.IndentPop()
	p.w.Newline()
	p.w.WriteByte(']')
}

func (p *printer) key(k string) {
	p.w.WriteByte('"')
	p.w.WriteString(k)
	p.w.WriteString(`": `)
}

// ownLinePiece writes a leading or dangling piece. Blank pieces write
// nothing: the surrounding line breaks produce the blank line.
func (p *printer) ownLinePiece(piece ast.Piece) {
	if piece.Kind == ast.PieceComment {
		p.w.WriteString(piece.Comment.Text)
	}
}

// trailing writes same-line comments after a value, one space apart.
func (p *printer) trailing(cs []ast.Comment) {
	for _, c := range cs {
		p.w.Space()
		p.w.WriteString(c.Text)
	}
}
