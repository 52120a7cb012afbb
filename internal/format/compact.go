package format

import "fjson/internal/ast"

// compactValue renders one value with no insignificant whitespace.
func (p *printer) compactValue(id ast.ValueID) {
	v := p.doc.Get(id)
	switch v.Kind {
	case ast.ValueObject:
		p.w.WriteByte('{')
		for i := range v.Members {
			if i > 0 {
				p.w.WriteByte(',')
			}
			m := &v.Members[i]
			p.w.WriteByte('"')
			p.w.WriteString(m.Key)
			p.w.WriteString(`":`)
			p.compactValue(m.Value)
		}
		p.w.WriteByte('}')
	case ast.ValueArray:
		p.w.WriteByte('[')
		for i := range v.Elements {
			if i > 0 {
				p.w.WriteByte(',')
			}
			p.compactValue(v.Elements[i].Value)
		}
		p.w.WriteByte(']')
	default:
		p.scalar(v)
	}
}
