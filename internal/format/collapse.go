package format

import "fjson/internal/ast"

// canInline reports whether a container may be rendered on a single line.
// The rule is structural: every direct child must be a scalar leaf. In
// annotated mode, any attached comment or blank line also forces the
// expanded form, since those only render on their own lines.
func canInline(doc *ast.Document, v *ast.Value, withTrivia bool) bool {
	if withTrivia && !v.Dangling.IsEmpty() {
		return false
	}
	switch v.Kind {
	case ast.ValueObject:
		for i := range v.Members {
			m := &v.Members[i]
			if withTrivia && (!m.Leading.IsEmpty() || len(m.Trailing) > 0) {
				return false
			}
			if !doc.Get(m.Value).IsLeaf() {
				return false
			}
		}
	case ast.ValueArray:
		for i := range v.Elements {
			e := &v.Elements[i]
			if withTrivia && (!e.Leading.IsEmpty() || len(e.Trailing) > 0) {
				return false
			}
			if !doc.Get(e.Value).IsLeaf() {
				return false
			}
		}
	}
	return true
}
