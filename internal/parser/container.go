package parser

import (
	"fjson/internal/ast"
	"fjson/internal/diag"
	"fjson/internal/source"
	"fjson/internal/token"
)

func (p *Parser) parseObject(open token.Token) (ast.ValueID, bool) {
	if !p.enter(open.Span) {
		return ast.NoValueID, false
	}
	defer p.leave()

	obj := ast.Value{Kind: ast.ValueObject, Span: open.Span}
	tok := p.lx.Next()
	pending := piecesAll(tok.Leading, true)
	var seenKeys map[string]source.Span

	for {
		switch tok.Kind {
		case token.RBrace:
			obj.Dangling = pending.TrimTrailingBlanks()
			obj.Span = open.Span.Cover(tok.Span)
			return p.doc.Alloc(obj), true
		case token.EOF:
			p.report(diag.SynUnclosedContainer, tok.Span, "unclosed object", openerNote(open.Span))
			return ast.NoValueID, false
		case token.Comma:
			p.report(diag.SynUnexpectedToken, tok.Span, "expected an object member before ','", nil)
			return ast.NoValueID, false
		case token.Invalid:
			return ast.NoValueID, false
		case token.String:
			// an object member
		default:
			p.report(diag.SynUnexpectedToken, tok.Span,
				"expected a string key, found "+tok.Kind.String(), nil)
			return ast.NoValueID, false
		}

		member := ast.Member{
			Key:     tok.Text[1 : len(tok.Text)-1],
			KeySpan: tok.Span,
			Leading: pending,
		}
		pending = nil

		// duplicates stay in the document; all modes preserve every member
		if prev, dup := seenKeys[member.Key]; dup {
			p.warn(diag.SynDuplicateKey, tok.Span, "duplicate object key "+tok.Text,
				[]diag.Note{{Span: prev, Msg: "first occurrence here"}})
		} else {
			if seenKeys == nil {
				seenKeys = make(map[string]source.Span)
			}
			seenKeys[member.Key] = tok.Span
		}

		colon := p.lx.Next()
		member.Leading = append(member.Leading, piecesAll(colon.Leading, true)...)
		if colon.Kind != token.Colon {
			switch colon.Kind {
			case token.EOF:
				p.report(diag.SynUnclosedContainer, colon.Span, "unclosed object", openerNote(open.Span))
			case token.Invalid:
				// already reported by the lexer
			default:
				p.report(diag.SynUnexpectedToken, colon.Span,
					"expected ':' after object key, found "+colon.Kind.String(), nil)
			}
			return ast.NoValueID, false
		}

		valTok := p.lx.Next()
		member.Leading = append(member.Leading, piecesAll(valTok.Leading, true)...)
		val, ok := p.parseValue(valTok)
		if !ok {
			return ast.NoValueID, false
		}
		member.Value = val

		next, ok := p.afterEntry(&member.Trailing, &pending, token.RBrace, open.Span)
		obj.Members = append(obj.Members, member)
		if !ok {
			return ast.NoValueID, false
		}
		tok = next
	}
}

func (p *Parser) parseArray(open token.Token) (ast.ValueID, bool) {
	if !p.enter(open.Span) {
		return ast.NoValueID, false
	}
	defer p.leave()

	arr := ast.Value{Kind: ast.ValueArray, Span: open.Span}
	tok := p.lx.Next()
	pending := piecesAll(tok.Leading, true)

	for {
		switch tok.Kind {
		case token.RBracket:
			arr.Dangling = pending.TrimTrailingBlanks()
			arr.Span = open.Span.Cover(tok.Span)
			return p.doc.Alloc(arr), true
		case token.EOF:
			p.report(diag.SynUnclosedContainer, tok.Span, "unclosed array", openerNote(open.Span))
			return ast.NoValueID, false
		case token.Comma:
			p.report(diag.SynUnexpectedToken, tok.Span, "expected an array element before ','", nil)
			return ast.NoValueID, false
		case token.Invalid:
			return ast.NoValueID, false
		}

		elem := ast.Element{Leading: pending}
		pending = nil

		val, ok := p.parseValue(tok)
		if !ok {
			return ast.NoValueID, false
		}
		elem.Value = val

		next, ok := p.afterEntry(&elem.Trailing, &pending, token.RBracket, open.Span)
		arr.Elements = append(arr.Elements, elem)
		if !ok {
			return ast.NoValueID, false
		}
		tok = next
	}
}

// afterEntry routes the trivia after a finished member or element and
// consumes the separating comma, if any. It returns the token the caller's
// loop should continue with. Comments on the entry's closing line (before
// the comma or right after it) go to trailing; own-line pieces accumulate
// in pending as the next sibling's leading run.
func (p *Parser) afterEntry(
	trailing *[]ast.Comment,
	pending *ast.TriviaRun,
	closer token.Kind,
	openSpan source.Span,
) (token.Token, bool) {
	tok := p.lx.Next()
	sameLine, pieces := splitLeading(tok.Leading)
	*trailing = append(*trailing, sameLine...)
	*pending = append(*pending, pieces...)

	switch tok.Kind {
	case closer:
		return tok, true
	case token.Comma:
		next := p.lx.Next()
		sameLine2, pieces2 := splitLeading(next.Leading)
		*trailing = append(*trailing, sameLine2...)
		*pending = append(*pending, pieces2...)
		if next.Kind == token.Comma {
			p.report(diag.SynDuplicateTrailingComma, next.Span,
				"duplicate comma: only one trailing comma is allowed", nil)
			return next, false
		}
		return next, true
	case token.EOF:
		what := "object"
		if closer == token.RBracket {
			what = "array"
		}
		p.report(diag.SynUnclosedContainer, tok.Span, "unclosed "+what, openerNote(openSpan))
		return tok, false
	case token.Invalid:
		return tok, false
	default:
		sep := "'}'"
		if closer == token.RBracket {
			sep = "']'"
		}
		p.report(diag.SynUnexpectedToken, tok.Span,
			"expected ',' or "+sep+", found "+tok.Kind.String(), nil)
		return tok, false
	}
}
