package parser

import (
	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/lexer"
	"intlc/internal/token"
)

// parseObject разбирает объектный литерал. Разбор терпимый: всё, что не
// похоже на свойство, сохраняется как PropUnknown.
func (p *Parser) parseObject() *ast.ObjectLit {
	open := p.tok
	obj := &ast.ObjectLit{Sp: open.Span}
	p.next()

	for !p.at(token.RBrace) {
		if p.at(token.EOF) || p.at(token.TemplateMiddle) || p.at(token.TemplateTail) {
			p.errorf(diag.SrcUnclosedDelimiter, open.Span, "unclosed %q", open.Text)
			obj.Sp.End = p.prev.Span.End
			return obj
		}
		if p.at(token.RParen) || p.at(token.RBracket) {
			p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "unexpected %q in object literal", p.tok.Text)
			p.next()
			continue
		}
		if p.at(token.Comma) {
			p.next()
			continue
		}
		obj.Props = append(obj.Props, p.parseProperty())
	}
	obj.Sp.End = p.tok.Span.End
	p.next()
	return obj
}

func (p *Parser) parseProperty() *ast.Property {
	start := p.tok.Span
	prop := &ast.Property{Sp: start}
	finish := func() *ast.Property {
		if p.prev.Span.End > prop.Sp.Start {
			prop.Sp.End = p.prev.Span.End
		}
		return prop
	}

	if p.at(token.DotDotDot) {
		p.next()
		prop.Kind = ast.PropSpread
		prop.Value = p.parseExpr(token.Comma)
		return finish()
	}

	// модификаторы: get/set/async/static и генераторы
	for p.at(token.Star) || (p.at(token.Ident) && isModifier(p.tok.Text)) {
		mod := p.tok
		p.next()
		if !p.at(token.Ident) && !p.tok.IsKeyword() && !p.at(token.StringLit) &&
			!p.at(token.NumberLit) && !p.at(token.LBracket) && !p.at(token.PrivateName) && !p.at(token.Star) {
			// это было само имя свойства (например, { get: 1 })
			prop.Key, prop.KeySpan = mod.Text, mod.Span
			return p.parsePropertyRest(prop, finish)
		}
	}

	switch {
	case p.tok.IsName() || p.at(token.NumberLit) || p.at(token.PrivateName):
		prop.Key, prop.KeySpan = p.tok.Text, p.tok.Span
		p.next()
	case p.at(token.StringLit):
		prop.KeySpan = p.tok.Span
		key, err := lexer.StringValue(p.tok)
		if err != nil {
			key = p.tok.Text
		}
		prop.Key = key
		p.next()
	case p.at(token.LBracket):
		g := p.parseGroup()
		prop.Kind = ast.PropComputed
		prop.KeySpan = g.Sp
		if p.at(token.Colon) {
			p.next()
			prop.Value = p.parseExpr(token.Comma)
		} else if p.at(token.LParen) {
			prop.Value = p.parseExpr(token.Comma)
		}
		return finish()
	default:
		prop.Kind = ast.PropUnknown
		prop.Value = p.parseExpr(token.Comma)
		return finish()
	}
	return p.parsePropertyRest(prop, finish)
}

func (p *Parser) parsePropertyRest(prop *ast.Property, finish func() *ast.Property) *ast.Property {
	switch {
	case p.at(token.Colon):
		p.next()
		prop.Kind = ast.PropKeyValue
		prop.Value = p.parseExpr(token.Comma)
	case p.at(token.LParen) || p.at(token.Lt):
		// параметры, тип возврата и тело: тело может содержать вызовы
		prop.Kind = ast.PropMethod
		prop.Value = p.parseExpr(token.Comma)
	case p.at(token.Assign):
		p.next()
		prop.Kind = ast.PropShorthand
		prop.Value = p.parseExpr(token.Comma)
	case p.at(token.Comma) || p.at(token.RBrace):
		prop.Kind = ast.PropShorthand
	case p.at(token.Question):
		// TS: { key?: Type }
		p.next()
		prop.Kind = ast.PropUnknown
		prop.Value = p.parseExpr(token.Comma)
	default:
		prop.Kind = ast.PropUnknown
		prop.Value = p.parseExpr(token.Comma)
	}
	return finish()
}

func isModifier(s string) bool {
	switch s {
	case "get", "set", "async", "static":
		return true
	}
	return false
}
