package parser

import (
	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/lexer"
	"intlc/internal/source"
	"intlc/internal/token"
)

// parseJSX разбирает элемент, начиная с текущего '<'. resume задаёт режим
// лексера после закрывающего '>' (JS, дочерний текст или тег атрибута).
func (p *Parser) parseJSX(resume lexer.Mode) ast.Node {
	lt := p.tok
	leading := p.lineLead
	p.nextIn(lexer.ModeJSXTag)

	// TS generic arrow в .tsx: <T,>(x: T) => x, <T extends U>(...) => ...
	if p.at(token.JSXName) {
		name := p.tok
		p.next()
		if p.at(token.Comma) || (p.at(token.JSXName) && p.tok.Text == "extends") {
			return p.skipTypeParams(lt, resume)
		}
		return p.parseJSXElement(lt, name, leading, resume)
	}
	return p.parseJSXElement(lt, token.Token{Kind: token.Invalid}, leading, resume)
}

func (p *Parser) skipTypeParams(lt token.Token, resume lexer.Mode) ast.Node {
	for !p.at(token.Gt) && !p.at(token.EOF) {
		p.next()
	}
	sp := lt.Span
	sp.End = p.tok.Span.End
	if p.at(token.Gt) {
		p.nextIn(resume)
	} else {
		p.lx.SetMode(resume)
	}
	return &ast.Token{Tok: token.Token{Kind: token.Lt, Span: sp, Text: string(p.file.Content[sp.Start:sp.End])}}
}

// parseJSXElement: '<' и, возможно, первый сегмент имени уже съедены.
func (p *Parser) parseJSXElement(lt, first token.Token, leading []token.Trivia, resume lexer.Mode) *ast.JSXElement {
	el := &ast.JSXElement{Sp: lt.Span, Leading: leading}
	if first.Kind == token.JSXName {
		el.Name, el.NameSpan = p.parseJSXNameRest(first)
	}

	// атрибуты
	for !p.at(token.Gt) && !p.at(token.Slash) {
		switch {
		case p.at(token.EOF):
			p.errorf(diag.SrcJSXUnterminated, lt.Span, "unterminated JSX element <%s>", el.Name)
			el.Sp.End = p.prev.Span.End
			p.lx.SetMode(resume)
			return el
		case p.at(token.JSXName):
			el.Attrs = append(el.Attrs, p.parseJSXAttr())
		case p.at(token.LBrace):
			el.Attrs = append(el.Attrs, p.parseJSXSpreadAttr())
		default:
			p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "unexpected %s in JSX tag", describe(p.tok))
			p.next()
		}
	}

	if p.at(token.Slash) {
		p.next()
		el.SelfClosing = true
		el.Sp.End = p.tok.Span.End
		p.expectIn(token.Gt, resume, diag.SrcJSXUnterminated, "'>' after '/'")
		return el
	}

	// '>' открывающего тега: дальше дочерние элементы
	p.nextIn(lexer.ModeJSXChild)
	for {
		switch p.tok.Kind {
		case token.EOF:
			p.errorf(diag.SrcJSXUnterminated, lt.Span, "unterminated JSX element <%s>", el.Name)
			el.Sp.End = p.prev.Span.End
			p.lx.SetMode(resume)
			return el

		case token.JSXText:
			el.Children = append(el.Children, &ast.JSXText{Sp: p.tok.Span, Raw: p.tok.Text})
			p.next()

		case token.LBrace:
			el.Children = append(el.Children, p.parseJSXContainer(lexer.ModeJSXChild))

		case token.Lt:
			childLt := p.tok
			childLead := p.lineLead
			p.nextIn(lexer.ModeJSXTag)
			if p.at(token.Slash) {
				p.next()
				p.parseJSXClosing(el, resume)
				return el
			}
			var name token.Token
			if p.at(token.JSXName) {
				name = p.tok
				p.next()
			}
			el.Children = append(el.Children, p.parseJSXElement(childLt, name, childLead, lexer.ModeJSXChild))

		default:
			// в дочернем режиме лексер выдаёт только текст, '{' и '<'
			p.next()
		}
	}
}

// parseJSXClosing: "</" уже съедены.
func (p *Parser) parseJSXClosing(el *ast.JSXElement, resume lexer.Mode) {
	var closing string
	closeSpan := p.tok.Span
	if p.at(token.JSXName) {
		first := p.tok
		p.next()
		closing, closeSpan = p.parseJSXNameRest(first)
	}
	if closing != el.Name {
		diag.ReportError(reporterFunc(p.report), diag.SrcJSXMismatchedTag, closeSpan,
			"expected closing tag </"+el.Name+">, found </"+closing+">").
			WithNote(el.NameSpan, "opening tag here").
			Emit()
	}
	el.Sp.End = p.tok.Span.End
	p.expectIn(token.Gt, resume, diag.SrcJSXUnterminated, "'>' to close the tag")
}

// parseJSXNameRest дочитывает a.b.c или ns:name после первого сегмента.
func (p *Parser) parseJSXNameRest(first token.Token) (string, source.Span) {
	name := first.Text
	sp := first.Span
	for p.at(token.Dot) || p.at(token.Colon) {
		sep := p.tok.Text
		p.next()
		if !p.at(token.JSXName) {
			p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "expected name after %q in JSX tag", sep)
			break
		}
		name += sep + p.tok.Text
		sp.End = p.tok.Span.End
		p.next()
	}
	return name, sp
}

func (p *Parser) parseJSXAttr() *ast.JSXAttr {
	first := p.tok
	p.next()
	name, sp := p.parseJSXNameRest(first)
	attr := &ast.JSXAttr{Sp: sp, Name: name}
	if !p.at(token.Assign) {
		return attr
	}
	p.next()
	switch p.tok.Kind {
	case token.JSXString:
		tok := p.tok
		val, _ := lexer.StringValue(tok)
		attr.Value = &ast.StringLit{Sp: tok.Span, Raw: tok.Text, Value: val}
		p.next()
	case token.LBrace:
		attr.Value = p.parseJSXContainer(lexer.ModeJSXTag)
	case token.Lt:
		attr.Value = p.parseJSX(lexer.ModeJSXTag)
	default:
		p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "expected attribute value, found %s", describe(p.tok))
		return attr
	}
	attr.Sp.End = attr.Value.Span().End
	return attr
}

// {...expr} внутри тега
func (p *Parser) parseJSXSpreadAttr() *ast.JSXAttr {
	open := p.tok
	attr := &ast.JSXAttr{Sp: open.Span}
	p.nextIn(lexer.ModeJS)
	if p.at(token.DotDotDot) {
		p.next()
	} else {
		p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "expected '...' in JSX spread attribute")
	}
	attr.Spread = p.parseExpr()
	attr.Sp.End = p.tok.Span.End
	p.expectIn(token.RBrace, lexer.ModeJSXTag, diag.SrcUnclosedDelimiter, "'}'")
	return attr
}

// {expr} в значении атрибута или среди дочерних элементов; after задаёт
// режим лексера после '}'.
func (p *Parser) parseJSXContainer(after lexer.Mode) *ast.JSXExprContainer {
	open := p.tok
	c := &ast.JSXExprContainer{Sp: open.Span}
	p.nextIn(lexer.ModeJS)
	if !p.at(token.RBrace) {
		c.Expr = p.parseExpr()
	}
	c.Sp.End = p.tok.Span.End
	p.expectIn(token.RBrace, after, diag.SrcUnclosedDelimiter, "'}'")
	return c
}
