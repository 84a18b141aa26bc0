package parser

import (
	"slices"

	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/lexer"
	"intlc/internal/source"
	"intlc/internal/token"
)

// parseExpr собирает элементы до EOF, до закрывающей скобки, до части
// шаблона (}...` / }...${) или до одного из stops. Стоп-токен не съедается.
func (p *Parser) parseExpr(stops ...token.Kind) *ast.Expr {
	e := &ast.Expr{Sp: source.Span{File: p.file.ID, Start: p.tok.Span.Start, End: p.tok.Span.Start}}
	for {
		k := p.tok.Kind
		if k == token.EOF || isCloser(k) || k == token.TemplateMiddle || k == token.TemplateTail ||
			slices.Contains(stops, k) {
			break
		}
		if item := p.parseItem(); item != nil {
			e.Items = append(e.Items, item)
			e.Sp.End = item.Span().End
		}
	}
	return e
}

func (p *Parser) parseItem() ast.Node {
	switch p.tok.Kind {
	case token.Ident, token.KwThis:
		return p.parseNameOrCall()

	case token.StringLit:
		return p.parseString()

	case token.NoSubstTemplate, token.TemplateHead:
		return p.parseTemplate()

	case token.LParen, token.LBracket:
		return p.parseGroup()

	case token.LBrace:
		if objectContext(p.prev) {
			return p.parseObject()
		}
		return p.parseGroup()

	case token.Lt:
		if p.opts.JSX && !p.prev.EndsExpression() {
			return p.parseJSX(lexer.ModeJS)
		}
	}
	tok := p.tok
	p.next()
	return &ast.Token{Tok: tok}
}

// objectContext: '{' после этих токенов начинает объектный литерал, а не блок.
func objectContext(prev token.Token) bool {
	switch prev.Kind {
	case token.Assign, token.LParen, token.LBracket, token.Comma, token.Colon,
		token.Question, token.Operator, token.Plus, token.Minus, token.Star, token.Slash,
		token.Percent, token.Bang, token.Tilde, token.Amp, token.Pipe, token.Caret,
		token.Lt, token.Gt, token.DotDotDot, token.TemplateHead, token.TemplateMiddle,
		token.KwReturn, token.KwYield, token.KwAwait, token.KwThrow, token.KwCase,
		token.KwTypeof, token.KwVoid, token.KwDelete, token.KwIn, token.KwOf,
		token.KwAs, token.KwSatisfies:
		return prev.Kind != token.Operator || (prev.Text != "++" && prev.Text != "--")
	default:
		return false
	}
}

func (p *Parser) parseString() ast.Node {
	tok := p.tok
	p.next()
	val, err := lexer.StringValue(tok)
	if err != nil {
		p.errorf(diag.SrcUnexpectedToken, tok.Span, "invalid string literal: %v", err)
		val = tok.Text
	}
	return &ast.StringLit{Sp: tok.Span, Raw: tok.Text, Value: val}
}

func (p *Parser) parseTemplate() ast.Node {
	head := p.tok
	t := &ast.TemplateLit{Sp: head.Span}
	t.Quasis = append(t.Quasis, p.cookTemplate(head))
	p.next()
	if head.Kind == token.NoSubstTemplate {
		return t
	}
	for {
		t.Exprs = append(t.Exprs, p.parseExpr())
		switch p.tok.Kind {
		case token.TemplateMiddle:
			t.Quasis = append(t.Quasis, p.cookTemplate(p.tok))
			p.next()
		case token.TemplateTail:
			t.Quasis = append(t.Quasis, p.cookTemplate(p.tok))
			t.Sp.End = p.tok.Span.End
			p.next()
			return t
		case token.EOF:
			// лексер уже сообщил о незакрытом шаблоне
			t.Quasis = append(t.Quasis, "")
			t.Sp.End = p.tok.Span.End
			return t
		default:
			// лишняя закрывающая скобка внутри подстановки
			p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "unexpected %q in template substitution", p.tok.Text)
			p.next()
			t.Exprs = t.Exprs[:len(t.Exprs)-1]
		}
	}
}

func (p *Parser) cookTemplate(tok token.Token) string {
	val, err := lexer.TemplateValue(tok)
	if err != nil {
		p.errorf(diag.SrcUnexpectedToken, tok.Span, "invalid template literal: %v", err)
	}
	return val
}

// parseGroup разбирает (...), [...] или блок {...}; элементы делятся запятыми.
func (p *Parser) parseGroup() *ast.Group {
	open := p.tok
	g := &ast.Group{Sp: open.Span, Open: open.Kind}
	closer := closerFor(open.Kind)
	p.next()
	for {
		g.Elems = append(g.Elems, p.parseExpr(token.Comma))
		switch {
		case p.at(token.Comma):
			p.next()
		case p.at(closer):
			g.Sp.End = p.tok.Span.End
			p.next()
			return g
		case p.at(token.EOF) || p.at(token.TemplateMiddle) || p.at(token.TemplateTail):
			p.errorf(diag.SrcUnclosedDelimiter, open.Span, "unclosed %q", open.Text)
			g.Sp.End = p.prev.Span.End
			return g
		default:
			p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "unexpected %q, expected %q", p.tok.Text, closer.String())
			p.next()
		}
	}
}
