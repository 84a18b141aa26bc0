package parser

import (
	"intlc/internal/ast"
	"intlc/internal/token"
)

// parseNameOrCall разбирает a.b.c и, если за путём идёт '(' (или "?.("),
// вызов с аргументами.
func (p *Parser) parseNameOrCall() ast.Node {
	leading := p.lineLead
	before := p.prev
	first := p.tok
	name := &ast.Name{Sp: first.Span, Parts: []string{first.Text}}
	p.next()

	optional := false
	for p.at(token.Dot) || p.at(token.QuestionDot) {
		dot := p.tok
		p.next()
		if p.tok.IsName() || p.at(token.PrivateName) {
			name.Parts = append(name.Parts, p.tok.Text)
			name.Sp.End = p.tok.Span.End
			p.next()
			continue
		}
		if dot.Kind == token.QuestionDot && p.at(token.LParen) {
			optional = true
		}
		break
	}

	if !p.at(token.LParen) {
		return name
	}

	args := p.parseGroup()
	call := &ast.CallExpr{
		Sp:       name.Sp,
		Callee:   name,
		Optional: optional,
		Leading:  leading,
	}
	call.Sp.End = args.Sp.End
	for _, e := range args.Elems {
		if len(e.Items) > 0 {
			call.Args = append(call.Args, e)
		}
	}
	// function f() {...}, методы и if (...) {...} не являются вызовами
	call.Decl = p.at(token.LBrace) || (before.Kind == token.Ident && before.Text == "function")
	return call
}
