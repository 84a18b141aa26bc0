package lexer

import (
	"intlc/internal/diag"
	"intlc/internal/token"
)

// nextJSXTag: токены внутри <...>. Пунктуация всегда односимвольная,
// чтобы "<b>=" не превратилось в оператор ">=".
func (lx *Lexer) nextJSXTag() token.Token {
	lx.collectLeadingTrivia()
	if lx.cursor.EOF() {
		return lx.eof()
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanJSXName()
	case ch == '"' || ch == '\'':
		tok = lx.scanJSXString(ch)
	default:
		lx.cursor.Bump()
		kind := token.Invalid
		switch ch {
		case '<':
			kind = token.Lt
		case '>':
			kind = token.Gt
		case '/':
			kind = token.Slash
		case '=':
			kind = token.Assign
		case ':':
			kind = token.Colon
		case '.':
			kind = token.Dot
		case ',':
			kind = token.Comma
		case '{':
			lx.pushBrace(braceBlock)
			kind = token.LBrace
		case '}':
			lx.popBrace()
			kind = token.RBrace
		}
		sp := lx.cursor.SpanFrom(start)
		if kind == token.Invalid {
			lx.errLex(diag.SrcUnexpectedToken, sp, "unexpected character "+quoteText(lx.text(sp))+" in JSX tag")
		}
		tok = token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	}

	tok.Leading = lx.takeHold()
	return tok
}

// JSX имена: идентификатор, допускающий '-' (aria-label, data-id).
func (lx *Lexer) scanJSXName() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if sz == 0 || !(isIdentContinueRune(r) || r == '-') {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	if sp.Len() == 0 {
		lx.bumpRune()
		sp = lx.cursor.SpanFrom(start)
		lx.errLex(diag.SrcUnexpectedToken, sp, "unexpected character "+quoteText(lx.text(sp))+" in JSX tag")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: token.JSXName, Span: sp, Text: lx.text(sp)}
}

// Значения атрибутов: без escape-последовательностей, переводы строк разрешены.
func (lx *Lexer) scanJSXString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.JSXString, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.SrcUnterminatedString, sp, "unterminated JSX attribute string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// nextJSXChild: текст между тегами до '{' или '<'. Trivia здесь нет,
// пробелы и переводы строк входят в JSXText.
func (lx *Lexer) nextJSXChild() token.Token {
	lx.hold = nil
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case '{':
		lx.cursor.Bump()
		lx.pushBrace(braceBlock)
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.LBrace, Span: sp, Text: lx.text(sp)}
	case '<':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Lt, Span: sp, Text: lx.text(sp)}
	}
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '{' || b == '<' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.JSXText, Span: sp, Text: lx.text(sp)}
}
