package lexer

import (
	"intlc/internal/diag"
	"intlc/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Поддерживаются escape-последовательности \uXXXX и \u{...} внутри имени;
// Token.Text остаётся ровно исходным срезом.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	escaped := false

	for first := true; !lx.cursor.EOF(); first = false {
		if lx.cursor.Peek() == '\\' {
			if !lx.scanIdentEscape() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.SrcUnexpectedToken, sp, "invalid escape in identifier")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			escaped = true
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if first && !isIdentStartRune(r) || !first && !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Len() == 0 {
		// не идентификатор: пусть разберётся сканер операторов
		return lx.scanOperatorOrPunct()
	}
	text := lx.text(sp)

	// ключевые слова с escape-последовательностями остаются идентификаторами
	if !escaped {
		if k, ok := token.LookupKeyword(text); ok {
			return token.Token{Kind: k, Span: sp, Text: text}
		}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func (lx *Lexer) scanIdentEscape() bool {
	if !lx.try2('\\', 'u') {
		return false
	}
	if lx.cursor.Eat('{') {
		n := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		return n > 0 && lx.cursor.Eat('}')
	}
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return false
		}
		lx.cursor.Bump()
	}
	return true
}

// #name внутри классов
func (lx *Lexer) scanPrivateName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.PrivateName, Span: sp, Text: lx.text(sp)}
}
