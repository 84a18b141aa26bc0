package lexer

import (
	"intlc/internal/diag"
	"intlc/internal/token"
)

// '...' и "...": escape-последовательности только пропускаем, значение
// строки вычисляет Cook. Перевод строки допустим только после '\'.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.bumpRune()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.SrcUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.SrcUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanTemplate сканирует часть шаблонной строки от '`' (head=true) или от '}'
// закрывающего подстановку, до следующего '`' или "${".
func (lx *Lexer) scanTemplate(start Mark, head bool) token.Token {
	lx.cursor.Bump() // '`' или '}'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '`':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateTail
			if head {
				kind = token.NoSubstTemplate
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case b == '$' && lx.cursor.PeekAt(1) == '{':
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.pushBrace(braceTemplate)
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateMiddle
			if head {
				kind = token.TemplateHead
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.bumpRune()
			}
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.SrcUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// /body/flags; '/' внутри [...] не завершает литерал.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.SrcUnterminatedRegex, sp, "unterminated regular expression")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.bumpRune()
			}
			continue
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.RegexLit, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.SrcUnterminatedRegex, sp, "unterminated regular expression")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
