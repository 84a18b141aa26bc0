package lexer

import (
	"intlc/internal/diag"
	"intlc/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\v', '\f' и NBSP коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - //... до \n и #! в начале файла: TriviaLineComment
//   - /* ... */: TriviaBlockComment (не вложенные; если не закрыт, репорт и обрезаем на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if n := lx.spaceWidth(); n > 0 {
			for n > 0 {
				lx.cursor.Off += n
				n = lx.spaceWidth()
			}
			lx.appendTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.appendTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '#' && lx.cursor.Off == 0 && lx.cursor.PeekAt(1) == '!' {
			lx.skipToLineEnd()
			lx.appendTrivia(token.TriviaLineComment, start)
			continue
		}

		if b == '/' && lx.scanCommentIntoHold() {
			continue
		}

		// нет больше trivia
		break
	}
}

// spaceWidth возвращает длину пробельного символа под курсором (0, если его нет).
func (lx *Lexer) spaceWidth() uint32 {
	switch lx.cursor.Peek() {
	case ' ', '\t', '\v', '\f':
		return 1
	case 0xC2:
		if lx.cursor.PeekAt(1) == 0xA0 {
			return 2
		}
	case 0xEF:
		if lx.cursor.PeekAt(1) == 0xBB && lx.cursor.PeekAt(2) == 0xBF {
			return 3
		}
	}
	return 0
}

func (lx *Lexer) appendTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: lx.text(sp),
	})
}

func (lx *Lexer) skipToLineEnd() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// //... или /*...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	switch lx.cursor.PeekAt(1) {
	case '/':
		lx.skipToLineEnd()
		lx.appendTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.try2('*', '/') {
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		if !closed {
			lx.errLex(diag.SrcUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.appendTrivia(token.TriviaBlockComment, start)
		return true

	default:
		// это не комментарий: пусть сканируется как '/' или regex
		return false
	}
}
