package lexer

import (
	"intlc/internal/source"
	"intlc/internal/token"
)

// Mode selects the tokenisation rules for the next token.
type Mode uint8

const (
	// ModeJS lexes ordinary JavaScript / TypeScript.
	ModeJS Mode = iota
	// ModeJSXTag lexes inside `<Name attr="v" ...>`: names may contain '-',
	// strings have no escapes.
	ModeJSXTag
	// ModeJSXChild lexes element children: raw text up to '{' or '<'.
	ModeJSXChild
)

// braceTemplate marks a '{' that was opened by "${" inside a template literal.
const (
	braceBlock    byte = 'b'
	braceTemplate byte = 't'
)

// Lexer produces tokens on demand. The parser owns the mode: it switches
// modes between calls to Next, never with a token in flight.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	mode   Mode
	prev   token.Token    // последний значимый токен (для regex)
	braces []byte         // стек '{': блок или подстановка шаблона
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		mode:   ModeJS,
		prev:   token.Token{Kind: token.Invalid},
		braces: nil,
		hold:   nil,
	}
}

// SetMode switches the rules used for the next token.
func (lx *Lexer) SetMode(m Mode) { lx.mode = m }

// Mode returns the current lexing mode.
func (lx *Lexer) Mode() Mode { return lx.mode }

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	var tok token.Token
	switch lx.mode {
	case ModeJSXChild:
		tok = lx.nextJSXChild()
	case ModeJSXTag:
		tok = lx.nextJSXTag()
	default:
		tok = lx.nextJS()
	}
	if tok.Kind != token.EOF {
		lx.prev = tok
	}
	return tok
}

func (lx *Lexer) nextJS() token.Token {
	lx.collectLeadingTrivia()

	// EOF: Leading из hold не приклеиваем к EOF
	if lx.cursor.EOF() {
		return lx.eof()
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch == '\\':
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// возможный Unicode идентификатор: scanIdentOrKeyword разберётся
		tok = lx.scanIdentOrKeyword()

	case ch == '#' && isIdentStartByte(lx.cursor.PeekAt(1)):
		tok = lx.scanPrivateName()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)

	case ch == '`':
		tok = lx.scanTemplate(lx.cursor.Mark(), true)

	case ch == '/' && !lx.prev.EndsExpression():
		tok = lx.scanRegex()

	case ch == '}' && lx.topBrace() == braceTemplate:
		lx.popBrace()
		tok = lx.scanTemplate(lx.cursor.Mark(), false)

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	return tok
}

func (lx *Lexer) eof() token.Token {
	lx.hold = nil
	return token.Token{
		Kind: token.EOF,
		Span: lx.emptySpan(),
		Text: "",
	}
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	out := lx.hold
	lx.hold = nil
	return out
}

func (lx *Lexer) pushBrace(kind byte) { lx.braces = append(lx.braces, kind) }

func (lx *Lexer) popBrace() {
	if n := len(lx.braces); n > 0 {
		lx.braces = lx.braces[:n-1]
	}
}

func (lx *Lexer) topBrace() byte {
	if n := len(lx.braces); n > 0 {
		return lx.braces[n-1]
	}
	return 0
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
