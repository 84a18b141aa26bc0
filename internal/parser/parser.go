package parser

import (
	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/lexer"
	"intlc/internal/source"
	"intlc/internal/token"
)

type Options struct {
	// JSX включает разбор JSX. Для .ts файлов выключен: там "<T>expr" это
	// приведение типа.
	JSX       bool
	MaxErrors uint
	Reporter  diag.Reporter
}

// Parser holds the state for a single file.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	opts Options

	tok  token.Token // текущий (ещё не съеденный) токен
	prev token.Token // последний съеденный токен

	errors   uint
	lineLead []token.Trivia // комментарии перед текущей строкой
	comments []token.Trivia
	started  bool
}

// ParseFile parses one source file. Lexical and syntax errors go to
// opts.Reporter; the returned tree is always usable.
func ParseFile(file *source.File, opts Options) *ast.File {
	p := &Parser{
		file: file,
		opts: opts,
		prev: token.Token{Kind: token.Invalid},
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: reporterFunc(p.report)})
	p.next()

	f := &ast.File{ID: file.ID}
	for p.tok.Kind != token.EOF {
		e := p.parseExpr()
		f.Nodes = append(f.Nodes, e.Items...)
		if isCloser(p.tok.Kind) {
			p.errorf(diag.SrcUnexpectedToken, p.tok.Span, "unexpected %q", p.tok.Text)
			p.next()
		}
	}
	f.Sp = source.Span{File: file.ID, Start: 0, End: p.tok.Span.End}
	f.Comments = p.comments
	return f
}

// next съедает текущий токен и читает следующий в текущем режиме лексера.
func (p *Parser) next() {
	first := !p.started
	if !first {
		p.prev = p.tok
	}
	p.started = true
	p.tok = p.lx.Next()

	var comments []token.Trivia
	for _, tv := range p.tok.Leading {
		if tv.IsComment() {
			comments = append(comments, tv)
		}
	}
	p.comments = append(p.comments, comments...)

	switch {
	case first, p.tok.HasNewline():
		p.lineLead = comments
	case p.tok.Kind == token.JSXText && containsNewline(p.tok.Text):
		p.lineLead = nil
	}
}

// nextIn переключает режим лексера и съедает текущий токен.
func (p *Parser) nextIn(m lexer.Mode) {
	p.lx.SetMode(m)
	p.next()
}

func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

// expectIn съедает токен k (переключив режим на m) или репортит ошибку.
func (p *Parser) expectIn(k token.Kind, m lexer.Mode, code diag.Code, what string) bool {
	if p.at(k) {
		p.nextIn(m)
		return true
	}
	p.lx.SetMode(m)
	p.errorf(code, p.diagSpan(), "expected %s, found %s", what, describe(p.tok))
	return false
}

// diagSpan: на EOF указываем в конец последнего токена.
func (p *Parser) diagSpan() source.Span {
	if p.tok.Kind == token.EOF && p.prev.Span.End > 0 {
		return source.Span{File: p.file.ID, Start: p.prev.Span.End, End: p.prev.Span.End}
	}
	return p.tok.Span
}

func isCloser(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

func closerFor(open token.Kind) token.Kind {
	switch open {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "\"" + tok.Text + "\""
}
