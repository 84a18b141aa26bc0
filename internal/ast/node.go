package ast

import (
	"intlc/internal/source"
	"intlc/internal/token"
)

// Node is any element of the syntax tree.
type Node interface {
	Span() source.Span
	node()
}

// Expr is a run of items at one bracket depth, terminated by a comma or a
// closing delimiter. Operators and unknown tokens are kept as *Token items.
type Expr struct {
	Sp    source.Span
	Items []Node
}

// Token is an opaque token the parser does not interpret.
type Token struct {
	Tok token.Token
}

// Name is a dotted identifier path such as intl.formatMessage.
type Name struct {
	Sp    source.Span
	Parts []string
}

// StringLit is a quoted string; Value is the cooked text.
type StringLit struct {
	Sp    source.Span
	Raw   string
	Value string
}

// TemplateLit is a template literal. len(Quasis) == len(Exprs)+1.
type TemplateLit struct {
	Sp     source.Span
	Quasis []string
	Exprs  []*Expr
}

// Group is a bracketed list not interpreted further: (...), [...] or a block.
type Group struct {
	Sp    source.Span
	Open  token.Kind
	Elems []*Expr
}

// CallExpr is a call of a (possibly dotted) name.
type CallExpr struct {
	Sp       source.Span
	Callee   *Name
	Args     []*Expr
	Optional bool // callee?.()
	// Decl помечает "вызов", за которым следует тело: function f() {...},
	// методы классов и управляющие конструкции вида if (...) {...}.
	Decl bool
	// Leading содержит комментарии перед строкой, на которой начинается вызов.
	Leading []token.Trivia
}

func (e *Expr) Span() source.Span        { return e.Sp }
func (t *Token) Span() source.Span       { return t.Tok.Span }
func (n *Name) Span() source.Span        { return n.Sp }
func (s *StringLit) Span() source.Span   { return s.Sp }
func (t *TemplateLit) Span() source.Span { return t.Sp }
func (g *Group) Span() source.Span       { return g.Sp }
func (c *CallExpr) Span() source.Span    { return c.Sp }

func (*Expr) node()        {}
func (*Token) node()       {}
func (*Name) node()        {}
func (*StringLit) node()   {}
func (*TemplateLit) node() {}
func (*Group) node()       {}
func (*CallExpr) node()    {}

// String joins the parts with dots.
func (n *Name) String() string {
	out := ""
	for i, p := range n.Parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// Last returns the final segment of the path.
func (n *Name) Last() string {
	if len(n.Parts) == 0 {
		return ""
	}
	return n.Parts[len(n.Parts)-1]
}

// HasSubstitutions reports whether the template contains ${...} parts.
func (t *TemplateLit) HasSubstitutions() bool { return len(t.Exprs) > 0 }
