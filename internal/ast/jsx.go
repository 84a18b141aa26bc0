package ast

import (
	"intlc/internal/source"
	"intlc/internal/token"
)

// JSXElement is `<Name ...>children</Name>`, `<Name ... />` or a fragment
// (empty Name).
type JSXElement struct {
	Sp          source.Span
	Name        string // Foo, a.b.c, ns:tag
	NameSpan    source.Span
	Attrs       []*JSXAttr
	Children    []Node
	SelfClosing bool
	Leading     []token.Trivia
}

// JSXAttr is `name`, `name="v"`, `name={expr}`, `name=<El/>` or `{...expr}`.
type JSXAttr struct {
	Sp     source.Span
	Name   string
	Spread *Expr // для {...expr}
	Value  Node  // *StringLit, *JSXExprContainer, *JSXElement или nil
}

// JSXText is raw text between tags.
type JSXText struct {
	Sp  source.Span
	Raw string
}

// JSXExprContainer is `{expr}`; Expr is nil for `{}` and `{/* comment */}`.
type JSXExprContainer struct {
	Sp   source.Span
	Expr *Expr
}

func (e *JSXElement) Span() source.Span       { return e.Sp }
func (a *JSXAttr) Span() source.Span          { return a.Sp }
func (t *JSXText) Span() source.Span          { return t.Sp }
func (c *JSXExprContainer) Span() source.Span { return c.Sp }

func (*JSXElement) node()       {}
func (*JSXAttr) node()          {}
func (*JSXText) node()          {}
func (*JSXExprContainer) node() {}

// Attr returns the last attribute named name; later attributes win in JSX.
func (e *JSXElement) Attr(name string) *JSXAttr {
	var found *JSXAttr
	for _, a := range e.Attrs {
		if a.Spread == nil && a.Name == name {
			found = a
		}
	}
	return found
}
