package ast

import (
	"testing"

	"intlc/internal/token"
)

func TestInspectVisitsNestedNodes(t *testing.T) {
	lit := &StringLit{Value: "hi"}
	obj := &ObjectLit{Props: []*Property{{Kind: PropKeyValue, Key: "defaultMessage", Value: &Expr{Items: []Node{lit}}}}}
	call := &CallExpr{Callee: &Name{Parts: []string{"intl", "formatMessage"}}, Args: []*Expr{{Items: []Node{obj}}}}
	el := &JSXElement{
		Name:     "div",
		Attrs:    []*JSXAttr{{Name: "title", Value: &JSXExprContainer{Expr: &Expr{Items: []Node{call}}}}},
		Children: []Node{&JSXText{Raw: "x"}, &JSXExprContainer{}},
	}
	f := &File{Nodes: []Node{&Token{Tok: token.Token{Kind: token.Ident, Text: "x"}}, el}}

	var found []string
	Inspect(f, func(n Node) bool {
		switch n := n.(type) {
		case *CallExpr:
			found = append(found, "call "+n.Callee.String()+" "+n.Callee.Last())
		case *StringLit:
			found = append(found, "lit "+n.Value)
		}
		return true
	})
	if len(found) != 2 || found[0] != "call intl.formatMessage formatMessage" || found[1] != "lit hi" {
		t.Errorf("found = %v", found)
	}

	if obj.Get("defaultMessage") == nil || obj.Get("id") != nil {
		t.Error("ObjectLit.Get mismatch")
	}

	skipped := 0
	Inspect(f, func(n Node) bool {
		if _, ok := n.(*StringLit); ok {
			skipped++
		}
		_, isEl := n.(*JSXElement)
		return !isEl
	})
	if skipped != 0 {
		t.Error("returning false must skip children")
	}
}

func TestJSXAttrLastWins(t *testing.T) {
	el := &JSXElement{Attrs: []*JSXAttr{
		{Name: "id", Value: &StringLit{Value: "a"}},
		{Spread: &Expr{}},
		{Name: "id", Value: &StringLit{Value: "b"}},
	}}
	if got := el.Attr("id").Value.(*StringLit).Value; got != "b" {
		t.Errorf("Attr(id) = %q", got)
	}
	if el.Attr("missing") != nil {
		t.Error("expected nil for missing attribute")
	}
}
