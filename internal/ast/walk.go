package ast

// Inspect traverses the tree in depth-first order, calling f for every node.
// If f returns false, the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *File:
		for _, c := range n.Nodes {
			Inspect(c, f)
		}
	case *Expr:
		for _, c := range n.Items {
			Inspect(c, f)
		}
	case *TemplateLit:
		for _, e := range n.Exprs {
			Inspect(e, f)
		}
	case *Group:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	case *CallExpr:
		Inspect(n.Callee, f)
		for _, e := range n.Args {
			Inspect(e, f)
		}
	case *ObjectLit:
		for _, p := range n.Props {
			Inspect(p, f)
		}
	case *Property:
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *JSXElement:
		for _, a := range n.Attrs {
			Inspect(a, f)
		}
		for _, c := range n.Children {
			Inspect(c, f)
		}
	case *JSXAttr:
		if n.Spread != nil {
			Inspect(n.Spread, f)
		}
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *JSXExprContainer:
		if n.Expr != nil {
			Inspect(n.Expr, f)
		}
	}
}
