package icu

// Flatten hoists selectors so that every branch holds a complete sentence:
// "Prefix: {n, plural, one {# item} other {# items}}" becomes
// "{n, plural, one {Prefix: # item} other {Prefix: # items}}".
//
// Text around a selector is copied into each of its branches, and the rewrite
// repeats inside the branches. Selectors are never hoisted out of a tag (the
// tag's own content is flattened locally), and a selector is left in place
// when its siblings contain a '#' that would change its binding after the move.
// The input is not modified.
func Flatten(nodes []Node) []Node {
	return hoist(Normalize(nodes))
}

func hoist(nodes []Node) []Node {
	for i, n := range nodes {
		sel, ok := n.(*Selector)
		if !ok || len(nodes) == 1 {
			continue
		}
		if hasOwnPound(nodes[:i]) || hasOwnPound(nodes[i+1:]) {
			continue
		}
		out := &Selector{Kind: sel.Kind, Name: sel.Name, Offset: sel.Offset, Location: sel.Location}
		for _, o := range sel.Options {
			merged := make([]Node, 0, len(nodes)-1+len(o.Value))
			merged = append(merged, cloneNodes(nodes[:i])...)
			merged = append(merged, cloneNodes(o.Value)...)
			merged = append(merged, cloneNodes(nodes[i+1:])...)
			out.Options = append(out.Options, Option{
				Label:    o.Label,
				Value:    hoist(Normalize(merged)),
				Location: o.Location,
			})
		}
		return []Node{out}
	}

	// подниматься нечему: разворачиваем вложенные ветки и содержимое тегов
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		switch n := n.(type) {
		case *Selector:
			cp := *n
			cp.Options = make([]Option, len(n.Options))
			for j, o := range n.Options {
				o.Value = hoist(o.Value)
				cp.Options[j] = o
			}
			out[i] = &cp
		case *Tag:
			cp := *n
			cp.Children = hoist(n.Children)
			out[i] = &cp
		default:
			out[i] = n
		}
	}
	return out
}

// hasOwnPound ищет '#', привязанный к внешнему plural: внутрь тегов
// спускаемся, внутрь селекторов нет.
func hasOwnPound(nodes []Node) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Pound:
			return true
		case *Tag:
			if hasOwnPound(n.Children) {
				return true
			}
		}
	}
	return false
}

// Normalize returns a copy of nodes with adjacent literals merged and empty
// literals removed, recursively.
func Normalize(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *Literal:
			if n.Value == "" {
				continue
			}
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(*Literal); ok {
					out[len(out)-1] = &Literal{
						Value:    prev.Value + n.Value,
						Location: Location{Start: prev.Location.Start, End: n.Location.End},
					}
					continue
				}
			}
			cp := *n
			out = append(out, &cp)
		case *Selector:
			cp := *n
			cp.Options = make([]Option, len(n.Options))
			for i, o := range n.Options {
				o.Value = Normalize(o.Value)
				cp.Options[i] = o
			}
			out = append(out, &cp)
		case *Tag:
			cp := *n
			cp.Children = Normalize(n.Children)
			out = append(out, &cp)
		default:
			out = append(out, clone(n))
		}
	}
	return out
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = clone(n)
	}
	return out
}

func clone(n Node) Node {
	switch n := n.(type) {
	case *Literal:
		cp := *n
		return &cp
	case *Argument:
		cp := *n
		return &cp
	case *Formatted:
		cp := *n
		return &cp
	case *Pound:
		cp := *n
		return &cp
	case *Selector:
		cp := *n
		cp.Options = make([]Option, len(n.Options))
		for i, o := range n.Options {
			o.Value = cloneNodes(o.Value)
			cp.Options[i] = o
		}
		return &cp
	case *Tag:
		cp := *n
		cp.Children = cloneNodes(n.Children)
		return &cp
	}
	return n
}
