package icu

import "slices"

// Walk visits nodes depth-first. If fn returns false the children of that
// node are skipped.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if !fn(n) {
			continue
		}
		switch n := n.(type) {
		case *Selector:
			for _, o := range n.Options {
				Walk(o.Value, fn)
			}
		case *Tag:
			Walk(n.Children, fn)
		}
	}
}

// Arguments returns the sorted, unique names of every argument and selector.
func Arguments(nodes []Node) []string {
	var names []string
	Walk(nodes, func(n Node) bool {
		switch n := n.(type) {
		case *Argument:
			names = append(names, n.Name)
		case *Formatted:
			names = append(names, n.Name)
		case *Selector:
			names = append(names, n.Name)
		}
		return true
	})
	slices.Sort(names)
	return slices.Compact(names)
}

// Equal reports whether a and b describe the same message, ignoring
// locations and how literal text is split between nodes.
func Equal(a, b []Node) bool {
	return Print(Normalize(a)) == Print(Normalize(b))
}

// MapLiterals returns a copy of nodes where every literal text is replaced
// by fn(text). Arguments, selectors and tags keep their structure.
func MapLiterals(nodes []Node, fn func(string) string) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		switch n := n.(type) {
		case *Literal:
			out[i] = &Literal{Value: fn(n.Value), Location: n.Location}
		case *Selector:
			cp := *n
			cp.Options = make([]Option, len(n.Options))
			for j, o := range n.Options {
				o.Value = MapLiterals(o.Value, fn)
				cp.Options[j] = o
			}
			out[i] = &cp
		case *Tag:
			cp := *n
			cp.Children = MapLiterals(n.Children, fn)
			out[i] = &cp
		default:
			out[i] = clone(n)
		}
	}
	return out
}

// HasSelector reports whether nodes contain a plural, select or selectordinal.
func HasSelector(nodes []Node) bool {
	found := false
	Walk(nodes, func(n Node) bool {
		if _, ok := n.(*Selector); ok {
			found = true
		}
		return !found
	})
	return found
}
