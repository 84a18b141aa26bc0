package verify

import (
	"fmt"
	"slices"
	"strings"

	"intlc/internal/icu"
)

// Shape is what a translation must keep from its source message: argument
// names with their kind, selectors with their labels, tags with their
// nesting. Literal text is not part of the shape.
type Shape struct {
	Arguments []string // "name:kind", sorted, unique
	Selectors []string // "kind name [labels]", sorted, unique
	Tags      []string // slash-separated nesting paths, sorted, unique
}

// ShapeOf computes the shape of a parsed message.
func ShapeOf(nodes []icu.Node) Shape {
	var s Shape
	collect(&s, nodes, "")
	s.Arguments = sortedSet(s.Arguments)
	s.Selectors = sortedSet(s.Selectors)
	s.Tags = sortedSet(s.Tags)
	return s
}

func collect(s *Shape, nodes []icu.Node, tagPath string) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *icu.Argument:
			s.Arguments = append(s.Arguments, n.Name+":argument")
		case *icu.Formatted:
			s.Arguments = append(s.Arguments, n.Name+":"+n.Kind.String())
		case *icu.Selector:
			s.Arguments = append(s.Arguments, n.Name+":"+n.Kind.String())
			labels := n.Labels()
			slices.Sort(labels)
			s.Selectors = append(s.Selectors, fmt.Sprintf("%s %s [%s]", n.Kind, n.Name, strings.Join(labels, " ")))
			for _, o := range n.Options {
				collect(s, o.Value, tagPath)
			}
		case *icu.Tag:
			path := n.Name
			if tagPath != "" {
				path = tagPath + "/" + n.Name
			}
			s.Tags = append(s.Tags, path)
			collect(s, n.Children, path)
		}
	}
}

func sortedSet(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	slices.Sort(items)
	return slices.Compact(items)
}

// Equal reports whether two shapes match exactly.
func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s.Arguments, o.Arguments) &&
		slices.Equal(s.Selectors, o.Selectors) &&
		slices.Equal(s.Tags, o.Tags)
}

func (s Shape) String() string {
	part := func(name string, items []string) string {
		if len(items) == 0 {
			return name + ": none"
		}
		return name + ": " + strings.Join(items, ", ")
	}
	return part("arguments", s.Arguments) + "; " + part("selectors", s.Selectors) + "; " + part("tags", s.Tags)
}

// Diff describes how target differs from source, one clause per change.
func Diff(source, target Shape) string {
	var parts []string
	parts = diffSet(parts, "argument", argumentName, source.Arguments, target.Arguments)
	parts = diffSet(parts, "selector", nil, source.Selectors, target.Selectors)
	parts = diffSet(parts, "tag", nil, source.Tags, target.Tags)
	return strings.Join(parts, "; ")
}

func argumentName(item string) string {
	name, kind, _ := strings.Cut(item, ":")
	if kind == "argument" {
		return name
	}
	return name + " (" + kind + ")"
}

func diffSet(parts []string, what string, label func(string) string, want, got []string) []string {
	if label == nil {
		label = func(s string) string { return s }
	}
	for _, w := range want {
		if _, found := slices.BinarySearch(got, w); !found {
			parts = append(parts, "missing "+what+" "+label(w))
		}
	}
	for _, g := range got {
		if _, found := slices.BinarySearch(want, g); !found {
			parts = append(parts, "unexpected "+what+" "+label(g))
		}
	}
	return parts
}
