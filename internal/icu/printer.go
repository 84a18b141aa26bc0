package icu

import (
	"strconv"
	"strings"
)

// Print renders nodes as canonical MessageFormat text. Parsing the result
// yields nodes equal to the input, ignoring locations.
func Print(nodes []Node) string {
	var sb strings.Builder
	printNodes(&sb, nodes, false)
	return sb.String()
}

func printNodes(sb *strings.Builder, nodes []Node, pound bool) {
	for _, n := range nodes {
		printNode(sb, n, pound)
	}
}

func printNode(sb *strings.Builder, n Node, pound bool) {
	switch n := n.(type) {
	case *Literal:
		sb.WriteString(EscapeLiteral(n.Value, pound))
	case *Argument:
		sb.WriteString("{" + n.Name + "}")
	case *Formatted:
		sb.WriteString("{" + n.Name + ", " + n.Kind.String())
		if n.Style != "" {
			sb.WriteString(", " + n.Style)
		}
		sb.WriteByte('}')
	case *Selector:
		sb.WriteString("{" + n.Name + ", " + n.Kind.String() + ",")
		if n.Offset != 0 {
			sb.WriteString(" offset:" + strconv.Itoa(n.Offset))
		}
		for _, o := range n.Options {
			sb.WriteString(" " + o.Label + " {")
			printNodes(sb, o.Value, n.Kind.CountsPound())
			sb.WriteByte('}')
		}
		sb.WriteByte('}')
	case *Pound:
		sb.WriteByte('#')
	case *Tag:
		sb.WriteString("<" + n.Name + ">")
		printNodes(sb, n.Children, pound)
		sb.WriteString("</" + n.Name + ">")
	}
}

// EscapeLiteral quotes the syntax characters of text. pound reports whether
// the text sits in a plural branch, where '#' is syntax. One quoted section
// spans from the first to the last syntax character; apostrophes are doubled.
func EscapeLiteral(text string, pound bool) string {
	if !strings.ContainsAny(text, "'{}#<") {
		return text
	}
	first, last := -1, -1
	for i := 0; i < len(text); i++ {
		if isSyntax(text, i, pound) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return doubleApostrophes(text)
	}
	return doubleApostrophes(text[:first]) +
		"'" + doubleApostrophes(text[first:last+1]) + "'" +
		doubleApostrophes(text[last+1:])
}

func doubleApostrophes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func isSyntax(text string, i int, pound bool) bool {
	switch text[i] {
	case '{', '}':
		return true
	case '#':
		return pound
	case '<':
		if i+1 >= len(text) {
			return false
		}
		next := text[i+1]
		return next == '/' || isTagStart(next)
	}
	return false
}
