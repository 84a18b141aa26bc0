package pseudo

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"intlc/internal/icu"
)

// Locale names a pseudo-locale convention.
type Locale string

const (
	// XXLS appends a long run of characters to catch truncation.
	XXLS Locale = "xx-LS"
	// XXAC upper-cases text to catch hard-coded casing.
	XXAC Locale = "xx-AC"
	// XXHA prefixes every message to spot untranslated strings.
	XXHA Locale = "xx-HA"
	// ENXA accents Latin letters and brackets the message.
	ENXA Locale = "en-XA"
	// ENXB wraps literal text in right-to-left overrides.
	ENXB Locale = "en-XB"
)

const (
	longSuffix = "SSSSSSSSSSSSSSSSSSSSSSSSS"
	haPrefix   = "[javascript]"
	rlo        = "\u202e"
	pdf        = "\u202c"
)

var all = []Locale{XXLS, XXAC, XXHA, ENXA, ENXB}

// Locales returns every supported pseudo-locale.
func Locales() []Locale { return slices.Clone(all) }

// Lookup resolves a pseudo-locale name.
func Lookup(name string) (Locale, error) {
	for _, l := range all {
		if string(l) == name {
			return l, nil
		}
	}
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = string(l)
	}
	return "", fmt.Errorf("unknown pseudo-locale %q (supported: %s)", name, strings.Join(names, ", "))
}

// Apply returns a transformed copy of nodes. Only literal text changes;
// arguments, selectors and tags keep their structure.
func Apply(l Locale, nodes []icu.Node) []icu.Node {
	switch l {
	case XXLS:
		return appendText(icu.Normalize(nodes), longSuffix)
	case XXAC:
		upper := cases.Upper(language.Und)
		return icu.MapLiterals(nodes, upper.String)
	case XXHA:
		return prependText(icu.Normalize(nodes), haPrefix)
	case ENXA:
		out := icu.MapLiterals(nodes, accent)
		return appendText(prependText(icu.Normalize(out), "["), "]")
	case ENXB:
		return icu.MapLiterals(nodes, func(s string) string {
			if s == "" {
				return s
			}
			return rlo + s + pdf
		})
	default:
		return nodes
	}
}

func appendText(nodes []icu.Node, text string) []icu.Node {
	if n := len(nodes); n > 0 {
		if last, ok := nodes[n-1].(*icu.Literal); ok {
			nodes[n-1] = &icu.Literal{Value: last.Value + text, Location: last.Location}
			return nodes
		}
	}
	return append(nodes, &icu.Literal{Value: text})
}

func prependText(nodes []icu.Node, text string) []icu.Node {
	if len(nodes) > 0 {
		if first, ok := nodes[0].(*icu.Literal); ok {
			nodes[0] = &icu.Literal{Value: text + first.Value, Location: first.Location}
			return nodes
		}
	}
	return append([]icu.Node{&icu.Literal{Value: text}}, nodes...)
}

var accented = map[rune]string{
	'a': "ȧ", 'A': "Ȧ", 'b': "ƀ", 'B': "Ɓ", 'c': "ƈ", 'C': "Ƈ",
	'd': "ḓ", 'D': "Ḓ", 'e': "ḗ", 'E': "Ḗ", 'f': "ƒ", 'F': "Ƒ",
	'g': "ɠ", 'G': "Ɠ", 'h': "ħ", 'H': "Ħ", 'i': "ī", 'I': "Ī",
	'j': "ĵ", 'J': "Ĵ", 'k': "ķ", 'K': "Ķ", 'l': "ŀ", 'L': "Ŀ",
	'm': "ḿ", 'M': "Ḿ", 'n': "ƞ", 'N': "Ƞ", 'o': "ǿ", 'O': "Ǿ",
	'p': "ƥ", 'P': "Ƥ", 'q': "ɋ", 'Q': "Ɋ", 'r': "ř", 'R': "Ř",
	's': "ş", 'S': "Ş", 't': "ŧ", 'T': "Ŧ", 'u': "ŭ", 'U': "Ŭ",
	'v': "ṽ", 'V': "Ṽ", 'w': "ẇ", 'W': "Ẇ", 'x': "ẋ", 'X': "Ẋ",
	'y': "ẏ", 'Y': "Ẏ", 'z': "ẓ", 'Z': "Ẓ",
}

func accent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if a, ok := accented[r]; ok {
			sb.WriteString(a)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
