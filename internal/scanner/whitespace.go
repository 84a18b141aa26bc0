package scanner

import "strings"

// NormalizeWhitespace trims s and collapses every whitespace run (including
// newlines from multi-line literals) into a single space. It is idempotent.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
