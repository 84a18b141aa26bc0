// Package icu parses, prints and rewrites ICU MessageFormat messages.
//
// Parse builds a tree of Literal, Argument, Formatted, Selector, Pound and
// Tag nodes. Print renders a tree back as canonical text, MarshalJSON as the
// tagged-node JSON form. Flatten hoists selectors so that each branch is a
// complete sentence.
//
// Quoting follows the ICU "double optional" apostrophe mode: a doubled
// apostrophe is always one apostrophe, and a single one starts a quoted
// section only before a syntax character ({, }, <, > and # inside plural
// branches).
package icu
