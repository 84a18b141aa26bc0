// Package ast holds the syntax tree produced by internal/parser.
//
// The tree is deliberately shallow: it models what message extraction needs
// (calls, object and array literals, string and template literals, JSX) and
// keeps every other token as an opaque *Token item. Nodes are plain structs
// linked by pointers and are immutable once the parser returns.
package ast
