// Package parser builds an ast.File from JavaScript, TypeScript or JSX source.
//
// The parser is tolerant: it understands just enough structure to find
// message declarations (calls, object literals, string and template literals,
// JSX elements) and keeps everything else as opaque tokens. Syntax errors are
// reported through diag.Reporter and never stop the parse.
//
// The parser owns the lexer mode. A '<' starts a JSX element when JSX is
// enabled and the previous token cannot end an expression; '{' starts an
// object literal only where an expression is expected, otherwise a block.
package parser
