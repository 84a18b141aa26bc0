// Package lexer tokenises JavaScript, TypeScript and JSX sources on demand.
//
// The lexer is modal (ModeJS, ModeJSXTag, ModeJSXChild); the parser selects
// the mode before each call to Next. A '/' is a regular expression when the
// previous significant token cannot end an expression. Template literals are
// split into head/middle/tail parts, with a brace stack deciding whether a
// '}' closes a block or a "${" substitution.
package lexer
