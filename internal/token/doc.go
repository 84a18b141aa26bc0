// Package token defines lexical token kinds and trivia for JavaScript,
// TypeScript and JSX sources.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Comments and whitespace never appear in the token stream; they are kept
//     as Leading trivia of the next significant token.
//   - Inside JSX children whitespace belongs to JSXText, not to trivia.
//   - Only a handful of words are keywords (see keywords.go); all other
//     reserved words are Ident.
package token
