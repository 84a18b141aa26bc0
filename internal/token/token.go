package token

import (
	"intlc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, regex, or template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, RegexLit, NoSubstTemplate, TemplateHead, JSXString:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is one of the recognised keywords.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwThis && t.Kind <= KwSatisfies
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsName reports whether the token may be used as a property name after '.'.
func (t Token) IsName() bool { return t.Kind == Ident || t.IsKeyword() }

// EndsExpression reports whether an expression may end with this token.
// A '/' after such a token is division and a '<' is a comparison or type
// argument list; otherwise they start a regex or a JSX element.
func (t Token) EndsExpression() bool {
	switch t.Kind {
	case Ident, KwThis, PrivateName, NumberLit, StringLit, RegexLit,
		NoSubstTemplate, TemplateTail, JSXString,
		RParen, RBracket, RBrace:
		return true
	case Operator:
		return t.Text == "++" || t.Text == "--"
	default:
		return false
	}
}

// HasNewline reports whether the leading trivia contains a line break.
func (t Token) HasNewline() bool {
	for _, tv := range t.Leading {
		if tv.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
