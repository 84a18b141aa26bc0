package token_test

import (
	"testing"

	"intlc/internal/source"
	"intlc/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}, Text: text}
}

func TestEndsExpression(t *testing.T) {
	ending := []token.Token{
		tok(token.Ident, "x"), tok(token.KwThis, "this"), tok(token.NumberLit, "1"),
		tok(token.StringLit, "'a'"), tok(token.RParen, ")"), tok(token.RBracket, "]"),
		tok(token.TemplateTail, "}`"), tok(token.Operator, "++"),
	}
	for _, tk := range ending {
		if !tk.EndsExpression() {
			t.Errorf("%v %q should end an expression", tk.Kind, tk.Text)
		}
	}
	starting := []token.Token{
		tok(token.LParen, "("), tok(token.Comma, ","), tok(token.Assign, "="),
		tok(token.KwReturn, "return"), tok(token.Operator, "&&"), tok(token.FatArrow, "=>"),
		tok(token.Question, "?"), tok(token.Colon, ":"), tok(token.EOF, ""),
	}
	for _, tk := range starting {
		if tk.EndsExpression() {
			t.Errorf("%v %q must not end an expression", tk.Kind, tk.Text)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := token.LookupKeyword("satisfies"); !ok || k != token.KwSatisfies {
		t.Errorf("satisfies = %v, %v", k, ok)
	}
	if _, ok := token.LookupKeyword("const"); ok {
		t.Error("const is an identifier")
	}
	if !tok(token.KwAs, "as").IsName() || !tok(token.KwAs, "as").IsKeyword() {
		t.Error("keywords are valid property names")
	}
}

func TestHasNewline(t *testing.T) {
	tk := tok(token.Ident, "x")
	tk.Leading = []token.Trivia{
		{Kind: token.TriviaLineComment, Text: "// hi"},
		{Kind: token.TriviaNewline, Text: "\n"},
	}
	if !tk.HasNewline() || !tk.Leading[0].IsComment() {
		t.Error("expected newline and comment trivia")
	}
	if tok(token.Ident, "y").HasNewline() {
		t.Error("no trivia, no newline")
	}
}

func TestKindString(t *testing.T) {
	if token.QuestionDot.String() != "?." || token.JSXText.String() != "JSXText" {
		t.Errorf("unexpected names %q %q", token.QuestionDot, token.JSXText)
	}
}

func TestTokenClasses(t *testing.T) {
	tests := []struct {
		tok             token.Token
		literal, ident  bool
		keyword, isName bool
	}{
		{tok(token.StringLit, "'a'"), true, false, false, false},
		{tok(token.NoSubstTemplate, "`a`"), true, false, false, false},
		{tok(token.Ident, "intl"), false, true, false, true},
		{tok(token.KwThis, "this"), false, false, true, true},
		{tok(token.Comma, ","), false, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.tok.IsLiteral(); got != tt.literal {
			t.Errorf("%q IsLiteral = %v", tt.tok.Text, got)
		}
		if got := tt.tok.IsIdent(); got != tt.ident {
			t.Errorf("%q IsIdent = %v", tt.tok.Text, got)
		}
		if got := tt.tok.IsKeyword(); got != tt.keyword {
			t.Errorf("%q IsKeyword = %v", tt.tok.Text, got)
		}
		if got := tt.tok.IsName(); got != tt.isName {
			t.Errorf("%q IsName = %v", tt.tok.Text, got)
		}
	}
}
