package lexer_test

import (
	"fmt"
	"testing"

	"intlc/internal/diag"
	"intlc/internal/lexer"
	"intlc/internal/source"
	"intlc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tsx", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func render(tokens []token.Token) string {
	out := ""
	for i, tok := range tokens {
		if i > 0 {
			out += " "
		}
		if tok.Kind == token.EOF {
			out += "EOF"
			continue
		}
		out += fmt.Sprintf("%v(%s)", tok.Kind, tok.Text)
	}
	return out
}

func TestTokenStreams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "member call",
			input: "intl.formatMessage({id: 'a'})",
			want:  "Ident(intl) .(.) Ident(formatMessage) ((() {({) Ident(id) :(:) StringLit('a') }(}) )()) EOF",
		},
		{
			name:  "division",
			input: "a / b",
			want:  "Ident(a) /(/) Ident(b) EOF",
		},
		{
			name:  "regex after assign",
			input: "x = /ab+c/g.test(y)",
			want:  "Ident(x) =(=) RegexLit(/ab+c/g) .(.) Ident(test) ((() Ident(y) )()) EOF",
		},
		{
			name:  "regex with slash in class",
			input: "return /[/]/",
			want:  "return(return) RegexLit(/[/]/) EOF",
		},
		{
			name:  "template with nested braces",
			input: "`a${b}c${ {x:1} }d`",
			want: "TemplateHead(`a${) Ident(b) TemplateMiddle(}c${) {({) Ident(x) :(:) NumberLit(1) }(}) " +
				"TemplateTail(}d`) EOF",
		},
		{
			name:  "operators",
			input: "a ?? b?.c === d...e => f?.5:g",
			want: "Ident(a) Operator(??) Ident(b) ?.(?.) Ident(c) Operator(===) Ident(d) ...(...) Ident(e) " +
				"=>(=>) Ident(f) ?(?) NumberLit(.5) :(:) Ident(g) EOF",
		},
		{
			name:  "keywords and unicode identifiers",
			input: "msgs as const satisfies Тип",
			want:  "Ident(msgs) as(as) Ident(const) satisfies(satisfies) Ident(Тип) EOF",
		},
		{
			name:  "numbers",
			input: "0x1F 1_000 1e-3 10n",
			want:  "NumberLit(0x1F) NumberLit(1_000) NumberLit(1e-3) NumberLit(10n) EOF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			got := render(collectAllTokens(lx))
			if got != tt.want {
				t.Errorf("tokens:\n got %s\nwant %s", got, tt.want)
			}
			if len(rep.diagnostics) != 0 {
				t.Errorf("unexpected diagnostics: %v", rep.codes())
			}
		})
	}
}

func TestLeadingComments(t *testing.T) {
	lx, _ := makeTestLexer("// @intl-meta a:b\n/* block */ foo")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "foo" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	var kinds []token.TriviaKind
	for _, tv := range tok.Leading {
		kinds = append(kinds, tv.Kind)
	}
	want := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment, token.TriviaSpace}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Errorf("trivia kinds = %v, want %v", kinds, want)
	}
	if tok.Leading[0].Text != "// @intl-meta a:b" {
		t.Errorf("comment text = %q", tok.Leading[0].Text)
	}
	if !tok.HasNewline() {
		t.Error("expected newline in leading trivia")
	}
}

func TestJSXModes(t *testing.T) {
	lx, rep := makeTestLexer(`<a b-c="x &amp; y">hi {v}</a>`)

	steps := []struct {
		mode lexer.Mode
		kind token.Kind
		text string
	}{
		{lexer.ModeJS, token.Lt, "<"},
		{lexer.ModeJSXTag, token.JSXName, "a"},
		{lexer.ModeJSXTag, token.JSXName, "b-c"},
		{lexer.ModeJSXTag, token.Assign, "="},
		{lexer.ModeJSXTag, token.JSXString, `"x &amp; y"`},
		{lexer.ModeJSXTag, token.Gt, ">"},
		{lexer.ModeJSXChild, token.JSXText, "hi "},
		{lexer.ModeJSXChild, token.LBrace, "{"},
		{lexer.ModeJS, token.Ident, "v"},
		{lexer.ModeJS, token.RBrace, "}"},
		{lexer.ModeJSXChild, token.Lt, "<"},
		{lexer.ModeJSXTag, token.Slash, "/"},
		{lexer.ModeJSXTag, token.JSXName, "a"},
		{lexer.ModeJSXTag, token.Gt, ">"},
		{lexer.ModeJS, token.EOF, ""},
	}
	for i, st := range steps {
		lx.SetMode(st.mode)
		tok := lx.Next()
		if tok.Kind != st.kind || tok.Text != st.text {
			t.Fatalf("step %d: got %v %q, want %v %q", i, tok.Kind, tok.Text, st.kind, st.text)
		}
	}
	if len(rep.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", rep.codes())
	}
}

func TestJSXTagDoesNotMergeOperators(t *testing.T) {
	lx, _ := makeTestLexer(">=")
	lx.SetMode(lexer.ModeJSXTag)
	if tok := lx.Next(); tok.Kind != token.Gt {
		t.Fatalf("got %v, want >", tok.Kind)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"'abc", diag.SrcUnterminatedString},
		{"'abc\ndef'", diag.SrcUnterminatedString},
		{"`abc", diag.SrcUnterminatedTemplate},
		{"/* open", diag.SrcUnterminatedComment},
		{"x = /abc\n", diag.SrcUnterminatedRegex},
		{"a ¤ b", diag.SrcUnexpectedToken},
	}
	for _, tt := range tests {
		lx, rep := makeTestLexer(tt.input)
		collectAllTokens(lx)
		if len(rep.diagnostics) == 0 || rep.diagnostics[0].Code != tt.code {
			t.Errorf("%q: diagnostics %v, want %v", tt.input, rep.codes(), tt.code)
		}
	}
}
