package parser

import (
	"strconv"
	"strings"
	"testing"

	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/source"
	"intlc/internal/token"
)

func parseSrc(t *testing.T, name, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	bag := diag.NewBag(32)
	f := ParseFile(fs.Get(id), Options{JSX: !strings.HasSuffix(name, ".ts"), Reporter: diag.BagReporter{Bag: bag}})
	return f, bag
}

// dump печатает дерево в компактной форме для сравнения в тестах.
func dump(n ast.Node) string {
	switch n := n.(type) {
	case *ast.File:
		parts := make([]string, 0, len(n.Nodes))
		for _, c := range n.Nodes {
			parts = append(parts, dump(c))
		}
		return strings.Join(parts, " ")
	case *ast.Expr:
		parts := make([]string, 0, len(n.Items))
		for _, c := range n.Items {
			parts = append(parts, dump(c))
		}
		return strings.Join(parts, " ")
	case *ast.Token:
		return n.Tok.Text
	case *ast.Name:
		return n.String()
	case *ast.StringLit:
		return strconv.Quote(n.Value)
	case *ast.TemplateLit:
		parts := make([]string, 0, len(n.Exprs))
		for _, e := range n.Exprs {
			parts = append(parts, dump(e))
		}
		return "tpl(" + strconv.Quote(strings.Join(n.Quasis, "|")) + ";" + strings.Join(parts, ";") + ")"
	case *ast.Group:
		parts := make([]string, 0, len(n.Elems))
		for _, e := range n.Elems {
			parts = append(parts, dump(e))
		}
		return n.Open.String() + strings.Join(parts, ", ") + closerFor(n.Open).String()
	case *ast.CallExpr:
		parts := make([]string, 0, len(n.Args))
		for _, e := range n.Args {
			parts = append(parts, dump(e))
		}
		out := "call:" + n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
		if n.Decl {
			out += "!decl"
		}
		return out
	case *ast.ObjectLit:
		parts := make([]string, 0, len(n.Props))
		for _, p := range n.Props {
			parts = append(parts, dump(p))
		}
		return "obj{" + strings.Join(parts, ", ") + "}"
	case *ast.Property:
		switch n.Kind {
		case ast.PropKeyValue:
			return n.Key + ": " + dump(n.Value)
		case ast.PropShorthand:
			if n.Value != nil {
				return n.Key + " = " + dump(n.Value)
			}
			return n.Key
		case ast.PropSpread:
			return "..." + dump(n.Value)
		case ast.PropMethod:
			return n.Key + "()"
		case ast.PropComputed:
			return "[]: " + dump(n.Value)
		default:
			return "?" + dump(n.Value)
		}
	case *ast.JSXElement:
		var b strings.Builder
		b.WriteString("<" + n.Name)
		for _, a := range n.Attrs {
			b.WriteString(" " + dump(a))
		}
		if n.SelfClosing {
			b.WriteString("/>")
			return b.String()
		}
		b.WriteString(">")
		for _, c := range n.Children {
			b.WriteString(dump(c))
		}
		b.WriteString("</>")
		return b.String()
	case *ast.JSXAttr:
		if n.Spread != nil {
			return "{..." + dump(n.Spread) + "}"
		}
		if n.Value == nil {
			return n.Name
		}
		return n.Name + "=" + dump(n.Value)
	case *ast.JSXText:
		if s := strings.TrimSpace(n.Raw); s != "" {
			return strconv.Quote(s)
		}
		return ""
	case *ast.JSXExprContainer:
		if n.Expr == nil {
			return "{}"
		}
		return "{" + dump(n.Expr) + "}"
	}
	return "?"
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
		want string
	}{
		{
			name: "defineMessages as const",
			file: "a.tsx",
			src:  `const m = defineMessages({greet: {id: 'a', defaultMessage: "Hi"}} as const)`,
			want: `const m = call:defineMessages(obj{greet: obj{id: "a", defaultMessage: "Hi"}} as const)`,
		},
		{
			name: "member call with extra arguments",
			file: "a.tsx",
			src:  "intl.formatMessage({defaultMessage: 'a' + 'b'}, {n: 1});",
			want: `call:intl.formatMessage(obj{defaultMessage: "a" + "b"}, obj{n: 1}) ;`,
		},
		{
			name: "jsx attributes",
			file: "a.jsx",
			src:  `x = <FormattedMessage id="a" defaultMessage={'b'} {...rest} disabled />`,
			want: `x = <FormattedMessage id="a" defaultMessage={"b"} {...rest} disabled/>`,
		},
		{
			name: "jsx children and containers",
			file: "a.tsx",
			src:  "return (\n <div>{t({defaultMessage: 'x'})}<p>hi</p>{/* c */}</div>\n)",
			want: `return (<div>{call:t(obj{defaultMessage: "x"})}<p>"hi"</>{}</>)`,
		},
		{
			name: "template literal",
			file: "a.ts",
			src:  "f(`a${b}c`, `plain`)",
			want: `call:f(tpl("a|c";b), tpl("plain";))`,
		},
		{
			name: "block vs object",
			file: "a.ts",
			src:  "if (x) { y = {a, b: 2, ...c, [k]: 1, m() { g() }} }",
			want: `call:if(x)!decl {y = obj{a, b: 2, ...c, []: 1, m()}}`,
		},
		{
			name: "function declaration",
			file: "a.ts",
			src:  "function formatMessage(d) { return 1 }",
			want: `function call:formatMessage(d)!decl {return 1}`,
		},
		{
			name: "ts type assertion without jsx",
			file: "a.ts",
			src:  "const x = <string>y",
			want: `const x = < string > y`,
		},
		{
			name: "generic arrow in tsx",
			file: "a.tsx",
			src:  "const f = <T,>(x: T) => x",
			want: `const f = <T,> (x : T) => x`,
		},
		{
			name: "regex with quote",
			file: "a.ts",
			src:  `s.replace(/'/g, "")`,
			want: `call:s.replace(/'/g, "")`,
		},
		{
			name: "chained call",
			file: "a.ts",
			src:  "useIntl().formatMessage({id: 'x'})",
			want: `call:useIntl() . call:formatMessage(obj{id: "x"})`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, bag := parseSrc(t, tt.file, tt.src)
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %+v", bag.Items())
			}
			if got := dump(f); got != tt.want {
				t.Errorf("tree:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"<a></b>", diag.SrcJSXMismatchedTag},
		{"<a>text", diag.SrcJSXUnterminated},
		{"foo(1, 2", diag.SrcUnclosedDelimiter},
		{"a)", diag.SrcUnexpectedToken},
		{"x = 'open", diag.SrcUnterminatedString},
	}
	for _, tt := range tests {
		_, bag := parseSrc(t, "err.tsx", tt.src)
		if bag.Len() == 0 {
			t.Errorf("%q: expected %s", tt.src, tt.code.ID())
			continue
		}
		if got := bag.Items()[0].Code; got != tt.code {
			t.Errorf("%q: got %s, want %s", tt.src, got.ID(), tt.code.ID())
		}
	}
}

func TestCallLeadingComments(t *testing.T) {
	src := "// @intl-meta team:core\n" +
		"const a = defineMessage({defaultMessage: 'a'})\n" +
		"/* unrelated */\n\n" +
		"foo()\n" +
		"const b = defineMessage({defaultMessage: 'b'})\n"
	f, bag := parseSrc(t, "c.ts", src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics")
	}
	var calls []*ast.CallExpr
	ast.Inspect(f, func(n ast.Node) bool {
		if c, ok := n.(*ast.CallExpr); ok && c.Callee.String() == "defineMessage" {
			calls = append(calls, c)
		}
		return true
	})
	if len(calls) != 2 {
		t.Fatalf("found %d calls", len(calls))
	}
	if len(calls[0].Leading) != 1 || calls[0].Leading[0].Text != "// @intl-meta team:core" {
		t.Errorf("first call leading = %+v", calls[0].Leading)
	}
	if len(calls[1].Leading) != 0 {
		t.Errorf("second call must not inherit comments, got %+v", calls[1].Leading)
	}
	if len(f.Comments) != 2 || f.Comments[1].Kind != token.TriviaBlockComment {
		t.Errorf("file comments = %+v", f.Comments)
	}
}

func TestSpans(t *testing.T) {
	src := "x = defineMessage({defaultMessage: 'hi'})"
	f, _ := parseSrc(t, "s.ts", src)
	var call *ast.CallExpr
	ast.Inspect(f, func(n ast.Node) bool {
		if c, ok := n.(*ast.CallExpr); ok {
			call = c
		}
		return true
	})
	if call == nil {
		t.Fatal("no call")
	}
	if got := src[call.Sp.Start:call.Sp.End]; got != "defineMessage({defaultMessage: 'hi'})" {
		t.Errorf("call span covers %q", got)
	}
	obj := call.Args[0].Items[0].(*ast.ObjectLit)
	lit := obj.Get("defaultMessage").Value.Items[0].(*ast.StringLit)
	if got := src[lit.Sp.Start:lit.Sp.End]; got != "'hi'" {
		t.Errorf("literal span covers %q", got)
	}
}
