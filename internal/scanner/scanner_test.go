package scanner

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"intlc/internal/diag"
	"intlc/internal/parser"
	"intlc/internal/source"
)

type got struct {
	ID, Msg, Desc string
	HasDesc       bool
}

func scanSrc(t *testing.T, src string, cfg Config) Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tsx", []byte(src))
	bag := diag.NewBag(32)
	f := parser.ParseFile(fs.Get(id), parser.Options{JSX: true, Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %s", diag.FormatShortDiagnostics(bag.Items(), fs, false))
	}
	return Scan(f, cfg)
}

func project(ds []Descriptor) []got {
	out := make([]got, 0, len(ds))
	for _, d := range ds {
		out = append(out, got{d.ID, d.DefaultMessage, d.Description, d.HasDescription})
	}
	return out
}

func codes(errs []*ShapeError) []diag.Code {
	var out []diag.Code
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestScanShapes(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  []got
		codes []diag.Code
	}{
		{
			name: "jsx component",
			src:  `const a = <FormattedMessage id="x" defaultMessage="Hi {name}" description="greeting" />`,
			want: []got{{"x", "Hi {name}", "greeting", true}},
		},
		{
			name: "jsx container literal",
			src:  "<FormattedMessage defaultMessage={'a' + `b`} />",
			want: []got{{"", "ab", "", false}},
		},
		{
			name: "singular call",
			src:  `defineMessage({id: 'a', defaultMessage: 'A'})`,
			want: []got{{"a", "A", "", false}},
		},
		{
			name: "member formatMessage",
			src:  `this.props.intl.formatMessage({defaultMessage: "B", description: 'd'}, {x: 1})`,
			want: []got{{"", "B", "d", true}},
		},
		{
			name: "plural map with satisfies",
			src:  `export default defineMessages({a: {defaultMessage: 'A'}, b: {id: 'b', defaultMessage: 'B'}} satisfies Record<string, unknown>)`,
			want: []got{{"", "A", "", false}, {"b", "B", "", false}},
		},
		{
			name: "reference is not a declaration",
			src:  `intl.formatMessage(messages.greeting)`,
			want: []got{},
		},
		{
			name: "function declaration is skipped",
			src:  `function defineMessage(d) { return d }`,
			want: []got{},
		},
		{
			name: "spread only is skipped",
			src:  `<FormattedMessage {...msgs.header} />`,
			want: []got{},
		},
		{
			name:  "identifier value",
			src:   `defineMessage({id: 'a', defaultMessage: text})`,
			want:  []got{},
			codes: []diag.Code{diag.DscNonLiteralField},
		},
		{
			name:  "interpolated template",
			src:   "defineMessage({defaultMessage: `hi ${name}`})",
			want:  []got{},
			codes: []diag.Code{diag.DscInterpolatedField},
		},
		{
			name:  "jsx expression attribute",
			src:   `<FormattedMessage id="a" defaultMessage={msg} />`,
			want:  []got{},
			codes: []diag.Code{diag.DscNonLiteralField},
		},
		{
			name:  "id without message",
			src:   `<FormattedMessage id="a" />`,
			want:  []got{},
			codes: []diag.Code{diag.DscMissingMessage},
		},
		{
			name:  "plural entry not an object",
			src:   `defineMessages({a: shared, b: {defaultMessage: 'B'}})`,
			want:  []got{{"", "B", "", false}},
			codes: []diag.Code{diag.DscInvalidArgument},
		},
		{
			name: "whitespace normalised",
			src:  "defineMessage({defaultMessage: `  a\n\t b  `, description: ' x  y '})",
			want: []got{{"", "a b", "x y", true}},
		},
		{
			name: "nested inside values",
			src:  `formatMessage({defaultMessage: 'outer {b}'}, {b: <FormattedMessage defaultMessage="inner" />})`,
			want: []got{{"", "outer {b}", "", false}, {"", "inner", "", false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scanSrc(t, tt.src, DefaultConfig())
			if diff := cmp.Diff(tt.want, project(res.Descriptors)); diff != "" {
				t.Errorf("descriptors mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.codes, codes(res.Errors)); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreserveWhitespace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreserveWhitespace = true
	res := scanSrc(t, `defineMessage({defaultMessage: '  a   b '})`, cfg)
	if len(res.Descriptors) != 1 || res.Descriptors[0].DefaultMessage != "  a   b " {
		t.Fatalf("got %+v", res.Descriptors)
	}
}

func TestNormalizeWhitespaceIdempotent(t *testing.T) {
	for _, s := range []string{"", " ", "a", "  a \n b\t\tc  ", " x "} {
		once := NormalizeWhitespace(s)
		if twice := NormalizeWhitespace(once); twice != once {
			t.Errorf("NormalizeWhitespace(%q) not idempotent: %q then %q", s, once, twice)
		}
	}
}

func TestAdditionalNames(t *testing.T) {
	src := `$t({defaultMessage: 'T'}); <FormattedFooMessage defaultMessage="F" />`
	if res := scanSrc(t, src, DefaultConfig()); len(res.Descriptors) != 0 {
		t.Fatalf("unexpected descriptors without additional names: %+v", res.Descriptors)
	}
	cfg := DefaultConfig().WithAdditional([]string{"FormattedFooMessage", ""}, []string{"$t", "defineMessage"})
	if len(cfg.FunctionNames) != 3 {
		t.Errorf("duplicates should be merged, got %v", cfg.FunctionNames)
	}
	res := scanSrc(t, src, cfg)
	want := []got{{"", "T", "", false}, {"", "F", "", false}}
	if diff := cmp.Diff(want, project(res.Descriptors)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPragma(t *testing.T) {
	src := "// @intl-meta project:web team:core\n" +
		"defineMessage({defaultMessage: 'a'})\n" +
		"// @intl-meta team:growth broken\n" +
		"defineMessage({defaultMessage: 'b'})\n" +
		"// @intl-metadata ignored:yes\n"
	cfg := DefaultConfig()
	cfg.Pragma = "intl-meta"
	res := scanSrc(t, src, cfg)

	wantFile := map[string]string{"project": "web", "team": "core"}
	if diff := cmp.Diff(wantFile, res.Meta); diff != "" {
		t.Errorf("file meta (-want +got):\n%s", diff)
	}
	if len(res.Descriptors) != 2 {
		t.Fatalf("descriptors = %+v", res.Descriptors)
	}
	wantSite := []map[string]string{
		{"project": "web", "team": "core"},
		{"project": "web", "team": "growth"},
	}
	for i, want := range wantSite {
		if diff := cmp.Diff(want, res.Descriptors[i].Meta); diff != "" {
			t.Errorf("site meta #%d (-want +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff([]diag.Code{diag.DscInvalidPragma}, codes(res.Errors)); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}
	if res.HasErrors() {
		t.Error("pragma problems are warnings")
	}
}

func TestPragmaAfterCodeIsNotFileWide(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantFile map[string]string
		wantSite []map[string]string
	}{
		{
			name: "trailing pragma",
			src: "defineMessage({defaultMessage: 'a'})\n" +
				"defineMessage({defaultMessage: 'b'})\n" +
				"// @intl-meta team:late\n",
			wantFile: nil,
			wantSite: []map[string]string{nil, nil},
		},
		{
			name: "pragma between sites",
			src: "defineMessage({defaultMessage: 'a'})\n" +
				"// @intl-meta team:b\n" +
				"defineMessage({defaultMessage: 'b'})\n",
			wantFile: nil,
			wantSite: []map[string]string{nil, {"team": "b"}},
		},
		{
			name:     "only comments",
			src:      "// @intl-meta team:all\n",
			wantFile: map[string]string{"team": "all"},
			wantSite: []map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Pragma = "intl-meta"
			res := scanSrc(t, tt.src, cfg)
			if diff := cmp.Diff(tt.wantFile, res.Meta); diff != "" {
				t.Errorf("file meta (-want +got):\n%s", diff)
			}
			if len(res.Descriptors) != len(tt.wantSite) {
				t.Fatalf("descriptors = %+v", res.Descriptors)
			}
			for i, want := range tt.wantSite {
				if diff := cmp.Diff(want, res.Descriptors[i].Meta); diff != "" {
					t.Errorf("site meta #%d (-want +got):\n%s", i, diff)
				}
			}
		})
	}
}

func TestSpans(t *testing.T) {
	src := `x = defineMessage({defaultMessage: 'a'})`
	res := scanSrc(t, src, DefaultConfig())
	if len(res.Descriptors) != 1 {
		t.Fatalf("descriptors = %+v", res.Descriptors)
	}
	sp := res.Descriptors[0].Span
	if got := src[sp.Start:sp.End]; got != `{defaultMessage: 'a'}` {
		t.Errorf("span covers %q", got)
	}
}

func TestFixtureFile(t *testing.T) {
	content, err := os.ReadFile("testdata/messages.tsx")
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig().WithAdditional(nil, []string{"t"})
	res := scanSrc(t, string(content), cfg)

	want := []got{
		{"foo.bar.baz", "Hello World!", "The default message", true},
		{"foo.bar.biff", "Hello Nurse!", "Another message", true},
		{"app.home.kittens", "{count, plural, =0 {😭} one {# kitten} other {# kittens}}", "Counts kittens", true},
		{"trailing.ws", "Some whitespace", "Whitespace", true},
		{"newline", "this is a message", "this is a description", true},
		{"linebreak", "this is a message", "this is a description", true},
		{"templateLinebreak", "this is a message", "this is a description", true},
		{"escaped.apostrophe", "A quoted value ''{value}'", "Escaped apostrophe", true},
		{"", "No ID", "no ID", true},
		{"", "No ID", "no ID", true},
		{"", "No Desc", "", false},
		{"", "additional function names t", "The default message", true},
		{"inline", "formatted message", "foo", true},
		{"inline.linebreak", "formatted message with linebreak", "foo bar", true},
	}
	if diff := cmp.Diff(want, project(res.Descriptors)); diff != "" {
		t.Errorf("fixture descriptors (-want +got):\n%s", diff)
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}
