package icu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lit(s string) *Literal  { return &Literal{Value: s} }
func arg(s string) *Argument { return &Argument{Name: s} }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []Node
	}{
		{"simple argument", "Hello, {name}!", Options{}, []Node{lit("Hello, "), arg("name"), lit("!")}},
		{
			"plural example",
			"{count, plural, one {You have # item} other {You have # items}}",
			Options{},
			[]Node{&Selector{Kind: KindPlural, Name: "count", Options: []Option{
				{Label: "one", Value: []Node{lit("You have "), &Pound{}, lit(" item")}},
				{Label: "other", Value: []Node{lit("You have "), &Pound{}, lit(" items")}},
			}}},
		},
		{
			"formatted arguments",
			"{n, number, ::currency/USD} {d,date,short} {t , time}",
			Options{},
			[]Node{
				&Formatted{Kind: TypeNumber, Name: "n", Style: "::currency/USD"},
				lit(" "),
				&Formatted{Kind: TypeDate, Name: "d", Style: "short"},
				lit(" "),
				&Formatted{Kind: TypeTime, Name: "t"},
			},
		},
		{"apostrophes", "It''s '{quoted}' text, I'm fine", Options{}, []Node{lit("It's {quoted} text, I'm fine")}},
		{
			"select",
			"{g, select, male {He} female {She} other {They}}",
			Options{},
			[]Node{&Selector{Kind: KindSelect, Name: "g", Options: []Option{
				{Label: "male", Value: []Node{lit("He")}},
				{Label: "female", Value: []Node{lit("She")}},
				{Label: "other", Value: []Node{lit("They")}},
			}}},
		},
		{
			"tags and self-closing",
			"<b>bold {x}</b> and <br/> done",
			Options{},
			[]Node{&Tag{Name: "b", Children: []Node{lit("bold "), arg("x")}}, lit(" and <br/> done")},
		},
		{"ignore tag", "<b>x</b>", Options{IgnoreTag: true}, []Node{lit("<b>x</b>")}},
		{"lone angle", "a < b", Options{}, []Node{lit("a < b")}},
		{
			"offset and exact label",
			"{n, plural, offset:1 =0 {none} other {# others}}",
			Options{},
			[]Node{&Selector{Kind: KindPlural, Name: "n", Offset: 1, Options: []Option{
				{Label: "=0", Value: []Node{lit("none")}},
				{Label: "other", Value: []Node{&Pound{}, lit(" others")}},
			}}},
		},
		{"pound outside plural", "# outside", Options{}, []Node{lit("# outside")}},
		{
			"pound inside nested select is text",
			"{n, plural, other {{g, select, other {#}}}}",
			Options{},
			[]Node{&Selector{Kind: KindPlural, Name: "n", Options: []Option{
				{Label: "other", Value: []Node{&Selector{Kind: KindSelect, Name: "g", Options: []Option{
					{Label: "other", Value: []Node{lit("#")}},
				}}}},
			}}},
		},
		{
			"quoted pound in plural",
			"{n, plural, other {'#' #}}",
			Options{},
			[]Node{&Selector{Kind: KindPlural, Name: "n", Options: []Option{
				{Label: "other", Value: []Node{lit("# "), &Pound{}}},
			}}},
		},
		{
			"selectordinal",
			"{n, selectordinal, one {#st} other {#th}}",
			Options{},
			[]Node{&Selector{Kind: KindSelectOrdinal, Name: "n", Options: []Option{
				{Label: "one", Value: []Node{&Pound{}, lit("st")}},
				{Label: "other", Value: []Node{&Pound{}, lit("th")}},
			}}},
		},
		{"emoji", "{count, plural, =0 {😭} other {x}}", Options{}, []Node{&Selector{Kind: KindPlural, Name: "count", Options: []Option{
			{Label: "=0", Value: []Node{lit("😭")}},
			{Label: "other", Value: []Node{lit("x")}},
		}}}},
		{"empty", "", Options{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.opts)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		kind   ErrorKind
		offset int
	}{
		{"Hello {name", ErrUnbalancedBrace, 6},
		{"a } b", ErrUnbalancedBrace, 2},
		{"{}", ErrExpectArgumentName, 0},
		{"{n, foo}", ErrUnknownArgumentType, 4},
		{"{n, number, }", ErrExpectArgumentStyle, 12},
		{"{n, plural one {x}}", ErrExpectOptions, 11},
		{"{n, plural, one x}", ErrExpectSelectorBody, 16},
		{"{n, plural, one {a} one {b} other {c}}", ErrDuplicateSelector, 20},
		{"{n, plural, one {a}}", ErrMissingOther, 0},
		{"{n, select, one {a}}", ErrMissingOther, 0},
		{"{n, plural, offset:x other {a}}", ErrInvalidOffset, 12},
		{"'{unterminated", ErrUnterminatedQuote, 0},
		{"<a href>x</a>", ErrInvalidTag, 0},
		{"<b>x", ErrUnclosedTag, 0},
		{"<b>x</i>", ErrUnmatchedClosingTag, 4},
		{"x</b>", ErrUnmatchedClosingTag, 1},
		{"{n, plural, =x {a} other {b}}", ErrInvalidSelectorLabel, 12},
		{"{n, plural, other {a}", ErrUnbalancedBrace, 0},
		{"{n, plural, other {<b>a}}", ErrUnclosedTag, 19},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			nodes, err := Parse(tt.in, Options{})
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Parse(%q) = %v, %v; want *SyntaxError", tt.in, nodes, err)
			}
			if se.Kind != tt.kind || se.Offset != tt.offset {
				t.Errorf("Parse(%q) error = %s at %d, want %s at %d", tt.in, se.Kind, se.Offset, tt.kind, tt.offset)
			}
			if nodes != nil {
				t.Error("no nodes may be returned together with an error")
			}
		})
	}
}

func TestCaptureLocation(t *testing.T) {
	nodes, err := Parse("Hi {name}, <b>x</b>", Options{CaptureLocation: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []Location{{0, 3}, {3, 9}, {9, 11}, {11, 19}}
	if len(nodes) != len(want) {
		t.Fatalf("nodes = %d", len(nodes))
	}
	for i, n := range nodes {
		if n.Loc() != want[i] {
			t.Errorf("node %d (%s) loc = %+v, want %+v", i, n.Type(), n.Loc(), want[i])
		}
	}
}
