package pseudo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"intlc/internal/icu"
)

func TestApply(t *testing.T) {
	const msg = "Hello {name}, {n, plural, one {# item} other {# items}}"
	tests := []struct {
		locale Locale
		want   string
	}{
		{XXLS, "Hello {name}, {n, plural, one {# item} other {# items}}SSSSSSSSSSSSSSSSSSSSSSSSS"},
		{XXAC, "HELLO {name}, {n, plural, one {# ITEM} other {# ITEMS}}"},
		{XXHA, "[javascript]Hello {name}, {n, plural, one {# item} other {# items}}"},
		{ENXA, "[Ħḗŀŀǿ {name}, {n, plural, one {# īŧḗḿ} other {# īŧḗḿş}}]"},
		{ENXB, "\u202eHello \u202c{name}\u202e, \u202c{n, plural, one {#\u202e item\u202c} other {#\u202e items\u202c}}"},
	}
	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			nodes := icu.MustParse(msg)
			out := Apply(tt.locale, nodes)
			if got := icu.Print(out); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
			if diff := cmp.Diff(icu.Arguments(nodes), icu.Arguments(out)); diff != "" {
				t.Errorf("arguments changed (-before +after):\n%s", diff)
			}
			if icu.Print(nodes) != msg {
				t.Error("input was modified")
			}
			if again := icu.Print(Apply(tt.locale, icu.MustParse(msg))); again != icu.Print(out) {
				t.Error("transform is not deterministic")
			}
		})
	}
}

func TestApplyArgumentEdges(t *testing.T) {
	nodes := icu.MustParse("{a}")
	if got := icu.Print(Apply(XXHA, nodes)); got != "[javascript]{a}" {
		t.Errorf("XXHA = %q", got)
	}
	if got := icu.Print(Apply(XXLS, nodes)); got != "{a}SSSSSSSSSSSSSSSSSSSSSSSSS" {
		t.Errorf("XXLS = %q", got)
	}
}

func TestLookup(t *testing.T) {
	for _, l := range Locales() {
		got, err := Lookup(string(l))
		if err != nil || got != l {
			t.Errorf("Lookup(%q) = %q, %v", l, got, err)
		}
	}
	if _, err := Lookup("fr-XX"); err == nil {
		t.Error("expected an error for an unknown pseudo-locale")
	}
}
