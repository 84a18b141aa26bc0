package ident

import (
	"errors"
	"testing"
)

func TestDefaultPatternExample(t *testing.T) {
	a, err := NewAssigner("")
	if err != nil {
		t.Fatal(err)
	}
	if a.Pattern().String() != DefaultPattern {
		t.Fatalf("pattern = %q", a.Pattern())
	}
	id := a.Assign("", "Hello World!", "greeting", true)
	if id != "92e3q1" {
		t.Errorf("id = %q, want %q", id, "92e3q1")
	}
	for range 5 {
		if again := a.Assign("", "Hello World!", "greeting", true); again != id {
			t.Fatalf("non-deterministic id: %q then %q", id, again)
		}
	}
}

func TestAssignKeepsExplicitID(t *testing.T) {
	a, _ := NewAssigner(DefaultPattern)
	if got := a.Assign("app.title", "Hello", "", false); got != "app.title" {
		t.Errorf("got %q", got)
	}
}

func TestContent(t *testing.T) {
	a := MustParsePattern(DefaultPattern)
	tests := []struct {
		msg, desc string
		hasDesc   bool
		want      string
	}{
		{"Hello World!", "", false, "hhhE1n"},
		// пустое описание всё равно добавляет '#'
		{"Hello World!", "", true, "qKo6bO"},
		{"Hello World!", "greeting", true, "92e3q1"},
	}
	for _, tt := range tests {
		if got := a.Generate(Content(tt.msg, tt.desc, tt.hasDesc)); got != tt.want {
			t.Errorf("Generate(%q, %q, %v) = %q, want %q", tt.msg, tt.desc, tt.hasDesc, got, tt.want)
		}
	}
}

func TestPatternVariants(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"[md5:contenthash:hex:8]", "90015098"},
		{"[sha1:hash:hex:10]", "a9993e3647"},
		{"[sha256:contenthash:base64url]", "ungWv48Bz-pBQUDeXa4iI7ADYaOWF3qctBD_YfIAFa0"},
		{"[sha256:contenthash:base62]", "VAB5rPw6I5hZN7ymLM3BWCA0D8RUkXK8Q0eJBM5kudI"},
		{"[md5:contenthash:base26]", "kobvzwfchgabvkumzfqtfojglcfb"},
		{"msg_[md5:contenthash:hex:4]_x", "msg_9001_x"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.Generate("abc"); got != tt.want {
				t.Errorf("Generate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultsInsidePlaceholder(t *testing.T) {
	p := MustParsePattern("[contenthash:12]")
	got := p.Generate("abc")
	if len(got) != 12 {
		t.Fatalf("len = %d", len(got))
	}
	full := MustParsePattern("[sha512:contenthash:hex]").Generate("abc")
	if full[:12] != got {
		t.Errorf("default algorithm should be sha512/hex: %q vs %q", got, full[:12])
	}
}

func TestPatternErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"[sha512:contenthash",
		"[whirlpool:contenthash:hex]",
		"[sha512:name:hex]",
		"[sha512:contenthash:base99]",
		"[sha512:contenthash:hex:abc]",
		"[sha512:contenthash:hex:6:7]",
	} {
		_, err := ParsePattern(s)
		var pe *PatternError
		if !errors.As(err, &pe) {
			t.Errorf("ParsePattern(%q) error = %v, want *PatternError", s, err)
		}
	}
	if _, err := NewAssigner("[nope]"); err == nil {
		t.Error("NewAssigner should reject invalid patterns")
	}
}

func TestBaseEncodingWidth(t *testing.T) {
	// ширина зависит только от размера digest, ведущие нули сохраняются
	zero := make([]byte, 16)
	if got := Base36.Encode(zero); len(got) != 25 || got != "0000000000000000000000000" {
		t.Errorf("Base36(zero) = %q", got)
	}
}
