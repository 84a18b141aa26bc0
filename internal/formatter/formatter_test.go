package formatter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"intlc/internal/catalog"
	"intlc/internal/jsonx"
)

var sample = []catalog.Message{
	{ID: "a", DefaultMessage: "Hello", Description: "greeting", HasDescription: true, File: "app.tsx", Start: 3, End: 40, HasLocation: true, Meta: map[string]string{"team": "core", "app": "web"}},
	{ID: "b", DefaultMessage: "<b>Bye</b>"},
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"default", `{"a":{"defaultMessage":"Hello","description":"greeting","file":"app.tsx","start":3,"end":40,"meta":{"app":"web","team":"core"}},"b":{"defaultMessage":"<b>Bye</b>"}}`},
		{"simple", `{"a":"Hello","b":"<b>Bye</b>"}`},
		{"transifex", `{"a":{"string":"Hello","developer_comment":"greeting"},"b":{"string":"<b>Bye</b>"}}`},
		{"crowdin", `{"a":{"message":"Hello","description":"greeting"},"b":{"message":"<b>Bye</b>"}}`},
		{"lokalise", `{"a":{"translation":"Hello","notes":"greeting"},"b":{"translation":"<b>Bye</b>"}}`},
		{"smartling", `{"smartling":{"translate_paths":[{"path":"*/message","key":"{*}/message","instruction":"*/description"}],"variants_enabled":true,"string_format":"icu"},"a":{"message":"Hello","description":"greeting"},"b":{"message":"<b>Bye</b>"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(f.Format(sample)); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

// Каждый формат должен читать обратно то, что сам записал.
func TestFormatCompileRoundTrip(t *testing.T) {
	want := []catalog.Entry{{ID: "a", Message: "Hello"}, {ID: "b", Message: "<b>Bye</b>"}}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			f, _ := Lookup(name)
			obj, _, err := jsonx.DecodeObject(f.Format(sample))
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.Compile(obj)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileShapeErrors(t *testing.T) {
	obj, _, err := jsonx.DecodeObject([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range Names() {
		f, _ := Lookup(name)
		var se *ShapeError
		if _, err := f.Compile(obj); !errors.As(err, &se) || se.ID != "a" {
			t.Errorf("%s: Compile error = %v, want *ShapeError for \"a\"", name, err)
		}
	}
	plain, _, _ := jsonx.DecodeObject([]byte(`{"a": "Hi"}`))
	if got, err := (defaultFormatter{}).Compile(plain); err != nil || got[0].Message != "Hi" {
		t.Errorf("default formatter must accept plain strings: %v %v", got, err)
	}
	if _, err := Lookup("xliff"); err == nil {
		t.Error("unknown formatter must fail")
	}
	if f, err := Lookup(""); err != nil || f.Name() != "default" {
		t.Errorf("Lookup(\"\") = %v, %v", f, err)
	}
}
