package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"intlc/internal/diag"
	"intlc/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const s = 'unterminated\n")
	fileID := fs.AddVirtual("/home/user/project/src/app.tsx", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SrcUnterminatedString,
		source.Span{File: fileID, Start: 10, End: 23}, "unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/app.tsx"},
		{"relative", PathModeRelative, "src/app.tsx:1:11"},
		{"basename", PathModeBasename, "app.tsx:1:11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()
			for _, want := range []string{tt.contains, "ERROR", "SRC1002", "unterminated string literal"} {
				if !strings.Contains(output, want) {
					t.Errorf("output does not contain %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.tsx", []byte("a\nconst x = 'α'\n"))

	d := diag.NewWarning(diag.DupMessageID, source.Span{File: id, Start: 12, End: 16}, "duplicate id").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "earlier declaration")
	bag := diag.NewBag(0)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	want := "m.tsx:2:11: WARNING DUP5001: duplicate id\n" +
		"2 | const x = 'α'\n" +
		"  | " + strings.Repeat(" ", 10) + "^~~\n" +
		"  note: m.tsx:1:1: earlier declaration\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty output:\n%s\nwant:\n%s", got, want)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	if !strings.Contains(buf.String(), "1 | a\n2 | const x") {
		t.Errorf("context line missing:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "note:") {
		t.Error("notes printed without ShowNotes")
	}
}

func TestPrettyPathOnly(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewAt(diag.SevError, diag.VerMissingKey, "lang/fr.json", `missing "greeting"`))

	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{})
	if got, want := buf.String(), "lang/fr.json: ERROR VER6001: missing \"greeting\"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettyColor(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewAt(diag.SevWarning, diag.VerInvalidLocaleName, "x.json", "bad locale"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, nil, PrettyOpts{})
	Pretty(&colored, bag, nil, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("escape codes without Color: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("no escape codes with Color: %q", colored.String())
	}
}

func TestSummary(t *testing.T) {
	bag := diag.NewBag(0)
	var buf bytes.Buffer
	Summary(&buf, bag, false)
	if buf.Len() != 0 {
		t.Errorf("empty bag printed %q", buf.String())
	}

	bag.Add(diag.NewAt(diag.SevError, diag.IOLoadFileError, "a", "x"))
	bag.Add(diag.NewAt(diag.SevWarning, diag.DupMessageID, "b", "y"))
	bag.Add(diag.NewAt(diag.SevWarning, diag.DupMessageID, "c", "z"))
	Summary(&buf, bag, false)
	if got := buf.String(); got != "1 error, 2 warnings\n" {
		t.Errorf("Summary = %q", got)
	}
}
