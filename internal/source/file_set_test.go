package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("app.tsx", []byte("const a = 1"), 0)
	id2 := fs.Add("app.tsx", []byte("const a = 2"), 0)
	if id1 == id2 {
		t.Fatalf("expected a new FileID for the second Add, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("app.tsx")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "const a = 1" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("<stdin>", []byte("\xEF\xBB\xBFa\r\nb\r\n"))
	file := fs.Get(id)

	if string(file.Content) != "a\nb\n" {
		t.Fatalf("content = %q, want %q", file.Content, "a\nb\n")
	}
	if !file.Virtual() || !file.Flags.Has(FileHadBOM|FileNormalizedCRLF) {
		t.Errorf("unexpected flags %08b", file.Flags)
	}
	want := []uint32{1, 3}
	if len(file.LineIdx) != len(want) || file.LineIdx[0] != want[0] || file.LineIdx[1] != want[1] {
		t.Errorf("LineIdx = %v, want %v", file.LineIdx, want)
	}
	if got := file.FormatPath("absolute", ""); got != "<stdin>" {
		t.Errorf("virtual files keep their name, got %q", got)
	}
}

func TestFileFlags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		virtual bool
		want    FileFlags
	}{
		{"plain disk file", "a\n", false, 0},
		{"bom only", "\xEF\xBB\xBFa\n", false, FileHadBOM},
		{"crlf only", "a\r\n", false, FileNormalizedCRLF},
		{"lone cr stays", "a\rb", true, FileVirtual},
		{"virtual with both", "\xEF\xBB\xBFa\r\n", true, FileVirtual | FileHadBOM | FileNormalizedCRLF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			var id FileID
			if tt.virtual {
				id = fs.AddVirtual("mem.tsx", []byte(tt.content))
			} else {
				id = fs.AddNormalized("disk.tsx", []byte(tt.content), 0)
			}
			f := fs.Get(id)
			if f.Flags != tt.want {
				t.Errorf("flags = %03b, want %03b", f.Flags, tt.want)
			}
			if f.Virtual() != tt.virtual {
				t.Errorf("Virtual() = %v, want %v", f.Virtual(), tt.virtual)
			}
		})
	}
}

func TestResolveAndSlice(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("msg.tsx", []byte("α\nconst x = 'hi'\n"))

	// α занимает 2 байта
	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if start != (LineCol{Line: 1, Col: 1}) || end != (LineCol{Line: 1, Col: 2}) {
		t.Errorf("Resolve = %+v %+v", start, end)
	}

	sp := Span{File: id, Start: 13, End: 17}
	if got := fs.Slice(sp); got != "'hi'" {
		t.Errorf("Slice = %q, want %q", got, "'hi'")
	}
	start, _ = fs.Resolve(sp)
	if start != (LineCol{Line: 2, Col: 11}) {
		t.Errorf("Resolve second line = %+v", start)
	}
	if got := fs.Get(id).GetLine(2); got != "const x = 'hi'" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := fs.Slice(Span{File: id, Start: 9, End: 400}); got != "x = 'hi'\n" {
		t.Errorf("Slice clamps to content, got %q", got)
	}
}

func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()

	empty := fs.Get(fs.AddVirtual("empty.tsx", []byte{}))
	if len(empty.LineIdx) != 0 {
		t.Errorf("empty file LineIdx = %v", empty.LineIdx)
	}
	if empty.GetLine(1) != "" || empty.GetLine(0) != "" {
		t.Error("expected empty lines for empty file")
	}

	onlyNewline := fs.Get(fs.AddVirtual("nl.tsx", []byte("\n")))
	if len(onlyNewline.LineIdx) != 1 || onlyNewline.LineIdx[0] != 0 {
		t.Errorf("LineIdx = %v, want [0]", onlyNewline.LineIdx)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.ts")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("content = %q", file.Content)
	}
	if file.Flags&FileVirtual != 0 {
		t.Error("loaded files are not virtual")
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %08b", file.Flags)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.ts")); err == nil {
		t.Error("expected error for missing file")
	}
}
