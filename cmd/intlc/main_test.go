package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"intlc/internal/config"
	"intlc/internal/diag"
)

// execute запускает CLI с аргументами и возвращает stdout, stderr и ошибку.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractFiles(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "app.tsx"),
		`const m = defineMessages({greeting: {id: 'greeting', defaultMessage: 'Hello {name}', description: 'header'}})`)
	out := filepath.Join(dir, "out", "en.json")

	stdout, stderr, err := execute(t, "", "extract", src, "--out-file", out)
	if err != nil {
		t.Fatalf("extract: %v\n%s", err, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty with --out-file, got %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"greeting\": {\n    \"defaultMessage\": \"Hello {name}\",\n    \"description\": \"header\"\n  }\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestExtractStdin(t *testing.T) {
	stdout, stderr, err := execute(t, `<FormattedMessage id="hi" defaultMessage="Hi there" />`, "extract", "--format", "simple")
	if err != nil {
		t.Fatalf("extract: %v\n%s", err, stderr)
	}
	if stdout != "{\n  \"hi\": \"Hi there\"\n}\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestExtractThrows(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "bad.tsx"), `defineMessage({id: 'x', defaultMessage: dynamic})`)

	_, stderr, err := execute(t, "", "extract", src)
	if err != nil {
		t.Fatalf("lenient extract failed: %v", err)
	}
	if !strings.Contains(stderr, "WARNING") {
		t.Errorf("expected a warning for the skipped file:\n%s", stderr)
	}

	_, stderr, err = execute(t, "", "extract", "--throws", src)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed", err)
	}
	if !strings.Contains(stderr, "DSC2001") {
		t.Errorf("expected the descriptor error code:\n%s", stderr)
	}
}

func TestExtractInFileAndIgnore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tsx"), `defineMessage({id: 'a', defaultMessage: 'A'})`)
	writeFile(t, filepath.Join(dir, "a.test.tsx"), `defineMessage({id: 't', defaultMessage: 'T'})`)
	list := writeFile(t, filepath.Join(dir, "files.txt"), "a.tsx\na.test.tsx\n")

	stdout, stderr, err := execute(t, "", "extract", "--in-file", list, "--ignore", "*.test.tsx", "--format", "simple")
	if err != nil {
		t.Fatalf("extract: %v\n%s", err, stderr)
	}
	if stdout != "{\n  \"a\": \"A\"\n}\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCompile(t *testing.T) {
	dir := t.TempDir()
	fr := writeFile(t, filepath.Join(dir, "fr.json"), `{"greeting": {"defaultMessage": "Bonjour {name}"}, "bye": "Au revoir"}`)

	stdout, stderr, err := execute(t, "", "compile", fr)
	if err != nil {
		t.Fatalf("compile: %v\n%s", err, stderr)
	}
	want := "{\n  \"bye\": \"Au revoir\",\n  \"greeting\": \"Bonjour {name}\"\n}\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}

	broken := writeFile(t, filepath.Join(dir, "de.json"), `{"a": "{count, plural, one {#}}", "b": "ok"}`)
	_, stderr, err = execute(t, "", "compile", broken)
	if !errors.Is(err, errFailed) || !strings.Contains(stderr, "MSG3008") {
		t.Errorf("err = %v, stderr:\n%s", err, stderr)
	}

	stdout, _, err = execute(t, "", "compile", broken, "--skip-errors")
	if err != nil {
		t.Fatalf("--skip-errors: %v", err)
	}
	if stdout != "{\n  \"b\": \"ok\"\n}\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCompileFolder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lang")
	writeFile(t, filepath.Join(in, "en.json"), `{"a": "Hello"}`)
	writeFile(t, filepath.Join(in, "fr.json"), `{"a": "{oops"}`)
	outDir := filepath.Join(dir, "compiled")

	_, stderr, err := execute(t, "", "compile-folder", in, outDir)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed", err)
	}
	if !strings.Contains(stderr, "compiled 1 of 2 locales") {
		t.Errorf("stderr:\n%s", stderr)
	}
	if _, err := os.Stat(filepath.Join(outDir, "en.json")); err != nil {
		t.Errorf("en.json not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "fr.json")); err == nil {
		t.Error("broken locale should not be written")
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	en := writeFile(t, filepath.Join(dir, "en.json"), `{"greeting": "Hello {name}", "bye": "Bye"}`)
	fr := writeFile(t, filepath.Join(dir, "fr.json"), `{"greeting": "Bonjour {nom}", "bye": "Au revoir"}`)
	de := writeFile(t, filepath.Join(dir, "de.json"), `{"greeting": "Hallo {name}", "bye": "Tschüss"}`)

	stdout, _, err := execute(t, "", "verify", "--source-locale", "en", en, fr, de)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed", err)
	}
	for _, want := range []string{"FAIL en -> fr", "greeting", "ok en -> de"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("report does not contain %q:\n%s", want, stdout)
		}
	}

	_, _, err = execute(t, "", "verify", "--source-locale", "en", en, de)
	if err != nil {
		t.Errorf("matching catalogs failed: %v", err)
	}

	_, stderr, err := execute(t, "", "verify", "--source-locale", "ja", en, de)
	if !errors.Is(err, errFailed) || !strings.Contains(stderr, "VER6004") {
		t.Errorf("missing source locale: err = %v, stderr:\n%s", err, stderr)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, filepath.Join(dir, "intlc.toml"), "[verify]\nsource_locale = \"en\"\nextra_keys = true\n")
	en := writeFile(t, filepath.Join(dir, "en.json"), `{"a": "A"}`)
	fr := writeFile(t, filepath.Join(dir, "fr.json"), `{"a": "A", "b": "B"}`)

	stdout, _, err := execute(t, "", "--config", cfg, "verify", en, fr, "--report-format", "json")
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed from extra keys", err)
	}
	if !strings.Contains(stdout, `"extra": [`) || !strings.Contains(stdout, `"b"`) {
		t.Errorf("json report:\n%s", stdout)
	}

	// явный флаг сильнее файла
	if _, _, err := execute(t, "", "--config", cfg, "verify", en, fr, "--extra-keys=false"); err != nil {
		t.Errorf("flag did not override config: %v", err)
	}

	bad := writeFile(t, filepath.Join(dir, "bad.toml"), "[compile]\nformat = \"xliff\"\n")
	_, stderr, err := execute(t, "", "--config", bad, "version")
	if !errors.Is(err, errFailed) || !strings.Contains(stderr, "CFG7002") {
		t.Errorf("bad config: err = %v, stderr:\n%s", err, stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"version"`) {
		t.Errorf("stdout = %s", stdout)
	}
	if _, _, err := execute(t, "", "version", "--format", "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestResolveColor(t *testing.T) {
	for mode, want := range map[string]bool{"on": true, "off": false, "always": true, "never": false} {
		got, err := resolveColor(mode, os.Stderr)
		if err != nil || got != want {
			t.Errorf("resolveColor(%q) = %v, %v", mode, got, err)
		}
	}
	if _, err := resolveColor("sometimes", os.Stderr); err == nil {
		t.Error("expected an error for an invalid mode")
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, filepath.Join(dir, "list.txt"), "b.tsx c.test.tsx\n\na.tsx\n")

	got, err := collectFiles([]string{"a.tsx", "./a.tsx"}, list, config.FlagSource, []string{"*.test.tsx"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.tsx", filepath.Join(dir, "b.tsx"), filepath.Join(dir, "a.tsx")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}

	if _, err := collectFiles(nil, filepath.Join(dir, "missing.txt"), config.FlagSource, nil); err == nil {
		t.Error("expected an error for a missing --in-file")
	}

	_, err = collectFiles([]string{"a.tsx"}, "", config.FlagSource, []string{"src/[a"})
	var ce *config.Error
	if !errors.As(err, &ce) || ce.Code != diag.CfgInvalidIgnore || ce.Path != config.FlagSource {
		t.Errorf("err = %v, want a CfgInvalidIgnore error for the flag", err)
	}
}

func TestBadIgnoreFlag(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "a.tsx"), `defineMessage({id: 'a', defaultMessage: 'A'})`)

	tests := []struct {
		name string
		args []string
	}{
		{"extract", []string{"extract", "--ignore", "{a,b", src}},
		{"verify", []string{"verify", "--source-locale", "en", "--ignore", "[z-", src}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, "", tt.args...)
			if !errors.Is(err, errFailed) {
				t.Fatalf("err = %v, want errFailed", err)
			}
			if !strings.Contains(stderr, "CFG7005") || !strings.Contains(stderr, "ignore pattern") {
				t.Errorf("stderr = %q", stderr)
			}
		})
	}
}

func TestUseProgress(t *testing.T) {
	if on, err := useProgress("auto", true); err != nil || on {
		t.Errorf("quiet must disable the automatic progress view: %v, %v", on, err)
	}
	if on, err := useProgress("on", true); err != nil || !on {
		t.Errorf("on: %v, %v", on, err)
	}
	if on, err := useProgress("off", false); err != nil || on {
		t.Errorf("off: %v, %v", on, err)
	}
	if _, err := useProgress("maybe", false); err == nil {
		t.Error("expected an error for an invalid mode")
	}
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	if _, _, err := execute(t, "", "--cpu-profile", cpu, "--mem-profile", mem, "version"); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{cpu, mem} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("profile not written: %v", err)
		}
	}
}

func TestDiagnosticsFormat(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "bad.tsx"), `defineMessage({id: 'x', defaultMessage: dynamic})`)

	_, stderr, err := execute(t, "", "--diagnostics-format", "json", "extract", "--throws", src)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed", err)
	}
	if !strings.Contains(stderr, `"code": "DSC2001"`) {
		t.Errorf("json diagnostics:\n%s", stderr)
	}

	_, stderr, _ = execute(t, "", "--diagnostics-format", "short", "extract", "--throws", src)
	if !strings.Contains(stderr, "DSC2001") || strings.Contains(stderr, " | ") {
		t.Errorf("short diagnostics:\n%s", stderr)
	}

	if _, _, err := execute(t, "", "--diagnostics-format", "xml", "version"); err == nil {
		t.Error("expected an error for an unknown diagnostics format")
	}
}

func TestTraceFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "app.tsx"), `defineMessage({id: 'a', defaultMessage: 'A'})`)
	log := filepath.Join(dir, "run.log")

	tests := []struct {
		level string
		want  []string
		skip  string
	}{
		{"stage", []string{"→ extract", "← extract"}, "app.tsx"},
		{"file", []string{"→ extract", "→ extract " + src, "messages=1"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			_, stderr, err := execute(t, "", "--trace", log, "--trace-level", tt.level, "extract", src)
			if err != nil {
				t.Fatalf("extract: %v\n%s", err, stderr)
			}
			data, err := os.ReadFile(log)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(data), w) {
					t.Errorf("trace missing %q:\n%s", w, data)
				}
			}
			if tt.skip != "" && strings.Contains(string(data), tt.skip) {
				t.Errorf("trace at %s level mentions %q:\n%s", tt.level, tt.skip, data)
			}
		})
	}
}
