package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"intlc/internal/diag"
	"intlc/internal/formatter"
	"intlc/internal/ident"
	"intlc/internal/pseudo"
)

// FileName is the project configuration file looked up by Find.
const FileName = "intlc.toml"

// File is the decoded project configuration. Keys missing from the TOML
// document keep the values from Default.
type File struct {
	// Path is where the file was read from; empty for Default.
	Path string `toml:"-"`

	Extract Extract `toml:"extract"`
	Compile Compile `toml:"compile"`
	Verify  Verify  `toml:"verify"`
}

// Extract holds the [extract] table.
type Extract struct {
	IDInterpolationPattern   string   `toml:"id_interpolation_pattern"`
	AdditionalComponentNames []string `toml:"additional_component_names"`
	AdditionalFunctionNames  []string `toml:"additional_function_names"`
	ExtractSourceLocation    bool     `toml:"extract_source_location"`
	PreserveWhitespace       bool     `toml:"preserve_whitespace"`
	Flatten                  bool     `toml:"flatten"`
	Throws                   bool     `toml:"throws"`
	Pragma                   string   `toml:"pragma"`
	Ignore                   []string `toml:"ignore"`
	Format                   string   `toml:"format"`
	Jobs                     int      `toml:"jobs"`
	CacheDir                 string   `toml:"cache_dir"`
}

// Compile holds the [compile] table.
type Compile struct {
	Format       string `toml:"format"`
	AST          bool   `toml:"ast"`
	SkipErrors   bool   `toml:"skip_errors"`
	PseudoLocale string `toml:"pseudo_locale"`
	IgnoreTag    bool   `toml:"ignore_tag"`
	Jobs         int    `toml:"jobs"`
}

// Verify holds the [verify] table.
type Verify struct {
	SourceLocale       string   `toml:"source_locale"`
	MissingKeys        bool     `toml:"missing_keys"`
	ExtraKeys          bool     `toml:"extra_keys"`
	StructuralEquality bool     `toml:"structural_equality"`
	Ignore             []string `toml:"ignore"`
}

// Default returns the configuration used when no file is found.
func Default() File {
	return File{
		Extract: Extract{
			IDInterpolationPattern: ident.DefaultPattern,
		},
		Compile: Compile{
			Format: "default",
		},
		Verify: Verify{
			MissingKeys:        true,
			StructuralEquality: true,
		},
	}
}

// Error is an invalid configuration file.
type Error struct {
	Path string
	Code diag.Code
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Diagnostic converts the error into a file-level diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewAt(diag.SevError, e.Code, e.Path, e.Err.Error())
}

// Load reads and validates the configuration at path.
func Load(path string) (*File, error) {
	f := Default()
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, &Error{Path: path, Code: diag.CfgInvalidFile, Err: fmt.Errorf("failed to parse TOML: %w", err)}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &Error{Path: path, Code: diag.CfgInvalidFile, Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
	}
	f.Path = path
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Discover loads the configuration found by walking up from dir. Without a
// file it returns Default.
func Discover(dir string) (*File, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		f := Default()
		return &f, nil
	}
	return Load(path)
}

// Find walks up from startDir to locate intlc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Dir returns the directory relative paths in the file are resolved against.
func (f *File) Dir() string {
	if f.Path == "" {
		return "."
	}
	return filepath.Dir(f.Path)
}

func (f *File) validate() error {
	fail := func(code diag.Code, err error) error {
		return &Error{Path: f.Path, Code: code, Err: err}
	}
	if _, err := ident.ParsePattern(f.Extract.IDInterpolationPattern); err != nil {
		return fail(diag.CfgInvalidPattern, err)
	}
	for _, name := range []string{f.Extract.Format, f.Compile.Format} {
		if _, err := formatter.Lookup(name); err != nil {
			return fail(diag.CfgUnknownFormatter, err)
		}
	}
	if f.Compile.PseudoLocale != "" {
		if _, err := pseudo.Lookup(f.Compile.PseudoLocale); err != nil {
			return fail(diag.CfgUnknownPseudoLocale, err)
		}
	}
	if f.Extract.Jobs < 0 || f.Compile.Jobs < 0 {
		return fail(diag.CfgInvalidFile, errors.New("jobs must not be negative"))
	}
	if err := ValidateIgnore(f.Path, f.Extract.Ignore); err != nil {
		return err
	}
	return ValidateIgnore(f.Path, f.Verify.Ignore)
}
