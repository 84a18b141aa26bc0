package compile

import (
	"context"
	"errors"
	"fmt"

	"intlc/internal/catalog"
	"intlc/internal/diag"
	"intlc/internal/icu"
	"intlc/internal/pseudo"
	"intlc/internal/trace"
)

// Result is the outcome of compiling one locale.
type Result struct {
	Catalog *catalog.Compiled
	// Pseudo is the pseudo-localised catalog when Options.PseudoLocale is set.
	Pseudo *catalog.Compiled
	// Skipped lists messages dropped under Options.SkipErrors.
	Skipped     []*MessageError
	Diagnostics []diag.Diagnostic
}

// Output returns the catalog to persist: the pseudo-localised one when it
// was requested, the plain one otherwise.
func (r *Result) Output() *catalog.Compiled {
	if r.Pseudo != nil {
		return r.Pseudo
	}
	return r.Catalog
}

// Paths loads catalog files and compiles them into one catalog.
func Paths(ctx context.Context, paths []string, opts Options) (*Result, error) {
	files := make([]*catalog.File, 0, len(paths))
	for _, p := range paths {
		f, err := catalog.Load(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return Files(ctx, files, opts)
}

// Files compiles decoded catalog files into one catalog. The same id in two
// files must carry the same message, otherwise a *ConflictError is returned.
func Files(ctx context.Context, files []*catalog.File, opts Options) (*Result, error) {
	if len(files) == 0 {
		return nil, errors.New("no input file found")
	}
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	span, _ := trace.Stage(ctx, "compile")
	defer span.End("")

	inputs, diags, err := merge(files, r)
	if err != nil {
		return nil, err
	}
	locale := ""
	if len(files) == 1 {
		locale = catalog.LocaleOf(files[0].Path)
	}
	res, err := compileInputs(locale, inputs, r)
	if err != nil {
		return nil, err
	}
	res.Diagnostics = append(diags, res.Diagnostics...)
	span.Count("messages", res.Catalog.Len()).Count("skipped", len(res.Skipped))
	return res, nil
}

type input struct {
	file string
	catalog.Entry
}

// merge собирает записи всех файлов; одинаковые id должны совпадать по смыслу.
func merge(files []*catalog.File, r resolved) ([]input, []diag.Diagnostic, error) {
	var diags []diag.Diagnostic
	seen := make(map[string]int)
	var out []input
	for _, f := range files {
		for _, d := range f.Duplicates {
			if d.Path != "/" {
				continue
			}
			diags = append(diags, diag.NewAt(diag.SevWarning, diag.DupMessageID, f.Path,
				fmt.Sprintf("id %q appears more than once; the last value is used", d.Key)))
		}
		entries, err := r.formatter.Compile(f.Object)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.Path, err)
		}
		for _, e := range entries {
			idx, ok := seen[e.ID]
			if !ok {
				seen[e.ID] = len(out)
				out = append(out, input{file: f.Path, Entry: e})
				continue
			}
			prev := out[idx]
			if prev.file == f.Path {
				// дубликат ключа внутри файла: последнее значение
				out[idx].Message = e.Message
				continue
			}
			if !sameMessage(prev.Message, e.Message, r.IgnoreTag) {
				return nil, nil, &ConflictError{
					ID:       e.ID,
					Files:    [2]string{prev.file, f.Path},
					Messages: [2]string{prev.Message, e.Message},
				}
			}
		}
	}
	return out, diags, nil
}

func sameMessage(a, b string, ignoreTag bool) bool {
	if a == b {
		return true
	}
	opts := icu.Options{IgnoreTag: ignoreTag}
	na, errA := icu.Parse(a, opts)
	nb, errB := icu.Parse(b, opts)
	if errA != nil || errB != nil {
		return false
	}
	return icu.Equal(na, nb)
}

// Entries compiles id -> message entries of one locale.
func Entries(locale, file string, entries []catalog.Entry, opts Options) (*Result, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	inputs := make([]input, len(entries))
	for i, e := range entries {
		inputs[i] = input{file: file, Entry: e}
	}
	return compileInputs(locale, inputs, r)
}

func compileInputs(locale string, inputs []input, r resolved) (*Result, error) {
	byID := make([]catalog.Entry, len(inputs))
	files := make(map[string]string, len(inputs))
	for i, in := range inputs {
		byID[i] = in.Entry
		files[in.ID] = in.file
	}
	catalog.SortEntries(byID)

	res := &Result{Catalog: &catalog.Compiled{Locale: locale}}
	if r.pseudo != "" {
		res.Pseudo = &catalog.Compiled{Locale: string(r.pseudo)}
	}
	for _, e := range byID {
		nodes, err := icu.Parse(e.Message, icu.Options{IgnoreTag: r.IgnoreTag})
		if err != nil {
			var se *icu.SyntaxError
			if !errors.As(err, &se) {
				return nil, err
			}
			me := &MessageError{File: files[e.ID], ID: e.ID, Message: e.Message, Err: se}
			if !r.SkipErrors {
				return nil, me
			}
			res.Skipped = append(res.Skipped, me)
			res.Diagnostics = append(res.Diagnostics, me.Diagnostic(diag.SevWarning))
			continue
		}
		res.Catalog.Entries = append(res.Catalog.Entries, encode(e.ID, nodes, r.AST))
		if res.Pseudo != nil {
			res.Pseudo.Entries = append(res.Pseudo.Entries, encode(e.ID, pseudo.Apply(r.pseudo, nodes), r.AST))
		}
	}
	return res, nil
}

// Message compiles a single message. It is the per-descriptor form of
// Entries and never consults a formatter.
func Message(text string, opts Options) (catalog.CompiledEntry, error) {
	nodes, err := icu.Parse(text, icu.Options{IgnoreTag: opts.IgnoreTag})
	if err != nil {
		return catalog.CompiledEntry{}, err
	}
	if opts.PseudoLocale != "" {
		l, err := pseudo.Lookup(opts.PseudoLocale)
		if err != nil {
			return catalog.CompiledEntry{}, err
		}
		nodes = pseudo.Apply(l, nodes)
	}
	return encode("", nodes, opts.AST), nil
}

func encode(id string, nodes []icu.Node, ast bool) catalog.CompiledEntry {
	if ast {
		return catalog.CompiledEntry{ID: id, AST: icu.MarshalJSON(nodes)}
	}
	return catalog.CompiledEntry{ID: id, Text: icu.Print(nodes)}
}
