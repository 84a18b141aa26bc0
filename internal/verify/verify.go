package verify

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"intlc/internal/catalog"
	"intlc/internal/diag"
	"intlc/internal/formatter"
	"intlc/internal/icu"
	"intlc/internal/pipeline"
	"intlc/internal/trace"
)

// Options select the checks to run.
type Options struct {
	SourceLocale       string
	MissingKeys        bool
	ExtraKeys          bool
	StructuralEquality bool
	// IgnoreTag treats '<' and '>' as plain text while parsing.
	IgnoreTag bool
	// Jobs bounds the number of targets checked at once (0 = GOMAXPROCS).
	Jobs     int
	Progress pipeline.ProgressSink
}

// Mismatch is a message whose translation changed the message shape.
type Mismatch struct {
	ID          string
	SourceShape string
	TargetShape string
	Diff        string
}

// Report lists the findings for one target locale.
type Report struct {
	SourceLocale string
	TargetLocale string
	TargetPath   string
	Missing      []string
	Extra        []string
	Mismatches   []Mismatch
}

// Empty reports whether the target passed every enabled check.
func (r *Report) Empty() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0 && len(r.Mismatches) == 0
}

// Result holds one report per target, in input order.
type Result struct {
	Reports     []*Report
	Diagnostics []diag.Diagnostic
}

// Failed reports whether any target has findings or any error diagnostic
// was produced.
func (r *Result) Failed() bool {
	for _, rep := range r.Reports {
		if !rep.Empty() {
			return true
		}
	}
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Paths loads "<locale>.json" catalogs and verifies them.
func Paths(ctx context.Context, paths []string, opts Options) (*Result, error) {
	files := make([]*catalog.File, 0, len(paths))
	for _, p := range paths {
		f, err := catalog.Load(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return Catalogs(ctx, files, opts)
}

type messages struct {
	order []string
	text  map[string]string
}

func readMessages(f *catalog.File) (messages, error) {
	def, err := formatter.Lookup("default")
	if err != nil {
		return messages{}, err
	}
	entries, err := def.Compile(f.Object)
	if err != nil {
		return messages{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	m := messages{text: make(map[string]string, len(entries))}
	for _, e := range entries {
		if _, ok := m.text[e.ID]; !ok {
			m.order = append(m.order, e.ID)
		}
		m.text[e.ID] = e.Message
	}
	return m, nil
}

// Catalogs verifies every file against the one named after
// Options.SourceLocale.
func Catalogs(ctx context.Context, files []*catalog.File, opts Options) (*Result, error) {
	src := -1
	available := make([]string, len(files))
	for i, f := range files {
		available[i] = catalog.LocaleOf(f.Path)
		if available[i] == opts.SourceLocale && src < 0 {
			src = i
		}
	}
	if src < 0 {
		return nil, &MissingSourceLocaleError{Locale: opts.SourceLocale, Available: available}
	}

	span, ctx := trace.Stage(ctx, "verify")
	defer span.End(opts.SourceLocale)

	res := &Result{}
	for i, f := range files {
		if _, err := catalog.CanonicalLocale(available[i]); err != nil {
			res.Diagnostics = append(res.Diagnostics, diag.NewAt(diag.SevWarning, diag.VerInvalidLocaleName, f.Path,
				fmt.Sprintf("%q is not a valid locale name: %v", available[i], err)))
		}
	}

	source, err := readMessages(files[src])
	if err != nil {
		return nil, err
	}
	c := &checker{opts: opts, source: source, sourcePath: files[src].Path, shapes: make(map[string]*Shape)}
	if opts.StructuralEquality {
		res.Diagnostics = append(res.Diagnostics, c.parseSource()...)
	}

	var targets []*catalog.File
	for i, f := range files {
		if i != src {
			targets = append(targets, f)
		}
	}
	reports := make([]*Report, len(targets))
	diags := make([][]diag.Diagnostic, len(targets))
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	paths := make([]string, len(targets))
	for i, t := range targets {
		paths[i] = t.Path
	}
	pipeline.EmitQueued(opts.Progress, paths, pipeline.StageVerify)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(targets))))
	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pipeline.Emit(opts.Progress, t.Path, pipeline.StageVerify, pipeline.StatusWorking, nil, 0)
			rep, ds, err := c.check(gctx, t)
			if err != nil {
				pipeline.Emit(opts.Progress, t.Path, pipeline.StageVerify, pipeline.StatusError, err, 0)
				return err
			}
			reports[i], diags[i] = rep, ds
			pipeline.Emit(opts.Progress, t.Path, pipeline.StageVerify, pipeline.StatusDone, nil, 0)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Reports = reports
	for _, ds := range diags {
		res.Diagnostics = append(res.Diagnostics, ds...)
	}
	span.Count("targets", len(targets))
	return res, nil
}

// checker держит разобранный исходный каталог; после parseSource только читается.
type checker struct {
	opts       Options
	source     messages
	sourcePath string
	shapes     map[string]*Shape // nil value: source message does not parse
}

func (c *checker) parseOptions() icu.Options { return icu.Options{IgnoreTag: c.opts.IgnoreTag} }

func (c *checker) parseSource() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, id := range c.source.order {
		nodes, err := icu.Parse(c.source.text[id], c.parseOptions())
		if err != nil {
			c.shapes[id] = nil
			out = append(out, syntaxDiagnostic(c.sourcePath, id, err))
			continue
		}
		s := ShapeOf(nodes)
		c.shapes[id] = &s
	}
	return out
}

func syntaxDiagnostic(path, id string, err error) diag.Diagnostic {
	code := diag.MsgInfo
	var se *icu.SyntaxError
	if errors.As(err, &se) {
		code = diag.MessageCode(uint8(se.Kind))
	}
	return diag.NewAt(diag.SevError, code, path, fmt.Sprintf("message %q: %v", id, err))
}

func (c *checker) check(ctx context.Context, f *catalog.File) (*Report, []diag.Diagnostic, error) {
	locale := catalog.LocaleOf(f.Path)
	span, _ := trace.File(ctx, f.Path)
	span.Set("locale", locale)
	defer span.End("")

	target, err := readMessages(f)
	if err != nil {
		return nil, nil, err
	}
	rep := &Report{SourceLocale: c.opts.SourceLocale, TargetLocale: locale, TargetPath: f.Path}
	var ds []diag.Diagnostic

	if c.opts.MissingKeys {
		for _, id := range c.source.order {
			if _, ok := target.text[id]; !ok {
				rep.Missing = append(rep.Missing, id)
				ds = append(ds, diag.NewAt(diag.SevError, diag.VerMissingKey, f.Path,
					fmt.Sprintf("missing translation for %q", id)))
			}
		}
	}
	if c.opts.ExtraKeys {
		for _, id := range target.order {
			if _, ok := c.source.text[id]; !ok {
				rep.Extra = append(rep.Extra, id)
				ds = append(ds, diag.NewAt(diag.SevError, diag.VerExtraKey, f.Path,
					fmt.Sprintf("%q does not exist in %s", id, c.sourcePath)))
			}
		}
	}
	if c.opts.StructuralEquality {
		for _, id := range c.source.order {
			text, ok := target.text[id]
			srcShape := c.shapes[id]
			if !ok || srcShape == nil {
				continue
			}
			m, bad := c.compare(id, *srcShape, text)
			if !bad {
				continue
			}
			rep.Mismatches = append(rep.Mismatches, m)
			ds = append(ds, diag.NewAt(diag.SevError, diag.VerStructuralMismatch, f.Path,
				fmt.Sprintf("%q: %s", id, m.Diff)))
		}
	}
	return rep, ds, nil
}

func (c *checker) compare(id string, src Shape, text string) (Mismatch, bool) {
	m := Mismatch{ID: id, SourceShape: src.String()}
	nodes, err := icu.Parse(text, c.parseOptions())
	if err != nil {
		// неразбираемый перевод считается несовпадением
		m.Diff = "translation does not parse: " + err.Error()
		return m, true
	}
	got := ShapeOf(nodes)
	if src.Equal(got) {
		return Mismatch{}, false
	}
	m.TargetShape = got.String()
	m.Diff = Diff(src, got)
	return m, true
}
