package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"intlc/internal/catalog"
	"intlc/internal/diag"
	"intlc/internal/icu"
	"intlc/internal/parser"
	"intlc/internal/pipeline"
	"intlc/internal/scanner"
	"intlc/internal/source"
	"intlc/internal/trace"
)

// StdinName is the path used for source text read from standard input.
const StdinName = "<stdin>"

// Input is one unit of work: a file on disk, or in-memory source text.
type Input struct {
	Path string
	// Content, when not nil, is used instead of reading Path.
	Content []byte
}

// FileInputs wraps paths as inputs read from disk.
func FileInputs(paths []string) []Input {
	out := make([]Input, len(paths))
	for i, p := range paths {
		out[i] = Input{Path: p}
	}
	return out
}

// Result is the aggregated output of an extraction run.
type Result struct {
	// Messages are sorted by id; ids are unique.
	Messages []catalog.Message
	FileSet  *source.FileSet
	// Diagnostics holds warnings and, when a run failed, the errors.
	Diagnostics *diag.Bag
	// Skipped lists files dropped in lenient mode.
	Skipped []string
	// Cached counts files served from the cache.
	Cached  int
	Timings pipeline.Timings

	formatter interface {
		Format([]catalog.Message) []byte
	}
}

// Format encodes the messages with the configured formatter.
func (r *Result) Format() []byte {
	return r.formatter.Format(r.Messages)
}

type fileMessage struct {
	catalog.Message
	span source.Span
}

type fileResult struct {
	messages []fileMessage
	diags    []diag.Diagnostic
	err      error
	cached   bool
	elapsed  time.Duration
}

// Run extracts messages from inputs. Files are processed by a bounded worker
// pool and merged in input order, so the result does not depend on
// scheduling. With Options.Throws the first fatal error stops the run and is
// returned together with the diagnostics gathered so far.
func Run(ctx context.Context, inputs []Input, opts Options) (*Result, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	span, ctx := trace.Stage(ctx, "extract")
	defer span.End("")

	res := &Result{
		FileSet:     source.NewFileSet(),
		Diagnostics: diag.NewBag(opts.MaxDiagnostics),
		formatter:   r.formatter,
	}

	// загрузка последовательная: FileSet заполняет одна горутина
	start := time.Now()
	ids := make([]source.FileID, len(inputs))
	loadErrs := make([]error, len(inputs))
	paths := make([]string, len(inputs))
	for i, in := range inputs {
		paths[i] = in.Path
		if in.Content != nil {
			ids[i] = res.FileSet.AddVirtual(in.Path, in.Content)
			continue
		}
		ids[i], loadErrs[i] = res.FileSet.Load(in.Path)
	}
	res.Timings.Add(pipeline.StageRead, time.Since(start))

	cache, err := openCache(opts.CacheDir, r.fingerprint())
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	pipeline.EmitQueued(opts.Progress, paths, pipeline.StageScan)
	w := &worker{r: r, fs: res.FileSet, cache: cache}
	results := make([]fileResult, len(inputs))
	done := make([]bool, len(inputs))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	start = time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(inputs))))
	for i, in := range inputs {
		g.Go(func() error {
			// после фатальной ошибки новые файлы не берём
			if err := gctx.Err(); err != nil {
				return err
			}
			pipeline.Emit(opts.Progress, in.Path, pipeline.StageScan, pipeline.StatusWorking, nil, 0)
			fr := w.process(gctx, in.Path, ids[i], loadErrs[i])
			results[i], done[i] = fr, true
			status := pipeline.StatusDone
			switch {
			case fr.err != nil:
				status = pipeline.StatusError
			case fr.cached:
				status = pipeline.StatusSkipped
			}
			pipeline.Emit(opts.Progress, in.Path, pipeline.StageScan, status, fr.err, fr.elapsed)
			if fr.err != nil && opts.Throws {
				return fr.err
			}
			return nil
		})
	}
	runErr := g.Wait()
	res.Timings.Add(pipeline.StageScan, time.Since(start))

	if runErr != nil {
		for i := range results {
			if done[i] {
				addAll(res.Diagnostics, results[i].diags)
			}
		}
		span.Set("error", runErr.Error())
		return res, runErr
	}

	start = time.Now()
	merge(res, inputs, results, opts.ExtractSourceLocation)
	res.Timings.Add(pipeline.StageMessages, time.Since(start))
	span.Count("files", len(inputs)).Count("messages", len(res.Messages))
	return res, nil
}

func addAll(bag *diag.Bag, ds []diag.Diagnostic) {
	for _, d := range ds {
		bag.Add(d)
	}
}

// merge выполняется одним писателем в порядке входных файлов.
// Политика дубликатов: последняя запись выигрывает, различие текста даёт предупреждение.
func merge(res *Result, inputs []Input, results []fileResult, withLocation bool) {
	index := make(map[string]int)
	var merged []fileMessage
	for i, fr := range results {
		path := inputs[i].Path
		if fr.err != nil {
			res.Skipped = append(res.Skipped, path)
			for _, d := range fr.diags {
				d.Severity = d.Severity.Lenient()
				res.Diagnostics.Add(d)
			}
			res.Diagnostics.Add(diag.NewAt(diag.SevWarning, diagCodeOf(fr.err), path,
				"file skipped: "+fr.err.Error()))
			continue
		}
		addAll(res.Diagnostics, fr.diags)
		if fr.cached {
			res.Cached++
		}
		for _, m := range fr.messages {
			m.File = path
			m.HasLocation = withLocation
			if !withLocation {
				m.File, m.Start, m.End = "", 0, 0
			}
			idx, seen := index[m.ID]
			if !seen {
				index[m.ID] = len(merged)
				merged = append(merged, m)
				continue
			}
			prev := merged[idx]
			if !prev.SameContent(m.Message) {
				d := diag.NewWarning(diag.DupMessageID, m.span,
					fmt.Sprintf("duplicate message id %q with different content; this declaration replaces the earlier one", m.ID)).
					WithNote(prev.span, "earlier declaration")
				res.Diagnostics.Add(d)
			}
			merged[idx] = m
		}
	}
	res.Messages = make([]catalog.Message, len(merged))
	for i, m := range merged {
		res.Messages[i] = m.Message
	}
	catalog.SortByID(res.Messages)
}

func diagCodeOf(err error) diag.Code {
	var se *SourceError
	var de *DescriptorError
	var me *MessageError
	switch {
	case errors.As(err, &se) && se.Err != nil:
		return diag.IOLoadFileError
	case errors.As(err, &se):
		return diag.SrcInfo
	case errors.As(err, &de):
		return diag.DscInfo
	case errors.As(err, &me):
		return diag.MsgInfo
	default:
		return diag.UnknownCode
	}
}

type worker struct {
	r     resolved
	fs    *source.FileSet
	cache *diskCache
}

func (w *worker) process(ctx context.Context, path string, id source.FileID, loadErr error) (fr fileResult) {
	start := time.Now()
	defer func() { fr.elapsed = time.Since(start) }()

	span, _ := trace.File(ctx, path)
	defer func() {
		span.Count("messages", len(fr.messages))
		if fr.cached {
			span.Set("cache", "hit")
		}
		span.End("")
	}()

	if loadErr != nil {
		return fileResult{
			err:   &SourceError{Path: path, Err: loadErr},
			diags: []diag.Diagnostic{diag.NewAt(diag.SevError, diag.IOLoadFileError, path, "failed to load file: "+loadErr.Error())},
		}
	}
	file := w.fs.Get(id)
	jsx := jsxEnabled(path)

	if msgs, ok := w.cache.get(file.Hash, jsx); ok {
		for i := range msgs {
			sp, err := spanOf(id, msgs[i].Start, msgs[i].End)
			if err != nil {
				ok = false
				break
			}
			msgs[i].span = sp
		}
		if ok {
			return fileResult{messages: msgs, cached: true}
		}
	}

	bag := diag.NewBag(w.r.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	astFile := parser.ParseFile(file, parser.Options{JSX: jsx, Reporter: reporter})
	if bag.HasErrors() {
		return fileResult{diags: bag.Items(), err: &SourceError{Path: path, Diagnostics: bag.Items()}}
	}

	scanned := scanner.Scan(astFile, w.r.scanner)
	scanned.Report(reporter)
	if scanned.HasErrors() {
		var errs []*scanner.ShapeError
		for _, e := range scanned.Errors {
			if e.Severity() == diag.SevError {
				errs = append(errs, e)
			}
		}
		return fileResult{diags: bag.Items(), err: &DescriptorError{Path: path, Errors: errs}}
	}

	var firstErr error
	for _, d := range scanned.Descriptors {
		m, err := w.message(path, d)
		if err != nil {
			var me *MessageError
			if !errors.As(err, &me) {
				return fileResult{diags: bag.Items(), err: err}
			}
			// в мягком режиме сообщение выбрасывается, файл остаётся
			sev := diag.SevWarning
			if w.r.Throws {
				sev = diag.SevError
			}
			bag.Add(me.Diagnostic(sev))
			if firstErr == nil && w.r.Throws {
				firstErr = me
			}
			continue
		}
		fr.messages = append(fr.messages, m)
	}
	fr.diags = bag.Items()
	fr.err = firstErr
	if firstErr == nil && bag.Len() == 0 {
		if err := w.cache.put(file.Hash, jsx, fr.messages); err != nil {
			span.Point("cache-write-failed", err.Error())
		}
	}
	return fr
}

// message assigns the id, validates the message and flattens it on request.
func (w *worker) message(path string, d scanner.Descriptor) (fileMessage, error) {
	id := w.r.assigner.Assign(d.ID, d.DefaultMessage, d.Description, d.HasDescription)
	m := fileMessage{
		Message: catalog.Message{
			ID:             id,
			DefaultMessage: d.DefaultMessage,
			Description:    d.Description,
			HasDescription: d.HasDescription,
			Start:          int(d.Span.Start),
			End:            int(d.Span.End),
			Meta:           d.Meta,
		},
		span: d.Span,
	}
	nodes, err := icu.Parse(d.DefaultMessage, icu.Options{})
	if err != nil {
		var se *icu.SyntaxError
		if !errors.As(err, &se) {
			return fileMessage{}, err
		}
		return fileMessage{}, &MessageError{Path: path, ID: id, Span: d.Span, Err: se}
	}
	if w.r.Flatten && icu.HasSelector(nodes) {
		m.DefaultMessage = icu.Print(icu.Flatten(nodes))
	}
	return m, nil
}

func spanOf(id source.FileID, start, end int) (source.Span, error) {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return source.Span{}, err
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		return source.Span{}, err
	}
	return source.Span{File: id, Start: s, End: e}, nil
}

// jsxEnabled: в .ts/.mts/.cts "<T>x" это приведение типа, JSX там нет.
func jsxEnabled(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return false
	default:
		return true
	}
}
