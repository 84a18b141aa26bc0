package compile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"intlc/internal/catalog"
	"intlc/internal/diag"
	"intlc/internal/pipeline"
	"intlc/internal/trace"
)

// FolderOptions configure a folder compile.
type FolderOptions struct {
	Options
	// Jobs bounds the number of locales compiled at once (0 = GOMAXPROCS).
	Jobs int
	// Progress receives per-locale events; may be nil.
	Progress pipeline.ProgressSink
}

// LocaleResult is the outcome for one "<locale>.json" file.
type LocaleResult struct {
	Locale string
	Input  string
	Output string
	Result *Result // nil when Err is set
	Err    error
}

// ListCatalogs returns the sorted "*.json" files directly inside folder.
func ListCatalogs(folder string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(folder, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no JSON file found in %s", folder)
	}
	sort.Strings(files)
	return files, nil
}

// Folder compiles every "<locale>.json" in folder into outFolder under the
// same name. Locales are independent: a failing locale does not stop the
// others, and every successful locale is written. When any locale failed the
// returned error is a *FolderError.
func Folder(ctx context.Context, folder, outFolder string, opts FolderOptions) ([]*LocaleResult, error) {
	if _, err := opts.resolve(); err != nil {
		return nil, err
	}
	inputs, err := ListCatalogs(folder)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outFolder, 0o755); err != nil {
		return nil, fmt.Errorf("create output folder: %w", err)
	}

	span, ctx := trace.Stage(ctx, "compile-folder")
	defer span.End(folder)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	pipeline.EmitQueued(opts.Progress, inputs, pipeline.StageCompile)

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*LocaleResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))
	for i, path := range inputs {
		g.Go(func() error {
			results[i] = compileLocale(gctx, path, outFolder, opts)
			// ошибка локали не отменяет остальные
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var failed []LocaleFailure
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, LocaleFailure{Locale: r.Locale, Path: r.Input, Err: r.Err})
		}
	}
	if len(failed) > 0 {
		return results, &FolderError{Failures: failed}
	}
	return results, nil
}

func compileLocale(ctx context.Context, path, outFolder string, opts FolderOptions) *LocaleResult {
	lr := &LocaleResult{
		Locale: catalog.LocaleOf(path),
		Input:  path,
		Output: filepath.Join(outFolder, filepath.Base(path)),
	}
	if err := ctx.Err(); err != nil {
		lr.Err = err
		return lr
	}
	span, ctx := trace.File(ctx, path)
	span.Set("locale", lr.Locale)
	defer span.End("")

	start := time.Now()
	pipeline.Emit(opts.Progress, path, pipeline.StageCompile, pipeline.StatusWorking, nil, 0)
	fail := func(stage pipeline.Stage, err error) *LocaleResult {
		lr.Err = err
		lr.Result = nil
		pipeline.Emit(opts.Progress, path, stage, pipeline.StatusError, err, time.Since(start))
		return lr
	}

	res, err := Paths(ctx, []string{path}, opts.Options)
	if err != nil {
		return fail(pipeline.StageCompile, err)
	}
	if _, err := catalog.CanonicalLocale(lr.Locale); err != nil {
		res.Diagnostics = append(res.Diagnostics, diag.NewAt(diag.SevWarning, diag.VerInvalidLocaleName, path,
			fmt.Sprintf("%q is not a valid locale name: %v", lr.Locale, err)))
	}
	lr.Result = res

	data, err := res.Output().MarshalJSON()
	if err != nil {
		return fail(pipeline.StageWrite, err)
	}
	if err := os.WriteFile(lr.Output, data, 0o644); err != nil {
		return fail(pipeline.StageWrite, fmt.Errorf("write %s: %w", lr.Output, err))
	}
	pipeline.Emit(opts.Progress, path, pipeline.StageWrite, pipeline.StatusDone, nil, time.Since(start))
	return lr
}
