package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"intlc/internal/extract"
	"intlc/internal/jsonx"
	"intlc/internal/pipeline"
)

type extractFlags struct {
	format                   string
	inFile                   string
	outFile                  string
	idInterpolationPattern   string
	extractSourceLocation    bool
	additionalComponentNames []string
	additionalFunctionNames  []string
	ignore                   []string
	throws                   bool
	pragma                   string
	preserveWhitespace       bool
	flatten                  bool
	jobs                     int
	cacheDir                 string
	progress                 string
}

func newExtractCmd() *cobra.Command {
	var f extractFlags
	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract message descriptors from source files",
		Long: `Extract finds defineMessage(s) calls, FormattedMessage elements and the
configured additional names in JS/TS/JSX sources and prints the collected
messages as JSON. Without files, source text is read from standard input.`,
	}
	cmd.RunE = withGlobals(func(cmd *cobra.Command, args []string, g *globals) error {
		return runExtract(cmd, args, g, &f)
	})

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "", "output formatter (default|simple|transifex|smartling|crowdin|lokalise)")
	flags.StringVar(&f.inFile, "in-file", "", "file with a whitespace separated list of input files")
	flags.StringVar(&f.outFile, "out-file", "", "write the result to this file instead of stdout")
	flags.StringVar(&f.idInterpolationPattern, "id-interpolation-pattern", "[sha512:contenthash:base64:6]", "pattern for ids of messages declared without one")
	flags.BoolVar(&f.extractSourceLocation, "extract-source-location", false, "include file, start and end of every declaration")
	flags.StringSliceVar(&f.additionalComponentNames, "additional-component-names", nil, "extra JSX components that declare messages")
	flags.StringSliceVar(&f.additionalFunctionNames, "additional-function-names", nil, "extra functions that declare messages")
	flags.StringSliceVar(&f.ignore, "ignore", nil, "glob patterns of files to skip")
	flags.BoolVar(&f.throws, "throws", false, "stop at the first invalid file or message")
	flags.StringVar(&f.pragma, "pragma", "", "comment tag carrying key:value metadata, e.g. intl-meta")
	flags.BoolVar(&f.preserveWhitespace, "preserve-whitespace", false, "keep whitespace of messages as written")
	flags.BoolVar(&f.flatten, "flatten", false, "hoist selectors so each option holds a full sentence")
	flags.IntVar(&f.jobs, "jobs", 0, "number of files processed in parallel (0 = GOMAXPROCS)")
	flags.StringVar(&f.cacheDir, "cache-dir", "", "directory for the per-file extraction cache")
	flags.StringVar(&f.progress, "progress", "auto", "progress view (auto|on|off)")
	return cmd
}

func (f *extractFlags) options(cmd *cobra.Command, g *globals) extract.Options {
	fc := g.config.Extract
	return extract.Options{
		IDInterpolationPattern:   pick(cmd, "id-interpolation-pattern", f.idInterpolationPattern, fc.IDInterpolationPattern),
		ExtractSourceLocation:    pick(cmd, "extract-source-location", f.extractSourceLocation, fc.ExtractSourceLocation),
		AdditionalComponentNames: pick(cmd, "additional-component-names", f.additionalComponentNames, fc.AdditionalComponentNames),
		AdditionalFunctionNames:  pick(cmd, "additional-function-names", f.additionalFunctionNames, fc.AdditionalFunctionNames),
		Throws:                   pick(cmd, "throws", f.throws, fc.Throws),
		Pragma:                   pick(cmd, "pragma", f.pragma, fc.Pragma),
		PreserveWhitespace:       pick(cmd, "preserve-whitespace", f.preserveWhitespace, fc.PreserveWhitespace),
		Flatten:                  pick(cmd, "flatten", f.flatten, fc.Flatten),
		Format:                   pick(cmd, "format", f.format, fc.Format),
		Jobs:                     pick(cmd, "jobs", f.jobs, fc.Jobs),
		CacheDir:                 pick(cmd, "cache-dir", f.cacheDir, fc.CacheDir),
		MaxDiagnostics:           g.maxDiag,
	}
}

func runExtract(cmd *cobra.Command, args []string, g *globals, f *extractFlags) error {
	opts := f.options(cmd, g)
	ignore := pick(cmd, "ignore", f.ignore, g.config.Extract.Ignore)

	files, err := collectFiles(args, f.inFile, ignoreSource(cmd, g), ignore)
	if err != nil {
		return reportConfigError(cmd.ErrOrStderr(), err, g.color)
	}
	var inputs []extract.Input
	if len(files) == 0 {
		if len(args) > 0 || f.inFile != "" {
			return errors.New("every input file is ignored")
		}
		in := cmd.InOrStdin()
		if file, ok := in.(*os.File); ok && isTerminal(file) {
			return errors.New("no input files; pass files, --in-file or pipe source text to stdin")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		inputs = []extract.Input{{Path: extract.StdinName, Content: data}}
	} else {
		inputs = extract.FileInputs(files)
	}

	progress, err := useProgress(f.progress, g.quiet)
	if err != nil {
		return err
	}

	phase := g.timer.Begin("extract")
	var res *extract.Result
	runErr := runWithProgress(progress && len(files) > 1, "extract", files, func(sink pipeline.ProgressSink) error {
		opts.Progress = sink
		var err error
		res, err = extract.Run(cmd.Context(), inputs, opts)
		return err
	})
	if res != nil {
		g.timer.End(phase, strconv.Itoa(len(res.Messages))+" messages")
		g.timer.RecordStages(res.Timings, pipeline.StageRead, pipeline.StageScan, pipeline.StageMessages)
		printDiagnostics(cmd, g, res.Diagnostics.Items(), res.FileSet)
	}
	if runErr != nil {
		if res != nil && res.Diagnostics.HasErrors() {
			// причина уже выведена диагностиками
			return errFailed
		}
		return runErr
	}

	write := g.timer.Begin("write")
	defer g.timer.End(write, "")
	data, err := jsonx.Indent(res.Format())
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), f.outFile, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
