package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intlc/internal/pipeline"
	"intlc/internal/verify"
)

type verifyFlags struct {
	sourceLocale       string
	ignore             []string
	missingKeys        bool
	extraKeys          bool
	structuralEquality bool
	ignoreTag          bool
	reportFormat       string
	jobs               int
	progress           string
}

func newVerifyCmd() *cobra.Command {
	var f verifyFlags
	cmd := &cobra.Command{
		Use:   "verify <files...>",
		Short: "Check translated catalogs against the source locale",
		Long: `Verify compares every <locale>.json with the catalog of the source locale.
It reports missing keys, extra keys and translations whose arguments,
selectors or tags differ from the source message.`,
		Args: cobra.MinimumNArgs(1),
	}
	cmd.RunE = withGlobals(func(cmd *cobra.Command, args []string, g *globals) error {
		return runVerify(cmd, args, g, &f)
	})

	flags := cmd.Flags()
	flags.StringVar(&f.sourceLocale, "source-locale", "", "locale whose catalog is the reference (required)")
	flags.StringSliceVar(&f.ignore, "ignore", nil, "glob patterns of files to skip")
	flags.BoolVar(&f.missingKeys, "missing-keys", true, "report ids missing from a translation")
	flags.BoolVar(&f.extraKeys, "extra-keys", false, "report ids that only exist in a translation")
	flags.BoolVar(&f.structuralEquality, "structural-equality", true, "report translations with a different message structure")
	flags.BoolVar(&f.ignoreTag, "ignore-tag", false, "treat '<' and '>' as plain text")
	flags.StringVar(&f.reportFormat, "report-format", "pretty", "report format (pretty|json)")
	flags.IntVar(&f.jobs, "jobs", 0, "number of catalogs checked in parallel (0 = GOMAXPROCS)")
	flags.StringVar(&f.progress, "progress", "off", "progress view (auto|on|off)")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string, g *globals, f *verifyFlags) error {
	fc := g.config.Verify
	opts := verify.Options{
		SourceLocale:       pick(cmd, "source-locale", f.sourceLocale, fc.SourceLocale),
		MissingKeys:        pick(cmd, "missing-keys", f.missingKeys, fc.MissingKeys),
		ExtraKeys:          pick(cmd, "extra-keys", f.extraKeys, fc.ExtraKeys),
		StructuralEquality: pick(cmd, "structural-equality", f.structuralEquality, fc.StructuralEquality),
		IgnoreTag:          f.ignoreTag,
		Jobs:               f.jobs,
	}
	if opts.SourceLocale == "" {
		return errors.New("--source-locale is required")
	}
	format := strings.ToLower(f.reportFormat)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported --report-format %q (must be pretty or json)", f.reportFormat)
	}

	files, err := collectFiles(args, "", ignoreSource(cmd, g), pick(cmd, "ignore", f.ignore, fc.Ignore))
	if err != nil {
		return reportConfigError(cmd.ErrOrStderr(), err, g.color)
	}
	if len(files) == 0 {
		return errors.New("every input file is ignored")
	}
	progress, err := useProgress(f.progress, g.quiet)
	if err != nil {
		return err
	}

	phase := g.timer.Begin("verify")
	var res *verify.Result
	runErr := runWithProgress(progress && len(files) > 2, "verify", files, func(sink pipeline.ProgressSink) error {
		opts.Progress = sink
		var err error
		res, err = verify.Paths(cmd.Context(), files, opts)
		return err
	})
	g.timer.End(phase, "")
	if runErr != nil {
		if ds := errorDiagnostics(runErr); ds != nil {
			printDiagnostics(cmd, g, ds, nil)
			return errFailed
		}
		return runErr
	}

	printDiagnostics(cmd, g, res.Diagnostics, nil)
	out := cmd.OutOrStdout()
	if format == "json" {
		data, err := res.MarshalJSON()
		if err != nil {
			return err
		}
		if err := writeOutput(out, "", data); err != nil {
			return err
		}
	} else if err := verify.WriteText(out, res, g.color); err != nil {
		return err
	}
	if res.Failed() {
		return errFailed
	}
	return nil
}
