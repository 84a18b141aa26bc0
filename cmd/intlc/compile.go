package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"intlc/internal/compile"
	"intlc/internal/diag"
)

type compileFlags struct {
	format       string
	outFile      string
	ast          bool
	skipErrors   bool
	pseudoLocale string
	ignoreTag    bool
}

func (f *compileFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "default", "formatter of the input catalogs (default|simple|transifex|smartling|crowdin|lokalise)")
	flags.BoolVar(&f.ast, "ast", false, "emit the message AST instead of canonical text")
	flags.BoolVar(&f.skipErrors, "skip-errors", false, "drop messages that fail to parse instead of failing")
	flags.StringVar(&f.pseudoLocale, "pseudo-locale", "", "emit a pseudo-localised catalog (xx-LS|xx-AC|xx-HA|en-XA|en-XB)")
	flags.BoolVar(&f.ignoreTag, "ignore-tag", false, "treat '<' and '>' as plain text")
}

func (f *compileFlags) options(cmd *cobra.Command, g *globals) compile.Options {
	fc := g.config.Compile
	return compile.Options{
		AST:          pick(cmd, "ast", f.ast, fc.AST),
		IgnoreTag:    pick(cmd, "ignore-tag", f.ignoreTag, fc.IgnoreTag),
		PseudoLocale: pick(cmd, "pseudo-locale", f.pseudoLocale, fc.PseudoLocale),
		SkipErrors:   pick(cmd, "skip-errors", f.skipErrors, fc.SkipErrors),
		Format:       pick(cmd, "format", f.format, fc.Format),
	}
}

func newCompileCmd() *cobra.Command {
	var f compileFlags
	cmd := &cobra.Command{
		Use:   "compile <files...>",
		Short: "Compile translated catalogs into runtime-ready JSON",
		Long: `Compile parses every message of the given catalogs and prints one catalog
keyed by id. Several files are merged; the same id with different messages
is an error.`,
		Args: cobra.MinimumNArgs(1),
	}
	cmd.RunE = withGlobals(func(cmd *cobra.Command, args []string, g *globals) error {
		return runCompile(cmd, args, g, &f)
	})
	f.register(cmd)
	cmd.Flags().StringVar(&f.outFile, "out-file", "", "write the result to this file instead of stdout")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string, g *globals, f *compileFlags) error {
	phase := g.timer.Begin("compile")
	res, err := compile.Paths(cmd.Context(), args, f.options(cmd, g))
	if err != nil {
		g.timer.End(phase, "failed")
		if ds := errorDiagnostics(err); ds != nil {
			printDiagnostics(cmd, g, ds, nil)
			return errFailed
		}
		return err
	}
	g.timer.End(phase, strconv.Itoa(res.Catalog.Len())+" messages")
	printDiagnostics(cmd, g, res.Diagnostics, nil)

	data, err := res.Output().MarshalJSON()
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), f.outFile, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if hasErrors(res.Diagnostics) {
		return errFailed
	}
	return nil
}

func hasErrors(ds []diag.Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}
