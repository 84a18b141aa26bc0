package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"intlc/internal/compile"
	"intlc/internal/diag"
	"intlc/internal/pipeline"
)

func newCompileFolderCmd() *cobra.Command {
	var (
		f        compileFlags
		jobs     int
		progress string
	)
	cmd := &cobra.Command{
		Use:   "compile-folder <folder> <outFolder>",
		Short: "Compile every <locale>.json of a folder",
		Long: `Compile-folder compiles each <locale>.json in folder into outFolder under
the same name. Locales are independent: a broken locale is reported and the
others are still written.`,
		Args: cobra.ExactArgs(2),
	}
	cmd.RunE = withGlobals(func(cmd *cobra.Command, args []string, g *globals) error {
		opts := compile.FolderOptions{
			Options: f.options(cmd, g),
			Jobs:    pick(cmd, "jobs", jobs, g.config.Compile.Jobs),
		}
		enabled, err := useProgress(progress, g.quiet)
		if err != nil {
			return err
		}
		var files []string
		if enabled {
			// список нужен UI заранее; ошибку покажет сам Folder
			files, _ = compile.ListCatalogs(args[0])
		}

		phase := g.timer.Begin("compile-folder")
		var results []*compile.LocaleResult
		runErr := runWithProgress(enabled && len(files) > 1, "compile-folder", files, func(sink pipeline.ProgressSink) error {
			opts.Progress = sink
			var err error
			results, err = compile.Folder(cmd.Context(), args[0], args[1], opts)
			return err
		})
		g.timer.End(phase, strconv.Itoa(len(results))+" locales")

		var diags []diag.Diagnostic
		written := 0
		for _, r := range results {
			if r != nil && r.Result != nil {
				diags = append(diags, r.Result.Diagnostics...)
				written++
			}
		}
		if runErr != nil {
			ds := errorDiagnostics(runErr)
			if ds == nil {
				printDiagnostics(cmd, g, diags, nil)
				return runErr
			}
			diags = append(diags, ds...)
		}
		printDiagnostics(cmd, g, diags, nil)
		if !g.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "compiled %d of %d locales into %s\n", written, len(results), args[1])
		}
		if runErr != nil || hasErrors(diags) {
			return errFailed
		}
		return nil
	})
	f.register(cmd)
	cmd.Flags().IntVar(&jobs, "jobs", 0, "number of locales compiled in parallel (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&progress, "progress", "auto", "progress view (auto|on|off)")
	return cmd
}
