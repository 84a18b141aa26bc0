package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"intlc/internal/config"
	"intlc/internal/diag"
	"intlc/internal/diagfmt"
	"intlc/internal/observ"
	"intlc/internal/source"
	"intlc/internal/trace"
)

// globals holds the persistent flags and the project configuration of one run.
type globals struct {
	color   bool
	quiet   bool
	timings bool
	maxDiag int
	// pretty, short или json
	diagFormat string
	config     *config.File
	timer      *observ.Timer
	cleanup    func()
}

var runGlobals = map[*cobra.Command]*globals{}

func setupRun(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	colorMode, _ := flags.GetString("color")
	quiet, _ := flags.GetBool("quiet")
	timings, _ := flags.GetBool("timings")
	maxDiag, _ := flags.GetInt("max-diagnostics")
	configPath, _ := flags.GetString("config")
	diagFormat, _ := flags.GetString("diagnostics-format")

	colorize, err := resolveColor(colorMode, os.Stderr)
	if err != nil {
		return err
	}
	if maxDiag < 0 {
		return fmt.Errorf("--max-diagnostics must not be negative")
	}
	diagFormat = strings.ToLower(diagFormat)
	switch diagFormat {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("invalid --diagnostics-format %q (expected pretty|short|json)", diagFormat)
	}

	g := &globals{
		color:   colorize,
		quiet:   quiet,
		timings: timings,
		maxDiag: maxDiag,
		timer:   observ.NewTimer(),

		diagFormat: diagFormat,
	}
	if configPath != "" {
		g.config, err = config.Load(configPath)
	} else {
		g.config, err = config.Discover(".")
	}
	if err != nil {
		return reportConfigError(cmd.ErrOrStderr(), err, colorize)
	}

	stopTracing, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		stopTracing()
		return err
	}
	g.cleanup = func() {
		stopProfiling()
		stopTracing()
	}
	runGlobals[cmd] = g
	return nil
}

// withGlobals adapts a command body to cobra.RunE. The body always runs
// between setupRun and teardown, also when it fails.
func withGlobals(body func(cmd *cobra.Command, args []string, g *globals) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		g := globalsOf(cmd)
		err := body(cmd, args, g)
		teardown(cmd, g, err)
		return err
	}
}

func teardown(cmd *cobra.Command, g *globals, runErr error) {
	if g.timings {
		fmt.Fprint(cmd.ErrOrStderr(), g.timer.Summary())
	}
	if runErr != nil {
		// на уровне error события копятся в кольце и выводятся только при сбое
		if err := trace.DumpOnError(trace.FromContext(cmd.Context())); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
		}
	}
	if g.cleanup != nil {
		g.cleanup()
	}
	delete(runGlobals, cmd)
}

// globalsOf returns the run state prepared by setupRun.
func globalsOf(cmd *cobra.Command) *globals {
	if g := runGlobals[cmd]; g != nil {
		return g
	}
	def := config.Default()
	return &globals{config: &def, timer: observ.NewTimer(), maxDiag: 100}
}

func reportConfigError(w io.Writer, err error, colorize bool) error {
	var ce *config.Error
	if !errors.As(err, &ce) {
		return err
	}
	bag := diag.NewBag(1)
	bag.Add(ce.Diagnostic())
	diagfmt.Pretty(w, bag, nil, diagfmt.PrettyOpts{Color: colorize})
	return errFailed
}

// resolveColor разбирает --color; auto включает цвет только на терминале.
func resolveColor(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(f), nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	fd, err := safecast.Conv[int](f.Fd())
	if err != nil {
		return false
	}
	return term.IsTerminal(fd)
}

// printDiagnostics выводит диагностики в stderr; --quiet оставляет только ошибки.
func printDiagnostics(cmd *cobra.Command, g *globals, diags []diag.Diagnostic, fs *source.FileSet) {
	bag := diag.NewBag(g.maxDiag)
	for _, d := range diags {
		if g.quiet && d.Severity != diag.SevError {
			continue
		}
		bag.Add(d)
	}
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	w := cmd.ErrOrStderr()
	switch g.diagFormat {
	case "short":
		fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), fs, true))
	case "json":
		if err := diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		}); err != nil {
			fmt.Fprintf(w, "diagnostics: %v\n", err)
		}
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     g.color,
			Context:   1,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
		})
		if !g.quiet {
			diagfmt.Summary(w, bag, g.color)
		}
	}
}

// pick возвращает значение флага, если он задан явно, иначе значение из intlc.toml.
func pick[T any](cmd *cobra.Command, name string, flagValue, fileValue T) T {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return fileValue
}
