package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"intlc/internal/version"
)

// errFailed завершает процесс с кодом 1 без дополнительного сообщения:
// причина уже выведена (диагностики, отчёт verify).
var errFailed = errors.New("failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "intlc",
		Short: "Extract, compile and verify ICU MessageFormat catalogs",
		Long: `intlc finds message declarations in JavaScript and TypeScript sources,
assigns stable ids, and turns translated catalogs into runtime-ready JSON.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupRun,
	}

	root.AddCommand(newExtractCmd())
	root.AddCommand(newCompileCmd())
	root.AddCommand(newCompileFolderCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "print errors only")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to keep (0 = unlimited)")
	root.PersistentFlags().String("diagnostics-format", "pretty", "diagnostics format (pretty|short|json)")
	root.PersistentFlags().String("config", "", "path to intlc.toml (default: search upward from the working directory)")
	root.PersistentFlags().String("trace", "", "write trace events to file ('-' for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|stage|file)")
	root.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	root.PersistentFlags().Duration("trace-heartbeat", 0, "report open files at this interval (0 = disabled)")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
	return root
}

// main builds the CLI and executes it. Any error exits with status 1.
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
