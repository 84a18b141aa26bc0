package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intlc/internal/version"
)

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show intlc build information",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withGlobals(func(cmd *cobra.Command, _ []string, g *globals) error {
		info := version.Current()
		switch strings.ToLower(format) {
		case "pretty":
			_, err := fmt.Fprint(cmd.OutOrStdout(), info.Pretty(g.color))
			return err
		case "json":
			data, err := info.JSON()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), "", data)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	})
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
