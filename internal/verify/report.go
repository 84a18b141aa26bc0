package verify

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"intlc/internal/jsonx"
)

// WriteText renders reports for people. Colours are used when colorize is
// set; passing targets get one "ok" line.
func WriteText(w io.Writer, res *Result, colorize bool) error {
	okC := color.New(color.FgGreen, color.Bold)
	badC := color.New(color.FgRed, color.Bold)
	keyC := color.New(color.FgYellow)
	dimC := color.New(color.Faint)
	for _, c := range []*color.Color{okC, badC, keyC, dimC} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, rep := range res.Reports {
		header := fmt.Sprintf("%s -> %s", rep.SourceLocale, rep.TargetLocale)
		if rep.Empty() {
			if _, err := fmt.Fprintf(w, "%s %s\n", okC.Sprint("ok"), header); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s (%s)\n", badC.Sprint("FAIL"), header, dimC.Sprint(rep.TargetPath)); err != nil {
			return err
		}
		if len(rep.Missing) > 0 {
			fmt.Fprintf(w, "  missing keys (%d):\n", len(rep.Missing))
			for _, id := range rep.Missing {
				fmt.Fprintf(w, "    %s\n", keyC.Sprint(id))
			}
		}
		if len(rep.Extra) > 0 {
			fmt.Fprintf(w, "  extra keys (%d):\n", len(rep.Extra))
			for _, id := range rep.Extra {
				fmt.Fprintf(w, "    %s\n", keyC.Sprint(id))
			}
		}
		if len(rep.Mismatches) > 0 {
			fmt.Fprintf(w, "  structural mismatches (%d):\n", len(rep.Mismatches))
			for _, m := range rep.Mismatches {
				fmt.Fprintf(w, "    %s: %s\n", keyC.Sprint(m.ID), m.Diff)
				fmt.Fprintf(w, "      %s %s\n", dimC.Sprint("source:"), m.SourceShape)
				if m.TargetShape != "" {
					fmt.Fprintf(w, "      %s %s\n", dimC.Sprint("target:"), m.TargetShape)
				}
			}
		}
	}
	return nil
}

// MarshalJSON encodes the reports as an indented JSON array.
func (r *Result) MarshalJSON() ([]byte, error) {
	var b jsonx.Builder
	b.BeginArray()
	for _, rep := range r.Reports {
		b.BeginObject().
			Key("sourceLocale").String(rep.SourceLocale).
			Key("targetLocale").String(rep.TargetLocale).
			Key("file").String(rep.TargetPath)
		list := func(key string, items []string) {
			b.Key(key).BeginArray()
			for _, s := range items {
				b.String(s)
			}
			b.EndArray()
		}
		list("missing", rep.Missing)
		list("extra", rep.Extra)
		b.Key("structuralMismatches").BeginArray()
		for _, m := range rep.Mismatches {
			b.BeginObject().
				Key("id").String(m.ID).
				Key("sourceShape").String(m.SourceShape).
				Key("targetShape").String(m.TargetShape).
				Key("diff").String(m.Diff).
				EndObject()
		}
		b.EndArray()
		b.EndObject()
	}
	b.EndArray()
	return b.Indented()
}
