package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"intlc/internal/diag"
	"intlc/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.severity(d.Severity).Sprint(d.Severity.String())
	code := p.code.Sprint(d.Code.ID())

	if !d.HasSpan() || !known(fs, d.Primary) {
		loc := formatPlainPath(d.Path, fs, opts.PathMode)
		if loc == "" {
			fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s %s: %s\n", p.path.Sprint(loc), sev, code, d.Message)
		}
		return
	}

	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", formatFilePath(file, fs, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s: %s %s: %s\n", p.path.Sprint(loc), sev, code, d.Message)
	snippet(w, file, start, end, opts, p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		if !known(fs, n.Span) {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			continue
		}
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			formatFilePath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
	}
}

// snippet печатает строку span'а с контекстом и подчёркиванием.
// Многострочный span подчёркивается до конца первой строки.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts, p palette) {
	first := uint32(1)
	if ctx := uint32(max(opts.Context, 0)); start.Line > ctx {
		first = start.Line - ctx
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := expandLine(f.GetLine(ln))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	pad := runewidth.StringWidth(expandLine(line[:from]))
	width := max(runewidth.StringWidth(expandLine(line[from:max(from, to)])), 1)
	if opts.Width > 0 && pad >= int(opts.Width) {
		return
	}
	marks := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(marks))
}

// expandLine заменяет табы на 4 пробела, чтобы каретка совпала с текстом.
func expandLine(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// Summary prints a one-line count of errors and warnings, or nothing when
// the bag holds neither.
func Summary(w io.Writer, bag *diag.Bag, colorize bool) {
	errs, warns := bag.Count(diag.SevError), bag.Count(diag.SevWarning)
	if errs == 0 && warns == 0 {
		return
	}
	p := newPalette(colorize)
	var parts []string
	if errs > 0 {
		parts = append(parts, p.err.Sprint(plural(errs, "error")))
	}
	if warns > 0 {
		parts = append(parts, p.warn.Sprint(plural(warns, "warning")))
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
