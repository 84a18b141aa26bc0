package parser

import (
	"fmt"

	"intlc/internal/diag"
	"intlc/internal/source"
)

// reporterFunc позволяет передать метод парсера лексеру как diag.Reporter,
// чтобы ошибки лексера учитывались в общем лимите.
type reporterFunc func(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note)

func (f reporterFunc) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	f(code, sev, primary, msg, notes)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		p.errors++
	}
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.MaxErrors != 0 && sev == diag.SevError && p.errors > p.opts.MaxErrors {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
}

func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	p.report(code, diag.SevError, sp, fmt.Sprintf(format, args...), nil)
}
