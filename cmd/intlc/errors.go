package main

import (
	"errors"

	"intlc/internal/catalog"
	"intlc/internal/compile"
	"intlc/internal/diag"
	"intlc/internal/verify"
)

// errorDiagnostics переводит известные ошибки в диагностики. Для прочих
// ошибок возвращает nil, и вызывающий печатает ошибку как есть.
func errorDiagnostics(err error) []diag.Diagnostic {
	var (
		me *compile.MessageError
		ce *compile.ConflictError
		fe *compile.FolderError
		de *catalog.DecodeError
		ve *verify.MissingSourceLocaleError
	)
	switch {
	case errors.As(err, &fe):
		var out []diag.Diagnostic
		for _, f := range fe.Failures {
			if ds := errorDiagnostics(f.Err); ds != nil {
				out = append(out, ds...)
				continue
			}
			out = append(out, diag.NewAt(diag.SevError, diag.IOWriteError, f.Path, f.Err.Error()))
		}
		return out
	case errors.As(err, &me):
		return []diag.Diagnostic{me.Diagnostic(diag.SevError)}
	case errors.As(err, &ce):
		return []diag.Diagnostic{ce.Diagnostic()}
	case errors.As(err, &de):
		return []diag.Diagnostic{diag.NewAt(diag.SevError, diag.IODecodeError, de.Path, de.Err.Error())}
	case errors.As(err, &ve):
		return []diag.Diagnostic{diag.NewAt(diag.SevError, diag.VerMissingSourceLocale, "", ve.Error())}
	}
	return nil
}
