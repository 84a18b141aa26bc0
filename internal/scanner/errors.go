package scanner

import (
	"fmt"

	"intlc/internal/diag"
	"intlc/internal/source"
)

// ShapeError reports a recognised message site whose fields are not plain
// string literals (DescriptorShapeError).
type ShapeError struct {
	Code  diag.Code
	Span  source.Span
	Field string
	Msg   string
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code.ID(), e.Field, e.Msg)
	}
	return fmt.Sprintf("[%s] %s", e.Code.ID(), e.Msg)
}

// Severity: всё, кроме нелитеральных полей, только предупреждения.
func (e *ShapeError) Severity() diag.Severity {
	switch e.Code {
	case diag.DscMissingMessage, diag.DscInvalidPragma, diag.DscInvalidArgument, diag.DscUnsupportedProperty:
		return diag.SevWarning
	default:
		return diag.SevError
	}
}

// Diagnostic converts the error into a diagnostic record.
func (e *ShapeError) Diagnostic() diag.Diagnostic {
	msg := e.Msg
	if e.Field != "" {
		msg = "`" + e.Field + "` " + e.Msg
	}
	return diag.New(e.Severity(), e.Code, e.Span, msg)
}
