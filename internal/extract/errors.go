package extract

import (
	"fmt"

	"intlc/internal/diag"
	"intlc/internal/icu"
	"intlc/internal/scanner"
	"intlc/internal/source"
)

// SourceError is a file that could not be read or is not valid source.
type SourceError struct {
	Path        string
	Err         error // read error; nil for syntax errors
	Diagnostics []diag.Diagnostic
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	if len(e.Diagnostics) > 0 {
		return fmt.Sprintf("%s: syntax error: %s", e.Path, e.Diagnostics[0].Message)
	}
	return e.Path + ": syntax error"
}

func (e *SourceError) Unwrap() error { return e.Err }

// DescriptorError lists the message declarations of a file whose fields
// are not string literals.
type DescriptorError struct {
	Path   string
	Errors []*scanner.ShapeError
}

func (e *DescriptorError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %v", e.Path, e.Errors[0])
	}
	return fmt.Sprintf("%s: %v (and %d more)", e.Path, e.Errors[0], len(e.Errors)-1)
}

// MessageError is an extracted defaultMessage that is not valid
// MessageFormat.
type MessageError struct {
	Path string
	ID   string
	Span source.Span
	Err  *icu.SyntaxError
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("%s: message %q: %v", e.Path, e.ID, e.Err)
}

func (e *MessageError) Unwrap() error { return e.Err }

// Diagnostic converts the error into a diagnostic anchored at the descriptor.
func (e *MessageError) Diagnostic(sev diag.Severity) diag.Diagnostic {
	return diag.New(sev, diag.MessageCode(uint8(e.Err.Kind)), e.Span,
		fmt.Sprintf("message %q: %s at offset %d", e.ID, e.Err.Message, e.Err.Offset))
}
