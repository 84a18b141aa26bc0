package compile

import (
	"fmt"
	"strings"

	"intlc/internal/diag"
	"intlc/internal/icu"
)

// MessageError is a message that failed to parse.
type MessageError struct {
	File    string
	ID      string
	Message string
	Err     *icu.SyntaxError
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("%s: message %q: %v", e.File, e.ID, e.Err)
}

func (e *MessageError) Unwrap() error { return e.Err }

// Diagnostic converts the error into a diagnostic of the given severity.
func (e *MessageError) Diagnostic(sev diag.Severity) diag.Diagnostic {
	return diag.NewAt(sev, diag.MessageCode(uint8(e.Err.Kind)), e.File,
		fmt.Sprintf("message %q: %s at offset %d", e.ID, e.Err.Message, e.Err.Offset))
}

// ConflictError reports one id translated differently in two input files.
type ConflictError struct {
	ID       string
	Files    [2]string
	Messages [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting translation for id %q: %q in %s, %q in %s",
		e.ID, e.Messages[0], e.Files[0], e.Messages[1], e.Files[1])
}

// Diagnostic converts the error into an error diagnostic.
func (e *ConflictError) Diagnostic() diag.Diagnostic {
	return diag.NewAt(diag.SevError, diag.DupConflictingTranslation, e.Files[1],
		fmt.Sprintf("id %q conflicts with %s", e.ID, e.Files[0]))
}

// LocaleFailure is one failed locale of a folder compile.
type LocaleFailure struct {
	Locale string
	Path   string
	Err    error
}

// FolderError aggregates the locales that failed in a folder compile. The
// other locales were written.
type FolderError struct {
	Failures []LocaleFailure
}

func (e *FolderError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %v", f.Locale, f.Err)
	}
	return fmt.Sprintf("%d locale(s) failed to compile: %s", len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes the per-locale errors to errors.Is/As.
func (e *FolderError) Unwrap() []error {
	out := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f.Err
	}
	return out
}
