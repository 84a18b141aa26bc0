package diag

import (
	"intlc/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Path задаёт файл для диагностик без исходного span (каталоги, конфиг).
	// Если Path пуст, место берётся из Primary.
	Path  string
	Notes []Note
}

// HasSpan reports whether the diagnostic points into a FileSet.
func (d Diagnostic) HasSpan() bool {
	return d.Path == ""
}
