// Package diag defines the diagnostic model shared by extraction, compilation
// and verification.
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: numeric identifier with a stable string form such as MSG3008 (codes.go).
//   - Message: short human oriented text.
//   - Primary: source.Span of the issue inside a FileSet, or Path when the
//     finding belongs to a catalog or config file that is not loaded as source.
//   - Notes: optional secondary spans.
//
// Producers emit through a Reporter (usually BagReporter over a Bag) or build
// values with New/NewError/NewAt. Rendering lives in internal/diagfmt.
//
// Code groups:
//
//	SRC1xxx  source file could not be tokenised or parsed
//	DSC2xxx  message descriptor has an unsupported shape
//	MSG3xxx  ICU message syntax
//	IO4xxx   reading or writing files
//	DUP5xxx  duplicate ids
//	VER6xxx  catalog verification
//	CFG7xxx  configuration
package diag
