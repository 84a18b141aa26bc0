package diag

import "strings"

// Severity orders diagnostics; only SevError fails a command.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// String is the upper-case form printed by the pretty formatter.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return strings.ToUpper(severityNames[s])
	}
	return "UNKNOWN"
}

// Label is the lower-case form used in short and JSON output. Unknown values
// print as "info".
func (s Severity) Label() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return severityNames[SevInfo]
}

// Lenient caps s at SevWarning. Lenient extraction reports the problems of a
// skipped file this way.
func (s Severity) Lenient() Severity {
	return min(s, SevWarning)
}
