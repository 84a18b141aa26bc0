package verify

import (
	"fmt"
	"strings"
)

// MissingSourceLocaleError is returned when none of the inputs is the source
// locale's catalog. Verification cannot proceed without it.
type MissingSourceLocaleError struct {
	Locale    string
	Available []string
}

func (e *MissingSourceLocaleError) Error() string {
	return fmt.Sprintf("missing source locale %q: expected a file named %s.json among [%s]",
		e.Locale, e.Locale, strings.Join(e.Available, ", "))
}
