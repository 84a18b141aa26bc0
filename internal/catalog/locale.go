package catalog

import (
	"golang.org/x/text/language"

	"intlc/internal/pseudo"
)

// CanonicalLocale validates a BCP 47 locale name and returns its canonical
// form. Pseudo-locale names are accepted as they are.
func CanonicalLocale(name string) (string, error) {
	if l, err := pseudo.Lookup(name); err == nil {
		return string(l), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}
