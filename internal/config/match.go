package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"intlc/internal/diag"
)

// FlagSource names the origin of ignore patterns given on the command line.
const FlagSource = "--ignore"

// ValidateIgnore checks glob syntax of every pattern. The error is an
// *Error with diag.CfgInvalidIgnore attributed to origin.
func ValidateIgnore(origin string, patterns []string) error {
	for _, pat := range patterns {
		if pat == "" {
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			return &Error{
				Path: origin,
				Code: diag.CfgInvalidIgnore,
				Err:  fmt.Errorf("ignore pattern %q: %w", pat, doublestar.ErrBadPattern),
			}
		}
	}
	return nil
}

// Ignored reports whether file matches one of the glob patterns. Patterns
// use doublestar syntax ("**" spans directories, "{a,b}" alternates);
// a pattern without '/' is matched against the base name.
func Ignored(file string, patterns []string) (bool, error) {
	file = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(file)), "./")
	for _, pat := range patterns {
		if pat == "" {
			continue
		}
		name := file
		if !strings.Contains(pat, "/") {
			name = path.Base(file)
		}
		ok, err := doublestar.Match(pat, name)
		if err != nil {
			return false, fmt.Errorf("ignore pattern %q: %w", pat, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Filter drops files matched by patterns, keeping the order of the rest.
// Patterns are validated first; origin names them in the returned *Error.
func Filter(origin string, files, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return files, nil
	}
	if err := ValidateIgnore(origin, patterns); err != nil {
		return nil, err
	}
	out := files[:0:0]
	for _, f := range files {
		skip, err := Ignored(f, patterns)
		if err != nil {
			return nil, &Error{Path: origin, Code: diag.CfgInvalidIgnore, Err: err}
		}
		if !skip {
			out = append(out, f)
		}
	}
	return out, nil
}
