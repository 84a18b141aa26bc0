package compile

import (
	"intlc/internal/formatter"
	"intlc/internal/pseudo"
)

// Options control how catalogs are compiled. The zero value compiles to
// canonical message text with the default formatter.
type Options struct {
	// AST emits the tagged-node JSON form instead of message text.
	AST bool
	// IgnoreTag treats '<' and '>' as plain text while parsing.
	IgnoreTag bool
	// PseudoLocale, when set, also produces a pseudo-localised catalog.
	PseudoLocale string
	// SkipErrors drops messages that fail to parse and records them in
	// Result.Skipped instead of failing the run.
	SkipErrors bool
	// Format names the formatter used to read input catalogs.
	Format string
}

type resolved struct {
	Options
	formatter formatter.Formatter
	pseudo    pseudo.Locale
}

func (o Options) resolve() (resolved, error) {
	f, err := formatter.Lookup(o.Format)
	if err != nil {
		return resolved{}, err
	}
	r := resolved{Options: o, formatter: f}
	if o.PseudoLocale != "" {
		if r.pseudo, err = pseudo.Lookup(o.PseudoLocale); err != nil {
			return resolved{}, err
		}
	}
	return r, nil
}
