package token

// Only words that influence tokenisation or descriptor unwrapping are keywords.
// Everything else (const, function, if, ...) stays an Ident.
var keywords = map[string]Kind{
	"this":       KwThis,
	"return":     KwReturn,
	"typeof":     KwTypeof,
	"instanceof": KwInstanceof,
	"in":         KwIn,
	"of":         KwOf,
	"new":        KwNew,
	"delete":     KwDelete,
	"void":       KwVoid,
	"throw":      KwThrow,
	"case":       KwCase,
	"do":         KwDo,
	"else":       KwElse,
	"yield":      KwYield,
	"await":      KwAwait,
	"as":         KwAs,
	"satisfies":  KwSatisfies,
}

// LookupKeyword returns the keyword kind for ident, if any.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
