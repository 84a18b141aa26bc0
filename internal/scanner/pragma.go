package scanner

import (
	"strings"

	"intlc/internal/diag"
	"intlc/internal/token"
)

// parsePragma разбирает комментарий вида "// @<pragma> k:v k2:v2".
// ok=false, если комментарий не относится к pragma.
func parsePragma(tv token.Trivia, pragma string) (meta map[string]string, bad []string, ok bool) {
	if pragma == "" || !tv.IsComment() {
		return nil, nil, false
	}
	body := tv.Text
	switch tv.Kind {
	case token.TriviaLineComment:
		body = strings.TrimPrefix(body, "//")
	case token.TriviaBlockComment:
		body = strings.TrimSuffix(strings.TrimPrefix(body, "/*"), "*/")
	}
	body = strings.TrimSpace(body)

	tag := "@" + pragma
	if !strings.HasPrefix(body, tag) {
		return nil, nil, false
	}
	rest := body[len(tag):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\n' {
		// @intl-metadata не совпадает с @intl-meta
		return nil, nil, false
	}

	meta = make(map[string]string)
	for _, pair := range strings.Fields(rest) {
		k, v, found := strings.Cut(pair, ":")
		if !found || k == "" {
			bad = append(bad, pair)
			continue
		}
		meta[k] = v
	}
	return meta, bad, true
}

// collectPragma сливает pragma из набора комментариев; поздние значения
// перекрывают ранние.
func collectPragma(comments []token.Trivia, pragma string, report func(*ShapeError)) map[string]string {
	var out map[string]string
	for _, tv := range comments {
		meta, bad, ok := parsePragma(tv, pragma)
		if !ok {
			continue
		}
		for _, b := range bad {
			if report != nil {
				report(&ShapeError{
					Code: diag.DscInvalidPragma,
					Span: tv.Span,
					Msg:  "pragma entry " + quote(b) + " is not in key:value form",
				})
			}
		}
		if out == nil {
			out = make(map[string]string, len(meta))
		}
		for k, v := range meta {
			out[k] = v
		}
	}
	return out
}

func quote(s string) string { return "\"" + s + "\"" }
