package lexer

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"intlc/internal/token"
)

// StringValue returns the cooked value of a StringLit or JSXString token.
// JSX attribute strings have no escapes; HTML character references are decoded.
func StringValue(tok token.Token) (string, error) {
	text := tok.Text
	if len(text) < 2 {
		return "", fmt.Errorf("malformed string literal %s", quoteText(text))
	}
	body := text[1 : len(text)-1]
	if tok.Kind == token.JSXString {
		return html.UnescapeString(body), nil
	}
	return Cook(body)
}

// TemplateValue returns the cooked text of one template part, without the
// surrounding '`', '}' and "${" delimiters.
func TemplateValue(tok token.Token) (string, error) {
	text := tok.Text
	var body string
	switch tok.Kind {
	case token.NoSubstTemplate:
		body = strings.TrimSuffix(strings.TrimPrefix(text, "`"), "`")
	case token.TemplateHead:
		body = strings.TrimSuffix(strings.TrimPrefix(text, "`"), "${")
	case token.TemplateMiddle:
		body = strings.TrimSuffix(strings.TrimPrefix(text, "}"), "${")
	case token.TemplateTail:
		body = strings.TrimSuffix(strings.TrimPrefix(text, "}"), "`")
	default:
		return "", fmt.Errorf("%v is not a template part", tok.Kind)
	}
	return Cook(body)
}

// Cook interprets JavaScript escape sequences in a string or template body.
// Line continuations (a backslash before a newline) are removed.
func Cook(body string) (string, error) {
	if !strings.Contains(body, `\`) {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New("trailing backslash")
		}
		c = body[i]
		switch c {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '\n':
			i++
		case 'x':
			if i+3 > len(body) {
				return "", errors.New("short \\x escape")
			}
			v, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", errors.New("invalid \\x escape")
			}
			b.WriteRune(rune(v))
			i += 3
		case 'u':
			r, n, err := cookUnicode(body[i:])
			if err != nil {
				return "", err
			}
			i += n
			// суррогатная пара: \uD83D\uDE00
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i:], `\u`) {
				if r2, n2, err2 := cookUnicode(body[i+1:]); err2 == nil {
					if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
						r = pair
						i += 1 + n2
					}
				}
			}
			b.WriteRune(r)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			// \0 и устаревшие восьмеричные escape
			j := i
			for j < len(body) && j < i+3 && body[j] >= '0' && body[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(body[i:j], 8, 16)
			b.WriteRune(rune(v))
			i = j
		default:
			r, size := utf8.DecodeRuneInString(body[i:])
			if r != '\u2028' && r != '\u2029' {
				b.WriteRune(r)
			}
			i += size
		}
	}
	return b.String(), nil
}

// cookUnicode parses "uXXXX" or "u{X...}" and returns the rune and bytes consumed.
func cookUnicode(s string) (rune, int, error) {
	if strings.HasPrefix(s, "u{") {
		end := strings.IndexByte(s, '}')
		if end < 3 {
			return 0, 0, errors.New("invalid \\u{} escape")
		}
		v, err := strconv.ParseUint(s[2:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, errors.New("invalid \\u{} escape")
		}
		return rune(v), end + 1, nil
	}
	if len(s) < 5 {
		return 0, 0, errors.New("short \\u escape")
	}
	v, err := strconv.ParseUint(s[1:5], 16, 32)
	if err != nil {
		return 0, 0, errors.New("invalid \\u escape")
	}
	return rune(v), 5, nil
}
