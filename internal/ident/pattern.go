package ident

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPattern is used whenever no interpolation pattern is configured.
const DefaultPattern = "[sha512:contenthash:base64:6]"

// PatternError reports a malformed id interpolation pattern.
type PatternError struct {
	Pattern string
	Offset  int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid id interpolation pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Msg)
}

// placeholder is one [algo:source:encoding:length] group.
type placeholder struct {
	algo     Algorithm
	encoding Encoding
	length   int // 0 means the whole digest
}

type part struct {
	text string
	ph   *placeholder
}

// Pattern is a parsed id interpolation pattern. The zero value is not
// usable; use ParsePattern or MustParsePattern.
type Pattern struct {
	raw   string
	parts []part
}

// String returns the pattern source.
func (p Pattern) String() string { return p.raw }

// ParsePattern parses patterns such as "[sha512:contenthash:base64:6]" or
// "msg_[contenthash:8]". Text outside brackets is copied verbatim.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern{raw: s}
	if s == "" {
		return p, &PatternError{Pattern: s, Msg: "empty pattern"}
	}
	rest := s
	offset := 0
	for rest != "" {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			p.parts = append(p.parts, part{text: rest})
			break
		}
		if open > 0 {
			p.parts = append(p.parts, part{text: rest[:open]})
		}
		closing := strings.IndexByte(rest[open:], ']')
		if closing < 0 {
			return Pattern{}, &PatternError{Pattern: s, Offset: offset + open, Msg: "unclosed '['"}
		}
		ph, err := parsePlaceholder(rest[open+1 : open+closing])
		if err != nil {
			return Pattern{}, &PatternError{Pattern: s, Offset: offset + open, Msg: err.Error()}
		}
		p.parts = append(p.parts, part{ph: ph})
		offset += open + closing + 1
		rest = rest[open+closing+1:]
	}

	hasHash := false
	for _, pt := range p.parts {
		if pt.ph != nil {
			hasHash = true
		}
	}
	if !hasHash {
		return Pattern{}, &PatternError{Pattern: s, Msg: "pattern has no [contenthash] placeholder, every id would be identical"}
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// parsePlaceholder: [algo:]contenthash|hash[:encoding][:length]
func parsePlaceholder(body string) (*placeholder, error) {
	fields := strings.Split(body, ":")
	ph := &placeholder{algo: SHA512, encoding: Hex}

	i := 0
	if len(fields) > 0 && !isSource(fields[0]) {
		algo, ok := LookupAlgorithm(fields[0])
		if !ok {
			return nil, fmt.Errorf("unknown hash algorithm %q", fields[0])
		}
		ph.algo = algo
		i++
	}
	if i >= len(fields) || !isSource(fields[i]) {
		return nil, fmt.Errorf("expected contenthash in [%s]", body)
	}
	i++

	if i < len(fields) {
		if n, err := strconv.Atoi(fields[i]); err == nil && i == len(fields)-1 {
			ph.length = n
			i++
		} else {
			enc, ok := LookupEncoding(fields[i])
			if !ok {
				return nil, fmt.Errorf("unknown digest encoding %q", fields[i])
			}
			ph.encoding = enc
			i++
		}
	}
	if i < len(fields) {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("invalid length %q", fields[i])
		}
		ph.length = n
		i++
	}
	if i != len(fields) {
		return nil, fmt.Errorf("unexpected %q", strings.Join(fields[i:], ":"))
	}
	if ph.length < 0 {
		return nil, fmt.Errorf("negative length %d", ph.length)
	}
	return ph, nil
}

func isSource(s string) bool { return s == "contenthash" || s == "hash" }

// Generate renders the pattern for content.
func (p Pattern) Generate(content string) string {
	var sb strings.Builder
	for _, pt := range p.parts {
		if pt.ph == nil {
			sb.WriteString(pt.text)
			continue
		}
		sum := pt.ph.algo.Sum([]byte(content))
		enc := pt.ph.encoding.Encode(sum)
		if pt.ph.length > 0 && pt.ph.length < len(enc) {
			enc = enc[:pt.ph.length]
		}
		sb.WriteString(enc)
	}
	return sb.String()
}
