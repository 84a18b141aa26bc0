package icu

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configure Parse.
type Options struct {
	// IgnoreTag treats '<' and '>' as plain text.
	IgnoreTag bool
	// CaptureLocation fills the Location of every node.
	CaptureLocation bool
}

type parser struct {
	src  string
	pos  int
	opts Options
}

// Parse parses a MessageFormat message. On failure the error is a
// *SyntaxError and no nodes are returned.
func Parse(message string, opts Options) ([]Node, error) {
	p := &parser{src: message, opts: opts}
	nodes, err := p.parseMessage(0, false, false)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// MustParse is like Parse but panics on error.
func MustParse(message string) []Node {
	nodes, err := Parse(message, Options{})
	if err != nil {
		panic(err)
	}
	return nodes
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.src) {
		return 0
	}
	return p.src[p.pos+n]
}

func (p *parser) hasPrefix(s string) bool { return strings.HasPrefix(p.src[p.pos:], s) }

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) loc(start int) Location {
	if !p.opts.CaptureLocation {
		return Location{}
	}
	return Location{Start: start, End: p.pos}
}

func (p *parser) errorf(kind ErrorKind, start, end int, msg string) *SyntaxError {
	if end < start {
		end = start
	}
	return &SyntaxError{Kind: kind, Offset: start, End: end, Message: msg}
}

// parseMessage разбирает последовательность узлов до '}' (если depth > 0),
// до "</" (если inTag) или до конца строки.
func (p *parser) parseMessage(depth int, pound, inTag bool) ([]Node, error) {
	var nodes []Node
	for !p.eof() {
		c := p.peek()
		switch {
		case c == '{':
			n, err := p.parseArgument(depth)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case c == '}':
			if depth > 0 {
				return nodes, nil
			}
			return nil, p.errorf(ErrUnbalancedBrace, p.pos, p.pos+1, "unexpected '}' outside of an argument")
		case c == '#' && pound:
			start := p.pos
			p.pos++
			nodes = append(nodes, &Pound{Location: p.loc(start)})
		case c == '<' && !p.opts.IgnoreTag && p.peekAt(1) == '/':
			if inTag {
				return nodes, nil
			}
			return nil, p.errorf(ErrUnmatchedClosingTag, p.pos, p.pos+2, "closing tag without an opening tag")
		case c == '<' && !p.opts.IgnoreTag && isTagStart(p.peekAt(1)):
			n, err := p.parseTag(depth, pound)
			if err != nil {
				return nil, err
			}
			nodes = appendNode(nodes, n)
		default:
			lit, err := p.parseLiteral(pound)
			if err != nil {
				return nil, err
			}
			nodes = appendNode(nodes, lit)
		}
	}
	return nodes, nil
}

// appendNode склеивает соседние литералы (например, после <br/>).
func appendNode(nodes []Node, n Node) []Node {
	lit, ok := n.(*Literal)
	if !ok || len(nodes) == 0 {
		return append(nodes, n)
	}
	prev, ok := nodes[len(nodes)-1].(*Literal)
	if !ok {
		return append(nodes, n)
	}
	prev.Value += lit.Value
	if lit.Location.End > prev.Location.End {
		prev.Location.End = lit.Location.End
	}
	return nodes
}

func (p *parser) parseLiteral(pound bool) (*Literal, error) {
	start := p.pos
	var sb strings.Builder
loop:
	for !p.eof() {
		c := p.peek()
		switch {
		case c == '\'':
			text, ok, err := p.tryQuote(pound)
			if err != nil {
				return nil, err
			}
			if ok {
				sb.WriteString(text)
				continue
			}
			sb.WriteByte('\'')
			p.pos++
		case c == '{' || c == '}':
			break loop
		case c == '#' && pound:
			break loop
		case c == '<' && !p.opts.IgnoreTag && (p.peekAt(1) == '/' || isTagStart(p.peekAt(1))):
			break loop
		default:
			_, size := utf8.DecodeRuneInString(p.src[p.pos:])
			sb.WriteString(p.src[p.pos : p.pos+size])
			p.pos += size
		}
	}
	return &Literal{Value: sb.String(), Location: p.loc(start)}, nil
}

// tryQuote обрабатывает апостроф: двойной апостроф даёт один, '{...' открывает
// экранированный участок до следующего одиночного апострофа. Апостроф перед
// обычным символом остаётся буквальным (ok=false).
func (p *parser) tryQuote(pound bool) (string, bool, error) {
	switch p.peekAt(1) {
	case '\'':
		p.pos += 2
		return "'", true, nil
	case '{', '}', '<', '>':
	case '#':
		if !pound {
			return "", false, nil
		}
	default:
		return "", false, nil
	}

	start := p.pos
	p.pos++
	var sb strings.Builder
	for !p.eof() {
		if p.peek() == '\'' {
			if p.peekAt(1) == '\'' {
				sb.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return sb.String(), true, nil
		}
		_, size := utf8.DecodeRuneInString(p.src[p.pos:])
		sb.WriteString(p.src[p.pos : p.pos+size])
		p.pos += size
	}
	return "", false, p.errorf(ErrUnterminatedQuote, start, len(p.src), "quoted text is not terminated by an apostrophe")
}

func (p *parser) parseArgument(depth int) (Node, error) {
	start := p.pos
	p.pos++ // {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), "argument is not closed")
	}
	if p.peek() == '}' {
		return nil, p.errorf(ErrExpectArgumentName, start, p.pos+1, "empty argument")
	}
	nameStart := p.pos
	name := p.scanIdent()
	if name == "" {
		return nil, p.errorf(ErrExpectArgumentName, nameStart, nameStart+1, "expected argument name")
	}
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), "argument is not closed")
	}
	switch p.peek() {
	case '}':
		p.pos++
		return &Argument{Name: name, Location: p.loc(start)}, nil
	case ',':
		p.pos++
	default:
		return nil, p.errorf(ErrExpectArgumentName, nameStart, p.pos+1, "malformed argument name")
	}

	p.skipSpace()
	typeStart := p.pos
	typ := p.scanIdent()
	switch typ {
	case "number":
		return p.parseFormatted(start, name, TypeNumber)
	case "date":
		return p.parseFormatted(start, name, TypeDate)
	case "time":
		return p.parseFormatted(start, name, TypeTime)
	case "select":
		return p.parseSelector(start, name, KindSelect, depth)
	case "plural":
		return p.parseSelector(start, name, KindPlural, depth)
	case "selectordinal":
		return p.parseSelector(start, name, KindSelectOrdinal, depth)
	case "":
		if p.eof() {
			return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), "argument is not closed")
		}
		return nil, p.errorf(ErrUnknownArgumentType, typeStart, typeStart+1, "expected argument type")
	default:
		return nil, p.errorf(ErrUnknownArgumentType, typeStart, p.pos, "unknown argument type "+strconv.Quote(typ))
	}
}

func (p *parser) parseFormatted(start int, name string, kind Type) (Node, error) {
	p.skipSpace()
	style := ""
	if p.peek() == ',' {
		p.pos++
		p.skipSpace()
		styleStart := p.pos
		raw, err := p.scanStyle()
		if err != nil {
			return nil, err
		}
		style = strings.TrimRightFunc(raw, unicode.IsSpace)
		if style == "" {
			return nil, p.errorf(ErrExpectArgumentStyle, styleStart, p.pos+1, "expected argument style after ','")
		}
	}
	if p.eof() {
		return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), "argument is not closed")
	}
	if p.peek() != '}' {
		return nil, p.errorf(ErrUnbalancedBrace, p.pos, p.pos+1, "expected '}'")
	}
	p.pos++
	return &Formatted{Kind: kind, Name: name, Style: style, Location: p.loc(start)}, nil
}

// scanStyle читает стиль до '}' верхнего уровня; вложенные скобки и
// кавычки пропускаются как есть.
func (p *parser) scanStyle() (string, error) {
	start := p.pos
	nested := 0
	for !p.eof() {
		switch p.peek() {
		case '\'':
			qStart := p.pos
			p.pos++
			end := strings.IndexByte(p.src[p.pos:], '\'')
			if end < 0 {
				return "", p.errorf(ErrUnterminatedQuote, qStart, len(p.src), "quoted text in argument style is not terminated")
			}
			p.pos += end + 1
		case '{':
			nested++
			p.pos++
		case '}':
			if nested == 0 {
				return p.src[start:p.pos], nil
			}
			nested--
			p.pos++
		default:
			p.pos++
		}
	}
	return p.src[start:p.pos], nil
}

func (p *parser) parseSelector(start int, name string, kind SelectorKind, depth int) (Node, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), "argument is not closed")
	}
	if p.peek() != ',' {
		return nil, p.errorf(ErrExpectOptions, p.pos, p.pos+1, "expected ',' before "+kind.String()+" options")
	}
	p.pos++
	p.skipSpace()

	sel := &Selector{Kind: kind, Name: name}
	if kind == KindPlural && p.hasPrefix("offset:") {
		offStart := p.pos
		p.pos += len("offset:")
		p.skipSpace()
		digits := p.scanDigits()
		n, err := strconv.Atoi(digits)
		if digits == "" || err != nil {
			return nil, p.errorf(ErrInvalidOffset, offStart, p.pos, "offset must be a non-negative integer")
		}
		sel.Offset = n
	}

	seen := make(map[string]bool)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), kind.String()+" is not closed")
		}
		if p.peek() == '}' {
			break
		}

		labelStart := p.pos
		var label string
		if p.peek() == '=' && kind != KindSelect {
			p.pos++
			digits := p.scanDigits()
			if digits == "" {
				return nil, p.errorf(ErrInvalidSelectorLabel, labelStart, p.pos+1, "expected a number after '='")
			}
			label = "=" + digits
		} else {
			label = p.scanIdent()
		}
		if label == "" {
			return nil, p.errorf(ErrInvalidSelectorLabel, labelStart, labelStart+1, "expected a selector label")
		}
		if seen[label] {
			return nil, p.errorf(ErrDuplicateSelector, labelStart, p.pos, "duplicate selector "+strconv.Quote(label))
		}
		seen[label] = true

		p.skipSpace()
		if p.peek() != '{' {
			if p.eof() {
				return nil, p.errorf(ErrUnbalancedBrace, start, len(p.src), kind.String()+" is not closed")
			}
			return nil, p.errorf(ErrExpectSelectorBody, p.pos, p.pos+1, "expected '{' after "+strconv.Quote(label))
		}
		bodyStart := p.pos
		p.pos++
		value, err := p.parseMessage(depth+1, kind.CountsPound(), false)
		if err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errorf(ErrUnbalancedBrace, bodyStart, len(p.src), "branch "+strconv.Quote(label)+" is not closed")
		}
		p.pos++ // }
		sel.Options = append(sel.Options, Option{Label: label, Value: value, Location: p.loc(labelStart)})
	}
	p.pos++ // }
	sel.Location = p.loc(start)

	if len(sel.Options) == 0 {
		return nil, p.errorf(ErrExpectOptions, start, p.pos, kind.String()+" has no options")
	}
	if !seen["other"] {
		return nil, p.errorf(ErrMissingOther, start, p.pos, kind.String()+" requires an \"other\" option")
	}
	return sel, nil
}

func (p *parser) parseTag(depth int, pound bool) (Node, error) {
	start := p.pos
	p.pos++ // <
	name := p.scanTagName()
	p.skipSpace()
	if p.hasPrefix("/>") {
		p.pos += 2
		return &Literal{Value: "<" + name + "/>", Location: p.loc(start)}, nil
	}
	if p.peek() != '>' {
		return nil, p.errorf(ErrInvalidTag, start, p.pos+1, "tag <"+name+"> must not have attributes")
	}
	p.pos++

	children, err := p.parseMessage(depth+1, pound, true)
	if err != nil {
		return nil, err
	}
	if !p.hasPrefix("</") {
		return nil, p.errorf(ErrUnclosedTag, start, p.pos, "tag <"+name+"> is not closed")
	}
	closeStart := p.pos
	p.pos += 2
	closeName := p.scanTagName()
	if closeName != name {
		return nil, p.errorf(ErrUnmatchedClosingTag, closeStart, p.pos, "expected </"+name+">, found </"+closeName+">")
	}
	p.skipSpace()
	if p.peek() != '>' {
		return nil, p.errorf(ErrInvalidTag, closeStart, p.pos+1, "expected '>' to close </"+name+">")
	}
	p.pos++
	return &Tag{Name: name, Children: children, Location: p.loc(start)}, nil
}

func (p *parser) scanIdent() string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentRune(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

func (p *parser) scanDigits() string {
	start := p.pos
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) scanTagName() string {
	start := p.pos
	for !p.eof() && isTagNameByte(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// isIdentRune: всё, кроме пробелов и ASCII-пунктуации (кроме '_').
func isIdentRune(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	if r < utf8.RuneSelf {
		return r == '_' || !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsControl(r)
	}
	return true
}

func isTagStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isTagNameByte(c byte) bool {
	return isTagStart(c) || c >= '0' && c <= '9' || c == '-' || c == '_' || c == '.'
}
