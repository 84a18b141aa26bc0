package icu

// Type is the tag of a message node. Values match the numeric "type" field
// of the JSON encoding.
type Type uint8

const (
	TypeLiteral Type = iota
	TypeArgument
	TypeNumber
	TypeDate
	TypeTime
	TypeSelect
	TypePlural
	TypePound
	TypeTag
)

var typeNames = [...]string{
	TypeLiteral:  "literal",
	TypeArgument: "argument",
	TypeNumber:   "number",
	TypeDate:     "date",
	TypeTime:     "time",
	TypeSelect:   "select",
	TypePlural:   "plural",
	TypePound:    "pound",
	TypeTag:      "tag",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Location is a byte range in the parsed message. It is filled only when
// Options.CaptureLocation is set.
type Location struct {
	Start int
	End   int
}

// Node is an element of a parsed message.
type Node interface {
	Type() Type
	Loc() Location
}

// Literal is plain text with quoting already resolved.
type Literal struct {
	Value    string
	Location Location
}

// Argument is {name}.
type Argument struct {
	Name     string
	Location Location
}

// Formatted is {name, number|date|time[, style]}. Style keeps its source
// text; skeletons start with "::".
type Formatted struct {
	Kind     Type // TypeNumber, TypeDate or TypeTime
	Name     string
	Style    string
	Location Location
}

// SelectorKind distinguishes the three selector keywords.
type SelectorKind uint8

const (
	KindSelect SelectorKind = iota
	KindPlural
	KindSelectOrdinal
)

var selectorKeywords = [...]string{
	KindSelect:        "select",
	KindPlural:        "plural",
	KindSelectOrdinal: "selectordinal",
}

func (k SelectorKind) String() string {
	if int(k) < len(selectorKeywords) {
		return selectorKeywords[k]
	}
	return "unknown"
}

// CountsPound reports whether '#' inside the branches refers to the argument.
func (k SelectorKind) CountsPound() bool {
	return k == KindPlural || k == KindSelectOrdinal
}

// Selector is {name, plural|select|selectordinal, [offset:N] label {msg} ...}.
// Options keep their source order; labels are unique.
type Selector struct {
	Kind     SelectorKind
	Name     string
	Offset   int
	Options  []Option
	Location Location
}

// Option is one selector branch.
type Option struct {
	Label    string
	Value    []Node
	Location Location
}

// Pound is '#' inside a plural or selectordinal branch.
type Pound struct {
	Location Location
}

// Tag is <name>children</name>.
type Tag struct {
	Name     string
	Children []Node
	Location Location
}

func (*Literal) Type() Type  { return TypeLiteral }
func (*Argument) Type() Type { return TypeArgument }
func (f *Formatted) Type() Type {
	return f.Kind
}
func (s *Selector) Type() Type {
	if s.Kind == KindSelect {
		return TypeSelect
	}
	return TypePlural
}
func (*Pound) Type() Type { return TypePound }
func (*Tag) Type() Type   { return TypeTag }

func (n *Literal) Loc() Location   { return n.Location }
func (n *Argument) Loc() Location  { return n.Location }
func (n *Formatted) Loc() Location { return n.Location }
func (n *Selector) Loc() Location  { return n.Location }
func (n *Pound) Loc() Location     { return n.Location }
func (n *Tag) Loc() Location       { return n.Location }

// Option returns the branch labelled label.
func (s *Selector) Option(label string) ([]Node, bool) {
	for _, o := range s.Options {
		if o.Label == label {
			return o.Value, true
		}
	}
	return nil, false
}

// Labels returns the branch labels in source order.
func (s *Selector) Labels() []string {
	out := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		out = append(out, o.Label)
	}
	return out
}
