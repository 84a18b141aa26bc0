package ast

import "intlc/internal/source"

// PropKind classifies object literal members.
type PropKind uint8

const (
	// PropKeyValue is `key: value`.
	PropKeyValue PropKind = iota
	// PropShorthand is `key` or `key = default`.
	PropShorthand
	// PropSpread is `...expr`.
	PropSpread
	// PropComputed is `[expr]: value`.
	PropComputed
	// PropMethod is `key(...) {...}` including getters and setters.
	PropMethod
	// PropUnknown is anything the parser could not classify.
	PropUnknown
)

// ObjectLit is `{ ... }` in expression position.
type ObjectLit struct {
	Sp    source.Span
	Props []*Property
}

// Property is a single member of an ObjectLit. Key is the cooked key text
// for identifier, string and numeric keys; empty for spreads and computed keys.
type Property struct {
	Sp      source.Span
	Kind    PropKind
	Key     string
	KeySpan source.Span
	Value   *Expr // nil for shorthand without default and for methods
}

func (o *ObjectLit) Span() source.Span { return o.Sp }
func (p *Property) Span() source.Span  { return p.Sp }

func (*ObjectLit) node() {}
func (*Property) node()  {}

// Get returns the first key-value property named key.
func (o *ObjectLit) Get(key string) *Property {
	for _, p := range o.Props {
		if p.Kind == PropKeyValue && p.Key == key {
			return p
		}
	}
	return nil
}
