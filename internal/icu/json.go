package icu

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"intlc/internal/jsonx"
)

// MarshalJSON encodes nodes in the tagged-node form read by runtimes that do
// not parse messages: {"type":N,"value":...} with the Type numbering.
func MarshalJSON(nodes []Node) []byte {
	var b jsonx.Builder
	writeNodes(&b, nodes)
	return b.Bytes()
}

func writeNodes(b *jsonx.Builder, nodes []Node) {
	b.BeginArray()
	for _, n := range nodes {
		writeNode(b, n)
	}
	b.EndArray()
}

func writeNode(b *jsonx.Builder, n Node) {
	b.BeginObject().Key("type").Int(int(n.Type()))
	switch n := n.(type) {
	case *Literal:
		b.Key("value").String(n.Value)
	case *Argument:
		b.Key("value").String(n.Name)
	case *Formatted:
		b.Key("value").String(n.Name).Key("style")
		if n.Style == "" {
			b.Null()
		} else {
			b.String(n.Style)
		}
	case *Selector:
		b.Key("value").String(n.Name).Key("options").BeginObject()
		for _, o := range n.Options {
			b.Key(o.Label).BeginObject().Key("value")
			writeNodes(b, o.Value)
			b.EndObject()
		}
		b.EndObject()
		if n.Kind != KindSelect {
			b.Key("offset").Int(n.Offset).Key("pluralType")
			if n.Kind == KindSelectOrdinal {
				b.String("ordinal")
			} else {
				b.String("cardinal")
			}
		}
	case *Tag:
		b.Key("value").String(n.Name).Key("children")
		writeNodes(b, n.Children)
	}
	b.EndObject()
}

// UnmarshalJSON decodes the tagged-node form produced by MarshalJSON.
func UnmarshalJSON(data []byte) ([]Node, error) {
	v, _, err := jsonx.Decode(data)
	if err != nil {
		return nil, err
	}
	return decodeNodes(v, "")
}

func decodeNodes(v any, path string) ([]Node, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected an array of nodes, found %s", pathOr(path), jsonx.Kind(v))
	}
	out := make([]Node, 0, len(arr))
	for i, el := range arr {
		n, err := decodeNode(el, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeNode(v any, path string) (Node, error) {
	obj, ok := v.(jsonx.Object)
	if !ok {
		return nil, fmt.Errorf("%s: expected a node object, found %s", path, jsonx.Kind(v))
	}
	typ, err := intField(obj, "type", path)
	if err != nil {
		return nil, err
	}
	str := func(key string) (string, error) {
		raw, ok := obj.Get(key)
		s, isStr := raw.(string)
		if !ok || !isStr {
			return "", fmt.Errorf("%s: %q must be a string", path, key)
		}
		return s, nil
	}

	switch Type(typ) {
	case TypeLiteral:
		s, err := str("value")
		return &Literal{Value: s}, err
	case TypeArgument:
		s, err := str("value")
		return &Argument{Name: s}, err
	case TypeNumber, TypeDate, TypeTime:
		name, err := str("value")
		if err != nil {
			return nil, err
		}
		f := &Formatted{Kind: Type(typ), Name: name}
		if raw, ok := obj.Get("style"); ok && raw != nil {
			s, isStr := raw.(string)
			if !isStr {
				return nil, fmt.Errorf("%s: \"style\" must be a string or null", path)
			}
			f.Style = s
		}
		return f, nil
	case TypeSelect, TypePlural:
		name, err := str("value")
		if err != nil {
			return nil, err
		}
		sel := &Selector{Kind: KindSelect, Name: name}
		if Type(typ) == TypePlural {
			sel.Kind = KindPlural
			if pt, _ := obj.Get("pluralType"); pt == "ordinal" {
				sel.Kind = KindSelectOrdinal
			}
			if _, ok := obj.Get("offset"); ok {
				if sel.Offset, err = intField(obj, "offset", path); err != nil {
					return nil, err
				}
			}
		}
		raw, _ := obj.Get("options")
		opts, ok := raw.(jsonx.Object)
		if !ok {
			return nil, fmt.Errorf("%s: \"options\" must be an object", path)
		}
		for _, m := range opts {
			o, ok := m.Value.(jsonx.Object)
			if !ok {
				return nil, fmt.Errorf("%s/options/%s: expected an object", path, m.Key)
			}
			val, _ := o.Get("value")
			nodes, err := decodeNodes(val, path+"/options/"+m.Key+"/value")
			if err != nil {
				return nil, err
			}
			sel.Options = append(sel.Options, Option{Label: m.Key, Value: nodes})
		}
		return sel, nil
	case TypePound:
		return &Pound{}, nil
	case TypeTag:
		name, err := str("value")
		if err != nil {
			return nil, err
		}
		raw, _ := obj.Get("children")
		children, err := decodeNodes(raw, path+"/children")
		if err != nil {
			return nil, err
		}
		return &Tag{Name: name, Children: children}, nil
	default:
		return nil, fmt.Errorf("%s: unknown node type %d", path, typ)
	}
}

func intField(obj jsonx.Object, key, path string) (int, error) {
	raw, ok := obj.Get(key)
	num, isNum := raw.(json.Number)
	if !ok || !isNum {
		return 0, fmt.Errorf("%s: %q must be a number", pathOr(path), key)
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, fmt.Errorf("%s: %q must be an integer: %w", pathOr(path), key, err)
	}
	return n, nil
}

func pathOr(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
