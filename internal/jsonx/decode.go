package jsonx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its source key order. Values are
// Object, []any, string, json.Number, bool or nil.
type Object []Member

// Get returns the value of the last member named key.
func (o Object) Get(key string) (any, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the member keys in source order.
func (o Object) Keys() []string {
	out := make([]string, 0, len(o))
	for _, m := range o {
		out = append(out, m.Key)
	}
	return out
}

// Duplicate is a key that occurs more than once in one object.
type Duplicate struct {
	Path string // JSON pointer of the object
	Key  string
}

// Decode parses a single JSON value keeping object key order and reporting
// duplicate keys.
func Decode(data []byte) (any, []Duplicate, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &decoder{dec: dec}
	v, err := d.value("")
	if err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, nil, errors.New("unexpected data after top-level value")
		}
		return nil, nil, err
	}
	return v, d.dups, nil
}

// DecodeObject is Decode for documents whose top level must be an object.
func DecodeObject(data []byte) (Object, []Duplicate, error) {
	v, dups, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, nil, fmt.Errorf("expected a JSON object, found %s", Kind(v))
	}
	return obj, dups, nil
}

type decoder struct {
	dec  *json.Decoder
	dups []Duplicate
}

func (d *decoder) value(path string) (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := Object{}
		seen := make(map[string]struct{})
		for d.dec.More() {
			kt, err := d.dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("%s: object key is not a string", pathOrRoot(path))
			}
			if _, dup := seen[key]; dup {
				d.dups = append(d.dups, Duplicate{Path: pathOrRoot(path), Key: key})
			}
			seen[key] = struct{}{}
			v, err := d.value(path + "/" + escapePointer(key))
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: v})
		}
		if _, err := d.dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for i := 0; d.dec.More(); i++ {
			v, err := d.value(fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := d.dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%s: unexpected %q", pathOrRoot(path), rune(delim))
	}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}

// Kind names the JSON type of a decoded value.
func Kind(v any) string {
	switch v.(type) {
	case Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
