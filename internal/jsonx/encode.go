package jsonx

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Quote returns s as a JSON string literal without HTML escaping.
func Quote(s string) string {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		// строки всегда сериализуются
		panic(err)
	}
	return string(b)
}

// Builder writes compact JSON with keys in the order they are added.
type Builder struct {
	buf      bytes.Buffer
	first    []bool // стек: ещё не было элементов в текущем контейнере
	afterKey bool
}

// BeginObject starts an object value.
func (b *Builder) BeginObject() *Builder { return b.open('{') }

// EndObject closes the current object.
func (b *Builder) EndObject() *Builder { return b.close('}') }

// BeginArray starts an array value.
func (b *Builder) BeginArray() *Builder { return b.open('[') }

// EndArray closes the current array.
func (b *Builder) EndArray() *Builder { return b.close(']') }

// Key writes an object key; the value must follow.
func (b *Builder) Key(k string) *Builder {
	b.sep()
	b.buf.WriteString(Quote(k))
	b.buf.WriteByte(':')
	b.afterKey = true
	return b
}

// String writes a string value.
func (b *Builder) String(s string) *Builder {
	b.sep()
	b.buf.WriteString(Quote(s))
	return b
}

// Raw writes an already encoded value.
func (b *Builder) Raw(v []byte) *Builder {
	b.sep()
	b.buf.Write(v)
	return b
}

// Int writes an integer value.
func (b *Builder) Int(n int) *Builder {
	b.sep()
	b.buf.WriteString(strconv.Itoa(n))
	return b
}

// Null writes null.
func (b *Builder) Null() *Builder { return b.Raw([]byte("null")) }

// Bytes returns the encoded document.
func (b *Builder) Bytes() []byte { return b.buf.Bytes() }

// Indented returns the document indented with two spaces and a trailing
// newline.
func (b *Builder) Indented() ([]byte, error) {
	return Indent(b.buf.Bytes())
}

// Indent re-indents a compact document with two spaces and appends a
// trailing newline. Key order is kept.
func Indent(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (b *Builder) open(c byte) *Builder {
	b.sep()
	b.buf.WriteByte(c)
	b.first = append(b.first, true)
	return b
}

func (b *Builder) close(c byte) *Builder {
	b.first = b.first[:len(b.first)-1]
	b.buf.WriteByte(c)
	return b
}

func (b *Builder) sep() {
	if b.afterKey {
		b.afterKey = false
		return
	}
	if n := len(b.first); n > 0 {
		if b.first[n-1] {
			b.first[n-1] = false
			return
		}
		b.buf.WriteByte(',')
	}
}
