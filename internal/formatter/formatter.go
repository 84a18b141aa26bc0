package formatter

import (
	"fmt"
	"slices"
	"strings"

	"intlc/internal/catalog"
	"intlc/internal/jsonx"
)

// Formatter reshapes extracted messages for a translation tool and turns the
// translated files back into id -> message maps. Both directions are pure.
type Formatter interface {
	Name() string
	// Format encodes extracted messages, already sorted by id.
	Format(msgs []catalog.Message) []byte
	// Compile reads one translated catalog into id -> message entries.
	Compile(obj jsonx.Object) ([]catalog.Entry, error)
}

// ShapeError reports a catalog entry that does not have the shape the
// formatter expects.
type ShapeError struct {
	Formatter string
	ID        string
	Msg       string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s formatter: entry %q %s", e.Formatter, e.ID, e.Msg)
}

var registry = map[string]Formatter{}

func register(f Formatter) { registry[f.Name()] = f }

func init() {
	register(defaultFormatter{})
	register(simpleFormatter{})
	register(fieldFormatter{name: "transifex", message: "string", description: "developer_comment"})
	register(smartlingFormatter{})
	register(fieldFormatter{name: "crowdin", message: "message", description: "description"})
	register(fieldFormatter{name: "lokalise", message: "translation", description: "notes"})
}

// Names returns the registered formatter names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the formatter registered under name; "" selects "default".
func Lookup(name string) (Formatter, error) {
	if name == "" {
		name = "default"
	}
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// defaultFormatter пишет полный дескриптор: {id: {defaultMessage, description, file, start, end}}.
type defaultFormatter struct{}

func (defaultFormatter) Name() string { return "default" }

func (defaultFormatter) Format(msgs []catalog.Message) []byte {
	var b jsonx.Builder
	b.BeginObject()
	for _, m := range msgs {
		b.Key(m.ID).BeginObject()
		b.Key("defaultMessage").String(m.DefaultMessage)
		if m.HasDescription {
			b.Key("description").String(m.Description)
		}
		if m.HasLocation {
			b.Key("file").String(m.File).Key("start").Int(m.Start).Key("end").Int(m.End)
		}
		if len(m.Meta) > 0 {
			b.Key("meta").BeginObject()
			keys := make([]string, 0, len(m.Meta))
			for k := range m.Meta {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				b.Key(k).String(m.Meta[k])
			}
			b.EndObject()
		}
		b.EndObject()
	}
	b.EndObject()
	return b.Bytes()
}

// Compile accepts plain strings as well as extracted descriptors.
func (f defaultFormatter) Compile(obj jsonx.Object) ([]catalog.Entry, error) {
	return compileField(f.Name(), obj, "defaultMessage", true)
}

type simpleFormatter struct{}

func (simpleFormatter) Name() string { return "simple" }

func (simpleFormatter) Format(msgs []catalog.Message) []byte {
	var b jsonx.Builder
	b.BeginObject()
	for _, m := range msgs {
		b.Key(m.ID).String(m.DefaultMessage)
	}
	b.EndObject()
	return b.Bytes()
}

func (f simpleFormatter) Compile(obj jsonx.Object) ([]catalog.Entry, error) {
	out := make([]catalog.Entry, 0, len(obj))
	for _, m := range obj {
		s, ok := m.Value.(string)
		if !ok {
			return nil, &ShapeError{Formatter: f.Name(), ID: m.Key, Msg: "must be a string, found " + jsonx.Kind(m.Value)}
		}
		out = append(out, catalog.Entry{ID: m.Key, Message: s})
	}
	return out, nil
}

// fieldFormatter покрывает форматы вида {id: {<message>: ..., <description>: ...}}.
type fieldFormatter struct {
	name        string
	message     string
	description string
}

func (f fieldFormatter) Name() string { return f.name }

func (f fieldFormatter) Format(msgs []catalog.Message) []byte {
	var b jsonx.Builder
	b.BeginObject()
	writeFields(&b, msgs, f.message, f.description)
	b.EndObject()
	return b.Bytes()
}

func (f fieldFormatter) Compile(obj jsonx.Object) ([]catalog.Entry, error) {
	return compileField(f.name, obj, f.message, false)
}

func writeFields(b *jsonx.Builder, msgs []catalog.Message, message, description string) {
	for _, m := range msgs {
		b.Key(m.ID).BeginObject().Key(message).String(m.DefaultMessage)
		if m.HasDescription {
			b.Key(description).String(m.Description)
		}
		b.EndObject()
	}
}

// smartlingFormatter добавляет служебную запись "smartling" с инструкциями
// для разбора файла на стороне Smartling.
type smartlingFormatter struct{}

const smartlingKey = "smartling"

func (smartlingFormatter) Name() string { return "smartling" }

func (smartlingFormatter) Format(msgs []catalog.Message) []byte {
	var b jsonx.Builder
	b.BeginObject()
	b.Key(smartlingKey).BeginObject().
		Key("translate_paths").BeginArray().
		BeginObject().
		Key("path").String("*/message").
		Key("key").String("{*}/message").
		Key("instruction").String("*/description").
		EndObject().
		EndArray().
		Key("variants_enabled").Raw([]byte("true")).
		Key("string_format").String("icu").
		EndObject()
	writeFields(&b, msgs, "message", "description")
	b.EndObject()
	return b.Bytes()
}

func (f smartlingFormatter) Compile(obj jsonx.Object) ([]catalog.Entry, error) {
	rest := make(jsonx.Object, 0, len(obj))
	for _, m := range obj {
		if m.Key != smartlingKey {
			rest = append(rest, m)
		}
	}
	return compileField(f.Name(), rest, "message", false)
}

func compileField(name string, obj jsonx.Object, field string, allowString bool) ([]catalog.Entry, error) {
	out := make([]catalog.Entry, 0, len(obj))
	for _, m := range obj {
		switch v := m.Value.(type) {
		case string:
			if !allowString {
				return nil, &ShapeError{Formatter: name, ID: m.Key, Msg: "must be an object with a \"" + field + "\" field"}
			}
			out = append(out, catalog.Entry{ID: m.Key, Message: v})
		case jsonx.Object:
			raw, ok := v.Get(field)
			s, isStr := raw.(string)
			if !ok || !isStr {
				return nil, &ShapeError{Formatter: name, ID: m.Key, Msg: "has no string \"" + field + "\" field"}
			}
			out = append(out, catalog.Entry{ID: m.Key, Message: s})
		default:
			return nil, &ShapeError{Formatter: name, ID: m.Key, Msg: "has unsupported type " + jsonx.Kind(m.Value)}
		}
	}
	return out, nil
}
