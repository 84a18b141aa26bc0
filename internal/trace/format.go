package trace

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Format is the trace output encoding.
type Format uint8

const (
	FormatAuto   Format = iota // по расширению пути
	FormatText                 // строка на событие
	FormatNDJSON               // объект JSON на строку
)

// ParseFormat converts a --trace-format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format %q (expected auto|text|ndjson)", s)
}

func encode(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return encodeJSON(ev)
	}
	return encodeText(ev)
}

type jsonEvent struct {
	Seq       uint64            `json:"seq"`
	Time      string            `json:"time"`
	Kind      string            `json:"kind"`
	Scope     string            `json:"scope"`
	SpanID    uint64            `json:"span,omitempty"`
	ParentID  uint64            `json:"parent,omitempty"`
	Stage     string            `json:"stage,omitempty"`
	File      string            `json:"file,omitempty"`
	Name      string            `json:"name,omitempty"`
	Detail    string            `json:"detail,omitempty"`
	ElapsedUS int64             `json:"elapsed_us,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

func encodeJSON(ev *Event) []byte {
	data, err := json.MarshalWithOption(jsonEvent{
		Seq:       ev.Seq,
		Time:      ev.Time.Format(time.RFC3339Nano),
		Kind:      ev.Kind.String(),
		Scope:     ev.Scope.String(),
		SpanID:    ev.SpanID,
		ParentID:  ev.ParentID,
		Stage:     ev.Stage,
		File:      ev.File,
		Name:      ev.Name,
		Detail:    ev.Detail,
		ElapsedUS: ev.Elapsed.Microseconds(),
		Attrs:     ev.Attrs,
	}, json.DisableHTMLEscape())
	if err != nil {
		// только строки и числа
		return nil
	}
	return append(data, '\n')
}

var textMarks = [...]string{
	KindBegin:     "→ ",
	KindEnd:       "← ",
	KindPoint:     "• ",
	KindHeartbeat: "♡ ",
}

// encodeText: "#seq [отступ]метка stage file name (detail) elapsed {k=v}".
func encodeText(ev *Event) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%06d ", ev.Seq)
	if ev.Scope == ScopeFile {
		sb.WriteString("  ")
	}
	if int(ev.Kind) < len(textMarks) {
		sb.WriteString(textMarks[ev.Kind])
	}
	sb.WriteString(ev.label())
	if ev.Detail != "" {
		sb.WriteString(" (" + ev.Detail + ")")
	}
	if ev.Kind == KindEnd {
		sb.WriteString(" " + ev.Elapsed.Round(time.Microsecond).String())
	}
	if len(ev.Attrs) > 0 {
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(ev.Attrs)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k + "=" + ev.Attrs[k])
		}
		sb.WriteString("}")
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
