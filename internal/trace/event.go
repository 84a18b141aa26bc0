package trace

import (
	"strings"
	"time"
)

// Kind is the type of a trace event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
	KindHeartbeat
)

var kindNames = [...]string{
	KindBegin:     "begin",
	KindEnd:       "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope tells which part of a run an event belongs to.
type Scope uint8

const (
	ScopeRun   Scope = iota + 1 // команда целиком, heartbeat
	ScopeStage                  // extract, compile, compile-folder, verify
	ScopeFile                   // один исходник или одна локаль
)

var scopeNames = [...]string{
	ScopeRun:   "run",
	ScopeStage: "stage",
	ScopeFile:  "file",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Stage and File are inherited from the enclosing
// spans: a point inside a file span of the extract stage names both.
type Event struct {
	Seq      uint64
	Time     time.Time
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	Stage    string
	File     string
	// Name labels points and heartbeats.
	Name   string
	Detail string
	// Elapsed is set on KindEnd.
	Elapsed time.Duration
	Attrs   map[string]string
}

// label is "<stage> <file> <name>" without the empty parts.
func (ev *Event) label() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{ev.Stage, ev.File, ev.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
