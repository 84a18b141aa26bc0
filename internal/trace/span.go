package trace

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"
)

var spanIDs atomic.Uint64

// Span is an open stage or file span. All methods accept a nil receiver.
type Span struct {
	t      Tracer
	id     uint64
	parent uint64
	scope  Scope
	stage  string
	file   string
	start  time.Time
	attrs  map[string]string
}

// Stage opens a span for one pipeline stage and returns a context that
// carries it.
func Stage(ctx context.Context, name string) (*Span, context.Context) {
	return open(ctx, ScopeStage, name, "")
}

// File opens a span for one file or locale handled inside the current stage.
func File(ctx context.Context, path string) (*Span, context.Context) {
	stage := ""
	if p := spanFrom(ctx); p != nil {
		stage = p.stage
	}
	return open(ctx, ScopeFile, stage, path)
}

func open(ctx context.Context, scope Scope, stage, file string) (*Span, context.Context) {
	t := FromContext(ctx)
	if !t.Level().records(scope) {
		return nil, ctx
	}
	s := &Span{
		t:     t,
		id:    spanIDs.Add(1),
		scope: scope,
		stage: stage,
		file:  file,
		start: time.Now(),
	}
	if p := spanFrom(ctx); p != nil {
		s.parent = p.id
	}
	t.Emit(s.event(KindBegin, s.start))
	return s, context.WithValue(ctx, spanKey{}, s)
}

func (s *Span) event(kind Kind, at time.Time) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Stage:    s.stage,
		File:     s.file,
	}
}

// Set records an attribute printed with the end event.
func (s *Span) Set(key, value string) *Span {
	if s == nil {
		return nil
	}
	if s.attrs == nil {
		s.attrs = make(map[string]string)
	}
	s.attrs[key] = value
	return s
}

// Count is Set for integer attributes.
func (s *Span) Count(key string, n int) *Span {
	if s == nil {
		return nil
	}
	return s.Set(key, strconv.Itoa(n))
}

// Point emits an instant event inside the span.
func (s *Span) Point(name, detail string) {
	if s == nil {
		return
	}
	ev := s.event(KindPoint, time.Now())
	ev.SpanID, ev.ParentID = 0, s.id
	ev.Name, ev.Detail = name, detail
	s.t.Emit(ev)
}

// End closes the span and returns its duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil {
		return 0
	}
	now := time.Now()
	ev := s.event(KindEnd, now)
	ev.Detail = detail
	ev.Elapsed = now.Sub(s.start)
	ev.Attrs = s.attrs
	s.t.Emit(ev)
	return ev.Elapsed
}

// ID returns the span id, 0 for a nil span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
