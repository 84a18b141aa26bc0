package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Tracer receives trace events. Implementations are safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
}

// Config describes the --trace flags.
type Config struct {
	Level  Level
	Format Format
	// Path is the output file; "" and "-" mean stderr.
	Path string
}

// ringSize is how many events LevelError keeps for the failure dump.
const ringSize = 4096

// Recorder is the Tracer behind --trace. It writes events as they come, or
// at LevelError holds them for DumpOnError. It also tracks open spans for
// the heartbeat.
type Recorder struct {
	level  Level
	format Format

	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	seq    uint64
	ring   *ring
	open   map[uint64]openSpan
}

type openSpan struct {
	scope Scope
	label string
	since time.Time
}

// New opens the output named by cfg.
func New(cfg Config) (*Recorder, error) {
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.Path, ".ndjson") || strings.HasSuffix(cfg.Path, ".jsonl") {
			format = FormatNDJSON
		}
	}
	if cfg.Path == "" || cfg.Path == "-" {
		return newRecorder(os.Stderr, cfg.Level, format), nil
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open trace output: %w", err)
	}
	r := newRecorder(f, cfg.Level, format)
	r.closer = f
	return r, nil
}

func newRecorder(w io.Writer, level Level, format Format) *Recorder {
	if format == FormatAuto {
		format = FormatText
	}
	r := &Recorder{level: level, format: format, w: w, open: make(map[uint64]openSpan)}
	if level == LevelError {
		r.ring = newRing(ringSize)
	}
	return r
}

// Emit numbers ev and writes it, or stores it in the ring at LevelError.
func (r *Recorder) Emit(ev *Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	ev.Seq = r.seq
	r.track(ev)
	if r.ring != nil {
		r.ring.push(*ev)
		return
	}
	// сбой записи трассы не должен ронять команду
	_, _ = r.w.Write(encode(ev, r.format))
}

func (r *Recorder) track(ev *Event) {
	switch ev.Kind {
	case KindBegin:
		r.open[ev.SpanID] = openSpan{scope: ev.Scope, label: ev.label(), since: ev.Time}
	case KindEnd:
		delete(r.open, ev.SpanID)
	}
}

// Level returns the configured level.
func (r *Recorder) Level() Level { return r.level }

// Flush flushes a buffered output.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes an output file opened by New.
func (r *Recorder) Close() error {
	err := r.Flush()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
	}
	return err
}

// DumpOnError prints the events held at LevelError. Other tracers and levels
// have nothing held back, so the call is a no-op for them.
func DumpOnError(t Tracer) error {
	r, ok := t.(*Recorder)
	if !ok || r.ring == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.ring.drain() {
		if _, err := r.w.Write(encode(&ev, r.format)); err != nil {
			return err
		}
	}
	return nil
}
