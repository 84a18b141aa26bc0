package trace

import (
	"fmt"
	"sync"
	"time"
)

// Heartbeat emits a pulse at a fixed interval naming the oldest open file
// span, or the oldest stage when no file is open. A file that stays oldest
// across pulses points at a stuck worker.
type Heartbeat struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartHeartbeat starts pulsing into r. It returns nil when every <= 0.
func StartHeartbeat(r *Recorder, every time.Duration) *Heartbeat {
	if r == nil || every <= 0 {
		return nil
	}
	h := &Heartbeat{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(h.done)
		tick := time.NewTicker(every)
		defer tick.Stop()
		for n := 1; ; n++ {
			select {
			case now := <-tick.C:
				r.Emit(&Event{Time: now, Kind: KindHeartbeat, Scope: ScopeRun, Name: "heartbeat", Detail: r.pulse(n, now)})
			case <-h.stop:
				return
			}
		}
	}()
	return h
}

// Stop ends the pulses and waits for the goroutine. Safe to call twice.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}

// pulse описывает открытые span: сколько файлов в работе и кто висит дольше всех.
func (r *Recorder) pulse(n int, now time.Time) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.open) == 0 {
		return fmt.Sprintf("#%d idle", n)
	}
	var (
		oldest openSpan
		files  int
		found  bool
	)
	for _, o := range r.open {
		if o.scope == ScopeFile {
			files++
		}
	}
	for _, o := range r.open {
		if files > 0 && o.scope != ScopeFile {
			continue
		}
		if !found || o.since.Before(oldest.since) {
			oldest, found = o, true
		}
	}
	return fmt.Sprintf("#%d files=%d oldest=%q for %s", n, files, oldest.label, now.Sub(oldest.since).Round(time.Millisecond))
}
