package trace

// ring keeps the newest len(buf) events.
type ring struct {
	buf   []Event
	first int
	n     int
}

func newRing(size int) *ring {
	return &ring{buf: make([]Event, size)}
}

func (r *ring) push(ev Event) {
	if len(r.buf) == 0 {
		return
	}
	if r.n < len(r.buf) {
		r.buf[(r.first+r.n)%len(r.buf)] = ev
		r.n++
		return
	}
	// полный буфер: затираем самое старое
	r.buf[r.first] = ev
	r.first = (r.first + 1) % len(r.buf)
}

// drain returns the events oldest first and empties the ring.
func (r *ring) drain() []Event {
	out := make([]Event, r.n)
	for i := range out {
		out[i] = r.buf[(r.first+i)%len(r.buf)]
	}
	r.first, r.n = 0, 0
	return out
}
