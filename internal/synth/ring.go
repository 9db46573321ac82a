package synth

import "sync"

// Ring records the most recent oscillator samples into a fixed-capacity
// circular buffer so the renderer can draw a trace of what is currently
// playing. The audio goroutine writes, the render loop snapshots; one lock
// guards both the contents and the cursor, and both critical sections stay
// O(1) in writer cost so the audio goroutine never stalls.
type Ring struct {
	mu     sync.RWMutex
	buf    []float64
	cursor int
}

func NewRing(capacity int) *Ring {
	return &Ring{buf: make([]float64, capacity)}
}

func (r *Ring) Capacity() int { return len(r.buf) }

// Write appends one sample at the cursor, overwriting the oldest entry.
func (r *Ring) Write(sample float64) {
	r.mu.Lock()
	r.buf[r.cursor] = sample
	r.cursor++
	if r.cursor >= len(r.buf) {
		r.cursor = 0
	}
	r.mu.Unlock()
}

// Snapshot returns a copy of the buffer in chronological order, oldest
// sample first. The cursor points at the oldest entry, so the copy starts
// there and wraps.
func (r *Ring) Snapshot() []float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]float64, len(r.buf))
	n := copy(out, r.buf[r.cursor:])
	copy(out[n:], r.buf[:r.cursor])
	return out
}
