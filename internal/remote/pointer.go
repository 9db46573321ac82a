package remote

import "sync/atomic"

// Pointer is the most recent position reported by the hand tracker,
// shared between the listener goroutine (writer) and the game loop
// (reader). Each field is individually atomic; being a frame stale is
// acceptable for a pointing device.
type Pointer struct {
	x      atomic.Int64
	y      atomic.Int64
	active atomic.Bool
	seen   atomic.Bool
}

// Set publishes a new pointer sample.
func (p *Pointer) Set(x, y int, active bool) {
	p.x.Store(int64(x))
	p.y.Store(int64(y))
	p.active.Store(active)
	p.seen.Store(true)
}

func (p *Pointer) Position() (x, y int) {
	return int(p.x.Load()), int(p.y.Load())
}

// Active reports whether the tracked hand is currently pinching, the
// remote equivalent of a held mouse button.
func (p *Pointer) Active() bool { return p.active.Load() }

// Seen reports whether any well-formed packet has arrived yet.
func (p *Pointer) Seen() bool { return p.seen.Load() }
