package core

import "time"

// Gate is the shared rate limiter for time-gated components. A component
// calls Ready once per tick and runs its update only when the interval has
// elapsed; otherwise the tick is a no-op for it. This is the only mechanism
// by which components obtain an update rate slower than the loop itself.
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate returns a gate that opens at most once per interval.
func NewGate(interval time.Duration) Gate {
	return Gate{interval: interval}
}

// Ready reports whether the interval has elapsed since the last time it
// returned true, and if so arms the next interval. The first call always
// returns true.
func (g *Gate) Ready(now time.Time) bool {
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}

// Reset forgets the last opening so the next Ready call returns true.
func (g *Gate) Reset() {
	g.last = time.Time{}
}
