package core

import "time"

// Transition is a committed level change on a debounced input.
type Transition uint8

const (
	Released Transition = iota
	Pressed
)

func (t Transition) String() string {
	if t == Pressed {
		return "down"
	}
	return "up"
}

// Debouncer filters contact bounce out of a raw switch signal. A level
// change is committed only after the raw input has stayed away from the
// stable level for the full window; any reversal inside the window cancels
// the pending change. Each switch owns its own instance - no timer state
// is shared.
type Debouncer struct {
	window       time.Duration
	stable       bool
	pending      bool
	pendingSince time.Time
}

// NewDebouncer returns a debouncer with the given stabilization window.
// The stable level starts released (false).
func NewDebouncer(window time.Duration) Debouncer {
	return Debouncer{window: window}
}

// Sample feeds one raw reading. It returns a transition and true exactly
// once per committed level change, and (0, false) otherwise. O(1), never
// blocks.
func (d *Debouncer) Sample(raw bool, now time.Time) (Transition, bool) {
	if raw == d.stable {
		// Bounce back inside the window cancels the pending flip.
		d.pending = false
		return 0, false
	}
	if !d.pending {
		d.pending = true
		d.pendingSince = now
		return 0, false
	}
	if now.Sub(d.pendingSince) < d.window {
		return 0, false
	}
	d.stable = raw
	d.pending = false
	if raw {
		return Pressed, true
	}
	return Released, true
}

// Stable returns the current debounced level.
func (d *Debouncer) Stable() bool {
	return d.stable
}
