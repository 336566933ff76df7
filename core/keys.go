// Key input handling: 12 debounced switches producing discrete events.
package core

import "time"

// KeyEvent is a committed press or release on one key. Events are
// one-shot and process-local; nothing is persisted.
type KeyEvent struct {
	Key        uint8
	Transition Transition
	Time       time.Time
}

// Keypad owns one debouncer per key and turns raw switch levels into
// KeyEvents. Keys are scanned in fixed index order 0..NumKeys-1, so
// simultaneous presses always yield events in index order.
type Keypad struct {
	input  InputDriver
	deb    [NumKeys]Debouncer
	events []KeyEvent
}

// NewKeypad returns a keypad reading through input with the given
// debounce window.
func NewKeypad(input InputDriver, window time.Duration) *Keypad {
	k := &Keypad{
		input:  input,
		events: make([]KeyEvent, 0, NumKeys),
	}
	for i := range k.deb {
		k.deb[i] = NewDebouncer(window)
	}
	return k
}

// Poll samples every key once and returns the events committed this tick.
// The returned slice is reused on the next call.
func (k *Keypad) Poll(now time.Time) []KeyEvent {
	k.events = k.events[:0]
	for i := 0; i < NumKeys; i++ {
		tr, ok := k.deb[i].Sample(k.input.ReadKey(i), now)
		if !ok {
			continue
		}
		k.events = append(k.events, KeyEvent{Key: uint8(i), Transition: tr, Time: now})
		if tr == Pressed {
			RecordTrace(EvtKeyDown, uint8(i), 0)
		} else {
			RecordTrace(EvtKeyUp, uint8(i), 0)
		}
	}
	return k.events
}

// Held reports whether key i is currently held down (debounced).
func (k *Keypad) Held(i int) bool {
	return k.deb[i].Stable()
}
