// Rotary encoder decoding: table-driven quadrature plus a debounced
// pushbutton.
package core

import "time"

// quadTable maps (previous phase << 2 | current phase) to a position
// delta. Valid clockwise gray-code steps (00-01-11-10-00) give +1,
// counter-clockwise gives -1. Identical phases give 0. The four
// impossible two-bit jumps also give 0, so electrical noise or a missed
// sample can never corrupt the position by more than a skipped detent.
var quadTable = [16]int8{
	0b0001: +1,
	0b0111: +1,
	0b1110: +1,
	0b1000: +1,
	0b0010: -1,
	0b1011: -1,
	0b1101: -1,
	0b0100: -1,
}

// Encoder tracks a 2-bit quadrature signal and the encoder pushbutton.
type Encoder struct {
	input     InputDriver
	lastPhase uint8
	position  int
	button    Debouncer
}

// NewEncoder returns an encoder reading through input. The pushbutton
// uses its own debouncer with the given window.
func NewEncoder(input InputDriver, window time.Duration) *Encoder {
	return &Encoder{
		input:     input,
		lastPhase: input.ReadEncoderPhase() & 0x3,
		button:    NewDebouncer(window),
	}
}

// Poll samples the quadrature phase and the button once. delta is -1, 0
// or +1; btn and btnOK report a committed button transition the same way
// Debouncer.Sample does.
func (e *Encoder) Poll(now time.Time) (delta int, btn Transition, btnOK bool) {
	phase := e.input.ReadEncoderPhase() & 0x3
	if phase != e.lastPhase {
		d := quadTable[e.lastPhase<<2|phase]
		if d == 0 {
			// Non-adjacent gray code jump: noise or a missed sample.
			RecordTrace(EvtEncInvalid, 0, int32(e.lastPhase)<<2|int32(phase))
		} else {
			delta = int(d)
			e.position += delta
			RecordTrace(EvtEncTurn, 0, int32(delta))
		}
		e.lastPhase = phase
	}

	btn, btnOK = e.button.Sample(e.input.ReadEncoderButton(), now)
	return delta, btn, btnOK
}

// Position returns the cumulative detent count since construction.
func (e *Encoder) Position() int {
	return e.position
}
