// Hardware abstraction interfaces for the macropad runtime.
// Platform-specific implementations live under targets/; tests use fakes.
// Each component receives only the driver it needs at construction time,
// so no component can reach a peripheral it does not own.
package core

// NumKeys is the number of key switches on the pad.
const NumKeys = 12

// NumPixels is the number of addressable LEDs, one under each key.
const NumPixels = 12

// InputDriver reads the raw input hardware. All reads are instantaneous
// digital samples; debouncing and decoding happen in core.
type InputDriver interface {
	// ReadKey returns the logical level of key i in [0,NumKeys):
	// true while the switch is held down. Implementations invert
	// active-low wiring so core never sees pin polarity.
	ReadKey(i int) bool

	// ReadEncoderPhase returns the 2-bit quadrature code (A<<1 | B).
	ReadEncoderPhase() uint8

	// ReadEncoderButton returns true while the encoder push switch is held.
	ReadEncoderButton() bool
}

// PixelDriver writes the LED ring. Writes may be batched by the hardware;
// a failed write is dropped for the tick and retried naturally on the next.
type PixelDriver interface {
	// WritePixels pushes all pixel colors to the hardware. len(px) is
	// always NumPixels.
	WritePixels(px []RGB) error

	// SetBrightness scales all subsequent writes, 0.0 (off) to 1.0 (full).
	SetBrightness(level float32)
}

// ToneDriver controls the single speaker channel. Both calls must return
// without waiting for any physical process.
type ToneDriver interface {
	// Start begins emitting a tone at the given frequency, replacing any
	// tone already sounding.
	Start(freqHz uint16) error

	// Stop silences the speaker. Safe to call when already silent.
	Stop() error
}

// DisplayDriver updates the status display. Best-effort: errors are
// ignored by callers and the runtime works with a nil display.
type DisplayDriver interface {
	WriteLine(row int, text string) error
}
