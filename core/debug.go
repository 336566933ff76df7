package core

// DebugWriter is a function type for writing diagnostic lines
type DebugWriter func(string)

// TraceEvent captures one input or audio event for post-mortem analysis
type TraceEvent struct {
	Kind  uint8 // Event type code
	Key   uint8 // Key index, when applicable
	Value int32 // Context-dependent value
}

// Event type codes
const (
	EvtKeyDown    = 1 // key press committed
	EvtKeyUp      = 2 // key release committed
	EvtEncTurn    = 3 // encoder detent (value = delta)
	EvtEncInvalid = 4 // impossible quadrature jump (value = prev<<2|cur)
	EvtToneStart  = 5 // tone started (value = freq)
	EvtToneStop   = 6 // tone stopped
	EvtToneDrop   = 7 // trigger dropped, hardware refused start
)

const (
	TraceRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	// Disabled by default; the target enables it for the host monitor
	debugEnabled bool = false

	// Trace capture ring buffer (non-blocking, for post-mortem)
	traceRing     [TraceRingSize]TraceEvent
	traceRingHead uint8
	traceEnabled  bool = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect output to USB CDC, UART, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a diagnostic line using the platform writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordTrace captures an event in the ring buffer
// Always non-blocking and cheap enough for the tick path
func RecordTrace(kind, key uint8, value int32) {
	if !traceEnabled {
		return
	}
	idx := traceRingHead
	traceRing[idx] = TraceEvent{Kind: kind, Key: key, Value: value}
	traceRingHead = (idx + 1) % TraceRingSize
}

// DumpTraceRing outputs the trace buffer, oldest first (call on shutdown
// or from a diagnostic command, not from the tick path)
func DumpTraceRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TRACE] === Trace Ring Dump ===")
	start := traceRingHead
	for i := uint8(0); i < TraceRingSize; i++ {
		idx := (start + i) % TraceRingSize
		evt := &traceRing[idx]
		if evt.Kind == 0 {
			continue // Empty slot
		}

		var name string
		switch evt.Kind {
		case EvtKeyDown:
			name = "KEY_DOWN"
		case EvtKeyUp:
			name = "KEY_UP"
		case EvtEncTurn:
			name = "ENC_TURN"
		case EvtEncInvalid:
			name = "ENC_INVALID"
		case EvtToneStart:
			name = "TONE_START"
		case EvtToneStop:
			name = "TONE_STOP"
		case EvtToneDrop:
			name = "TONE_DROP"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TRACE] " + name +
			" key=" + itoa(int(evt.Key)) +
			" v=" + itoa(int(evt.Value)))
	}
	debugPrintln("[TRACE] === End Dump ===")
}

// ClearTraceRing clears the trace buffer
func ClearTraceRing() {
	for i := range traceRing {
		traceRing[i] = TraceEvent{}
	}
	traceRingHead = 0
}
