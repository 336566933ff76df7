// Dual-mode encoder handling: the push switch toggles what rotation
// controls.
package core

// EncoderMode selects the rotation target.
type EncoderMode uint8

const (
	// ModeVolume: rotation adjusts output level (pixel brightness).
	ModeVolume EncoderMode = iota
	// ModeScreen: rotation cycles through key layout screens.
	ModeScreen
)

func (m EncoderMode) String() string {
	if m == ModeScreen {
		return "screen"
	}
	return "volume"
}

// EncoderModes routes encoder activity to the handler for the active
// mode. Handlers are optional; a nil handler drops the event.
type EncoderModes struct {
	mode EncoderMode

	OnVolume func(delta int)
	OnScreen func(delta int)
	OnMode   func(mode EncoderMode)
}

// Mode returns the active mode.
func (m *EncoderModes) Mode() EncoderMode {
	return m.mode
}

// HandleButton toggles the mode on a committed press. Releases are
// ignored.
func (m *EncoderModes) HandleButton(tr Transition) {
	if tr != Pressed {
		return
	}
	if m.mode == ModeVolume {
		m.mode = ModeScreen
	} else {
		m.mode = ModeVolume
	}
	if m.OnMode != nil {
		m.OnMode(m.mode)
	}
}

// HandleDelta routes a rotation delta to the active mode's handler.
func (m *EncoderModes) HandleDelta(delta int) {
	if delta == 0 {
		return
	}
	switch m.mode {
	case ModeVolume:
		if m.OnVolume != nil {
			m.OnVolume(delta)
		}
	case ModeScreen:
		if m.OnScreen != nil {
			m.OnScreen(delta)
		}
	}
}
