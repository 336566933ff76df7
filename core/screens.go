// Screen management: named key layouts cycled with the encoder.
package core

// Screen is one key layout: a display name, a label per key, and an
// optional per-key tone. A zero note means the key uses the default beep.
type Screen struct {
	Name   string
	Labels [NumKeys]string
	Notes  [NumKeys]uint16
}

// MusicScreen maps the keys to one chromatic octave.
func MusicScreen() Screen {
	s := Screen{Name: "Music"}
	names := [NumKeys]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for i := 0; i < NumKeys; i++ {
		s.Labels[i] = names[i]
		s.Notes[i] = Notes[i]
	}
	return s
}

// ScreenManager holds the ordered screen list and the current selection.
type ScreenManager struct {
	screens []Screen
	current int
}

// NewScreenManager returns a manager over the given screens.
func NewScreenManager(screens []Screen) *ScreenManager {
	return &ScreenManager{screens: screens}
}

// Current returns the active screen, or nil when none are configured.
func (m *ScreenManager) Current() *Screen {
	if len(m.screens) == 0 {
		return nil
	}
	return &m.screens[m.current]
}

// Name returns the active screen's name, or a placeholder.
func (m *ScreenManager) Name() string {
	if s := m.Current(); s != nil {
		return s.Name
	}
	return "no screens"
}

// Change moves the selection by delta, wrapping at both ends.
func (m *ScreenManager) Change(delta int) {
	n := len(m.screens)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
}

// KeyFreq returns the tone frequency for key k on the active screen, or
// 0 when the screen does not assign one.
func (m *ScreenManager) KeyFreq(k uint8) uint16 {
	s := m.Current()
	if s == nil || int(k) >= NumKeys {
		return 0
	}
	return s.Notes[k]
}
