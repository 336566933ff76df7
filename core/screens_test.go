package core

import "testing"

func threeScreens() []Screen {
	return []Screen{
		{Name: "Macros"},
		MusicScreen(),
		{Name: "Media"},
	}
}

func TestScreenChangeWraps(t *testing.T) {
	m := NewScreenManager(threeScreens())

	if m.Name() != "Macros" {
		t.Fatalf("initial screen = %q", m.Name())
	}
	m.Change(1)
	if m.Name() != "Music" {
		t.Errorf("after +1: %q", m.Name())
	}
	m.Change(2)
	if m.Name() != "Macros" {
		t.Errorf("after wrap forward: %q", m.Name())
	}
	m.Change(-1)
	if m.Name() != "Media" {
		t.Errorf("after wrap backward: %q", m.Name())
	}
	m.Change(-7) // any magnitude wraps
	if m.Name() != "Music" {
		t.Errorf("after -7: %q", m.Name())
	}
}

func TestScreenKeyFreq(t *testing.T) {
	m := NewScreenManager(threeScreens())

	// The macro screen assigns no notes.
	if f := m.KeyFreq(0); f != 0 {
		t.Errorf("macro screen key 0 freq = %d", f)
	}
	m.Change(1)
	if f := m.KeyFreq(0); f != Notes[0] {
		t.Errorf("music screen key 0 freq = %d, want %d", f, Notes[0])
	}
	if f := m.KeyFreq(11); f != Notes[11] {
		t.Errorf("music screen key 11 freq = %d, want %d", f, Notes[11])
	}
}

func TestScreenEmptyManager(t *testing.T) {
	m := NewScreenManager(nil)
	if m.Current() != nil {
		t.Error("Current on empty manager")
	}
	if m.Name() != "no screens" {
		t.Errorf("Name = %q", m.Name())
	}
	m.Change(1) // must not panic
	if m.KeyFreq(3) != 0 {
		t.Error("KeyFreq on empty manager")
	}
}

func TestEncoderModesToggle(t *testing.T) {
	var modes []EncoderMode
	m := EncoderModes{OnMode: func(mode EncoderMode) { modes = append(modes, mode) }}

	if m.Mode() != ModeVolume {
		t.Fatal("initial mode not volume")
	}
	m.HandleButton(Pressed)
	m.HandleButton(Released) // release never toggles
	m.HandleButton(Pressed)

	if len(modes) != 2 || modes[0] != ModeScreen || modes[1] != ModeVolume {
		t.Errorf("mode sequence = %v", modes)
	}
}

func TestEncoderModesRouting(t *testing.T) {
	var vol, scr []int
	m := EncoderModes{
		OnVolume: func(d int) { vol = append(vol, d) },
		OnScreen: func(d int) { scr = append(scr, d) },
	}

	m.HandleDelta(1)
	m.HandleDelta(0) // zero deltas are dropped
	m.HandleDelta(-2)
	m.HandleButton(Pressed)
	m.HandleDelta(1)

	if len(vol) != 2 || vol[0] != 1 || vol[1] != -2 {
		t.Errorf("volume deltas = %v", vol)
	}
	if len(scr) != 1 || scr[0] != 1 {
		t.Errorf("screen deltas = %v", scr)
	}
}
