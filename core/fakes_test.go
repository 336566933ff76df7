package core

import "time"

// Test doubles for the driver interfaces. Tests script raw input levels
// and inspect what reached the "hardware".

type fakeInput struct {
	keys   [NumKeys]bool
	phase  uint8
	button bool
}

func (f *fakeInput) ReadKey(i int) bool        { return f.keys[i] }
func (f *fakeInput) ReadEncoderPhase() uint8   { return f.phase }
func (f *fakeInput) ReadEncoderButton() bool   { return f.button }

type fakePixels struct {
	writes     int
	last       [NumPixels]RGB
	brightness float32
	err        error
}

func (f *fakePixels) WritePixels(px []RGB) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	copy(f.last[:], px)
	return nil
}

func (f *fakePixels) SetBrightness(level float32) {
	f.brightness = level
}

type fakeTone struct {
	starts   []uint16
	stops    int
	startErr error
}

func (f *fakeTone) Start(freqHz uint16) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.starts = append(f.starts, freqHz)
	return nil
}

func (f *fakeTone) Stop() error {
	f.stops++
	return nil
}

type fakeDisplay struct {
	lines map[int]string
}

func (f *fakeDisplay) WriteLine(row int, text string) error {
	if f.lines == nil {
		f.lines = map[int]string{}
	}
	f.lines[row] = text
	return nil
}

// at returns a fixed time base offset by ms, so tests read like the
// timing diagrams they check.
func at(ms int) time.Time {
	return time.Unix(1000, 0).Add(time.Duration(ms) * time.Millisecond)
}
