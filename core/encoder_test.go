package core

import "testing"

// cwCycle is one full clockwise quadrature cycle after phase 0.
var cwCycle = []uint8{0b01, 0b11, 0b10, 0b00}

func TestEncoderClockwiseCycle(t *testing.T) {
	in := &fakeInput{}
	e := NewEncoder(in, testWindow)

	sum := 0
	for i, phase := range cwCycle {
		in.phase = phase
		delta, _, _ := e.Poll(at(i))
		if delta != 1 {
			t.Errorf("step %d: delta = %d, want 1", i, delta)
		}
		sum += delta
	}
	if sum != 4 || e.Position() != 4 {
		t.Errorf("full CW cycle: sum=%d position=%d, want 4", sum, e.Position())
	}
}

func TestEncoderCounterClockwiseCycle(t *testing.T) {
	in := &fakeInput{}
	e := NewEncoder(in, testWindow)

	for i, phase := range []uint8{0b10, 0b11, 0b01, 0b00} {
		in.phase = phase
		delta, _, _ := e.Poll(at(i))
		if delta != -1 {
			t.Errorf("step %d: delta = %d, want -1", i, delta)
		}
	}
	if e.Position() != -4 {
		t.Errorf("full CCW cycle: position=%d, want -4", e.Position())
	}
}

func TestEncoderInvalidJumpIgnored(t *testing.T) {
	in := &fakeInput{}
	e := NewEncoder(in, testWindow)

	// 00 -> 11 is not an adjacent gray code: noise or a missed sample.
	in.phase = 0b11
	delta, _, _ := e.Poll(at(0))
	if delta != 0 {
		t.Errorf("invalid jump: delta = %d, want 0", delta)
	}
	if e.Position() != 0 {
		t.Errorf("invalid jump moved position to %d", e.Position())
	}

	// Decoding resumes from the new phase.
	in.phase = 0b10
	delta, _, _ = e.Poll(at(1))
	if delta != 1 {
		t.Errorf("after invalid jump: delta = %d, want 1", delta)
	}
}

func TestEncoderIdlePhase(t *testing.T) {
	in := &fakeInput{}
	e := NewEncoder(in, testWindow)

	for i := 0; i < 10; i++ {
		if delta, _, _ := e.Poll(at(i)); delta != 0 {
			t.Fatalf("idle poll %d produced delta %d", i, delta)
		}
	}
}

func TestEncoderButtonDebounced(t *testing.T) {
	in := &fakeInput{}
	e := NewEncoder(in, testWindow)

	in.button = true
	if _, _, ok := e.Poll(at(0)); ok {
		t.Error("button committed before window")
	}
	_, btn, ok := e.Poll(at(15))
	if !ok || btn != Pressed {
		t.Fatalf("expected button press, got (%v, %v)", btn, ok)
	}

	in.button = false
	e.Poll(at(30))
	_, btn, ok = e.Poll(at(45))
	if !ok || btn != Released {
		t.Fatalf("expected button release, got (%v, %v)", btn, ok)
	}
}
