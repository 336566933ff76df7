package core

import "testing"

func TestWheelSegmentBoundaries(t *testing.T) {
	cases := []struct {
		pos  uint8
		want RGB
	}{
		{0, RGB{R: 255, G: 0, B: 0}},
		{85, RGB{R: 0, G: 255, B: 0}},
		{170, RGB{R: 0, G: 0, B: 255}},
	}
	for _, c := range cases {
		if got := Wheel(c.pos); got != c.want {
			t.Errorf("Wheel(%d) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestWheelTotal(t *testing.T) {
	// Every input maps to a color with at most two lit channels; the
	// channel sum is constant across each linear segment.
	for pos := 0; pos < 256; pos++ {
		c := Wheel(uint8(pos))
		lit := 0
		if c.R > 0 {
			lit++
		}
		if c.G > 0 {
			lit++
		}
		if c.B > 0 {
			lit++
		}
		if lit > 2 {
			t.Errorf("Wheel(%d) = %v lights all three channels", pos, c)
		}
		if c == (RGB{}) {
			t.Errorf("Wheel(%d) is black", pos)
		}
	}
}

func TestWheelDeterministic(t *testing.T) {
	for pos := 0; pos < 256; pos++ {
		if Wheel(uint8(pos)) != Wheel(uint8(pos)) {
			t.Fatalf("Wheel(%d) not deterministic", pos)
		}
	}
}
