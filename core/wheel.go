package core

// RGB is one pixel color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Wheel maps a position on a 0-255 color wheel to an RGB color. The
// colors are a transition red -> green -> blue and back to red, in three
// linear segments of 85 steps each. Total over the whole input range:
// every uint8 maps to a color.
func Wheel(pos uint8) RGB {
	pos = 255 - pos
	switch {
	case pos < 85:
		return RGB{R: 255 - pos*3, G: 0, B: pos * 3}
	case pos < 170:
		pos -= 85
		return RGB{R: 0, G: pos * 3, B: 255 - pos*3}
	default:
		pos -= 170
		return RGB{R: pos * 3, G: 255 - pos*3, B: 0}
	}
}
