//go:build rp2040

package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"gopad/core"
)

// NeoPixels implements core.PixelDriver over the WS2812 ring using a
// PIO state machine with DMA, so a full strip write costs one FIFO push
// and never stalls the loop.
type NeoPixels struct {
	ws    *piolib.WS2812B
	scale uint32 // brightness as a 0..256 fixed-point multiplier
	raw   [core.NumPixels]uint32
}

// NewNeoPixels claims a PIO0 state machine for the given data pin.
func NewNeoPixels(pin machine.Pin) (*NeoPixels, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	ws.EnableDMA(true)
	return &NeoPixels{ws: ws, scale: 256}, nil
}

func (n *NeoPixels) SetBrightness(level float32) {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	n.scale = uint32(level * 256)
}

// WritePixels scales for brightness, packs the WS2812B GRB wire words
// and pushes the whole strip in one raw write.
func (n *NeoPixels) WritePixels(px []core.RGB) error {
	for i := range px {
		r := uint32(px[i].R) * n.scale >> 8
		g := uint32(px[i].G) * n.scale >> 8
		b := uint32(px[i].B) * n.scale >> 8
		n.raw[i] = g<<24 | r<<16 | b<<8
	}
	return n.ws.WriteRaw(n.raw[:])
}

var _ core.PixelDriver = (*NeoPixels)(nil)
