//go:build rp2040

package main

import (
	"machine"

	"gopad/core"
)

// PadInput implements core.InputDriver over the board's GPIO. All pins
// are pull-up inputs; the driver inverts them so core sees true while a
// switch is held.
type PadInput struct{}

// NewPadInput configures the key, encoder and button pins.
func NewPadInput() *PadInput {
	for _, p := range keyPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	pinEncoderA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinEncoderB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinEncoderButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &PadInput{}
}

func (in *PadInput) ReadKey(i int) bool {
	return !keyPins[i].Get()
}

func (in *PadInput) ReadEncoderPhase() uint8 {
	var phase uint8
	if !pinEncoderA.Get() {
		phase |= 0x2
	}
	if !pinEncoderB.Get() {
		phase |= 0x1
	}
	return phase
}

func (in *PadInput) ReadEncoderButton() bool {
	return !pinEncoderButton.Get()
}

var _ core.InputDriver = (*PadInput)(nil)
