//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/tone"

	"gopad/core"
)

// Speaker implements core.ToneDriver over the board's piezo using
// hardware PWM. Start and Stop only touch PWM registers; the tone's
// duration is the scheduler's problem.
type Speaker struct {
	sp tone.Speaker
}

// NewSpeaker configures the speaker PWM slice and raises the amplifier
// shutdown pin.
func NewSpeaker() (*Speaker, error) {
	pinSpeakerEnable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinSpeakerEnable.High()

	// GPIO16 sits on PWM slice 0.
	sp, err := tone.New(machine.PWM0, pinSpeaker)
	if err != nil {
		return nil, err
	}
	return &Speaker{sp: sp}, nil
}

func (s *Speaker) Start(freqHz uint16) error {
	return s.sp.SetPeriod(uint64(1e9) / uint64(freqHz))
}

func (s *Speaker) Stop() error {
	s.sp.Stop()
	return nil
}

var _ core.ToneDriver = (*Speaker)(nil)
