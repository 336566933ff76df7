package main

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"gopad/host/events"
)

const midiChannel = 0

// midiBridge exposes the pad as a MIDI note source: key i maps to
// C4 + i, press is NoteOn, release is NoteOff.
type midiBridge struct {
	drv  *rtmididrv.Driver
	out  drivers.Out
	send func(gomidi.Message) error
}

// newMIDIBridge opens the first MIDI output whose name contains the
// given substring (case-insensitive).
func newMIDIBridge(portName string) (*midiBridge, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	var out drivers.Out
	for _, o := range outs {
		if strings.Contains(strings.ToLower(o.String()), strings.ToLower(portName)) {
			out = o
			break
		}
	}
	if out == nil {
		drv.Close()
		return nil, fmt.Errorf("no MIDI output matching %q (have %d ports)", portName, len(outs))
	}

	send, err := gomidi.SendTo(out)
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("open output %s: %w", out.String(), err)
	}
	return &midiBridge{drv: drv, out: out, send: send}, nil
}

// Handle forwards key events; everything else is ignored.
func (b *midiBridge) Handle(ev events.Event) error {
	if ev.Kind != events.KindKey {
		return nil
	}
	note := uint8(60 + ev.Key) // C4 upward
	if ev.Down {
		return b.send(gomidi.NoteOn(midiChannel, note, 100))
	}
	return b.send(gomidi.NoteOff(midiChannel, note))
}

func (b *midiBridge) Close() error {
	b.drv.Close()
	return nil
}
