// Non-blocking tone scheduling. The speaker hardware only knows start and
// stop; the bounded duration lives here, checked once per tick, so the
// loop never waits out a tone.
package core

import "time"

// ToneScheduler drives the single speaker channel. At most one tone is
// active at a time; a new trigger pre-empts and replaces a still-active
// one.
type ToneScheduler struct {
	driver   ToneDriver
	active   bool
	sounding bool
	end      time.Time
}

// NewToneScheduler returns a scheduler writing through driver.
func NewToneScheduler(driver ToneDriver) *ToneScheduler {
	return &ToneScheduler{driver: driver}
}

// Trigger starts a tone of bounded duration. freqHz 0 schedules a rest:
// a silent slot that still occupies the channel for dur. If the hardware
// refuses the start, the trigger is dropped; audio is best-effort.
func (t *ToneScheduler) Trigger(freqHz uint16, dur time.Duration, now time.Time) {
	if freqHz == 0 {
		if t.sounding {
			t.driver.Stop()
			t.sounding = false
		}
	} else {
		if err := t.driver.Start(freqHz); err != nil {
			RecordTrace(EvtToneDrop, 0, int32(freqHz))
			return
		}
		t.sounding = true
		RecordTrace(EvtToneStart, 0, int32(freqHz))
	}
	t.active = true
	t.end = now.Add(dur)
}

// Update silences the speaker once the active tone's end time has
// passed. The stop is issued exactly once; further calls are no-ops
// until the next trigger.
func (t *ToneScheduler) Update(now time.Time) {
	if !t.active || now.Before(t.end) {
		return
	}
	if t.sounding {
		t.driver.Stop()
		t.sounding = false
		RecordTrace(EvtToneStop, 0, 0)
	}
	t.active = false
}

// Busy reports whether a tone or rest is still occupying the channel.
func (t *ToneScheduler) Busy(now time.Time) bool {
	return t.active && now.Before(t.end)
}
