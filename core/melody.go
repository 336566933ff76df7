// Note tables and the non-blocking melody player.
package core

import "time"

// Notes is the chromatic scale C4..C6 in Hz. Key i on a music screen
// plays Notes[i].
var Notes = [25]uint16{
	262, 277, 294, 311, 330, 349, 370, 392, 415, 440, 466, 494, // C4-B4
	523, 554, 587, 622, 659, 698, 740, 784, 831, 880, 932, 988, // C5-B5
	1047, // C6
}

// Step is one melody element. Freq 0 is a rest.
type Step struct {
	Freq uint16
	Dur  time.Duration
}

// Melody is an ordered tone sequence.
type Melody []Step

// StartupMelody plays once at boot when enabled in the config.
var StartupMelody = Melody{
	{660, 100 * time.Millisecond}, {660, 100 * time.Millisecond},
	{0, 100 * time.Millisecond}, {660, 100 * time.Millisecond},
	{0, 100 * time.Millisecond}, {520, 100 * time.Millisecond},
	{660, 100 * time.Millisecond}, {0, 100 * time.Millisecond},
	{784, 150 * time.Millisecond}, {0, 150 * time.Millisecond},
	{392, 150 * time.Millisecond},
}

// noteGap separates consecutive melody notes so repeated pitches are
// audible as distinct notes.
const noteGap = 20 * time.Millisecond

// MelodyPlayer feeds a melody through the tone scheduler one step at a
// time. Each Update hands the scheduler the next step only when the
// previous one has elapsed, so playback never stalls the loop.
type MelodyPlayer struct {
	tones   *ToneScheduler
	steps   Melody
	next    int
	playing bool
	inGap   bool
}

// NewMelodyPlayer returns a player driving tones.
func NewMelodyPlayer(tones *ToneScheduler) *MelodyPlayer {
	return &MelodyPlayer{tones: tones}
}

// Play starts a melody from its first step, replacing any melody in
// progress. The first note sounds on this call.
func (m *MelodyPlayer) Play(mel Melody, now time.Time) {
	if len(mel) == 0 {
		return
	}
	m.steps = mel
	m.next = 0
	m.playing = true
	m.inGap = false
	m.advance(now)
}

// Stop abandons the current melody. The note already sounding runs out
// through the tone scheduler as usual.
func (m *MelodyPlayer) Stop() {
	m.playing = false
}

// Playing reports whether a melody is in progress.
func (m *MelodyPlayer) Playing() bool {
	return m.playing
}

// Update advances to the next step once the scheduler is free.
func (m *MelodyPlayer) Update(now time.Time) {
	if !m.playing || m.tones.Busy(now) {
		return
	}
	if m.next >= len(m.steps) {
		m.playing = false
		return
	}
	if !m.inGap {
		// Rest between notes before the next one starts.
		m.inGap = true
		m.tones.Trigger(0, noteGap, now)
		return
	}
	m.advance(now)
}

func (m *MelodyPlayer) advance(now time.Time) {
	s := m.steps[m.next]
	m.next++
	m.inGap = false
	m.tones.Trigger(s.Freq, s.Dur, now)
	if m.next >= len(m.steps) {
		// Nothing left to queue after this step finishes.
		m.playing = false
	}
}
