// The main tick loop. One Step polls every input, routes events, and
// runs each component's time-gated update exactly once. No step blocks;
// components that want a slower rate gate themselves on elapsed time.
package core

import (
	"errors"
	"runtime"
	"time"
)

// Drivers bundles the hardware interfaces the runtime hands out to its
// components. Input, Pixels and Tone are required; Display may be nil.
type Drivers struct {
	Input   InputDriver
	Pixels  PixelDriver
	Tone    ToneDriver
	Display DisplayDriver
}

// Runtime owns the component graph and drives one tick at a time.
type Runtime struct {
	cfg Config

	keys    *Keypad
	enc     *Encoder
	effect  *RainbowEffect
	tones   *ToneScheduler
	player  *MelodyPlayer
	screens *ScreenManager
	modes   *EncoderModes

	pixels      PixelDriver
	display     DisplayDriver
	displayGate Gate
	brightness  float32
	statusDirty bool

	clock func() time.Time
}

// NewRuntime validates the config and wires the components. This is the
// only place a configuration error can surface; the running loop never
// sees one.
func NewRuntime(cfg Config, drv Drivers, screens []Screen) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if drv.Input == nil || drv.Pixels == nil || drv.Tone == nil {
		return nil, errors.New("runtime: input, pixel and tone drivers are required")
	}

	tones := NewToneScheduler(drv.Tone)
	r := &Runtime{
		cfg:         cfg,
		keys:        NewKeypad(drv.Input, cfg.DebounceWindow),
		enc:         NewEncoder(drv.Input, cfg.DebounceWindow),
		effect:      NewRainbowEffect(drv.Pixels, cfg),
		tones:       tones,
		player:      NewMelodyPlayer(tones),
		screens:     NewScreenManager(screens),
		pixels:      drv.Pixels,
		display:     drv.Display,
		displayGate: NewGate(cfg.DisplayInterval),
		brightness:  cfg.Brightness,
		statusDirty: true,
		clock:       time.Now,
	}
	r.modes = &EncoderModes{
		OnVolume: func(delta int) {
			r.setBrightness(r.brightness + float32(delta)*cfg.BrightnessStep)
		},
		OnScreen: func(delta int) {
			r.screens.Change(delta)
			r.statusDirty = true
			DebugPrintln("ev screen name=" + r.screens.Name())
		},
		OnMode: func(m EncoderMode) {
			r.statusDirty = true
			DebugPrintln("ev mode val=" + m.String())
		},
	}
	drv.Pixels.SetBrightness(r.brightness)
	return r, nil
}

// SetClock replaces the time source. Tests inject a fake clock here.
func (r *Runtime) SetClock(clock func() time.Time) {
	r.clock = clock
}

// Screens exposes the screen manager (the display and host tooling read
// the current layout through it).
func (r *Runtime) Screens() *ScreenManager {
	return r.screens
}

// Brightness returns the current pixel level.
func (r *Runtime) Brightness() float32 {
	return r.brightness
}

func (r *Runtime) setBrightness(level float32) {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	if level == r.brightness {
		return
	}
	r.brightness = level
	r.pixels.SetBrightness(level)
	// Force a pixel rewrite so the new level is visible immediately.
	r.effect.Invalidate()
	r.statusDirty = true
}

// Step runs one tick: poll keys, poll encoder, route events, then the
// time-gated updates, in that fixed order. An event is therefore
// reflected on the LEDs and speaker no later than the tick after it is
// detected.
func (r *Runtime) Step(now time.Time) {
	events := r.keys.Poll(now)
	delta, btn, btnOK := r.enc.Poll(now)

	for i := range events {
		ev := events[i]
		r.effect.OnKeyEvent(ev)
		if ev.Transition == Pressed {
			freq := r.screens.KeyFreq(ev.Key)
			if freq == 0 {
				freq = r.cfg.ToneFreq
			}
			r.player.Stop()
			r.tones.Trigger(freq, r.cfg.ToneDuration, now)
		}
		DebugPrintln("ev key=" + itoa(int(ev.Key)) + " act=" + ev.Transition.String())
	}

	if btnOK {
		r.modes.HandleButton(btn)
		if btn == Pressed {
			DebugPrintln("ev encbtn act=down")
		}
	}
	if delta != 0 {
		r.modes.HandleDelta(delta)
		r.statusDirty = true
		DebugPrintln("ev enc delta=" + itoa(delta) + " pos=" + itoa(r.enc.Position()))
	}

	r.effect.Update(now)
	r.tones.Update(now)
	r.player.Update(now)
	r.updateDisplay(now)
}

// updateDisplay refreshes the status lines, rate-gated and only when
// something changed. Display errors are dropped; the display is
// best-effort.
func (r *Runtime) updateDisplay(now time.Time) {
	if r.display == nil || !r.statusDirty || !r.displayGate.Ready(now) {
		return
	}
	r.display.WriteLine(0, r.screens.Name()+" ["+r.modes.Mode().String()+"]")
	r.display.WriteLine(1, "pos "+itoa(r.enc.Position()))
	r.statusDirty = false
}

// Run loops Step until stop is closed. The loop never sleeps; it yields
// the scheduler each pass so platform goroutines (USB, serial) keep
// running.
func (r *Runtime) Run(stop <-chan struct{}) {
	if r.cfg.StartupMelody {
		r.player.Play(StartupMelody, r.clock())
	}
	for {
		select {
		case <-stop:
			return
		default:
		}
		r.Step(r.clock())
		runtime.Gosched()
	}
}
