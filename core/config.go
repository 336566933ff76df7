package core

import (
	"errors"
	"time"
)

// Config holds every tunable of the runtime. Values are validated once
// at construction; the running loop never sees an out-of-range value.
type Config struct {
	// DebounceWindow is the minimum time a raw level must hold before a
	// key or button transition commits.
	DebounceWindow time.Duration

	// EffectInterval is the ambient animation period; EffectSpeed is how
	// far the hue offset advances per ambient tick.
	EffectInterval time.Duration
	EffectSpeed    uint8

	// FlashColor and FlashDuration control the per-key press override.
	FlashColor    RGB
	FlashDuration time.Duration

	// ToneFreq is the default key beep when the active screen assigns no
	// note; ToneDuration bounds every key tone.
	ToneFreq     uint16
	ToneDuration time.Duration

	// Brightness is the initial pixel level; BrightnessStep is the
	// change per encoder detent in volume mode.
	Brightness     float32
	BrightnessStep float32

	// DisplayInterval gates status display refreshes.
	DisplayInterval time.Duration

	// StartupMelody plays the boot jingle when true.
	StartupMelody bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DebounceWindow:  15 * time.Millisecond,
		EffectInterval:  50 * time.Millisecond,
		EffectSpeed:     2,
		FlashColor:      RGB{255, 255, 255},
		FlashDuration:   150 * time.Millisecond,
		ToneFreq:        440,
		ToneDuration:    100 * time.Millisecond,
		Brightness:      0.125,
		BrightnessStep:  1.0 / 16,
		DisplayInterval: 100 * time.Millisecond,
		StartupMelody:   true,
	}
}

// Validate rejects configurations the loop could not run with.
func (c Config) Validate() error {
	if c.DebounceWindow <= 0 {
		return errors.New("config: debounce window must be positive")
	}
	if c.EffectInterval <= 0 {
		return errors.New("config: effect interval must be positive")
	}
	if c.EffectSpeed == 0 {
		return errors.New("config: effect speed must be positive")
	}
	if c.FlashDuration <= 0 {
		return errors.New("config: flash duration must be positive")
	}
	if c.ToneFreq == 0 {
		return errors.New("config: tone frequency must be positive")
	}
	if c.ToneDuration <= 0 {
		return errors.New("config: tone duration must be positive")
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		return errors.New("config: brightness must be in [0,1]")
	}
	if c.BrightnessStep <= 0 || c.BrightnessStep > 1 {
		return errors.New("config: brightness step must be in (0,1]")
	}
	if c.DisplayInterval <= 0 {
		return errors.New("config: display interval must be positive")
	}
	return nil
}
