// Package config loads runtime tuning from JSON. Missing values fall
// back to the stock defaults, so a partial file only overrides what it
// names.
package config

import (
	"encoding/json"
	"strconv"
	"time"

	"gopad/core"
)

// fileConfig is the JSON wire form. Durations are milliseconds.
type fileConfig struct {
	DebounceMS       int      `json:"debounce_ms"`
	EffectIntervalMS int      `json:"effect_interval_ms"`
	EffectSpeed      int      `json:"effect_speed"`
	FlashColor       []int    `json:"flash_color"`
	FlashDurationMS  int      `json:"flash_duration_ms"`
	ToneFreqHz       int      `json:"tone_freq_hz"`
	ToneDurationMS   int      `json:"tone_duration_ms"`
	Brightness       float64  `json:"brightness"`
	BrightnessStep   float64  `json:"brightness_step"`
	DisplayMS        int      `json:"display_ms"`
	StartupMelody    *bool    `json:"startup_melody"`
	Screens          []screen `json:"screens"`
}

type screen struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Notes  []int    `json:"notes"`
}

// LoadConfig parses a JSON configuration and returns the runtime config
// plus the screen list. Zero or missing values take their defaults;
// out-of-range values are caught by Validate.
func LoadConfig(jsonData []byte) (core.Config, []core.Screen, error) {
	var fc fileConfig
	if err := json.Unmarshal(jsonData, &fc); err != nil {
		return core.Config{}, nil, err
	}

	cfg := applyDefaults(fc)
	if err := cfg.Validate(); err != nil {
		return core.Config{}, nil, err
	}

	screens := DefaultScreens()
	if len(fc.Screens) > 0 {
		screens = screens[:0]
		for _, s := range fc.Screens {
			screens = append(screens, buildScreen(s))
		}
	}
	return cfg, screens, nil
}

// applyDefaults fills in missing configuration values with the stock
// tuning.
func applyDefaults(fc fileConfig) core.Config {
	cfg := core.DefaultConfig()

	if fc.DebounceMS > 0 {
		cfg.DebounceWindow = time.Duration(fc.DebounceMS) * time.Millisecond
	}
	if fc.EffectIntervalMS > 0 {
		cfg.EffectInterval = time.Duration(fc.EffectIntervalMS) * time.Millisecond
	}
	if fc.EffectSpeed > 0 {
		cfg.EffectSpeed = uint8(fc.EffectSpeed)
	}
	if len(fc.FlashColor) == 3 {
		cfg.FlashColor = core.RGB{
			R: uint8(fc.FlashColor[0]),
			G: uint8(fc.FlashColor[1]),
			B: uint8(fc.FlashColor[2]),
		}
	}
	if fc.FlashDurationMS > 0 {
		cfg.FlashDuration = time.Duration(fc.FlashDurationMS) * time.Millisecond
	}
	if fc.ToneFreqHz > 0 {
		cfg.ToneFreq = uint16(fc.ToneFreqHz)
	}
	if fc.ToneDurationMS > 0 {
		cfg.ToneDuration = time.Duration(fc.ToneDurationMS) * time.Millisecond
	}
	if fc.Brightness > 0 {
		cfg.Brightness = float32(fc.Brightness)
	}
	if fc.BrightnessStep > 0 {
		cfg.BrightnessStep = float32(fc.BrightnessStep)
	}
	if fc.DisplayMS > 0 {
		cfg.DisplayInterval = time.Duration(fc.DisplayMS) * time.Millisecond
	}
	if fc.StartupMelody != nil {
		cfg.StartupMelody = *fc.StartupMelody
	}
	return cfg
}

func buildScreen(s screen) core.Screen {
	out := core.Screen{Name: s.Name}
	for i := 0; i < core.NumKeys; i++ {
		if i < len(s.Labels) {
			out.Labels[i] = s.Labels[i]
		}
		if i < len(s.Notes) {
			out.Notes[i] = uint16(s.Notes[i])
		}
	}
	return out
}

// DefaultScreens returns the stock screen list: a plain macro layout and
// the music octave.
func DefaultScreens() []core.Screen {
	macro := core.Screen{Name: "Macros"}
	for i := 0; i < core.NumKeys; i++ {
		macro.Labels[i] = "K" + strconv.Itoa(i+1)
	}
	return []core.Screen{macro, core.MusicScreen()}
}
