package config

import (
	"testing"
	"time"

	"gopad/core"
)

func TestLoadConfigEmptyObjectGivesDefaults(t *testing.T) {
	cfg, screens, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != core.DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if len(screens) != 2 || screens[0].Name != "Macros" || screens[1].Name != "Music" {
		t.Errorf("screens = %v", screens)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	cfg, _, err := LoadConfig([]byte(`{
		"debounce_ms": 25,
		"flash_color": [255, 0, 0],
		"startup_melody": false
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DebounceWindow != 25*time.Millisecond {
		t.Errorf("debounce = %v", cfg.DebounceWindow)
	}
	if (cfg.FlashColor != core.RGB{R: 255}) {
		t.Errorf("flash color = %v", cfg.FlashColor)
	}
	if cfg.StartupMelody {
		t.Error("startup melody not disabled")
	}
	// Everything not named keeps its default.
	if cfg.ToneFreq != core.DefaultConfig().ToneFreq {
		t.Errorf("tone freq = %d", cfg.ToneFreq)
	}
}

func TestLoadConfigScreens(t *testing.T) {
	_, screens, err := LoadConfig([]byte(`{
		"screens": [
			{"name": "Media", "labels": ["Play", "Stop"], "notes": [523]}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(screens) != 1 || screens[0].Name != "Media" {
		t.Fatalf("screens = %v", screens)
	}
	s := screens[0]
	if s.Labels[0] != "Play" || s.Labels[1] != "Stop" || s.Labels[2] != "" {
		t.Errorf("labels = %v", s.Labels)
	}
	if s.Notes[0] != 523 || s.Notes[1] != 0 {
		t.Errorf("notes = %v", s.Notes)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	if _, _, err := LoadConfig([]byte(`{"debounce_ms":`)); err == nil {
		t.Error("no error on truncated JSON")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	if _, _, err := LoadConfig([]byte(`{"brightness": 2.5}`)); err == nil {
		t.Error("no error on out-of-range brightness")
	}
}
