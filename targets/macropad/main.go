//go:build rp2040

// Firmware entry point for the Adafruit MacroPad RP2040.
package main

import (
	_ "embed"
	"machine"
	"time"

	"gopad/config"
	"gopad/core"
)

//go:embed config.json
var configJSON []byte

func main() {
	// Clear any watchdog state left over from a previous reset.
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	// Event lines go out over USB CDC for the host monitor.
	core.SetDebugWriter(func(s string) { println(s) })
	core.SetDebugEnabled(true)

	cfg, screens, err := config.LoadConfig(configJSON)
	if err != nil {
		fatal("config: " + err.Error())
	}

	input := NewPadInput()
	pixels, err := NewNeoPixels(pinNeoPixel)
	if err != nil {
		fatal("neopixel init: " + err.Error())
	}
	speaker, err := NewSpeaker()
	if err != nil {
		fatal("speaker init: " + err.Error())
	}

	// The display is best-effort: boot without it if it fails.
	var display core.DisplayDriver
	if oled, err := NewOLED(); err == nil {
		display = oled
	} else {
		println("oled init failed: " + err.Error())
	}

	rt, err := core.NewRuntime(cfg, core.Drivers{
		Input:   input,
		Pixels:  pixels,
		Tone:    speaker,
		Display: display,
	}, screens)
	if err != nil {
		fatal("runtime init: " + err.Error())
	}

	rt.Run(nil)
}

// fatal reports an unrecoverable boot error and parks, blinking the
// status LED. Configuration and wiring problems end here; the running
// loop never does.
func fatal(msg string) {
	println("fatal: " + msg)
	core.DumpTraceRing()
	pinLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		pinLED.High()
		time.Sleep(100 * time.Millisecond)
		pinLED.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
