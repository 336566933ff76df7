//go:build rp2040

package main

import "machine"

// Adafruit MacroPad RP2040 pin map. Key switches and the encoder are
// wired active-low with pull-ups.
var keyPins = [12]machine.Pin{
	machine.GPIO1, machine.GPIO2, machine.GPIO3, machine.GPIO4,
	machine.GPIO5, machine.GPIO6, machine.GPIO7, machine.GPIO8,
	machine.GPIO9, machine.GPIO10, machine.GPIO11, machine.GPIO12,
}

const (
	pinEncoderButton = machine.GPIO0
	pinLED           = machine.GPIO13
	pinSpeakerEnable = machine.GPIO14
	pinSpeaker       = machine.GPIO16
	pinEncoderA      = machine.GPIO17
	pinEncoderB      = machine.GPIO18
	pinNeoPixel      = machine.GPIO19

	// OLED on SPI1.
	pinOLEDCS    = machine.GPIO22
	pinOLEDReset = machine.GPIO23
	pinOLEDDC    = machine.GPIO24
	pinOLEDSck   = machine.GPIO26
	pinOLEDMosi  = machine.GPIO27
	pinOLEDMiso  = machine.GPIO28
)
