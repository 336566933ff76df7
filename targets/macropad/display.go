//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"gopad/core"
)

const displayRows = 4

// OLED implements core.DisplayDriver over the 128x64 panel on SPI1. It
// keeps a line buffer and redraws the whole frame on change; the runtime
// rate-gates calls so bus traffic stays bounded.
type OLED struct {
	dev   ssd1306.Device
	lines [displayRows]string
}

// NewOLED configures SPI1 and the panel.
func NewOLED() (*OLED, error) {
	err := machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 8 * machine.MHz,
		SCK:       pinOLEDSck,
		SDO:       pinOLEDMosi,
		SDI:       pinOLEDMiso,
	})
	if err != nil {
		return nil, err
	}

	o := &OLED{dev: ssd1306.NewSPI(machine.SPI1, pinOLEDDC, pinOLEDReset, pinOLEDCS)}
	o.dev.Configure(ssd1306.Config{Width: 128, Height: 64})
	o.dev.ClearBuffer()
	o.dev.ClearDisplay()
	return o, nil
}

// WriteLine replaces one text row and redraws the frame.
func (o *OLED) WriteLine(row int, text string) error {
	if row < 0 || row >= displayRows {
		return nil
	}
	if o.lines[row] == text {
		return nil
	}
	o.lines[row] = text

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	o.dev.ClearBuffer()
	for i, line := range o.lines {
		if line == "" {
			continue
		}
		tinyfont.WriteLine(&o.dev, &proggy.TinySZ8pt7b, 0, int16(12+i*16), line, white)
	}
	return o.dev.Display()
}

var _ core.DisplayDriver = (*OLED)(nil)
