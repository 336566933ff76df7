// Rainbow LED effect with per-key flash overrides.
package core

import "time"

// pixelStride is the hue distance between neighboring pixels, chosen so
// the full wheel spreads evenly around the 12-pixel ring.
const pixelStride = 256 / NumPixels

// override forces one pixel to a fixed color until it expires or the key
// is released. At most one override exists per key; a new press replaces
// it rather than stacking.
type override struct {
	active  bool
	expires time.Time
}

// RainbowEffect animates the pixel ring. The ambient animation advances
// on its own interval regardless of how fast the loop runs; key events
// take effect on the very next Update, ahead of the ambient gate.
type RainbowEffect struct {
	pixels PixelDriver
	gate   Gate

	offset uint8
	speed  uint8

	flash    RGB
	flashFor time.Duration

	overrides [NumPixels]override
	colors    [NumPixels]RGB
	dirty     bool
}

// NewRainbowEffect returns an effect writing through pixels.
func NewRainbowEffect(pixels PixelDriver, cfg Config) *RainbowEffect {
	e := &RainbowEffect{
		pixels:   pixels,
		gate:     NewGate(cfg.EffectInterval),
		speed:    cfg.EffectSpeed,
		flash:    cfg.FlashColor,
		flashFor: cfg.FlashDuration,
	}
	for i := range e.colors {
		e.colors[i] = e.ambient(i)
	}
	e.dirty = true
	return e
}

// ambient is the background color of pixel i at the current offset.
func (e *RainbowEffect) ambient(i int) RGB {
	return Wheel(e.offset + uint8(i*pixelStride))
}

// OnKeyEvent registers a transient override. A press forces the key's
// pixel to the flash color until expiry; a release hands the pixel back
// to ambient control immediately.
func (e *RainbowEffect) OnKeyEvent(ev KeyEvent) {
	k := int(ev.Key)
	if ev.Transition == Pressed {
		e.overrides[k] = override{active: true, expires: ev.Time.Add(e.flashFor)}
		e.colors[k] = e.flash
	} else {
		e.overrides[k] = override{}
		e.colors[k] = e.ambient(k)
	}
	e.dirty = true
}

// Update advances the animation if its interval has elapsed and pushes
// pixel state to the hardware when anything changed. Returns true when a
// write happened. Expired overrides revert on the ambient tick.
func (e *RainbowEffect) Update(now time.Time) bool {
	if e.gate.Ready(now) {
		e.offset += e.speed
		for i := range e.colors {
			if e.overrides[i].active && now.Before(e.overrides[i].expires) {
				continue
			}
			e.overrides[i] = override{}
			e.colors[i] = e.ambient(i)
		}
		e.dirty = true
	}
	if !e.dirty {
		return false
	}
	if err := e.pixels.WritePixels(e.colors[:]); err != nil {
		// Bus busy: drop this write, the next tick retries.
		return false
	}
	e.dirty = false
	return true
}

// Invalidate forces a hardware write on the next Update even when no
// color changed, e.g. after a brightness change.
func (e *RainbowEffect) Invalidate() {
	e.dirty = true
}

// Pixel returns the current color of pixel i. Used by tests and the
// trace dump.
func (e *RainbowEffect) Pixel(i int) RGB {
	return e.colors[i]
}
