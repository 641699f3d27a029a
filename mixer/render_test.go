package mixer

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSwatchPosition(t *testing.T) {
	c := qt.New(t)
	c.Assert(swatchX(0), qt.Equals, int16(85))
	c.Assert(swatchY(0), qt.Equals, int16(5))
	c.Assert(swatchX(31), qt.Equals, int16(364))
	c.Assert(swatchY(31), qt.Equals, int16(284))
}

func TestGlyphFor(t *testing.T) {
	c := qt.New(t)
	c.Assert(glyphFor(10, 5), qt.Equals, '^')
	c.Assert(glyphFor(5, 10), qt.Equals, 'v')
	c.Assert(glyphFor(7, 7), qt.Equals, rune(0))
}

// The old swatch is erased at the previous red/green position before the
// new swatch is drawn.
func TestSwatchErase(t *testing.T) {
	c := qt.New(t)
	frame := NewFrame(480, 320)
	r := NewRenderer(frame)

	prev := ColorState{31, 31, 31}
	state := ColorState{31, 31, 31}
	r.DrawCalibration(state, prev)

	// swatch drawn at (31,31) position
	c.Assert(frame.At(swatchX(31)+5, swatchY(31)+5), qt.Equals, state.RGBA())

	// red drops to 0, swatch moves left, old position goes back to bg
	prev = state
	state = ColorState{0, 31, 31}
	r.DrawCalibration(state, prev)

	c.Assert(frame.At(swatchX(0)+5, swatchY(31)+5), qt.Equals, state.RGBA())
	c.Assert(frame.At(swatchX(31)+5, swatchY(31)+5), qt.Equals, colorBG)

	// swatch border
	c.Assert(frame.At(swatchX(0), swatchY(31)), qt.Equals, colorFG)
}

// Preview hands the whole screen to the colour chip; the next calibration
// cycle redraws chrome from scratch.
func TestChromeRedrawAfterPreview(t *testing.T) {
	c := qt.New(t)
	frame := NewFrame(480, 320)
	r := NewRenderer(frame)

	state := ColorState{4, 9, 20}
	r.DrawCalibration(state, state)
	c.Assert(r.needChrome, qt.Equals, false)

	r.DrawPreview(state)
	c.Assert(r.needChrome, qt.Equals, true)
	c.Assert(frame.At(0, 0), qt.Equals, state.RGBA())

	r.DrawCalibration(state, state)
	c.Assert(r.needChrome, qt.Equals, false)
	// chrome background is back
	c.Assert(frame.At(0, 0), qt.Equals, colorBG)
	// and the swatch is drawn even though state did not change
	c.Assert(frame.At(swatchX(4)+5, swatchY(9)+5), qt.Equals, state.RGBA())
}

// The direction glyph tracks the blue channel only.
func TestDirectionGlyph(t *testing.T) {
	c := qt.New(t)
	frame := NewFrame(480, 320)
	r := NewRenderer(frame)

	hasInk := func() bool {
		for y := int16(glyphY - glyphH); y < glyphY+4; y++ {
			for x := int16(glyphX); x < glyphX+glyphW; x++ {
				if frame.At(x, y) == colorFG {
					return true
				}
			}
		}
		return false
	}

	// unchanged blue: no glyph
	r.DrawCalibration(ColorState{31, 31, 15}, ColorState{31, 31, 15})
	c.Assert(hasInk(), qt.Equals, false)

	// blue decreased: glyph appears
	r.DrawCalibration(ColorState{31, 31, 10}, ColorState{31, 31, 15})
	c.Assert(hasInk(), qt.Equals, true)

	// blue unchanged again: glyph erased
	r.DrawCalibration(ColorState{31, 31, 10}, ColorState{31, 31, 10})
	c.Assert(hasInk(), qt.Equals, false)
}
