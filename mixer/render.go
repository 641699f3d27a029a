package mixer

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Layout for the 480x320 panel.  The swatch position is an affine function
// of the red and green channels, so the swatch walks the panel as the two
// channels change; blue is visualised by a direction glyph instead.
const (
	swatchSize = 30
	swatchStep = 9
	swatchXOff = 85
	swatchYOff = 5

	labelX   = 8
	labelTop = 40
	rowStep  = 80

	valueX = 8
	valueW = 76
	valueH = 44

	glyphX = 8
	glyphY = 300
	glyphW = 20
	glyphH = 24
)

var (
	colorBG = color.RGBA{A: 0xff}
	colorFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

	labelFont = &freemono.Bold9pt7b
	valueFont = &freemono.Regular9pt7b
)

func swatchX(r uint8) int16 {
	return int16(r)*swatchStep + swatchXOff
}

func swatchY(g uint8) int16 {
	return int16(g)*swatchStep + swatchYOff
}

func glyphFor(b, prev uint8) rune {
	switch {
	case b > prev:
		return '^'
	case b < prev:
		return 'v'
	}
	return 0
}

// Renderer draws the calibration UI and the preview chip.  Chrome is drawn
// once per calibration session; per cycle only the changed swatch, glyph and
// numeric lines are redrawn.
type Renderer struct {
	d          Display
	needChrome bool
	lastVals   [3]int
	lastGlyph  rune
}

func NewRenderer(d Display) *Renderer {
	return &Renderer{
		d:          d,
		needChrome: true,
	}
}

// DrawCalibration redraws the parts of the calibration UI that changed from
// prev to state.  The old swatch is erased at the position given by prev's
// red and green channels before the new one is drawn.
func (r *Renderer) DrawCalibration(state, prev ColorState) {
	chrome := r.needChrome
	if chrome {
		r.drawChrome()
	}

	if chrome || state != prev {
		r.d.FillRectangle(swatchX(prev.R), swatchY(prev.G), swatchSize, swatchSize, colorBG)
		x, y := swatchX(state.R), swatchY(state.G)
		r.d.FillRectangle(x, y, swatchSize, swatchSize, state.RGBA())
		r.outline(x, y, swatchSize, swatchSize, colorFG)
	}

	glyph := glyphFor(state.B, prev.B)
	if glyph != r.lastGlyph {
		r.d.FillRectangle(glyphX, glyphY-glyphH, glyphW, glyphH+4, colorBG)
		if glyph != 0 {
			tinyfont.WriteLine(r.d, labelFont, glyphX, glyphY, string(glyph), colorFG)
		}
		r.lastGlyph = glyph
	}

	vals := [3]int{Expand(state.R), Expand(state.G), Expand(state.B)}
	for i, v := range vals {
		if v == r.lastVals[i] {
			continue
		}
		y := int16(labelTop + i*rowStep)
		r.d.FillRectangle(valueX, y+8, valueW, valueH, colorBG)
		tinyfont.WriteLine(r.d, valueFont, valueX, y+22, fmt.Sprintf("%d", v), colorFG)
		tinyfont.WriteLine(r.d, valueFont, valueX, y+44, fmt.Sprintf("0x%02X", v), colorFG)
		r.lastVals[i] = v
	}

	r.d.Display()
}

// DrawPreview fills the screen with the mixed colour.  Called once per
// preview entry; chrome is redrawn on the next calibration cycle.
func (r *Renderer) DrawPreview(state ColorState) {
	r.d.FillScreen(state.RGBA())
	r.d.Display()
	r.needChrome = true
}

func (r *Renderer) drawChrome() {
	r.d.FillScreen(colorBG)
	for i, label := range []string{"R", "G", "B"} {
		tinyfont.WriteLine(r.d, labelFont, labelX, int16(labelTop+i*rowStep), label, colorFG)
	}
	for i := range r.lastVals {
		r.lastVals[i] = -1
	}
	r.lastGlyph = 0
	r.needChrome = false
}

func (r *Renderer) outline(x, y, w, h int16, c color.RGBA) {
	r.d.FillRectangle(x, y, w, 1, c)
	r.d.FillRectangle(x, y+h-1, w, 1, c)
	r.d.FillRectangle(x, y, 1, h, c)
	r.d.FillRectangle(x+w-1, y, 1, h, c)
}
