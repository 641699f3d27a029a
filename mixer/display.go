package mixer

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Display is the drawing surface the renderer draws on.  Metal targets back
// it with an SPI panel; the host demo and the tests use a Frame.
type Display interface {
	drivers.Displayer
	FillScreen(c color.RGBA)
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Frame is an in-memory Display.
type Frame struct {
	w, h int16
	pix  []color.RGBA
}

func NewFrame(w, h int16) *Frame {
	return &Frame{
		w:   w,
		h:   h,
		pix: make([]color.RGBA, int(w)*int(h)),
	}
}

func (f *Frame) Size() (x, y int16) {
	return f.w, f.h
}

func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.pix[int(y)*int(f.w)+int(x)] = c
}

// At returns the pixel at (x, y).
func (f *Frame) At(x, y int16) color.RGBA {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return color.RGBA{}
	}
	return f.pix[int(y)*int(f.w)+int(x)]
}

func (f *Frame) Display() error {
	return nil
}

func (f *Frame) FillScreen(c color.RGBA) {
	f.FillRectangle(0, 0, f.w, f.h, c)
}

func (f *Frame) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			f.SetPixel(px, py, c)
		}
	}
	return nil
}
