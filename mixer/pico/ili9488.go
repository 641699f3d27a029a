//go:build tinygo

package pico

import (
	"image/color"
	"machine"
	"time"
)

const (
	panelWidth  = 480
	panelHeight = 320
)

// ILI9488 drives a 480x320 SPI panel in 16bpp.  Pixels stream straight to
// the panel; there is no local framebuffer.
type ILI9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

func NewILI9488(spi machine.SPI, cs, dc, rst machine.Pin) *ILI9488 {
	d := &ILI9488{
		spi:   spi,
		cs:    cs,
		dc:    dc,
		rst:   rst,
		txBuf: make([]byte, 4096),
	}

	d.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.cs.High()
	d.dc.High()
	d.rst.High()

	d.reset()
	d.init()

	return d
}

func (d *ILI9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ILI9488) init() {
	// Power control.
	d.cmd(0xC0, 0x17, 0x15) // PWCTRL1
	d.cmd(0xC1, 0x41)       // PWCTRL2

	// VCOM control.
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Frame rate / display function.
	d.cmd(0xB1, 0xA0, 0x11)       // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27) // DISCTRL (320 lines)

	// Many panels look correct with inversion enabled.
	d.cmd(0x21) // INVON

	// Memory access control: landscape + BGR panel order.
	d.cmd(0x36, 0x20|0x08) // MV|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ILI9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ILI9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(0x2A, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)) // CASET
	d.cmd(0x2B, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)) // PASET
	d.cmd(0x2C)                                               // RAMWR
}

func (d *ILI9488) Size() (x, y int16) {
	return panelWidth, panelHeight
}

func (d *ILI9488) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= panelWidth || y < 0 || y >= panelHeight {
		return
	}
	d.setWindow(uint16(x), uint16(y), uint16(x), uint16(y))
	px := rgb565(c)
	d.data([]byte{byte(px >> 8), byte(px)})
}

// Display is a no-op; pixels are written straight through.
func (d *ILI9488) Display() error {
	return nil
}

func (d *ILI9488) FillScreen(c color.RGBA) {
	d.FillRectangle(0, 0, panelWidth, panelHeight, c)
}

func (d *ILI9488) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clamp(int(x), 0, panelWidth)
	y0 := clamp(int(y), 0, panelHeight)
	x1 := clamp(int(x)+int(width), 0, panelWidth)
	y1 := clamp(int(y)+int(height), 0, panelHeight)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	d.setWindow(uint16(x0), uint16(y0), uint16(x1-1), uint16(y1-1))

	px := rgb565(c)
	hi, lo := byte(px>>8), byte(px)
	for i := 0; i+1 < len(d.txBuf); i += 2 {
		d.txBuf[i] = hi
		d.txBuf[i+1] = lo
	}

	remain := (x1 - x0) * (y1 - y0) * 2
	for remain > 0 {
		n := len(d.txBuf)
		if n > remain {
			n = remain
		}
		d.data(d.txBuf[:n])
		remain -= n
	}
	return nil
}

func (d *ILI9488) data(p []byte) {
	d.cs.Low()
	d.dc.High()
	d.spi.Tx(p, nil)
	d.cs.High()
}

func rgb565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
