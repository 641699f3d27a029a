package mixer

import (
	"fmt"
	"image/color"
)

// Channel identifies one colour channel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// ChannelMax is the largest channel value.  Channels are 5-bit to match the
// display's packed colour format.
const ChannelMax = 31

// ColorState holds the three channel values, each 0..ChannelMax.  It is a
// value type: the controller owns one and hands copies to the renderer.
type ColorState struct {
	R, G, B uint8
}

// NewColorState returns the power-on state, all channels full.
func NewColorState() ColorState {
	return ColorState{ChannelMax, ChannelMax, ChannelMax}
}

func (c ColorState) Get(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	}
	return 0
}

func (c *ColorState) Set(ch Channel, v uint8) {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
}

// Pack returns the display-native 16-bit colour: red in the top 5 bits,
// green in the next 6, blue in the bottom 5.  Green's low bit is always
// zero; channel values never exceed 31, so the extra green precision goes
// unused.
func (c ColorState) Pack() uint16 {
	return uint16(c.R)<<11 | uint16(c.G)<<6 | uint16(c.B)
}

// Unpack recovers the channels from a packed colour.  Red and blue recover
// exactly; green recovers the top 5 of its 6 bits.
func Unpack(p uint16) ColorState {
	return ColorState{
		R: uint8(p>>11) & 0x1F,
		G: uint8(p>>6) & 0x1F,
		B: uint8(p) & 0x1F,
	}
}

// RGBA returns the colour for the display surface.  Channels are shifted
// left 3 so that the usual RGB565 conversion (r>>3, g>>2, b>>3) lands
// exactly on Pack().
func (c ColorState) RGBA() color.RGBA {
	return color.RGBA{R: c.R << 3, G: c.G << 3, B: c.B << 3, A: 0xff}
}

// Hex formats the state as an #RRGGBB string of the expanded channel values.
func (c ColorState) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", Expand(c.R), Expand(c.G), Expand(c.B))
}

// Expand maps a 0..31 channel value onto 0..255 for the numeric readout.
// 31 steps of 8 only reach 248; the remaining 7 are spread proportionally
// across the steps so the displayed value runs smoothly to 255.  Readout
// only: the packed colour never uses it.
func Expand(v uint8) int {
	return int(v)*8 + (int(v)*7+15)/31
}
