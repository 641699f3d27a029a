package mixer

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNormalize(t *testing.T) {
	c := qt.New(t)

	// in range passes through
	for d := int32(0); d <= 31; d++ {
		v, ok := Normalize(d)
		c.Assert(ok, qt.Equals, true)
		c.Assert(v, qt.Equals, uint8(d))
	}

	// below range clamps to 0
	for _, d := range []int32{-1, -4, -1000} {
		v, ok := Normalize(d)
		c.Assert(ok, qt.Equals, true)
		c.Assert(v, qt.Equals, uint8(0))
	}

	// modestly over range clamps to max
	for _, d := range []int32{32, 50, 100} {
		v, ok := Normalize(d)
		c.Assert(ok, qt.Equals, true)
		c.Assert(v, qt.Equals, uint8(ChannelMax))
	}

	// far over range is noise, rejected outright
	for _, d := range []int32{101, 150, 1 << 20} {
		_, ok := Normalize(d)
		c.Assert(ok, qt.Equals, false)
	}
}
