package mixer

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// Fixed priority red > green > blue; simultaneous presses resolve to the
// higher-priority channel.
func TestModeFor(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		buttons Buttons
		mode    Mode
	}{
		{Buttons{}, Preview},
		{Buttons{Red: true}, CalibrateRed},
		{Buttons{Green: true}, CalibrateGreen},
		{Buttons{Blue: true}, CalibrateBlue},
		{Buttons{Red: true, Green: true}, CalibrateRed},
		{Buttons{Red: true, Blue: true}, CalibrateRed},
		{Buttons{Green: true, Blue: true}, CalibrateGreen},
		{Buttons{Red: true, Green: true, Blue: true}, CalibrateRed},
	}

	for _, test := range tests {
		c.Assert(ModeFor(test.buttons), qt.Equals, test.mode)
	}
}

func TestModeChannel(t *testing.T) {
	c := qt.New(t)

	ch, ok := CalibrateRed.Channel()
	c.Assert(ok, qt.Equals, true)
	c.Assert(ch, qt.Equals, Red)

	ch, ok = CalibrateGreen.Channel()
	c.Assert(ok, qt.Equals, true)
	c.Assert(ch, qt.Equals, Green)

	ch, ok = CalibrateBlue.Channel()
	c.Assert(ok, qt.Equals, true)
	c.Assert(ch, qt.Equals, Blue)

	_, ok = Preview.Channel()
	c.Assert(ok, qt.Equals, false)
}

func TestButtonsAny(t *testing.T) {
	c := qt.New(t)
	c.Assert(Buttons{}.Any(), qt.Equals, false)
	c.Assert(Buttons{Blue: true}.Any(), qt.Equals, true)
}
