package mixer

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/mdaikman/theremin"
)

func TestNewMixer(t *testing.T) {
	c := qt.New(t)
	m := New("mixer01", "mixer", "colour_theremin").(*Mixer)
	c.Assert(m.Red, qt.Equals, uint8(31))
	c.Assert(m.Green, qt.Equals, uint8(31))
	c.Assert(m.Blue, qt.Equals, uint8(31))
	c.Assert(m.Hex, qt.Equals, "#FFFFFF")
	c.Assert(m.Mode, qt.Equals, "preview")
	c.Assert(m.Packed, qt.Equals, ColorState{31, 31, 31}.Pack())

	// hosts get the in-memory display by default
	_, ok := m.Display.(*Frame)
	c.Assert(ok, qt.Equals, true)
}

// Web UI button and raw messages feed the simulated hardware.
func TestSimFeed(t *testing.T) {
	c := qt.New(t)
	m := New("mixer01", "mixer", "colour_theremin").(*Mixer)
	subs := m.Subscribers()

	var msg theremin.Msg
	msg.Marshal(&simButtonMsg{Path: "button", Name: "green", Pressed: true})
	subs["button"](&msg)
	c.Assert(m.Buttons.ReadButtons(), qt.Equals, Buttons{Green: true})

	msg.Marshal(&simButtonMsg{Path: "button", Name: "green", Pressed: false})
	subs["button"](&msg)
	c.Assert(m.Buttons.ReadButtons(), qt.Equals, Buttons{})

	// no raw message yet: the sim has no echo
	_, err := m.Sampler.Sample()
	c.Assert(err, qt.Equals, ErrNoEcho)

	msg.Marshal(&simRawMsg{Path: "raw", Distance: 27})
	subs["raw"](&msg)
	d, err := m.Sampler.Sample()
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.Equals, int32(27))
}
