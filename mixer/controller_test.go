package mixer

import (
	"image/color"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

type fakeSampler struct {
	distance int32
	err      error
}

func (s *fakeSampler) Sample() (int32, error) {
	return s.distance, s.err
}

type scriptButtons struct {
	script []Buttons
	reads  int
}

func (b *scriptButtons) ReadButtons() Buttons {
	if b.reads >= len(b.script) {
		b.reads++
		return Buttons{}
	}
	snap := b.script[b.reads]
	b.reads++
	return snap
}

// countingDisplay counts draw operations on top of a Frame.
type countingDisplay struct {
	*Frame
	fills  int
	pixels int
}

func (d *countingDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pixels++
	d.Frame.SetPixel(x, y, c)
}

func (d *countingDisplay) FillScreen(c color.RGBA) {
	d.fills++
	d.Frame.FillScreen(c)
}

func (d *countingDisplay) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	d.fills++
	return d.Frame.FillRectangle(x, y, w, h, c)
}

func newTestController(sampler DistanceSampler) (*Controller, *countingDisplay) {
	display := &countingDisplay{Frame: NewFrame(480, 320)}
	ctl := NewController(&scriptButtons{}, sampler, NewRenderer(display))
	ctl.Interval = time.Millisecond
	return ctl, display
}

func TestInitialState(t *testing.T) {
	c := qt.New(t)
	ctl, _ := newTestController(&fakeSampler{})
	c.Assert(ctl.State(), qt.Equals, ColorState{31, 31, 31})
}

// Raw distance 0 on the red channel from the initial state: red drops to 0,
// the packed colour's top 5 bits go to 0, readout shows 0.
func TestCalibrateRedToZero(t *testing.T) {
	c := qt.New(t)
	ctl, _ := newTestController(&fakeSampler{distance: 0})

	var notified []Mode
	ctl.OnChange(func(s ColorState, m Mode) { notified = append(notified, m) })

	mode := ctl.Step(Buttons{Red: true})
	c.Assert(mode, qt.Equals, CalibrateRed)
	c.Assert(ctl.State(), qt.Equals, ColorState{0, 31, 31})
	c.Assert(ctl.State().Pack()>>11, qt.Equals, uint16(0))
	c.Assert(Expand(ctl.State().R), qt.Equals, 0)
	c.Assert(notified, qt.DeepEquals, []Mode{CalibrateRed})
}

// An implausible reading is rejected: the channel keeps its value and
// nothing is redrawn.
func TestRejectedSampleDrawsNothing(t *testing.T) {
	c := qt.New(t)
	sampler := &fakeSampler{distance: 10}
	ctl, display := newTestController(sampler)

	ctl.Step(Buttons{Green: true})
	c.Assert(ctl.State().G, qt.Equals, uint8(10))

	fills, pixels := display.fills, display.pixels
	sampler.distance = 150
	ctl.Step(Buttons{Green: true})
	c.Assert(ctl.State().G, qt.Equals, uint8(10))
	c.Assert(display.fills, qt.Equals, fills)
	c.Assert(display.pixels, qt.Equals, pixels)
}

// A missing echo is discarded exactly like a rejected reading.
func TestNoEchoDrawsNothing(t *testing.T) {
	c := qt.New(t)
	sampler := &fakeSampler{distance: 10}
	ctl, display := newTestController(sampler)

	ctl.Step(Buttons{Blue: true})
	c.Assert(ctl.State().B, qt.Equals, uint8(10))

	// one unchanged cycle so the direction glyph has settled to none;
	// otherwise its erase would count against the no-echo cycle
	ctl.Step(Buttons{Blue: true})

	fills, pixels := display.fills, display.pixels
	sampler.err = ErrNoEcho
	ctl.Step(Buttons{Blue: true})
	c.Assert(ctl.State().B, qt.Equals, uint8(10))
	c.Assert(display.fills, qt.Equals, fills)
	c.Assert(display.pixels, qt.Equals, pixels)
}

// Entering preview fills the whole screen with the packed colour once; a
// preview cycle following a preview cycle redraws nothing.
func TestPreviewEntry(t *testing.T) {
	c := qt.New(t)
	ctl, display := newTestController(&fakeSampler{})
	ctl.state = ColorState{0, 31, 15}

	mode := ctl.Step(Buttons{})
	c.Assert(mode, qt.Equals, Preview)
	c.Assert(display.fills, qt.Equals, 1)

	want := ColorState{0, 31, 15}.RGBA()
	c.Assert(display.At(0, 0), qt.Equals, want)
	c.Assert(display.At(479, 319), qt.Equals, want)

	// no preview -> preview re-render
	ctl.Step(Buttons{})
	c.Assert(display.fills, qt.Equals, 1)
}

// The preview wait state polls only the buttons and returns on the first
// snapshot with any button asserted.
func TestWaitButton(t *testing.T) {
	c := qt.New(t)
	buttons := &scriptButtons{script: []Buttons{{}, {}, {Blue: true}}}
	ctl := NewController(buttons, &fakeSampler{}, NewRenderer(NewFrame(480, 320)))
	ctl.Interval = time.Millisecond

	done := make(chan struct{})
	go func() {
		ctl.waitButton()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		c.Fatal("waitButton did not return")
	}
	c.Assert(buttons.reads, qt.Equals, 3)
}

// Precedence: red wins a simultaneous press and only red is calibrated.
func TestSimultaneousPress(t *testing.T) {
	c := qt.New(t)
	ctl, _ := newTestController(&fakeSampler{distance: 5})

	mode := ctl.Step(Buttons{Red: true, Green: true, Blue: true})
	c.Assert(mode, qt.Equals, CalibrateRed)
	c.Assert(ctl.State(), qt.Equals, ColorState{5, 31, 31})
}
