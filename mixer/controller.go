package mixer

import (
	"time"
)

// DefaultInterval is the polling cadence of the control loop.
const DefaultInterval = 250 * time.Millisecond

// modeNone forces the first cycle to count as a mode entry.
const modeNone Mode = 0xff

// Controller sequences the calibrate/preview cycle.  Each cycle reads one
// button snapshot and resolves it to a mode: a held channel button
// calibrates that channel against the rangefinder; no button previews the
// mixed colour full-screen and waits for a press.
type Controller struct {
	Interval time.Duration

	buttons  ButtonReader
	sampler  DistanceSampler
	renderer *Renderer

	state ColorState
	prev  ColorState
	last  Mode

	onChange func(ColorState, Mode)
}

func NewController(buttons ButtonReader, sampler DistanceSampler, renderer *Renderer) *Controller {
	return &Controller{
		Interval: DefaultInterval,
		buttons:  buttons,
		sampler:  sampler,
		renderer: renderer,
		state:    NewColorState(),
		last:     modeNone,
	}
}

// OnChange registers a hook called whenever the colour state changes or a
// new mode is entered.
func (c *Controller) OnChange(f func(ColorState, Mode)) {
	c.onChange = f
}

// State returns the current colour state.
func (c *Controller) State() ColorState {
	return c.state
}

// Step runs one control cycle against a single button snapshot and returns
// the mode it resolved to.
func (c *Controller) Step(b Buttons) Mode {
	mode := ModeFor(b)
	entered := mode != c.last
	c.last = mode

	ch, calibrate := mode.Channel()
	if !calibrate {
		// One full-screen chip per preview entry; a preview cycle
		// following a preview cycle redraws nothing.
		if entered {
			c.renderer.DrawPreview(c.state)
			c.notify(mode)
		}
		return mode
	}

	c.prev = c.state
	if d, err := c.sampler.Sample(); err == nil {
		if v, ok := Normalize(d); ok {
			c.state.Set(ch, v)
		}
	}
	// a sampler error is discarded like a rejected reading

	c.renderer.DrawCalibration(c.state, c.prev)

	if entered || c.state != c.prev {
		c.notify(mode)
	}
	return mode
}

// Run loops forever at the poll interval.  In preview the controller parks
// in waitButton; on a press control returns here and the buttons are
// re-sampled from scratch.  A momentary press already released by then
// falls straight back into preview; that re-sampling is deliberate.
func (c *Controller) Run() {
	for {
		mode := c.Step(c.buttons.ReadButtons())
		if mode == Preview {
			c.waitButton()
			continue
		}
		time.Sleep(c.Interval)
	}
}

// waitButton blocks in the preview wait state, re-sampling only the three
// buttons at the poll interval until any one is asserted.
func (c *Controller) waitButton() {
	for {
		time.Sleep(c.Interval)
		if c.buttons.ReadButtons().Any() {
			return
		}
	}
}

func (c *Controller) notify(mode Mode) {
	if c.onChange != nil {
		c.onChange(c.state, mode)
	}
}
