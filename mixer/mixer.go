package mixer

import (
	"github.com/mdaikman/theremin"
)

// Mixer is a colour theremin: hold a channel button and wave a hand over the
// ultrasonic rangefinder to set that channel; release all buttons to preview
// the mixed colour full-screen.
type Mixer struct {
	theremin.Thing
	theremin.ThingMsg
	Red    uint8
	Green  uint8
	Blue   uint8
	Packed uint16
	Hex    string
	Mode   string

	// Hardware collaborators.  The defaults are simulations driven by the
	// web UI; metal targets swap in real pins before Run.
	Buttons ButtonReader    `json:"-"`
	Sampler DistanceSampler `json:"-"`
	Display Display         `json:"-"`

	sim *sim
}

func New(id, model, name string) theremin.Thinger {
	println("NEW MIXER")
	m := &Mixer{
		Thing: theremin.NewThing(id, model, name),
		sim:   newSim(),
	}
	state := NewColorState()
	m.Red, m.Green, m.Blue = state.R, state.G, state.B
	m.Packed = state.Pack()
	m.Hex = state.Hex()
	m.Mode = Preview.String()
	m.Buttons = m.sim
	m.Sampler = m.sim
	m.Display = defaultDisplay()
	return m
}

func (m *Mixer) saveState(msg *theremin.Msg) {
	m.Lock()
	defer m.Unlock()
	msg.Unmarshal(m)
}

func (m *Mixer) getState(msg *theremin.Msg) {
	m.Lock()
	defer m.Unlock()
	m.Path = "state"
	msg.Marshal(m).Reply()
}

func (m *Mixer) update(msg *theremin.Msg) {
	m.Lock()
	msg.Unmarshal(m)
	m.Unlock()
	msg.Broadcast()
}

func (m *Mixer) button(msg *theremin.Msg) {
	m.sim.button(msg)
}

func (m *Mixer) raw(msg *theremin.Msg) {
	m.sim.raw(msg)
}

func (m *Mixer) Subscribers() theremin.Subscribers {
	return theremin.Subscribers{
		"state":     m.saveState,
		"get/state": m.getState,
		"attached":  m.getState,
		"update":    m.update,
		"button":    m.button,
		"raw":       m.raw,
	}
}

func (m *Mixer) Run(i *theremin.Injector) {
	println("colour theremin", m.Id())
	println("hold a channel button; wave a hand over the sensor")

	ctl := NewController(m.Buttons, m.Sampler, NewRenderer(m.Display))
	ctl.OnChange(func(state ColorState, mode Mode) {
		var msg theremin.Msg
		m.Lock()
		m.Red, m.Green, m.Blue = state.R, state.G, state.B
		m.Packed = state.Pack()
		m.Hex = state.Hex()
		m.Mode = mode.String()
		m.Path = "update"
		msg.Marshal(m)
		m.Unlock()
		i.Inject(&msg)
	})
	ctl.Run()
}
