package theremin

// Runner runs a Thinger standalone on real hardware, with no server side.
// Msgs injected by the Thinger die on the runner bus.
type Runner struct {
	thinger  Thinger
	bus      *Bus
	injector *Injector
}

func NewRunner(thinger Thinger) *Runner {
	var r Runner

	r.thinger = thinger

	r.bus = NewBus("runner bus", nil, nil)
	r.injector = NewInjector("runner injector", r.bus)

	return &r
}

func (r *Runner) Run() {
	r.thinger.SetFlag(ThingFlagMetal)
	r.thinger.Run(r.injector)
}
