package theremin

// Injector lets a Thinger inject msgs onto the bus from its Run loop, as if
// they had arrived on a socket.
type Injector struct {
	socket
	wire chan *Msg
}

func NewInjector(name string, bus *Bus) *Injector {
	i := &Injector{
		socket: socket{name, "", 0, bus},
		wire:   make(chan *Msg),
	}

	bus.plugin(i)

	go func() {
		for msg := range i.wire {
			i.bus.receive(msg)
		}
	}()

	return i
}

func (i *Injector) Inject(msg *Msg) {
	msg.bus, msg.src = i.bus, i
	i.wire <- msg
}
