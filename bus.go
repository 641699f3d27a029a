package theremin

var defaultMaxSockets = 10

// Bus is a logical msg broadcast bus.  Msgs arrive on sockets connected to
// the bus.  A received msg can be broadcast to the other sockets, or replied
// back to sender.  A socket has a tag, and the bus segregates the sockets by
// tag.  Msgs arriving on a tagged socket will be broadcast only to other
// sockets with same tag.  Think of a tag as a VLAN.  The empty tag "" is the
// default tag on the bus.
type Bus struct {
	name       string
	socketsMu  rwMutex
	sockets    map[Socketer]bool
	socketQ    chan bool
	handlersMu rwMutex
	handlers   map[string]func(*Msg)
	connect    func(Socketer)
	disconnect func(Socketer)
}

// NewBus returns a new bus with connect and disconnect callbacks
func NewBus(name string, connect, disconnect func(Socketer)) *Bus {
	if connect == nil {
		connect = func(Socketer) { /* don't notify */ }
	}
	if disconnect == nil {
		disconnect = func(Socketer) { /* don't notify */ }
	}
	return &Bus{
		name:       name,
		sockets:    make(map[Socketer]bool),
		socketQ:    make(chan bool, defaultMaxSockets),
		handlers:   make(map[string]func(*Msg)),
		connect:    connect,
		disconnect: disconnect,
	}
}

// Handle sets the msg handler for a socket tag
func (b *Bus) Handle(tag string, handler func(*Msg)) bool {
	if handler == nil {
		panic("handler is nil")
	}
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	if _, ok := b.handlers[tag]; !ok {
		b.handlers[tag] = handler
		return true
	}
	return false
}

// Unhandle removes the msg handler for the socket tag
func (b *Bus) Unhandle(tag string) {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	delete(b.handlers, tag)
}

func (b *Bus) Name() string {
	return b.name
}

// MaxSockets sets the maximum number of socket connections that can be made
// to the bus.  Any socket connection attempts past the maximum will block
// until other sockets drop.
func (b *Bus) MaxSockets(maxSockets int) {
	b.socketQ = make(chan bool, maxSockets)
}

// plugin the socket to the bus
func (b *Bus) plugin(s Socketer) {
	// block here when socketQ is full
	b.socketQ <- true

	b.socketsMu.Lock()
	b.sockets[s] = true
	b.socketsMu.Unlock()

	b.connect(s)
}

// unplug the socket from the bus
func (b *Bus) unplug(s Socketer) {
	b.socketsMu.Lock()
	delete(b.sockets, s)
	b.socketsMu.Unlock()

	b.disconnect(s)

	// release one from the socketQ
	<-b.socketQ
}

// broadcast msg to all sockets with matching tag, skipping the source socket
func (b *Bus) broadcast(msg *Msg) {
	b.socketsMu.RLock()
	defer b.socketsMu.RUnlock()
	for sock := range b.sockets {
		if msg.src != sock &&
			msg.src.Tag() == sock.Tag() &&
			sock.TestFlag(SocketFlagBcast) {
			sock.Send(msg)
		}
	}
}

// receive will call the msg handler for the source socket tag
func (b *Bus) receive(msg *Msg) {
	tag := msg.src.Tag()
	b.handlersMu.RLock()
	defer b.handlersMu.RUnlock()
	if handler, ok := b.handlers[tag]; ok {
		handler(msg)
	}
}
