//go:build !tinygo

package hub

import (
	"embed"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/mdaikman/theremin"
)

//go:embed index.html
var fs embed.FS

// ThingInfo is what the hub knows about an attached thing.
type ThingInfo struct {
	Model  string
	Name   string
	Online bool
}

// Hub aggregates things.  Things dial in over websocket and announce
// themselves; the hub keeps a shadow thing per announced id and relays state
// updates to the hub's web UI.
type Hub struct {
	theremin.Thing
	theremin.ThingMsg
	Things    map[string]ThingInfo
	makers    map[string]theremin.ThingMaker
	things    map[string]theremin.Thinger
	srcs      map[theremin.Socketer]string
	fsHandler http.Handler
	mu        sync.Mutex
}

func New(id, model, name string) *Hub {
	// Deployments can override hub chrome by pointing SITE_FS at a
	// directory; its files win over the embedded ones.
	cfs := theremin.NewCompositeFS()
	cfs.AddFS(fs)
	if dir := theremin.GetEnv("SITE_FS", ""); dir != "" {
		cfs.AddFS(os.DirFS(dir))
	}

	return &Hub{
		Thing:     theremin.NewThing(id, model, name),
		ThingMsg:  theremin.ThingMsg{Path: "state"},
		Things:    make(map[string]ThingInfo),
		makers:    make(map[string]theremin.ThingMaker),
		things:    make(map[string]theremin.Thinger),
		srcs:      make(map[theremin.Socketer]string),
		fsHandler: http.FileServer(http.FS(cfs)),
	}
}

// Register a maker for a thing model.  Announcements for unregistered
// models are ignored.
func (h *Hub) Register(model string, maker theremin.ThingMaker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.makers[model] = maker
}

// Adopt pre-creates an offline entry so the UI shows a thing before it ever
// dials in.
func (h *Hub) Adopt(id, model, name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	maker, ok := h.makers[model]
	if !ok {
		println("adopt: unknown model", model)
		return
	}
	h.things[id] = maker(id, model, name)
	h.Things[id] = ThingInfo{Model: model, Name: name}
}

func (h *Hub) getState(msg *theremin.Msg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Path = "state"
	msg.Marshal(h).Reply()
}

func (h *Hub) announce(msg *theremin.Msg) {
	var ann theremin.ThingMsgAnnounce
	msg.Unmarshal(&ann)

	h.mu.Lock()
	maker, ok := h.makers[ann.Model]
	if !ok {
		h.mu.Unlock()
		println("announce: unknown model", ann.Model)
		return
	}
	if _, ok := h.things[ann.Id]; !ok {
		h.things[ann.Id] = maker(ann.Id, ann.Model, ann.Name)
	}
	h.Things[ann.Id] = ThingInfo{Model: ann.Model, Name: ann.Name, Online: true}
	h.srcs[msg.Src()] = ann.Id
	h.mu.Unlock()

	// ask the new arrival for its state
	msg.Marshal(&theremin.ThingMsg{Path: "get/state"}).Reply()

	// tell the UIs
	conn := theremin.ThingMsgConnect{Path: "connect", Id: ann.Id, Model: ann.Model, Name: ann.Name}
	msg.Marshal(&conn).Broadcast()
}

// detached marks a thing offline when its socket drops and tells the UIs
func (h *Hub) detached(msg *theremin.Msg) {
	h.mu.Lock()
	id, ok := h.srcs[msg.Src()]
	if ok {
		delete(h.srcs, msg.Src())
		info := h.Things[id]
		info.Online = false
		h.Things[id] = info
	}
	h.mu.Unlock()

	if ok {
		disc := theremin.ThingMsgDisconnect{Path: "disconnect", Id: id}
		msg.Marshal(&disc).Broadcast()
	}
}

// relay passes a thing's msg through to the other sockets (typically UIs)
func (h *Hub) relay(msg *theremin.Msg) {
	msg.Broadcast()
}

func (h *Hub) Subscribers() theremin.Subscribers {
	return theremin.Subscribers{
		"get/state": h.getState,
		"attached":  h.getState,
		"announce":  h.announce,
		"detached":  h.detached,
		"state":     h.relay,
		"update":    h.relay,
	}
}

// ServeHTTP serves the hub UI, or a shadow thing's UI under /<id>/.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	if len(parts) > 0 && parts[0] != "" {
		h.mu.Lock()
		thing, ok := h.things[parts[0]]
		h.mu.Unlock()
		if ok {
			if handler, ok := thing.(http.Handler); ok {
				http.StripPrefix("/"+parts[0], handler).ServeHTTP(w, r)
				return
			}
		}
	}
	h.fsHandler.ServeHTTP(w, r)
}

func (h *Hub) Run(i *theremin.Injector) {
	select {}
}
