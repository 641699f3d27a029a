//go:build !tinygo

package theremin

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/websocket"
)

// webSocket wraps a websocket.Conn and implements the Socketer interface
type webSocket struct {
	socket
	mu   mutex
	conn *websocket.Conn
}

func newWebSocket(name string, bus *Bus) *webSocket {
	return &webSocket{
		socket: socket{name, "", SocketFlagBcast, bus},
	}
}

func (w *webSocket) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
}

func (w *webSocket) Send(msg *Msg) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return fmt.Errorf("send on nil connection")
	}
	return websocket.Message.Send(w.conn, string(msg.payload))
}

func (w *webSocket) newConfig(user, passwd, url string) (*websocket.Config, error) {
	origin := "http://localhost/"

	config, err := websocket.NewConfig(url, origin)
	if err != nil {
		return nil, err
	}

	if user != "" {
		// Set the basic auth header for the request
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(user, passwd)
		config.Header = req.Header
	}

	return config, nil
}

// Dial connects to url, announces, and serves the connection.  Retries
// forever on error or disconnect.
func (w *webSocket) Dial(user, passwd, url string, announce *Msg) {

	config, err := w.newConfig(user, passwd, url)
	if err != nil {
		fmt.Printf("Error configuring websocket: %s\r\n", err.Error())
		return
	}

	for {
		conn, err := websocket.DialConfig(config)
		if err == nil {
			// Send an announcement msg
			websocket.Message.Send(conn, string(announce.payload))
			// Serve websocket until EOF
			w.serve(conn)
		} else {
			fmt.Printf("Dial error %s: %s\r\n", w.String(), err.Error())
		}

		// try again in a second
		time.Sleep(time.Second)
	}
}

// serve the websocket connection, plugging into the bus.  Each msg received
// is handed to the bus.  Returns on EOF or error, unplugging from the bus.
func (w *webSocket) serve(conn *websocket.Conn) {
	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()

	w.bus.plugin(w)

	for {
		var msg = &Msg{bus: w.bus, src: w}
		if err := websocket.Message.Receive(conn, &msg.payload); err != nil {
			break
		}
		w.bus.receive(msg)
	}

	w.bus.unplug(w)

	w.mu.Lock()
	w.conn = nil
	w.mu.Unlock()
}
