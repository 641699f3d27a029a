//go:build !tinygo

package theremin

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"golang.org/x/net/websocket"
)

// Server runs a Thinger and serves its web UI and websocket connections.
// Msgs arriving on any socket are dispatched to the Thinger's subscribers by
// msg path.
type Server struct {
	http.Server `json:"-"`
	*Bus        `json:"-"`
	*Injector   `json:"-"`
	thinger     Thinger
	user        string
	passwd      string
}

func NewServer(thinger Thinger) *Server {
	var s Server

	s.thinger = thinger
	s.Bus = NewBus("server bus", s.connect, s.disconnect)
	s.Bus.Handle("", s.dispatch)
	s.Injector = NewInjector("server injector", s.Bus)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/", s.basicAuth(s.serveWebSocket))
	mux.HandleFunc("/", s.basicAuth(s.serveHTTP))
	s.Handler = mux

	return &s
}

// BasicAuth protects the server with HTTP basic authentication.  Call with
// empty user to disable.
func (s *Server) BasicAuth(user, passwd string) {
	s.user, s.passwd = user, passwd
}

// DialWebSocket dials an uplink server (typically a hub) and announces the
// thing.  The connection is retried forever.
func (s *Server) DialWebSocket(user, passwd, url string, announce *Msg) {
	ws := newWebSocket("ws:"+url, s.Bus)
	go ws.Dial(user, passwd, url, announce)
}

// Run runs the Thinger's main loop
func (s *Server) Run() {
	s.thinger.Run(s.Injector)
}

// dispatch the msg to the Thinger's subscriber for the msg path
func (s *Server) dispatch(msg *Msg) {
	var rmsg ThingMsg
	msg.Unmarshal(&rmsg)
	if sub, ok := s.thinger.Subscribers()[rmsg.Path]; ok {
		sub(msg)
	}
}

// connect tells the Thinger a new socket attached, giving it a chance to
// reply with current state
func (s *Server) connect(sock Socketer) {
	sock.SetFlag(SocketFlagBcast)
	if sub, ok := s.thinger.Subscribers()["attached"]; ok {
		var msg = Msg{bus: s.Bus, src: sock}
		msg.Marshal(&ThingMsg{"attached"})
		sub(&msg)
	}
}

// disconnect tells the Thinger a socket detached
func (s *Server) disconnect(sock Socketer) {
	if sub, ok := s.thinger.Subscribers()["detached"]; ok {
		var msg = Msg{bus: s.Bus, src: sock}
		msg.Marshal(&ThingMsg{"detached"})
		sub(&msg)
	}
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	ws := newWebSocket("ws:"+r.RemoteAddr, s.Bus)
	serv := websocket.Server{Handler: websocket.Handler(ws.serve)}
	serv.ServeHTTP(w, r)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if handler, ok := s.thinger.(http.Handler); ok {
		handler.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(writer http.ResponseWriter, r *http.Request) {

		// skip basic authentication if no user
		if s.user == "" {
			next.ServeHTTP(writer, r)
			return
		}

		ruser, rpasswd, ok := r.BasicAuth()

		if ok {
			userHash := sha256.Sum256([]byte(s.user))
			passHash := sha256.Sum256([]byte(s.passwd))
			ruserHash := sha256.Sum256([]byte(ruser))
			rpassHash := sha256.Sum256([]byte(rpasswd))

			// https://www.alexedwards.net/blog/basic-authentication-in-go
			userMatch := (subtle.ConstantTimeCompare(userHash[:], ruserHash[:]) == 1)
			passMatch := (subtle.ConstantTimeCompare(passHash[:], rpassHash[:]) == 1)

			if userMatch && passMatch {
				next.ServeHTTP(writer, r)
				return
			}
		}

		writer.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
		http.Error(writer, "Unauthorized", http.StatusUnauthorized)
	})
}
