package main

import (
	"github.com/google/shlex"
	"github.com/mdaikman/theremin"
	"github.com/mdaikman/theremin/hub"
	"github.com/mdaikman/theremin/mixer"
)

func main() {
	h := hub.New("hub01", "hub", "hub1")

	h.Register("mixer", mixer.New)

	// THINGS holds "id model name" triples, shell-quoted
	if things, err := shlex.Split(theremin.GetEnv("THINGS", "")); err == nil {
		for i := 0; i+2 < len(things); i += 3 {
			h.Adopt(things[i], things[i+1], things[i+2])
		}
	}

	server := theremin.NewServer(h)
	server.BasicAuth(theremin.GetEnv("USER", ""), theremin.GetEnv("PASSWD", ""))
	server.Addr = theremin.GetEnv("ADDR", ":8081")

	if host := theremin.GetEnv("TLS_HOST", ""); host != "" {
		go server.ServeTLS(host)
	} else {
		go server.ListenAndServe()
	}

	server.Run()
}
