package main

import (
	"github.com/mdaikman/theremin"
	"github.com/mdaikman/theremin/mixer"
)

func main() {
	m := mixer.New("mixer01", "mixer", "colour_theremin")

	server := theremin.NewServer(m)
	server.BasicAuth(theremin.GetEnv("USER", ""), theremin.GetEnv("PASSWD", ""))
	server.Addr = theremin.GetEnv("ADDR", ":8080")

	if url := theremin.GetEnv("HUB_URL", ""); url != "" {
		server.DialWebSocket(theremin.GetEnv("HUB_USER", ""),
			theremin.GetEnv("HUB_PASSWD", ""), url, m.Announce())
	}

	if broker := theremin.GetEnv("MQTT_BROKER", ""); broker != "" {
		if err := server.BridgeMQTT(broker, "theremin"); err != nil {
			println("mqtt bridge:", err.Error())
		}
	}

	go server.ListenAndServe()

	server.Run()
}
