//go:build !tinygo

package theremin

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// mqttSocket bridges the bus to an MQTT broker.  It is a plain bus socket:
// broadcast msgs are published, and inbound MQTT messages are received onto
// the bus as if they had arrived on a websocket.
type mqttSocket struct {
	socket
	client   mqtt.Client
	pubTopic string
	subTopic string
}

// BridgeMQTT connects the server bus to an MQTT broker.  Broadcast msgs are
// published on <prefix>/<id>/state; messages arriving on <prefix>/<id>/cmd
// are injected onto the bus.
func (s *Server) BridgeMQTT(broker, prefix string) error {
	m := &mqttSocket{
		socket:   socket{"mqtt:" + broker, "", SocketFlagBcast, s.Bus},
		pubTopic: prefix + "/" + s.thinger.Id() + "/state",
		subTopic: prefix + "/" + s.thinger.Id() + "/cmd",
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(s.thinger.Model() + "_" + s.thinger.Id())
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(time.Second)

	m.client = mqtt.NewClient(opts)
	if token := m.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	if token := m.client.Subscribe(m.subTopic, 0, m.receive); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	s.Bus.plugin(m)
	return nil
}

func (m *mqttSocket) Send(msg *Msg) error {
	token := m.client.Publish(m.pubTopic, 0, false, msg.Bytes())
	token.Wait()
	return token.Error()
}

func (m *mqttSocket) Close() {
	m.bus.unplug(m)
	m.client.Disconnect(250)
}

func (m *mqttSocket) receive(_ mqtt.Client, mm mqtt.Message) {
	var msg = &Msg{bus: m.bus, src: m, payload: mm.Payload()}
	m.bus.receive(msg)
}
