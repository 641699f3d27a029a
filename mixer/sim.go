package mixer

import (
	"sync"

	"github.com/mdaikman/theremin"
)

type simButtonMsg struct {
	Path    string
	Name    string
	Pressed bool
}

type simRawMsg struct {
	Path     string
	Distance int32
}

// sim stands in for the buttons and the rangefinder when there is no real
// hardware, fed by "button" and "raw" messages from the web UI.
type sim struct {
	mu       sync.Mutex
	buttons  Buttons
	distance int32
	have     bool
}

func newSim() *sim {
	return &sim{}
}

func (s *sim) ReadButtons() Buttons {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons
}

func (s *sim) Sample() (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.have {
		return 0, ErrNoEcho
	}
	return s.distance, nil
}

func (s *sim) button(msg *theremin.Msg) {
	var bmsg simButtonMsg
	msg.Unmarshal(&bmsg)
	s.mu.Lock()
	defer s.mu.Unlock()
	switch bmsg.Name {
	case "red":
		s.buttons.Red = bmsg.Pressed
	case "green":
		s.buttons.Green = bmsg.Pressed
	case "blue":
		s.buttons.Blue = bmsg.Pressed
	}
}

func (s *sim) raw(msg *theremin.Msg) {
	var rmsg simRawMsg
	msg.Unmarshal(&rmsg)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.distance = rmsg.Distance
	s.have = true
}
