//go:build tinygo

package pico

import (
	"machine"
	"time"

	"github.com/mdaikman/theremin/mixer"
)

// Pulse measures HC-SR04 echo pulses.  Raising trigger for 10us starts a
// measurement; the sensor answers with a high pulse on echo whose width is
// the sound round-trip time.
type Pulse struct {
	Trigger machine.Pin
	Echo    machine.Pin
	Timeout time.Duration
}

func NewPulse(trigger, echo machine.Pin) *Pulse {
	p := &Pulse{
		Trigger: trigger,
		Echo:    echo,
		// ~4m round trip; anything past it is no echo
		Timeout: 24 * time.Millisecond,
	}
	p.Trigger.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Echo.Configure(machine.PinConfig{Mode: machine.PinInput})
	p.Trigger.Low()
	return p
}

// ReadPulse returns one echo pulse width in microseconds, or
// mixer.ErrNoEcho if the sensor never answered.
func (p *Pulse) ReadPulse() (int32, error) {
	p.Trigger.Low()
	time.Sleep(2 * time.Microsecond)
	p.Trigger.High()
	time.Sleep(10 * time.Microsecond)
	p.Trigger.Low()

	deadline := time.Now().Add(p.Timeout)
	for !p.Echo.Get() {
		if time.Now().After(deadline) {
			return 0, mixer.ErrNoEcho
		}
	}
	start := time.Now()
	for p.Echo.Get() {
		if time.Now().After(deadline) {
			return 0, mixer.ErrNoEcho
		}
	}
	return int32(time.Since(start).Microseconds()), nil
}
