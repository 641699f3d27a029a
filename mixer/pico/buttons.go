//go:build tinygo

package pico

import (
	"machine"

	"github.com/mdaikman/theremin/mixer"
)

// Buttons reads the three channel buttons, wired high = pressed.
type Buttons struct {
	Red   machine.Pin
	Green machine.Pin
	Blue  machine.Pin
}

func NewButtons(red, green, blue machine.Pin) *Buttons {
	for _, pin := range []machine.Pin{red, green, blue} {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	}
	return &Buttons{Red: red, Green: green, Blue: blue}
}

// ReadButtons samples all three pins as one snapshot.
func (b *Buttons) ReadButtons() mixer.Buttons {
	return mixer.Buttons{
		Red:   b.Red.Get(),
		Green: b.Green.Get(),
		Blue:  b.Blue.Get(),
	}
}
