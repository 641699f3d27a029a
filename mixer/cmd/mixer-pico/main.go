//go:build tinygo

package main

import (
	"machine"

	"github.com/mdaikman/theremin"
	"github.com/mdaikman/theremin/mixer"
	"github.com/mdaikman/theremin/mixer/pico"
)

func main() {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	m := mixer.New("mixer01", "mixer", "colour_theremin").(*mixer.Mixer)
	m.Buttons = pico.NewButtons(machine.GP2, machine.GP3, machine.GP4)
	m.Sampler = mixer.NewSampler(pico.NewPulse(machine.GP6, machine.GP7))
	m.Display = pico.NewILI9488(*machine.SPI1, machine.GP13, machine.GP14, machine.GP15)

	theremin.NewRunner(m).Run()
}
