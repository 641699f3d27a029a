package mixer

// Mode is the controller state: calibrating one channel against the
// rangefinder, or previewing the mixed colour full-screen.
type Mode uint8

const (
	Preview Mode = iota
	CalibrateRed
	CalibrateGreen
	CalibrateBlue
)

func (m Mode) String() string {
	switch m {
	case Preview:
		return "preview"
	case CalibrateRed:
		return "calibrate_red"
	case CalibrateGreen:
		return "calibrate_green"
	case CalibrateBlue:
		return "calibrate_blue"
	}
	return "unknown"
}

// Channel returns the channel a calibrate mode adjusts.
func (m Mode) Channel() (Channel, bool) {
	switch m {
	case CalibrateRed:
		return Red, true
	case CalibrateGreen:
		return Green, true
	case CalibrateBlue:
		return Blue, true
	}
	return 0, false
}

// Buttons is one snapshot of the three channel buttons, true = pressed.
// All three pins are sampled together so mode resolution never races the
// reads.
type Buttons struct {
	Red, Green, Blue bool
}

func (b Buttons) Any() bool {
	return b.Red || b.Green || b.Blue
}

// ButtonReader samples all three buttons at once.
type ButtonReader interface {
	ReadButtons() Buttons
}

// ModeFor resolves a button snapshot to a mode.  Priority is fixed
// red > green > blue; simultaneous presses resolve to the higher-priority
// channel.  No button held means preview.
func ModeFor(b Buttons) Mode {
	switch {
	case b.Red:
		return CalibrateRed
	case b.Green:
		return CalibrateGreen
	case b.Blue:
		return CalibrateBlue
	}
	return Preview
}
