package mixer

import "errors"

// ErrNoEcho reports a missing or timed-out echo pulse.  The controller
// discards the sample exactly like a rejected reading: previous channel
// value retained, nothing raised.
var ErrNoEcho = errors.New("no echo")

// DistanceSampler takes one distance reading in sensor units.
type DistanceSampler interface {
	Sample() (int32, error)
}

// PulseReader measures one echo pulse width in microseconds.
type PulseReader interface {
	ReadPulse() (int32, error)
}

// Sampler converts echo pulse widths to distance units with a linear
// formula: distance = (pulse - Floor) / Scale.  Floor absorbs the sensor's
// minimum-distance offset; Scale compresses the useful hand range onto
// channel values.
type Sampler struct {
	Floor int32
	Scale int32
	pulse PulseReader
}

const (
	DefaultFloor = 200
	DefaultScale = 50
)

func NewSampler(pulse PulseReader) *Sampler {
	return &Sampler{
		Floor: DefaultFloor,
		Scale: DefaultScale,
		pulse: pulse,
	}
}

func (s *Sampler) Sample() (int32, error) {
	width, err := s.pulse.ReadPulse()
	if err != nil {
		return 0, err
	}
	return (width - s.Floor) / s.Scale, nil
}
