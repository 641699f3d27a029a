//go:build !tinygo

package mixer

// Hosts default to an in-memory Frame the web demo and the tests can
// inspect.
func defaultDisplay() Display {
	return NewFrame(480, 320)
}
