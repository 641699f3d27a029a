//go:build tinygo

package mixer

// No default on metal: a 480x320 Frame is ~614KB, more RAM than small
// targets have. The target main wires a real panel before Run.
func defaultDisplay() Display {
	return nil
}
