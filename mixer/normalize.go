package mixer

// rejectOver is the distance beyond which a reading is judged sensor noise
// rather than an intentional high value.
const rejectOver = 100

// Normalize rescales a raw distance into a channel value.  Readings over
// rejectOver are rejected outright and the caller keeps the previous channel
// value; readings modestly out of range clamp.  The clamp is deliberately
// asymmetric: a hand held implausibly close produces wild over-range
// readings that mean nothing, while a reading just past the top of the range
// still means "high".
func Normalize(d int32) (uint8, bool) {
	switch {
	case d > rejectOver:
		return 0, false
	case d < 0:
		return 0, true
	case d > ChannelMax:
		return ChannelMax, true
	}
	return uint8(d), true
}
