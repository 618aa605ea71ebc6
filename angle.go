package radialmenu

import "math"

// startAngle puts index 0 at 12 o'clock; screen coordinates grow downward,
// so positive steps proceed clockwise.
const startAngle = -math.Pi / 2

// AngleFunc maps an item index to its placement angle on the ring, in
// radians. Implementations must be total for 0 <= index < count, count >= 1.
// Supply a custom one to get non-uniform spacing (e.g. a fan instead of a
// full circle).
type AngleFunc func(index, count int) float64

// DefaultAngle distributes count items evenly over the full circle, starting
// at 12 o'clock and proceeding clockwise. A single item sits at the start
// angle.
func DefaultAngle(index, count int) float64 {
	if count < 1 {
		count = 1
	}
	return startAngle + float64(index)*(2*math.Pi/float64(count))
}
