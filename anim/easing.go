package anim

import "math"

// Easing reparameterizes a linear time fraction t in [0,1] into a progress
// value. Curves may overshoot past 1 mid-flight but must return exactly 0 at
// t=0 and exactly 1 at t=1.
type Easing func(t float64) float64

// Linear passes the time fraction through unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseInQuad starts slow and accelerates. Strictly monotone, no overshoot.
func EaseInQuad(t float64) float64 {
	return t * t
}

// ElasticOut shoots past the target and oscillates back, settling at exactly
// 1. Used for the menu open animation so items overshoot the ring radius
// before snapping into place.
func ElasticOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	const period = 2 * math.Pi / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*period) + 1
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps t to [0,1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
