// Package anim provides the frame-ticked progress driver behind the menu's
// animations. A Tween advances a scalar in [0,1] toward one end of the range
// each time the host's frame clock ticks it; there are no goroutines and no
// timers. Reversal and cancellation act on whatever point the tween has
// reached, which is what makes interrupted animations look continuous.
package anim

// Direction is the end of the [0,1] range a tween is traveling toward.
type Direction int

const (
	// Forward drives the fraction toward 1.
	Forward Direction = iota
	// Reverse drives the fraction toward 0.
	Reverse
)

// Outcome reports what a tween did during its most recent Update.
type Outcome int

const (
	// Idle means the tween was not running.
	Idle Outcome = iota
	// Running means the tween advanced but has not reached its target end.
	Running
	// Completed means the tween reached its target end on this tick.
	Completed
	// Cancelled means a pending Cancel was observed; the fraction stays
	// wherever it had reached. Distinguishable from Completed so callers
	// never mistake a torn-down animation for a finished one.
	Cancelled
)

// Tween advances a progress fraction over a fixed duration. The linear time
// fraction and the eased value are kept separate so reversing mid-flight
// rewinds time, not the (possibly overshooting) eased output.
type Tween struct {
	duration float64 // seconds; <= 0 snaps to the target on the next tick
	easing   Easing

	t         float64
	dir       Direction
	running   bool
	cancelled bool
}

// NewTween creates a stopped tween at fraction 0. A nil easing means Linear.
func NewTween(duration float64, easing Easing) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{duration: duration, easing: easing}
}

// Start begins a full run from the range end opposite dir's target.
func (tw *Tween) Start(dir Direction) {
	tw.dir = dir
	if dir == Forward {
		tw.t = 0
	} else {
		tw.t = 1
	}
	tw.running = true
	tw.cancelled = false
}

// Reverse flips the direction of travel keeping the current time fraction,
// so an in-flight animation turns around from where it is instead of
// restarting. Also restarts a stopped tween from its resting fraction.
func (tw *Tween) Reverse() {
	if tw.dir == Forward {
		tw.dir = Reverse
	} else {
		tw.dir = Forward
	}
	tw.running = true
	tw.cancelled = false
}

// Cancel requests a halt. The fraction stays where it is; the next Update
// reports Cancelled once.
func (tw *Tween) Cancel() {
	if !tw.running {
		return
	}
	tw.running = false
	tw.cancelled = true
}

// SnapTo force-sets the fraction and stops the tween. No outcome is
// reported; this is an instantaneous state reset, not an animation.
func (tw *Tween) SnapTo(t float64) {
	tw.t = Clamp01(t)
	tw.running = false
	tw.cancelled = false
}

// Running reports whether the tween will advance on the next Update.
func (tw *Tween) Running() bool {
	return tw.running
}

// Direction returns the current direction of travel.
func (tw *Tween) Direction() Direction {
	return tw.dir
}

// Fraction returns the linear time fraction in [0,1].
func (tw *Tween) Fraction() float64 {
	return tw.t
}

// Eased returns the eased progress value for the current fraction.
func (tw *Tween) Eased() float64 {
	return tw.easing(tw.t)
}

// Update advances the tween by dt seconds and reports the outcome. The
// fraction lands exactly on 0 or 1 at completion regardless of tick size.
func (tw *Tween) Update(dt float64) Outcome {
	if tw.cancelled {
		tw.cancelled = false
		return Cancelled
	}
	if !tw.running {
		return Idle
	}
	if tw.duration <= 0 {
		return tw.finish()
	}

	step := dt / tw.duration
	if tw.dir == Forward {
		tw.t += step
		if tw.t >= 1 {
			return tw.finish()
		}
	} else {
		tw.t -= step
		if tw.t <= 0 {
			return tw.finish()
		}
	}
	return Running
}

func (tw *Tween) finish() Outcome {
	if tw.dir == Forward {
		tw.t = 1
	} else {
		tw.t = 0
	}
	tw.running = false
	return Completed
}
