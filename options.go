package radialmenu

import (
	"time"

	"github.com/milk9111/radialmenu/anim"
)

// config holds construction-time animation settings that feed the tweens.
type config struct {
	openDuration     time.Duration
	activateDuration time.Duration
	openEasing       anim.Easing
	activateEasing   anim.Easing
}

// Option customizes a menu at construction.
type Option[T any] func(*Menu[T], *config)

// WithRadius sets the ring radius in pixels.
func WithRadius[T any](r float64) Option[T] {
	return func(m *Menu[T], _ *config) {
		if r > 0 {
			m.radius = r
		}
	}
}

// WithCenterSize sets the center button's square size in pixels.
func WithCenterSize[T any](s float64) Option[T] {
	return func(m *Menu[T], _ *config) {
		if s > 0 {
			m.centerSize = s
		}
	}
}

// WithItemSize sets each item button's square size in pixels.
func WithItemSize[T any](s float64) Option[T] {
	return func(m *Menu[T], _ *config) {
		if s > 0 {
			m.itemSize = s
		}
	}
}

// WithStrokeWidth sets the activation arc's stroke width in pixels.
func WithStrokeWidth[T any](w float64) Option[T] {
	return func(m *Menu[T], _ *config) {
		if w > 0 {
			m.strokeWidth = w
		}
	}
}

// WithAngleFunc replaces the even-spacing angle strategy.
func WithAngleFunc[T any](f AngleFunc) Option[T] {
	return func(m *Menu[T], _ *config) {
		if f != nil {
			m.angleOf = f
		}
	}
}

// WithOpenDuration sets how long the open/close animation runs.
func WithOpenDuration[T any](d time.Duration) Option[T] {
	return func(_ *Menu[T], c *config) {
		if d >= 0 {
			c.openDuration = d
		}
	}
}

// WithActivateDuration sets how long the activation animation runs.
func WithActivateDuration[T any](d time.Duration) Option[T] {
	return func(_ *Menu[T], c *config) {
		if d >= 0 {
			c.activateDuration = d
		}
	}
}

// WithOpenEasing replaces the open animation's curve (default elastic-out).
func WithOpenEasing[T any](e anim.Easing) Option[T] {
	return func(_ *Menu[T], c *config) {
		if e != nil {
			c.openEasing = e
		}
	}
}

// WithActivateEasing replaces the activation curve (default linear). The
// curve should be strictly monotone; overshoot makes the sweep angle jitter.
func WithActivateEasing[T any](e anim.Easing) Option[T] {
	return func(_ *Menu[T], c *config) {
		if e != nil {
			c.activateEasing = e
		}
	}
}

// WithOnSelected registers the selection callback. It fires exactly once
// per completed activation, carrying the selected item's value.
func WithOnSelected[T any](fn func(T)) Option[T] {
	return func(m *Menu[T], _ *config) {
		m.onSelected = fn
	}
}
