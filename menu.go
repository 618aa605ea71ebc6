// Package radialmenu implements a radial selection menu: a closed center
// button that expands N items onto a ring, where picking an item plays an
// arc-fill activation animation before the choice is reported.
//
// The package is the logic core only. It owns the menu lifecycle, the two
// animation progress values, and the per-frame geometry; it performs no
// drawing, no input recognition, and no I/O. A host delivers intents
// (Toggle, Select, Reset), ticks Update once per frame, pulls Layout once
// per render pass, and paints whatever geometry comes back. See the render
// package for an Ebitengine host.
package radialmenu

import (
	"time"

	"github.com/milk9111/radialmenu/anim"
)

// Lifecycle is the menu's current phase.
type Lifecycle int

const (
	Closed Lifecycle = iota
	Opening
	Open
	Activating
	Closing
)

func (l Lifecycle) String() string {
	switch l {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Activating:
		return "activating"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// noActive marks the absence of an activating item.
const noActive = -1

// Menu is the radial menu core. It is single-threaded and frame-driven:
// the host's clock advances it via Update, and all state lives here.
type Menu[T any] struct {
	items   []Item[T]
	angleOf AngleFunc

	radius      float64
	centerSize  float64
	itemSize    float64
	strokeWidth float64

	lifecycle Lifecycle
	active    int

	open     *anim.Tween
	activate *anim.Tween

	onSelected func(T)
}

// New builds a menu over the given ordered item list. The list may be empty
// (the menu degenerates to its center button). Items, geometry, durations,
// and the angle strategy are fixed for the menu's lifetime.
func New[T any](items []Item[T], opts ...Option[T]) *Menu[T] {
	m := &Menu[T]{
		items:       items,
		angleOf:     DefaultAngle,
		radius:      100,
		centerSize:  56,
		itemSize:    48,
		strokeWidth: 4,
		lifecycle:   Closed,
		active:      noActive,
	}
	cfg := config{
		openDuration:     600 * time.Millisecond,
		activateDuration: 800 * time.Millisecond,
		openEasing:       anim.ElasticOut,
		activateEasing:   anim.Linear,
	}
	for _, opt := range opts {
		opt(m, &cfg)
	}

	m.open = anim.NewTween(cfg.openDuration.Seconds(), cfg.openEasing)
	m.activate = anim.NewTween(cfg.activateDuration.Seconds(), cfg.activateEasing)
	return m
}

// Toggle opens a closed menu and closes an open one. A toggle while the
// open animation is in flight reverses it from its current value rather
// than restarting, so rapid taps stay responsive. Ignored while an item is
// activating: activation pins the menu open.
func (m *Menu[T]) Toggle() {
	switch m.lifecycle {
	case Closed:
		m.lifecycle = Opening
		m.open.Start(anim.Forward)
	case Open:
		m.lifecycle = Closing
		m.open.Start(anim.Reverse)
	case Opening:
		m.lifecycle = Closing
		m.open.Reverse()
	case Closing:
		m.lifecycle = Opening
		m.open.Reverse()
	case Activating:
	}
}

// Select begins activating item i. It is accepted only while the menu is
// fully open and i is in range; anything else is a silent no-op, including
// selects during opening, closing, or another item's activation. Activation
// is exclusive and runs to completion unless Reset or CancelActivation
// intervenes.
func (m *Menu[T]) Select(i int) {
	if m.lifecycle != Open {
		return
	}
	if i < 0 || i >= len(m.items) {
		return
	}
	m.active = i
	m.lifecycle = Activating
	m.activate.Start(anim.Forward)
}

// Reset collapses the menu back to Closed from any state, instantly. The
// open progress snaps to 0 with no animation. An in-flight activation is
// reverse-animated out (hosts that keep painting see the stroke ease back)
// but its selection never fires and the active item clears immediately.
func (m *Menu[T]) Reset() {
	if m.lifecycle == Activating {
		m.activate.Reverse()
	} else {
		m.activate.SnapTo(0)
	}
	m.open.SnapTo(0)
	m.active = noActive
	m.lifecycle = Closed
}

// CancelActivation aborts an in-flight activation, e.g. on host teardown.
// The menu returns to Open with no active item and the selection callback
// does not fire. A no-op in every other state.
func (m *Menu[T]) CancelActivation() {
	if m.lifecycle != Activating {
		return
	}
	m.activate.Cancel()
	m.active = noActive
	m.lifecycle = Open
}

// Update advances the animations by dt seconds and applies any lifecycle
// transition they complete. The selection callback fires here, exactly once
// per completed activation, after the menu has already returned to Closed.
func (m *Menu[T]) Update(dt float64) {
	if m.open.Update(dt) == anim.Completed {
		switch m.lifecycle {
		case Opening:
			m.lifecycle = Open
		case Closing:
			m.lifecycle = Closed
			m.active = noActive
		}
	}

	out := m.activate.Update(dt)
	if out == anim.Completed && m.lifecycle == Activating && m.activate.Direction() == anim.Forward {
		i := m.active
		m.active = noActive
		m.lifecycle = Closed
		m.open.SnapTo(0)
		if m.onSelected != nil {
			m.onSelected(m.items[i].Value)
		}
	}
}

// Lifecycle returns the menu's current phase.
func (m *Menu[T]) Lifecycle() Lifecycle {
	return m.lifecycle
}

// ActiveIndex returns the index of the activating item, or -1 if none.
func (m *Menu[T]) ActiveIndex() int {
	return m.active
}

// OpenProgress returns the eased open progress. Under elastic-out it can
// transiently exceed 1 before settling.
func (m *Menu[T]) OpenProgress() float64 {
	return m.open.Eased()
}

// ActivateProgress returns the eased activation progress.
func (m *Menu[T]) ActivateProgress() float64 {
	return m.activate.Eased()
}

// ItemCount returns the number of items on the ring.
func (m *Menu[T]) ItemCount() int {
	return len(m.items)
}

// Radius returns the configured ring radius.
func (m *Menu[T]) Radius() float64 {
	return m.radius
}
