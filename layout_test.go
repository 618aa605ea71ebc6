package radialmenu

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/radialmenu/anim"
)

func TestLayoutExclusivityPerIndex(t *testing.T) {
	// at no sampled frame does an index have both a button rect and the arc
	m := newTestMenu()
	m.Toggle()
	settle(m, 60)
	m.Select(2)

	for i := 0; i < 60; i++ {
		l := m.Layout(center())
		if m.Lifecycle() == Activating {
			if _, ok := l.Items[2]; ok {
				t.Fatalf("frame %d: active index 2 has both a button rect and an arc", i)
			}
			if l.Arc == nil {
				t.Fatalf("frame %d: activating but no arc", i)
			}
		} else if l.Arc != nil {
			t.Fatalf("frame %d: arc present outside activation", i)
		}
		m.Update(frame)
	}
}

func TestLayoutElasticOvershootPassesThrough(t *testing.T) {
	m := newTestMenu()
	m.Toggle()

	overshot := false
	for i := 0; i < 60 && m.Lifecycle() == Opening; i++ {
		m.Update(frame)
		l := m.Layout(center())
		for idx, r := range l.Items {
			dist := r.Center().Sub(center()).Length()
			want := m.OpenProgress() * m.Radius()
			if math.Abs(dist-want) > 1e-6 {
				t.Fatalf("item %d distance = %v, want %v", idx, dist, want)
			}
			if dist > m.Radius() {
				overshot = true
			}
		}
	}
	if !overshot {
		t.Fatalf("elastic-out opening never placed items past the ring radius")
	}
}

func TestLayoutClosedStacksItemsOnCenter(t *testing.T) {
	m := newTestMenu()
	l := m.Layout(center())
	for i, r := range l.Items {
		if r.Center() != center() {
			t.Fatalf("closed menu item %d center = %v, want %v", i, r.Center(), center())
		}
	}
}

func TestLayoutLinearOpenDistance(t *testing.T) {
	m := New(fourItems(),
		WithRadius[string](80),
		WithOpenDuration[string](100*time.Millisecond),
		WithOpenEasing[string](anim.Linear),
	)
	m.Toggle()
	for i := 0; i < 3; i++ {
		m.Update(frame)
	}

	l := m.Layout(center())
	want := m.OpenProgress() * 80
	if want <= 0 || want >= 80 {
		t.Fatalf("expected mid-flight distance, got %v", want)
	}
	r := l.Items[0]
	if got := r.Center().Sub(center()).Length(); math.Abs(got-want) > 1e-6 {
		t.Fatalf("item distance = %v, want %v", got, want)
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectCenteredAt(cp.Vector{X: 10, Y: 20}, 4, 6)
	if r.X != 8 || r.Y != 17 || r.Width != 4 || r.Height != 6 {
		t.Fatalf("RectCenteredAt produced %+v", r)
	}
	if r.Center() != (cp.Vector{X: 10, Y: 20}) {
		t.Fatalf("Center() = %v", r.Center())
	}
	if !r.Contains(cp.Vector{X: 9, Y: 19}) || r.Contains(cp.Vector{X: 13, Y: 19}) {
		t.Fatalf("Contains out of contract")
	}
	other := Rect{X: 11, Y: 22, Width: 5, Height: 5}
	if !r.Intersects(other) {
		t.Fatalf("expected overlap between %+v and %+v", r, other)
	}
	if r.Intersects(Rect{X: 100, Y: 100, Width: 1, Height: 1}) {
		t.Fatalf("unexpected overlap with far rect")
	}
}
