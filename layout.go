package radialmenu

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Layout is the geometry snapshot for one frame: where every visual element
// of the menu sits right now. It is a pure function of the menu state and
// the supplied center point; calling it twice without an intervening Update
// yields identical geometry.
type Layout struct {
	// Center is the always-present center button.
	Center Rect

	// Items maps item index to its closed-state button rect. The active
	// item, while activating, is absent here and present as Arc instead —
	// exactly one visual element ever claims an index.
	Items map[int]Rect

	// Arc is the activation stroke, nil unless an item is activating.
	Arc *Arc
}

// Layout computes element placement for the current animation instant. The
// center point is supplied by the host each pass (derived from its bounding
// size); the menu does not own it. Zero items yields the center button only.
func (m *Menu[T]) Layout(center cp.Vector) Layout {
	l := Layout{
		Center: RectCenteredAt(center, m.centerSize, m.centerSize),
		Items:  make(map[int]Rect, len(m.items)),
	}

	// openProgress is already eased, so under elastic-out the distance
	// overshoots past the ring radius and settles back on its own.
	dist := m.open.Eased() * m.radius
	for i := range m.items {
		if m.lifecycle == Activating && i == m.active {
			continue
		}
		angle := m.angleOf(i, len(m.items))
		pos := center.Add(cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mult(dist))
		l.Items[i] = RectCenteredAt(pos, m.itemSize, m.itemSize)
	}

	if m.lifecycle == Activating {
		l.Arc = m.arc(center)
	}
	return l
}
