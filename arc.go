package radialmenu

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

// Arc is the activation stroke for the active item: a ring segment growing
// from the item's own angle until it closes the full circle when activation
// completes, with an optional glyph riding the leading edge.
type Arc struct {
	Center      cp.Vector
	Radius      float64
	StartAngle  float64
	Sweep       float64
	StrokeWidth float64
	Color       color.Color

	// Glyph and GlyphPos describe the label on the leading edge. An empty
	// Glyph means stroke only; GlyphPos is then the zero vector.
	Glyph    string
	GlyphPos cp.Vector
}

// EndAngle is the angle of the stroke's leading edge.
func (a Arc) EndAngle() float64 {
	return a.StartAngle + a.Sweep
}

// Equal reports value equality of two arcs. Hosts use it to skip
// re-tessellating the stroke when nothing changed between frames, e.g. while
// progress is saturated at an endpoint.
func (a Arc) Equal(b Arc) bool {
	return a.Center == b.Center &&
		a.Radius == b.Radius &&
		a.StartAngle == b.StartAngle &&
		a.Sweep == b.Sweep &&
		a.StrokeWidth == b.StrokeWidth &&
		a.Glyph == b.Glyph &&
		a.GlyphPos == b.GlyphPos &&
		colorsEqual(a.Color, b.Color)
}

func colorsEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// arc builds the activation stroke snapshot for the active item. Only valid
// while the menu is activating.
func (m *Menu[T]) arc(center cp.Vector) *Arc {
	it := m.items[m.active]
	sweep := m.activate.Eased() * 2 * math.Pi
	start := m.angleOf(m.active, len(m.items))

	a := &Arc{
		Center:      center,
		Radius:      m.radius,
		StartAngle:  start,
		Sweep:       sweep,
		StrokeWidth: m.strokeWidth,
		Color:       it.Background,
		Glyph:       it.Glyph,
	}
	if it.Glyph != "" {
		lead := start + sweep
		a.GlyphPos = center.Add(cp.Vector{X: math.Cos(lead), Y: math.Sin(lead)}.Mult(m.radius))
	}
	return a
}
