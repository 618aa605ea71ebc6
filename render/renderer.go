// Package render draws a radial menu onto an Ebitengine image. It is one
// host for the core: it pulls a Layout once per frame and paints it, keeping
// the tessellated activation stroke cached between frames so saturated
// progress doesn't redo geometry work.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/radialmenu"
)

// Defaults are host-supplied rendering fallbacks. The menu core never looks
// these up ambiently; they are passed in here at the paint boundary.
type Defaults struct {
	// CenterColor fills the center button.
	CenterColor color.Color
	// CenterGlyph is drawn on the center button.
	CenterGlyph string
	// ItemColor fills item buttons whose style has no background.
	ItemColor color.Color
	// TextColor is used for glyphs whose style has no icon color.
	TextColor color.Color
}

// Renderer paints menu layouts. Not safe for concurrent use; drive it from
// the game's draw loop like any other Ebitengine drawing.
type Renderer struct {
	defaults Defaults
	face     ebtext.Face

	arcPath vector.Path
	lastArc radialmenu.Arc
	hasArc  bool
}

// New builds a renderer. Zero-value Defaults fields get usable fallbacks.
// Text uses the built-in basic face, so no theme fonts need loading.
func New(d Defaults) *Renderer {
	if d.CenterColor == nil {
		d.CenterColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	}
	if d.CenterGlyph == "" {
		d.CenterGlyph = "+"
	}
	if d.ItemColor == nil {
		d.ItemColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	}
	if d.TextColor == nil {
		d.TextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return &Renderer{
		defaults: d,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw paints one frame of the menu. styles is index-aligned with the
// menu's items (see radialmenu.Styles); missing or nil entries fall back to
// the defaults.
func (r *Renderer) Draw(screen *ebiten.Image, l radialmenu.Layout, styles []radialmenu.Style) {
	// item buttons sit under the center button so a closed menu shows only
	// the center
	for i, rect := range l.Items {
		var style radialmenu.Style
		if i < len(styles) {
			style = styles[i]
		}
		r.drawDisc(screen, rect, style.Background, r.defaults.ItemColor)
		if style.Glyph != "" {
			r.drawGlyph(screen, style.Glyph, rect.Center().X, rect.Center().Y, style.IconColor)
		}
	}

	r.drawDisc(screen, l.Center, r.defaults.CenterColor, r.defaults.CenterColor)
	r.drawGlyph(screen, r.defaults.CenterGlyph, l.Center.Center().X, l.Center.Center().Y, r.defaults.TextColor)

	if l.Arc != nil {
		r.drawArc(screen, *l.Arc)
	}
}

func (r *Renderer) drawDisc(screen *ebiten.Image, rect radialmenu.Rect, clr, fallback color.Color) {
	if clr == nil {
		clr = fallback
	}
	c := rect.Center()
	vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(rect.Width/2), clr, true)
}

func (r *Renderer) drawGlyph(screen *ebiten.Image, glyph string, x, y float64, clr color.Color) {
	if clr == nil {
		clr = r.defaults.TextColor
	}
	op := &ebtext.DrawOptions{}
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, glyph, r.face, op)
}

func (r *Renderer) drawArc(screen *ebiten.Image, a radialmenu.Arc) {
	if a.Sweep <= 0 {
		return
	}
	r.ensureArcPath(a)

	clr := a.Color
	if clr == nil {
		clr = r.defaults.ItemColor
	}
	opts := &vector.StrokeOptions{Width: float32(a.StrokeWidth)}
	vector.StrokePath(screen, &r.arcPath, clr, true, opts)

	if a.Glyph != "" {
		r.drawGlyph(screen, a.Glyph, a.GlyphPos.X, a.GlyphPos.Y, a.Color)
	}
}

// ensureArcPath rebuilds the stroke path only when the arc's inputs changed
// since the last frame. Reports whether a rebuild happened.
func (r *Renderer) ensureArcPath(a radialmenu.Arc) bool {
	if r.hasArc && a.Equal(r.lastArc) {
		return false
	}
	r.arcPath = vector.Path{}
	r.arcPath.Arc(
		float32(a.Center.X), float32(a.Center.Y), float32(a.Radius),
		float32(a.StartAngle), float32(a.EndAngle()),
		vector.Clockwise,
	)
	r.lastArc = a
	r.hasArc = true
	return true
}

// Invalidate drops the cached stroke path, forcing a rebuild on next draw.
func (r *Renderer) Invalidate() {
	r.hasArc = false
}
