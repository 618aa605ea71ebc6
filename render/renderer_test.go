package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/radialmenu"
)

func testArc() radialmenu.Arc {
	return radialmenu.Arc{
		Center:      cp.Vector{X: 100, Y: 100},
		Radius:      80,
		StartAngle:  -math.Pi / 2,
		Sweep:       math.Pi,
		StrokeWidth: 4,
		Color:       color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
		Glyph:       "N",
		GlyphPos:    cp.Vector{X: 100, Y: 180},
	}
}

func TestArcPathCache(t *testing.T) {
	r := New(Defaults{})

	a := testArc()
	if !r.ensureArcPath(a) {
		t.Fatalf("first arc should tessellate")
	}
	if r.ensureArcPath(a) {
		t.Fatalf("unchanged arc should reuse the cached path")
	}

	b := a
	b.Sweep += 0.05
	if !r.ensureArcPath(b) {
		t.Fatalf("changed sweep should rebuild the path")
	}
	if r.ensureArcPath(b) {
		t.Fatalf("second draw of the changed arc should hit the cache")
	}
}

func TestInvalidateDropsCache(t *testing.T) {
	r := New(Defaults{})
	a := testArc()
	r.ensureArcPath(a)
	r.Invalidate()
	if !r.ensureArcPath(a) {
		t.Fatalf("Invalidate should force a rebuild")
	}
}

func TestNewFillsDefaults(t *testing.T) {
	r := New(Defaults{})
	if r.defaults.CenterColor == nil || r.defaults.ItemColor == nil || r.defaults.TextColor == nil {
		t.Fatalf("nil fallback colors: %+v", r.defaults)
	}
	if r.defaults.CenterGlyph == "" {
		t.Fatalf("empty center glyph fallback")
	}

	custom := New(Defaults{CenterGlyph: "x", CenterColor: color.White})
	if custom.defaults.CenterGlyph != "x" {
		t.Fatalf("supplied glyph overridden: %+v", custom.defaults)
	}
}
