package radialmenu

import "image/color"

// Item is one selectable entry on the ring. Items are immutable once the
// menu is constructed; an item's identity is its position in the ordered
// list, and that position also determines its angle.
type Item[T any] struct {
	// Value is handed to the selection callback when activation completes.
	// Values need not be unique; duplicates make the callback ambiguous to
	// the caller, which is the caller's concern.
	Value T

	// Glyph is an optional short label (a rune or icon name) drawn on the
	// item button and riding the activation arc's leading edge. Empty means
	// the host paints the stroke only.
	Glyph string

	// Background fills the item button and colors the activation stroke.
	Background color.Color

	// IconColor colors the glyph.
	IconColor color.Color
}

// Style is the renderable subset of an item, free of the value type so
// hosts can draw without knowing T.
type Style struct {
	Glyph      string
	Background color.Color
	IconColor  color.Color
}

// Styles extracts the renderable fields of an item list, index-aligned.
func Styles[T any](items []Item[T]) []Style {
	out := make([]Style, len(items))
	for i, it := range items {
		out[i] = Style{Glyph: it.Glyph, Background: it.Background, IconColor: it.IconColor}
	}
	return out
}
