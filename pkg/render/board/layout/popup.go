package layout

// Point is a position in viewport coordinates.
type Point struct{ X, Y float64 }

// Size is a width and height.
type Size struct{ W, H float64 }

// PlacePopup returns the top-left corner for a popup of the given size
// anchored at anchor. When the popup would cross the right or bottom edge of
// the viewport it is shifted left or up by the overflow. It never moves
// past the top-left corner, so a popup larger than the viewport is pinned
// at zero.
func PlacePopup(anchor Point, popup Size, viewport Size) Point {
	p := anchor
	if over := p.X + popup.W - viewport.W; over > 0 {
		p.X -= over
	}
	if over := p.Y + popup.H - viewport.H; over > 0 {
		p.Y -= over
	}
	p.X = max(p.X, 0)
	p.Y = max(p.Y, 0)
	return p
}
