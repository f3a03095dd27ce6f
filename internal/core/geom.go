// Package core holds the types shared by the game and its hosts: world
// geometry, the character screen, palette colors, actions and runtime
// settings. It imports neither Bubble Tea nor Ebitengine.
package core

// Rect is an axis-aligned box in world units. Y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the box with top-left corner (x, y) and size w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt returns a w by h box centered on (cx, cy).
func RectAt(cx, cy, w, h int) Rect {
	r := Rect{W: w, H: h}
	r.SetCenter(cx, cy)
	return r
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the x-coordinate of the center, rounded down.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the center, rounded down.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// SetLeft moves the box so its left edge is at x.
func (r *Rect) SetLeft(x int) { r.X = x }

// SetRight moves the box so its right edge is at x.
func (r *Rect) SetRight(x int) { r.X = x - r.W }

// SetTop moves the box so its top edge is at y.
func (r *Rect) SetTop(y int) { r.Y = y }

// SetBottom moves the box so its bottom edge is at y.
func (r *Rect) SetBottom(y int) { r.Y = y - r.H }

// SetCenter moves the box so its center is at (cx, cy). Size is unchanged.
func (r *Rect) SetCenter(cx, cy int) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Overlaps reports whether the boxes intersect on both axes.
// Boxes that only share an edge overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// Overlaps is the method form of the package-level Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}
