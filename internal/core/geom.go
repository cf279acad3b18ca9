// Package core holds the types shared by the games and the terminal
// platform: rectangles, the cell screen, input frames and colors. It has
// no terminal dependencies so game logic stays testable.
package core

// Rect is an axis-aligned box in world pixels. Y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX is the horizontal midpoint, used to order things along the run.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Intersects reports whether the boxes share area. Boxes that only touch
// along an edge do not collide.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
