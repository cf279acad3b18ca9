package core

// Viewport maps fixed world coordinates onto a screen of any size. The
// simulation never sees the terminal size, so runs play the same in a
// small window as in a large one.
type Viewport struct {
	WorldW, WorldH   int
	ScreenW, ScreenH int
}

// NewViewport creates a viewport from a world size onto dst.
func NewViewport(worldW, worldH int, dst *Screen) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: dst.Width(), ScreenH: dst.Height()}
}

// X converts a world X to a screen column.
func (v Viewport) X(wx int) int {
	if v.WorldW <= 0 {
		return 0
	}
	return floorDiv(wx*v.ScreenW, v.WorldW)
}

// Y converts a world Y to a screen row.
func (v Viewport) Y(wy int) int {
	if v.WorldH <= 0 {
		return 0
	}
	return floorDiv(wy*v.ScreenH, v.WorldH)
}

// Rect converts a world rectangle to screen cells. Anything with a
// positive size covers at least one cell.
func (v Viewport) Rect(r Rect) Rect {
	x0, y0 := v.X(r.X), v.Y(r.Y)
	x1, y1 := v.X(r.Right()), v.Y(r.Bottom())
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Fill draws a world rectangle filled with a colored rune.
func (v Viewport) Fill(dst *Screen, r Rect, fill rune, c Color) {
	dst.DrawRectColored(v.Rect(r), fill, c)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
