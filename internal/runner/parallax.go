package runner

import "math"

// ParallaxLayer describes one band of background decoration that scrolls
// at Factor times the world speed.
type ParallaxLayer struct {
	Factor float64
	Count  int
	MinY   int
	MaxY   int
	MinW   int
	MaxW   int
}

// Decor is one background item, such as a cloud or a ground fleck.
type Decor struct {
	X float64
	Y int
	W int
}

// Background scrolls decoration layers and a repeating hill line. It has
// its own random source so that cosmetics never shift gameplay spawns.
type Background struct {
	width      int
	hillFactor float64
	layers     []ParallaxLayer

	rng   *RNG
	decor [][]Decor
	hills float64
}

// NewBackground creates a background for a world of the given width.
func NewBackground(seed int64, width int, hillFactor float64, layers ...ParallaxLayer) *Background {
	b := &Background{width: width, hillFactor: hillFactor, layers: layers}
	b.Reset(seed)
	return b
}

// Reset scatters every layer across the screen again.
func (b *Background) Reset(seed int64) {
	b.rng = NewRNG(seed)
	b.hills = 0
	b.decor = make([][]Decor, len(b.layers))
	for i, l := range b.layers {
		items := make([]Decor, l.Count)
		for j := range items {
			items[j] = Decor{
				X: float64(b.rng.IntRange(0, b.width)),
				Y: b.rng.IntRange(l.MinY, l.MaxY),
				W: b.rng.IntRange(l.MinW, l.MaxW),
			}
		}
		b.decor[i] = items
	}
}

// Advance scrolls every layer by its share of speed. Items that leave on
// the left come back past the right edge.
func (b *Background) Advance(speed float64) {
	b.hills = math.Mod(b.hills+speed*b.hillFactor, float64(b.width+200))
	for i, l := range b.layers {
		for j := range b.decor[i] {
			d := &b.decor[i][j]
			d.X -= speed * l.Factor
			if d.X+float64(d.W) < -20 {
				d.X = float64(b.width + b.rng.IntRange(30, 200))
				d.Y = b.rng.IntRange(l.MinY, l.MaxY)
				d.W = b.rng.IntRange(l.MinW, l.MaxW)
			}
		}
	}
}

// Layer returns the items of layer i.
func (b *Background) Layer(i int) []Decor {
	if i < 0 || i >= len(b.decor) {
		return nil
	}
	return b.decor[i]
}

// Layers returns the number of decoration layers.
func (b *Background) Layers() int {
	return len(b.decor)
}

// HillOffset returns how far the hill line has scrolled, in [0, width+200).
func (b *Background) HillOffset() float64 {
	return b.hills
}
