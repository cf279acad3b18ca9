package runner

import "testing"

func testLayers() []ParallaxLayer {
	return []ParallaxLayer{
		{Factor: 0.35, Count: 10, MinY: 60, MaxY: 220, MinW: 120, MaxW: 280},
		{Factor: 0.5, Count: 30, MinY: 580, MaxY: 590, MinW: 2, MaxW: 4},
	}
}

func TestBackgroundDeterministic(t *testing.T) {
	a := NewBackground(11, 800, 0.25, testLayers()...)
	b := NewBackground(11, 800, 0.25, testLayers()...)
	for i := 0; i < 500; i++ {
		a.Advance(8)
		b.Advance(8)
	}
	for l := 0; l < a.Layers(); l++ {
		la, lb := a.Layer(l), b.Layer(l)
		for i := range la {
			if la[i] != lb[i] {
				t.Fatalf("layer %d item %d differs", l, i)
			}
		}
	}
}

func TestBackgroundRecycles(t *testing.T) {
	bg := NewBackground(3, 800, 0.25, testLayers()...)
	for i := 0; i < 5000; i++ {
		bg.Advance(9)
		if off := bg.HillOffset(); off < 0 || off >= 1000 {
			t.Fatalf("hill offset %v out of range", off)
		}
	}
	for l := 0; l < bg.Layers(); l++ {
		for _, d := range bg.Layer(l) {
			if d.X+float64(d.W) < -20-9 {
				t.Fatalf("layer %d item left behind at x=%v", l, d.X)
			}
			if d.X > 800+200 {
				t.Fatalf("layer %d item respawned too far right at x=%v", l, d.X)
			}
		}
	}
	if bg.Layer(5) != nil {
		t.Error("out of range layer should be nil")
	}
}
