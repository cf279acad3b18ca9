package core

import "testing"

func TestViewportScaling(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, ScreenW: 80, ScreenH: 24}

	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"origin", NewRect(0, 0, 800, 600), NewRect(0, 0, 80, 24)},
		{"player", NewRect(180, 524, 56, 46), NewRect(18, 20, 5, 2)},
		{"tiny stays visible", NewRect(400, 300, 2, 2), NewRect(40, 12, 1, 1)},
		{"off left", NewRect(-15, 0, 10, 25), NewRect(-2, 0, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Rect(tt.in); got != tt.want {
				t.Errorf("Rect(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	if v.X(-1) != -1 {
		t.Errorf("negative world X should floor, got %d", v.X(-1))
	}
}

func TestViewportFillClipsToScreen(t *testing.T) {
	s := NewScreen(10, 5)
	v := NewViewport(100, 50, s)
	v.Fill(s, NewRect(-20, 20, 40, 100), '#', ColorRed)

	if s.Get(0, 2) != '#' || s.Get(1, 4) != '#' {
		t.Error("visible part should be filled")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("fill spilled past its right edge")
	}
	if s.GetCell(0, 2).Color != ColorRed {
		t.Error("fill should carry its color")
	}
}
