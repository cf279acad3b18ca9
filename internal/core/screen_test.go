package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	blank := strings.Repeat(" ", 12)
	for y := range 4 {
		if got := s.Row(y); got != blank {
			t.Errorf("Row(%d) = %q, want blanks", y, got)
		}
	}
}

func TestScreenClipsOutsideWrites(t *testing.T) {
	s := NewScreen(5, 3)

	s.DrawTextColored(3, 1, "carrot", ColorOrange)
	if got := s.Row(1); got != "   ca" {
		t.Errorf("Row(1) = %q, want text clipped at the right edge", got)
	}
	s.DrawText(-2, 0, "fox")
	if got := s.Row(0); got != "x    " {
		t.Errorf("Row(0) = %q, want text clipped at the left edge", got)
	}

	s.Set(-1, 0, 'A')
	s.Set(0, 7, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(9, 9) != ' ' {
		t.Error("reads outside the buffer should be spaces")
	}
	if c := s.GetCell(3, 1); c.Rune != 'c' || c.Color != ColorOrange {
		t.Errorf("GetCell(3, 1) = %+v, want orange 'c'", c)
	}
}

func TestScreenClearDropsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRectColored(NewRect(0, 0, 4, 2), '#', ColorGreen)
	s.Clear()
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("after Clear got %+v, want blank", c)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawHLine(2, 0, 5, '=', ColorGray)
	s.DrawHLine(0, 0, -3, 'x', ColorGray)
	if got := s.Row(0); got != "  =====   " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(6, 0).Color != ColorGray {
		t.Error("line cells should carry the color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))
	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("box =\n%s\nwant\n%s", got, strings.Join(want, "\n"))
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(20, 7)
	s.DrawRect(NewRect(0, 0, 20, 7), '.')
	s.DrawMessageBox("GAME OVER", "R")

	// 9 wide text plus 4 of frame and padding, centered
	if got := s.Row(1); got != "...┌───────────┐...." {
		t.Errorf("top = %q", got)
	}
	if got := s.Row(2); got != "...│ GAME OVER │...." {
		t.Errorf("line 1 = %q", got)
	}
	if got := s.Row(3); got != "...│     R     │...." {
		t.Errorf("line 2 = %q", got)
	}
}

func TestScreenResizeKeepsCorner(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 2, "wxyz")

	s.Resize(2, 4)
	if s.Width() != 2 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 2x4", s.Width(), s.Height())
	}
	want := "ab\n  \nwx\n  "
	if got := s.String(); got != want {
		t.Errorf("after shrink got %q, want %q", got, want)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after reshape got %q", got)
	}
}

func TestScreenEqual(t *testing.T) {
	a, b := NewScreen(3, 2), NewScreen(3, 2)
	if !a.Equal(b) {
		t.Error("blank screens of the same size should be equal")
	}
	b.SetColored(1, 1, ' ', ColorRed)
	if a.Equal(b) {
		t.Error("a color difference should count")
	}
	if a.Equal(NewScreen(2, 3)) {
		t.Error("different sizes should not be equal")
	}
}
