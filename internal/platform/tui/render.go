package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// palette holds the ANSI 256 code of every scene color. An empty code
// leaves the terminal default.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "239",
	core.ColorPink:          "218",
	core.ColorPurple:        "93",
	core.ColorBrown:         "130",
	core.ColorNavy:          "18",
}

// colorStyles is the palette turned into lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, code := range palette {
		st := lipgloss.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[core.Color(c)] = st
	}
	return styles
}()

// RenderScreen turns the cell buffer into terminal text. Each run of
// same-colored cells on a row becomes one styled segment.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out strings.Builder
	out.Grow(w*h*2 + h)
	span := make([]rune, 0, w)

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			span = span[:0]
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				span = append(span, cell.Rune)
			}
			out.WriteString(styleFor(color).Render(string(span)))
		}
	}
	return out.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}
