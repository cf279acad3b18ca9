package parkour

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/hud"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Visual characters for rendering
const (
	RunnerChar   = '█'
	ShieldLeft   = '('
	ShieldRight  = ')'
	BoxChar      = '▓'
	TallChar     = '█'
	BirdChar     = 'W'
	CoinChar     = 'o'
	PowerChar    = '+'
	CloudChar    = '~'
	MountainChar = '░'
	GroundChar   = '═'
)

// mountain is a static peak in world pixels, as drawn on the backdrop.
type mountain struct {
	left, peak, right, height int
}

var mountains = []mountain{
	{left: 0, peak: 120, right: 240, height: 60},
	{left: 240, peak: 380, right: 520, height: 80},
	{left: 520, peak: 680, right: 860, height: 70},
}

// mountainBase is how far above the ground the peaks start.
const mountainBase = 80

type sky struct {
	cloud, mountain, text core.Color
}

// skyColors picks a palette for the time of day.
func skyColors(daylight float64) sky {
	switch {
	case daylight >= 0.66:
		return sky{cloud: core.ColorBrightWhite, mountain: core.ColorBlue, text: core.ColorDefault}
	case daylight >= 0.33:
		return sky{cloud: core.ColorOrange, mountain: core.ColorPurple, text: core.ColorBrightYellow}
	default:
		return sky{cloud: core.ColorDarkGray, mountain: core.ColorNavy, text: core.ColorBrightWhite}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	view := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst)
	pal := skyColors(g.Daylight())

	g.drawBackdrop(dst, view, pal)

	for _, c := range g.coins.Items() {
		view.Fill(dst, c.Rect, CoinChar, core.ColorBrightYellow)
	}
	for _, s := range g.shields.Items() {
		view.Fill(dst, s.Rect, PowerChar, core.ColorBrightCyan)
	}
	for _, o := range g.obstacles.Items() {
		switch o.Kind {
		case runner.KindTall:
			view.Fill(dst, o.Rect, TallChar, core.ColorGray)
		case runner.KindBird:
			view.Fill(dst, o.Rect, BirdChar, core.ColorRed)
		default:
			view.Fill(dst, o.Rect, BoxChar, core.ColorBrown)
		}
	}

	g.drawRunner(dst, view)

	hudLine := fmt.Sprintf(" Score: %s    Coins: %d    Best: %s    Mode: %s",
		hud.Number(int(g.score)), g.coinN, hud.Number(g.best.Value()), strings.ToUpper(g.modeName()))
	dst.DrawTextColored(0, 0, hudLine, pal.text)
	if g.player.Shield() {
		dst.DrawTextColored(1, 1, "Shield ON", core.ColorBrightCyan)
	}

	switch g.phase {
	case PhaseTitle:
		dst.DrawMessageBox(
			"PARKOUR",
			"",
			"Space/Up/W: jump (double)   Down/S: slide   P: pause",
			"H: toggle normal/hard   Enter: start",
			"Dodge boxes, walls and birds. A shield absorbs one hit.",
			"Mode: "+strings.ToUpper(g.modeName()),
		)
	case PhaseOver:
		dst.DrawMessageBox(
			"GAME OVER",
			fmt.Sprintf("Score: %s   Coins: %d", hud.Number(int(g.score)), g.coinN),
			"Press R to restart   Q to quit",
		)
	case PhasePlaying:
		if g.paused {
			dst.DrawMessageBox("PAUSED")
		}
	}
}

func (g *Game) drawBackdrop(dst *core.Screen, view core.Viewport, pal sky) {
	ground := g.cfg.World.GroundY
	base := ground - mountainBase

	for col := range dst.Width() {
		wx := col * g.cfg.World.Width / max(1, dst.Width())
		for _, m := range mountains {
			if wx < m.left || wx >= m.right {
				continue
			}
			var top int
			if wx <= m.peak {
				top = base - m.height*(wx-m.left)/max(1, m.peak-m.left)
			} else {
				top = base - m.height*(m.right-wx)/max(1, m.right-m.peak)
			}
			for row := view.Y(top); row < view.Y(base); row++ {
				dst.SetColored(col, row, MountainChar, pal.mountain)
			}
		}
	}

	for _, d := range g.bg.Layer(0) {
		r := view.Rect(core.NewRect(int(d.X), d.Y, d.W, 20))
		dst.DrawHLine(r.X, r.Y, r.W, CloudChar, pal.cloud)
	}

	dst.DrawHLine(0, view.Y(ground), dst.Width(), GroundChar, core.ColorGray)
}

func (g *Game) drawRunner(dst *core.Screen, view core.Viewport) {
	if hud.Flicker(g.player.IFrameMs() > 0, g.timeMs, 80) {
		return
	}
	r := view.Rect(g.player.Rect())
	dst.DrawRectColored(r, RunnerChar, core.ColorCyan)
	if g.player.Shield() {
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(r.X-1, y, ShieldLeft, core.ColorBrightBlue)
			dst.SetColored(r.Right(), y, ShieldRight, core.ColorBrightBlue)
		}
	}
}
