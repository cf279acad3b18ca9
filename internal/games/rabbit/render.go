package rabbit

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/hud"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Visual characters for rendering
const (
	RabbitBody  = '█'
	RabbitEar   = '"'
	WingChar    = '<'
	RockChar    = '▓'
	FoxChar     = '▒'
	CarrotChar  = 'V'
	WingsChar   = '≈'
	PortalChar  = '@'
	CloudChar   = '~'
	HillChar    = '░'
	FlowerChar  = '*'
	BirdChar    = 'v'
	EnergyWidth = 12
)

type palette struct {
	ground, hill, cloud core.Color
	rock, fox, carrot   core.Color
	text                core.Color
	groundRune          rune
}

func sceneColors(s Scene) palette {
	switch s {
	case SceneHell:
		return palette{
			ground: core.ColorRed, hill: core.ColorBrown, cloud: core.ColorDarkGray,
			rock: core.ColorBrightRed, fox: core.ColorRed, carrot: core.ColorBrightRed,
			text: core.ColorBrightWhite, groundRune: '▀',
		}
	case SceneHeaven:
		return palette{
			ground: core.ColorBrightWhite, hill: core.ColorBrightBlue, cloud: core.ColorBrightWhite,
			rock: core.ColorGray, fox: core.ColorOrange, carrot: core.ColorOrange,
			text: core.ColorBrightCyan, groundRune: '═',
		}
	default:
		return palette{
			ground: core.ColorGreen, hill: core.ColorBrightGreen, cloud: core.ColorWhite,
			rock: core.ColorGray, fox: core.ColorOrange, carrot: core.ColorOrange,
			text: core.ColorDefault, groundRune: '▀',
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	view := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst)
	pal := sceneColors(g.scene)

	g.drawBackground(dst, view, pal)

	for _, c := range g.carrots.Items() {
		view.Fill(dst, c.Rect, CarrotChar, pal.carrot)
	}
	for _, o := range g.obstacles.Items() {
		if o.Kind == runner.KindFox {
			view.Fill(dst, o.Rect, FoxChar, pal.fox)
			continue
		}
		view.Fill(dst, o.Rect, RockChar, pal.rock)
	}
	for _, w := range g.wings.Items() {
		view.Fill(dst, w.Rect, WingsChar, core.ColorBrightCyan)
	}
	for _, p := range g.portals.Items() {
		color := core.ColorPurple
		if p.Kind == runner.KindHeavenPortal {
			color = core.ColorBrightBlue
		}
		view.Fill(dst, p.Rect, PortalChar, color)
	}

	g.drawRabbit(dst, view)
	g.drawHUD(dst, pal)

	switch {
	case g.reviving:
		dst.DrawMessageBox("REVIVE", fmt.Sprintf("%d", hud.CountdownSeconds(g.reviveMs)))
	case g.gameOver:
		dst.DrawMessageBox(
			"GAME OVER",
			fmt.Sprintf("Score: %s  |  Best: %s", hud.Number(int(g.score)), hud.Number(g.best.Value())),
			"Press SPACE or R to restart",
		)
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawBackground(dst *core.Screen, view core.Viewport, pal palette) {
	groundRow := view.Y(g.cfg.World.GroundY)

	for _, d := range g.bg.Layer(0) {
		r := view.Rect(core.NewRect(int(d.X), d.Y, d.W, 20))
		dst.DrawHLine(r.X, r.Y, r.W, CloudChar, pal.cloud)
	}
	if g.scene != SceneHell {
		for _, d := range g.bg.Layer(2) {
			dst.SetColored(view.X(int(d.X)), view.Y(d.Y), BirdChar, core.ColorDarkGray)
		}
	}

	// Hills repeat every 320 world pixels and rise up to three rows
	offset := int(g.bg.HillOffset())
	for col := range dst.Width() {
		wx := col*g.cfg.World.Width/max(1, dst.Width()) + offset
		phase := wx % 320
		height := 3 - core.Abs(phase-160)*3/160
		for h := 1; h <= height; h++ {
			dst.SetColored(col, groundRow-h, HillChar, pal.hill)
		}
	}

	dst.DrawHLine(0, groundRow, dst.Width(), pal.groundRune, pal.ground)
	flowerColors := []core.Color{core.ColorBrightYellow, core.ColorPink, core.ColorBrightGreen, core.ColorBrightBlue}
	for i, d := range g.bg.Layer(1) {
		dst.SetColored(view.X(int(d.X)), view.Y(d.Y), FlowerChar, flowerColors[i%len(flowerColors)])
	}
}

func (g *Game) drawRabbit(dst *core.Screen, view core.Viewport) {
	if hud.Flicker(g.player.IFrameMs() > 0, g.timeMs, 80) {
		return
	}
	r := view.Rect(g.player.Rect())
	color := core.ColorBrightWhite
	if g.player.Super() {
		color = core.ColorBrightCyan
	}
	dst.DrawRectColored(r, RabbitBody, color)
	dst.SetColored(r.X+1, r.Y-1, RabbitEar, color)
	dst.SetColored(r.Right()-2, r.Y-1, RabbitEar, color)
	if g.player.HasWings() {
		dst.SetColored(r.X-1, r.Y, WingChar, core.ColorBrightCyan)
	}
}

func (g *Game) drawHUD(dst *core.Screen, pal palette) {
	line := fmt.Sprintf(" Score: %s   Carrots: %d   Best: %s   [%s]",
		hud.Number(int(g.score)), g.carrotN, hud.Number(g.best.Value()), g.scene)
	if g.player.HasWings() {
		line += "   Wings: ON"
	}
	if g.player.Super() {
		line += "   SUPER!"
	}
	dst.DrawTextColored(0, 0, line, pal.text)

	energy := "Energy " + hud.Bar(g.energy.Fraction(), EnergyWidth) + " "
	dst.DrawTextColored(dst.Width()-len(energy), 0, energy, core.ColorOrange)

	var timers []string
	if g.player.HasWings() {
		timers = append(timers, fmt.Sprintf("Wings: %ds", hud.BudgetSeconds(g.player.WingFuel(), g.cfg.ScoreRate)))
	}
	if g.player.Super() {
		timers = append(timers, fmt.Sprintf("SUPER: %ds", hud.Seconds(g.player.SuperMs())))
	}
	if g.charges > 0 {
		switch g.scene {
		case SceneHell:
			timers = append(timers, fmt.Sprintf("Fireballs: %d", g.charges))
		case SceneHeaven:
			timers = append(timers, fmt.Sprintf("Wand: %d", g.charges))
		case SceneGrass:
		}
	}
	top := dst.Height() - len(timers)
	for i, t := range timers {
		dst.DrawTextColored(1, top+i, t, pal.text)
	}
}
