package parkour

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// spawn runs the three spawn timers. Obstacles come closer together as
// the difficulty scale grows.
func (g *Game) spawn(dt int) {
	w := g.cfg.World

	if g.obstacleCD.Tick(dt) {
		window := runner.NewWindow(g.mode.Obstacles)
		g.obstacleCD.Reset(window.Next(g.rng, int(g.DifficultyScale()*g.cfg.Obstacles.GapPerStep)))

		kind := g.obstacleKinds.Pick(g.rng)
		shape := g.cfg.Obstacles.Box
		switch kind {
		case runner.KindTall:
			shape = g.cfg.Obstacles.Tall
		case runner.KindBird:
			shape = g.cfg.Obstacles.Bird
		}
		g.obstacles.Add(runner.SpawnObstacle(g.rng, kind, shape, w.Width, g.cfg.Obstacles.SpawnOffset, w.GroundY))
	}

	if g.coinCD.Tick(dt) {
		for _, c := range runner.SpawnRow(g.rng, g.cfg.Coins, runner.KindCoin, w.Width, w.GroundY, g.obstacles) {
			g.coins.Add(c)
		}
		g.coinCD.Reset(runner.NewWindow(g.cfg.Coins.Cooldown).Next(g.rng, 0))
	}

	if g.shieldCD.Tick(dt) {
		s := g.cfg.Shields
		r := core.NewRect(w.Width+s.SpawnOffset, w.GroundY-g.rng.Choice(s.Lanes), s.Size, s.Size)
		r = runner.PlaceAhead(r, g.obstacles, s.Clearance, false)
		g.shields.Add(runner.NewEntity(runner.KindShield, r, 0))
		g.shieldCD.Reset(runner.NewWindow(s.Cooldown).Next(g.rng, 0))
	}
}
