package rabbit

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// spawnPortals opens the hell portal once from the grass and the heaven
// portal once from anywhere but heaven.
func (g *Game) spawnPortals() {
	if g.scene == SceneGrass && g.hellPortal.Check(g.score) {
		g.spawnPortal(runner.KindHellPortal)
	}
	if g.scene != SceneHeaven && g.heavenPortal.Check(g.score) {
		g.spawnPortal(runner.KindHeavenPortal)
	}
}

func (g *Game) spawnPortal(kind runner.Kind) {
	p := g.cfg.Portals
	r := core.NewRect(g.cfg.World.Width+p.SpawnOffset, g.cfg.World.GroundY-p.Lift, p.Width, p.Height)
	r = runner.PlaceAhead(r, g.obstacles, p.Clearance, false)
	g.portals.Add(runner.NewEntity(kind, r, g.rng.Phase()))
}

// spawnWings schedules one wing drop per score period, a short random
// delay after the boundary. Hell never drops wings.
func (g *Game) spawnWings() {
	if g.scene == SceneHell {
		return
	}
	w := g.cfg.Wings
	if g.wingSchedule.Check(g.score) && !g.wingPending {
		g.wingPending = true
		g.wingAt = g.timeMs + int64(g.rng.IntRange(w.JitterMinMs, w.JitterMaxMs))
	}
	if g.wingPending && g.timeMs >= g.wingAt {
		g.wingPending = false
		r := core.NewRect(g.cfg.World.Width+w.SpawnOffset, g.cfg.World.GroundY-g.rng.Choice(w.Lanes), w.Width, w.Height)
		r = runner.PlaceAhead(r, g.obstacles, w.Clearance, true)
		g.wings.Add(runner.NewEntity(runner.KindWings, r, g.rng.Phase()))
	}
}

func (g *Game) spawnObstacle() {
	kind := g.obstacleKinds.Pick(g.rng)
	shape := g.cfg.Obstacles.Rock
	if kind == runner.KindFox {
		shape = g.cfg.Obstacles.Fox
	}
	g.obstacles.Add(runner.SpawnObstacle(g.rng, kind, shape, g.cfg.World.Width, g.cfg.Obstacles.SpawnOffset, g.cfg.World.GroundY))
}
