// Package rabbit implements Happy Rabbit, a runner with a variable-height
// double jump, wings, a carrot-powered super mode, one revive per run and
// portals to hell and heaven that grant obstacle-clearing charges.
package rabbit

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Scene is the world the rabbit is running through.
type Scene int

const (
	SceneGrass Scene = iota
	SceneHell
	SceneHeaven
)

// String returns the scene label shown in the HUD.
func (s Scene) String() string {
	switch s {
	case SceneGrass:
		return "grass"
	case SceneHell:
		return "hell"
	case SceneHeaven:
		return "heaven"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements Happy Rabbit.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RabbitConfig
	dt      int

	rng   *runner.RNG
	bg    *runner.Background
	speed runner.SpeedCurve

	obstacleWindow runner.Window
	carrotWindow   runner.Window
	obstacleKinds  *runner.Weighted[runner.Kind]

	player    *runner.Player
	obstacles *runner.List
	carrots   *runner.List
	wings     *runner.List
	portals   *runner.List

	scene      Scene
	score      float64
	timeMs     int64
	worldSpeed float64

	obstacleCD   runner.Cooldown
	carrotCD     runner.Cooldown
	wingSchedule runner.PeriodicThreshold
	wingPending  bool
	wingAt       int64
	hellPortal   runner.Threshold
	heavenPortal runner.Threshold

	energy  runner.EnergyMeter
	carrotN int
	charges int

	reviveLeft bool
	reviving   bool
	reviveMs   int

	gameOver bool
	paused   bool

	best *runner.BestScore
}

// New creates a Happy Rabbit game with an in-memory best score.
func New() *Game {
	return &Game{best: runner.NewBestScore(nil)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rabbit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Happy Rabbit"
}

// Blurb is the one-line pitch shown in the menu.
func (g *Game) Blurb() string {
	return "Double-jump rocks and foxes, grab carrots, fly on wings, blast through portals."
}

// SetBestStore attaches persistent storage for the best score.
func (g *Game) SetBestStore(store runner.BestStore) {
	g.best = runner.NewBestScore(store)
}

// Best returns the best completed run.
func (g *Game) Best() int {
	return g.best.Value()
}

// Reset loads configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRabbit(configPath)
	if err != nil {
		cfg = config.DefaultRabbitConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRabbitPreset(&cfg, difficultyPreset)
	}
	g.configure(cfg, runtime)
}

// configure builds every derived piece from cfg. Tests use it to run
// with tuned values without touching the filesystem.
func (g *Game) configure(cfg config.RabbitConfig, runtime core.RuntimeConfig) {
	g.cfg = cfg
	g.runtime = runtime
	g.dt = runtime.TickMillis()

	g.rng = runner.NewRNG(runtime.Seed)
	w := cfg.World
	g.bg = runner.NewBackground(runtime.Seed+1, w.Width, 0.25,
		runner.ParallaxLayer{Factor: 0.35, Count: 10, MinY: 60, MaxY: 220, MinW: 120, MaxW: 280},
		runner.ParallaxLayer{Factor: 0.5, Count: 90, MinY: w.GroundY + 10, MaxY: w.Height - 12, MinW: 4, MaxW: 8},
		runner.ParallaxLayer{Factor: 0.2, Count: 5, MinY: 90, MaxY: 200, MinW: 10, MaxW: 14},
	)
	g.speed = runner.NewSpeedCurve(cfg.Speed)
	g.obstacleWindow = runner.NewWindow(cfg.Obstacles.Cooldown)
	g.carrotWindow = runner.NewWindow(cfg.Carrots.Cooldown)
	g.obstacleKinds = runner.NewWeighted[runner.Kind]().
		Add(runner.KindRock, cfg.Obstacles.Rock.Weight).
		Add(runner.KindFox, cfg.Obstacles.Fox.Weight)

	g.player = runner.NewPlayer(cfg.Player, w.GroundY)
	g.obstacles = runner.NewList(8)
	g.carrots = runner.NewList(16)
	g.wings = runner.NewList(2)
	g.portals = runner.NewList(2)

	g.restart()
}

// restart begins a new run. The random sources and best score carry over.
func (g *Game) restart() {
	g.player.Reset()
	g.obstacles.Reset()
	g.carrots.Reset()
	g.wings.Reset()
	g.portals.Reset()

	g.scene = SceneGrass
	g.score = 0
	g.timeMs = 0
	g.worldSpeed = g.speed.Speed(0)

	g.obstacleCD = runner.NewCooldown(g.cfg.Obstacles.InitialMs)
	g.carrotCD = runner.NewCooldown(g.cfg.Carrots.InitialMs)
	g.wingSchedule = runner.NewPeriodicThreshold(float64(g.cfg.Wings.Every))
	g.wingPending = false
	g.hellPortal = runner.NewThreshold(g.cfg.Portals.HellAt)
	g.heavenPortal = runner.NewThreshold(g.cfg.Portals.HeavenAt)

	g.energy = runner.EnergyMeter{Cap: g.cfg.EnergyCap}
	g.carrotN = 0
	g.charges = 0

	g.reviveLeft = true
	g.reviving = false
	g.reviveMs = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionJump) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.reviving {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.reviving {
		g.reviveMs -= g.dt
		if g.reviveMs <= 0 {
			g.reviving = false
			g.player.GrantIFrames(g.cfg.ReviveIFrameMs)
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.advance(in.Has(core.ActionJump) || in.Held(core.ActionJump))

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.player.StartJump()
		g.player.SetJumpHold(true)
	}
	if in.Released(core.ActionJump) {
		g.player.ReleaseJump()
	}
	if in.Has(core.ActionSpecial) {
		g.UseSpecial()
	}
}

// UseSpecial spends a charge to destroy the nearest obstacle ahead. It
// reports whether anything was destroyed.
func (g *Game) UseSpecial() bool {
	if g.gameOver || g.reviving || g.charges <= 0 {
		return false
	}
	if !runner.DestroyNearestAhead(g.obstacles, g.player.Rect(), g.cfg.SpecialLead) {
		return false
	}
	g.charges--
	return true
}

func (g *Game) advance(ascend bool) {
	dt := g.dt
	g.timeMs += int64(dt)
	gain := runner.ScoreGain(dt, g.cfg.ScoreRate, 1)
	g.score += gain

	g.worldSpeed = g.speed.Speed(g.score)
	g.bg.Advance(g.worldSpeed)

	g.player.Update(dt, gain, ascend)

	g.spawnPortals()
	g.spawnWings()
	if g.obstacleCD.Tick(dt) {
		g.spawnObstacle()
		g.obstacleCD.Reset(g.obstacleWindow.Next(g.rng, g.obstacleWindow.Reduction(g.score)))
	}
	if g.carrotCD.Tick(dt) {
		for _, c := range runner.SpawnRow(g.rng, g.cfg.Carrots, runner.KindCarrot, g.cfg.World.Width, g.cfg.World.GroundY, g.obstacles) {
			g.carrots.Add(c)
		}
		g.carrotCD.Reset(g.carrotWindow.Next(g.rng, 0))
	}

	dx := runner.ScrollDelta(g.worldSpeed)
	t := float64(g.timeMs)
	g.obstacles.Advance(dx, t)
	g.obstacles.Cull(g.cfg.Obstacles.CullMargin)
	g.carrots.Advance(dx, t)
	g.carrots.Cull(g.cfg.Carrots.CullMargin)
	g.wings.Advance(dx, t)
	g.wings.Cull(g.cfg.Wings.CullMargin)
	g.portals.Advance(dx, t)
	g.portals.Cull(g.cfg.Portals.CullMargin)

	g.resolveCollisions()
}

func (g *Game) resolveCollisions() {
	prect := g.player.Rect()

	if i := g.portals.FirstHit(prect); i >= 0 {
		p := g.portals.Remove(i)
		switch p.Kind {
		case runner.KindHellPortal:
			g.scene = SceneHell
		case runner.KindHeavenPortal:
			g.scene = SceneHeaven
		}
		g.charges = g.cfg.Portals.Charges
	}

	hit := g.obstacles.FirstHit(prect) >= 0
	switch runner.ResolveObstacle(g.player, hit, runner.HitPolicy{Revive: &g.reviveLeft}) {
	case runner.HitRevive:
		g.reviving = true
		g.reviveMs = g.cfg.ReviveCountdownMs
	case runner.HitFatal:
		g.endRun()
	case runner.HitNone, runner.HitShielded:
	}

	for range g.carrots.TakeHits(prect) {
		g.carrotN++
		g.score += float64(g.cfg.Carrots.Bonus)
		if !g.player.Super() && g.energy.Add(1) {
			g.player.StartSuper()
		}
	}

	for range g.wings.TakeHits(prect) {
		g.player.GiveWings()
	}
}

func (g *Game) endRun() {
	g.gameOver = true
	g.best.Commit(int(g.score))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunSummary describes the current or just finished run.
func (g *Game) RunSummary() registry.RunSummary {
	return registry.RunSummary{
		Pickups:    g.carrotN,
		Mode:       g.scene.String(),
		DurationMs: g.timeMs,
	}
}

// Register the game with the registry
func init() {
	registry.Register("rabbit", func() registry.Game {
		return New()
	})
}
