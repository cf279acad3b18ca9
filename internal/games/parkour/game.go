// Package parkour implements Parkour, a runner with box, wall and bird
// obstacles, sliding, coins, a one-hit shield and a normal/hard mode
// chosen on the title screen.
package parkour

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Phase is the screen the game is on.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseOver
)

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

// Game implements Parkour.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ParkourConfig
	dt      int

	rng *runner.RNG
	bg  *runner.Background

	hard          bool
	mode          config.ParkourMode
	obstacleKinds *runner.Weighted[runner.Kind]

	player    *runner.Player
	obstacles *runner.List
	coins     *runner.List
	shields   *runner.List

	phase    Phase
	paused   bool
	score    float64
	timeMs   int64
	coinN    int
	dayCycle float64

	obstacleCD runner.Cooldown
	coinCD     runner.Cooldown
	shieldCD   runner.Cooldown

	best *runner.BestScore
}

// New creates a Parkour game with an in-memory best score.
func New() *Game {
	return &Game{best: runner.NewBestScore(nil)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "parkour"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Parkour"
}

// Blurb is the one-line pitch shown in the menu.
func (g *Game) Blurb() string {
	return "Vault boxes and towers, duck under birds, collect coins and shields."
}

// SetBestStore attaches persistent storage for the best score.
func (g *Game) SetBestStore(store runner.BestStore) {
	g.best = runner.NewBestScore(store)
}

// Best returns the best completed run.
func (g *Game) Best() int {
	return g.best.Value()
}

// Reset loads configuration and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadParkour(configPath)
	if err != nil {
		cfg = config.DefaultParkourConfig()
	}
	if difficultyPreset != "" {
		config.ApplyParkourPreset(&cfg, difficultyPreset)
	}
	g.configure(cfg, runtime)
}

func (g *Game) configure(cfg config.ParkourConfig, runtime core.RuntimeConfig) {
	g.cfg = cfg
	g.runtime = runtime
	g.dt = runtime.TickMillis()

	g.rng = runner.NewRNG(runtime.Seed)
	g.bg = runner.NewBackground(runtime.Seed+1, cfg.World.Width, 0,
		runner.ParallaxLayer{Factor: 0.3, Count: 8, MinY: 40, MaxY: 160, MinW: 60, MaxW: 150},
	)

	g.player = runner.NewPlayer(cfg.Player, cfg.World.GroundY)
	g.obstacles = runner.NewList(16)
	g.coins = runner.NewList(16)
	g.shields = runner.NewList(2)

	g.setHard(cfg.StartHard)
	g.toTitle()
}

func (g *Game) setHard(hard bool) {
	g.hard = hard
	g.mode = g.cfg.Mode(hard)
	g.obstacleKinds = runner.NewWeighted[runner.Kind]().
		Add(runner.KindBox, g.mode.Weights.Box).
		Add(runner.KindTall, g.mode.Weights.Tall).
		Add(runner.KindBird, g.mode.Weights.Bird)
}

// toTitle clears the run and waits on the title screen. The mode and the
// best score carry over.
func (g *Game) toTitle() {
	g.player.Reset()
	g.obstacles.Reset()
	g.coins.Reset()
	g.shields.Reset()

	g.phase = PhaseTitle
	g.paused = false
	g.score = 0
	g.timeMs = 0
	g.coinN = 0
	g.dayCycle = 0

	g.obstacleCD = runner.NewCooldown(0)
	g.coinCD = runner.NewCooldown(g.cfg.Coins.InitialMs)
	g.shieldCD = runner.NewCooldown(g.cfg.Shields.InitialMs)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseTitle:
		if in.Has(core.ActionDifficulty) {
			g.setHard(!g.hard)
		}
		if in.Has(core.ActionConfirm) {
			g.phase = PhasePlaying
		}
	case PhaseOver:
		if in.Has(core.ActionRestart) {
			g.toTitle()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			if in.Has(core.ActionJump) {
				g.player.StartJump()
			}
			g.player.SetSlide(in.Has(core.ActionSlide) || in.Held(core.ActionSlide))
			g.advance()
		}
	}
	return core.StepResult{State: g.State()}
}

// DifficultyScale grows by one every ScorePerStep points; hard mode adds a
// fixed bonus.
func (g *Game) DifficultyScale() float64 {
	scale := g.mode.DifficultyBonus
	if g.cfg.ScorePerStep > 0 {
		scale += g.score / g.cfg.ScorePerStep
	}
	return scale
}

// Speed returns the current scroll speed in pixels per tick.
func (g *Game) Speed() float64 {
	return g.mode.BaseSpeed + g.DifficultyScale()*g.cfg.SpeedPerStep
}

// Daylight returns the day/night phase in [0, 1], 1 being noon.
func (g *Game) Daylight() float64 {
	return (math.Sin(g.dayCycle*2*math.Pi) + 1) / 2
}

func (g *Game) advance() {
	dt := g.dt
	g.timeMs += int64(dt)
	g.score += runner.ScoreGain(dt, g.cfg.ScoreRate, g.mode.ScoreMultiplier)
	g.bg.Advance(g.Speed())
	g.dayCycle += float64(dt) * g.cfg.DayCycleRate

	g.player.Update(dt, 0, false)
	g.spawn(dt)

	dx := runner.ScrollDelta(g.Speed())
	t := float64(g.timeMs)
	g.obstacles.Advance(dx, t)
	g.coins.Advance(dx, t)
	g.shields.Advance(dx, t)
	g.obstacles.Cull(g.cfg.Obstacles.CullMargin)
	g.coins.Cull(g.cfg.Coins.CullMargin)
	g.shields.Cull(g.cfg.Shields.CullMargin)

	g.resolveCollisions()
}

func (g *Game) resolveCollisions() {
	prect := g.player.Rect()

	hit := g.obstacles.FirstHit(prect) >= 0
	policy := runner.HitPolicy{ShieldIFrameMs: g.cfg.ShieldIFrameMs}
	if runner.ResolveObstacle(g.player, hit, policy) == runner.HitFatal {
		g.phase = PhaseOver
		g.best.Commit(int(g.score))
	}

	for range g.coins.TakeHits(prect) {
		g.coinN++
		g.score += float64(g.cfg.Coins.Bonus)
	}
	if len(g.shields.TakeHits(prect)) > 0 {
		g.player.GrantShield()
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Hard reports whether hard mode is selected.
func (g *Game) Hard() bool {
	return g.hard
}

func (g *Game) modeName() string {
	if g.hard {
		return "hard"
	}
	return "normal"
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// RunSummary describes the current or just finished run.
func (g *Game) RunSummary() registry.RunSummary {
	return registry.RunSummary{
		Pickups:    g.coinN,
		Mode:       g.modeName(),
		DurationMs: g.timeMs,
	}
}

// Register the game with the registry
func init() {
	registry.Register("parkour", func() registry.Game {
		return New()
	})
}
