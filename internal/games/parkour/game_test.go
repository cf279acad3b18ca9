package parkour

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func newTestGame(seed int64, tune func(*config.ParkourConfig)) *Game {
	cfg := config.DefaultParkourConfig()
	if tune != nil {
		tune(&cfg)
	}
	g := New()
	g.configure(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func startedGame(seed int64) *Game {
	g := newTestGame(seed, nil)
	g.Step(press(core.ActionConfirm))
	return g
}

func TestTitleScreen(t *testing.T) {
	g := newTestGame(1, nil)
	if g.Phase() != PhaseTitle {
		t.Fatalf("phase = %d, want title", g.Phase())
	}

	for range 30 {
		g.Step(press(core.ActionJump))
	}
	if g.score != 0 || g.timeMs != 0 {
		t.Error("title screen should not run the world")
	}

	g.Step(press(core.ActionDifficulty))
	if !g.Hard() || g.mode.BaseSpeed != g.cfg.Hard.BaseSpeed {
		t.Error("difficulty key should select hard mode")
	}
	g.Step(press(core.ActionDifficulty))
	if g.Hard() {
		t.Error("difficulty key should toggle back to normal")
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Error("confirm should start the run")
	}
}

func TestGameDeterminism(t *testing.T) {
	script := make([]core.InputFrame, 1200)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i == 0:
			script[i].Set(core.ActionConfirm)
		case i%41 == 0:
			script[i].Set(core.ActionJump)
		case i%53 < 10:
			script[i].SetHeld(core.ActionSlide)
		}
	}

	run := func() *Game {
		g := newTestGame(99, nil)
		for _, in := range script {
			g.Step(in)
		}
		return g
	}
	g1, g2 := run(), run()

	if g1.State() != g2.State() {
		t.Fatalf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
	if !reflect.DeepEqual(g1.obstacles.Rects(), g2.obstacles.Rects()) {
		t.Error("obstacle layouts differ")
	}
	if g1.coinN != g2.coinN {
		t.Errorf("coins differ: %d vs %d", g1.coinN, g2.coinN)
	}

	f1, f2 := core.NewScreen(80, 24), core.NewScreen(80, 24)
	g1.Render(f1)
	g2.Render(f2)
	if !f1.Equal(f2) {
		t.Errorf("frames differ:\n%s\n---\n%s", f1, f2)
	}
}

func TestSpeedAndScale(t *testing.T) {
	tests := []struct {
		name      string
		hard      bool
		score     float64
		wantScale float64
		wantSpeed float64
	}{
		{"normal start", false, 0, 0, 7},
		{"normal one step", false, 700, 1, 10},
		{"hard start", true, 0, 0.3, 9.7},
		{"hard two steps", true, 1400, 2.3, 15.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1, nil)
			g.setHard(tt.hard)
			g.score = tt.score
			if got := g.DifficultyScale(); math.Abs(got-tt.wantScale) > 1e-9 {
				t.Errorf("scale = %f, want %f", got, tt.wantScale)
			}
			if got := g.Speed(); math.Abs(got-tt.wantSpeed) > 1e-9 {
				t.Errorf("speed = %f, want %f", got, tt.wantSpeed)
			}
		})
	}
}

func TestHardModeScoresFaster(t *testing.T) {
	normal := startedGame(1)
	hard := newTestGame(1, nil)
	hard.Step(press(core.ActionDifficulty))
	hard.Step(press(core.ActionConfirm))

	normal.Step(core.NewInputFrame())
	hard.Step(core.NewInputFrame())

	if math.Abs(normal.score-16*0.035) > 1e-9 {
		t.Errorf("normal gain = %f", normal.score)
	}
	if math.Abs(hard.score-16*0.035*1.15) > 1e-9 {
		t.Errorf("hard gain = %f", hard.score)
	}
}

func TestFirstTickSpawns(t *testing.T) {
	g := startedGame(4)
	g.Step(core.NewInputFrame())

	if g.obstacles.Len() == 0 {
		t.Error("obstacle timer starts expired")
	}
	if n := g.coins.Len(); n < g.cfg.Coins.MinCount || n > g.cfg.Coins.MaxCount {
		t.Errorf("coin row of %d", n)
	}
	if g.shields.Len() != 0 {
		t.Error("shield should wait for its first timer")
	}
}

func TestShieldSpawnAvoidsObstacles(t *testing.T) {
	for seed := range int64(20) {
		g := startedGame(seed)
		g.spawn(g.cfg.Shields.InitialMs)

		if g.shields.Len() != 1 {
			t.Fatalf("seed %d: shields = %d, want 1", seed, g.shields.Len())
		}
		s := g.shields.Items()[0].Rect
		if s.X < g.cfg.World.Width+g.cfg.Shields.SpawnOffset {
			t.Errorf("seed %d: shield at x=%d", seed, s.X)
		}
		for _, o := range g.obstacles.Rects() {
			if s.Intersects(o) {
				t.Errorf("seed %d: shield %v overlaps obstacle %v", seed, s, o)
			}
		}
	}
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	g := startedGame(1)
	g.score = 321
	g.player.GrantShield()
	g.obstacles.Add(runner.NewEntity(runner.KindBox, g.player.Rect(), 0))

	g.resolveCollisions()
	if g.Phase() != PhasePlaying {
		t.Fatal("shield should absorb the hit")
	}
	if g.player.Shield() {
		t.Error("shield should be spent")
	}
	if g.player.IFrameMs() != g.cfg.ShieldIFrameMs {
		t.Errorf("iframes = %d, want %d", g.player.IFrameMs(), g.cfg.ShieldIFrameMs)
	}

	g.resolveCollisions()
	if g.Phase() != PhasePlaying {
		t.Fatal("i-frames should ignore obstacles")
	}

	for range 80 {
		g.player.Update(16, 0, false)
	}
	g.resolveCollisions()
	if g.Phase() != PhaseOver {
		t.Fatal("unshielded hit should end the run")
	}
	if g.Best() != 321 {
		t.Errorf("best = %d, want 321", g.Best())
	}
}

func TestPickups(t *testing.T) {
	g := startedGame(1)
	pr := g.player.Rect()
	g.coins.Add(runner.NewEntity(runner.KindCoin, pr, 0))
	g.coins.Add(runner.NewEntity(runner.KindCoin, pr, 0))
	g.shields.Add(runner.NewEntity(runner.KindShield, pr, 0))

	g.resolveCollisions()

	if g.coinN != 2 || g.score != 20 {
		t.Errorf("coins = %d score = %f, want 2 and 20", g.coinN, g.score)
	}
	if !g.player.Shield() {
		t.Error("shield pickup should grant a shield")
	}
	if g.coins.Len() != 0 || g.shields.Len() != 0 {
		t.Error("pickups should be removed")
	}
}

func TestSlideWhileHeld(t *testing.T) {
	g := startedGame(1)
	standing := g.player.Rect()

	in := core.NewInputFrame()
	in.SetHeld(core.ActionSlide)
	g.Step(in)

	r := g.player.Rect()
	if r.H != g.cfg.Player.SlideHeight {
		t.Errorf("slide height = %d, want %d", r.H, g.cfg.Player.SlideHeight)
	}
	if r.Bottom() != standing.Bottom() {
		t.Errorf("feet moved from %d to %d", standing.Bottom(), r.Bottom())
	}

	g.Step(core.NewInputFrame())
	if g.player.Sliding() {
		t.Error("slide should end when the key is let go")
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := startedGame(1)
	g.Step(core.NewInputFrame())
	g.Step(press(core.ActionPause))
	score := g.score
	for range 20 {
		g.Step(core.NewInputFrame())
	}
	if g.score != score {
		t.Error("paused run should not score")
	}
	if !g.State().Paused {
		t.Error("state should report pause")
	}
}

func TestRestartReturnsToTitle(t *testing.T) {
	g := newTestGame(1, nil)
	g.Step(press(core.ActionDifficulty))
	g.Step(press(core.ActionConfirm))
	g.score = 900
	g.obstacles.Add(runner.NewEntity(runner.KindTall, g.player.Rect(), 0))
	g.resolveCollisions()
	if !g.State().GameOver {
		t.Fatal("hit should end the run")
	}
	if g.RunSummary().Mode != "hard" {
		t.Errorf("summary mode = %q", g.RunSummary().Mode)
	}

	g.Step(press(core.ActionJump))
	if g.Phase() != PhaseOver {
		t.Error("only restart should leave game over")
	}

	g.Step(press(core.ActionRestart))
	if g.Phase() != PhaseTitle {
		t.Fatal("restart should go back to the title")
	}
	if !g.Hard() {
		t.Error("mode should survive a restart")
	}
	if g.Best() != 900 {
		t.Errorf("best = %d, want 900", g.Best())
	}
	if g.score != 0 || g.obstacles.Len() != 0 {
		t.Error("restart should clear the run")
	}
}

func TestPresetStartsHard(t *testing.T) {
	g := newTestGame(1, func(c *config.ParkourConfig) {
		config.ApplyParkourPreset(c, config.DifficultyHard)
	})
	if !g.Hard() {
		t.Error("hard preset should preselect hard mode")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(2, nil)
	screen := core.NewScreen(90, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PARKOUR") {
		t.Error("title box missing")
	}

	g.Step(press(core.ActionConfirm))
	for range 200 {
		g.Step(core.NewInputFrame())
	}
	for _, size := range []struct{ w, h int }{{8, 4}, {90, 30}, {240, 70}} {
		g.Render(core.NewScreen(size.w, size.h))
	}

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Mode: NORMAL") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
}

func TestDaylightCycle(t *testing.T) {
	g := startedGame(1)
	if d := g.Daylight(); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("daylight at start = %f, want 0.5", d)
	}
	g.dayCycle = 0.25
	if d := g.Daylight(); math.Abs(d-1) > 1e-9 {
		t.Errorf("daylight at quarter cycle = %f, want 1", d)
	}
}
