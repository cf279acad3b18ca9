package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// DefaultNudgeIterations bounds how often a spawn is pushed past obstacles.
const DefaultNudgeIterations = 8

// Cooldown is a countdown in milliseconds that fires once it reaches zero.
// The owner resets it with a fresh duration after spawning.
type Cooldown struct {
	remaining int
}

// NewCooldown creates a cooldown that fires after ms.
func NewCooldown(ms int) Cooldown {
	return Cooldown{remaining: ms}
}

// Tick subtracts dt and reports whether the cooldown has expired.
func (c *Cooldown) Tick(dt int) bool {
	c.remaining -= dt
	return c.remaining <= 0
}

// Reset starts a new countdown.
func (c *Cooldown) Reset(ms int) {
	c.remaining = ms
}

// Remaining returns the milliseconds left, possibly negative right after firing.
func (c Cooldown) Remaining() int {
	return c.remaining
}

// Window picks spawn intervals from [Min, Max], shortened by a reduction
// and never below Floor.
type Window struct {
	Min         int
	Max         int
	ScoreFactor float64
	Floor       int
}

// NewWindow converts a config window.
func NewWindow(cfg config.WindowConfig) Window {
	return Window{Min: cfg.Min, Max: cfg.Max, ScoreFactor: cfg.ScoreFactor, Floor: cfg.Floor}
}

// Reduction returns the score-based shortening for this window.
func (w Window) Reduction(score float64) int {
	return int(score * w.ScoreFactor)
}

// Next draws the next interval.
func (w Window) Next(rng *RNG, reduction int) int {
	return max(w.Floor, rng.IntRange(w.Min, w.Max)-reduction)
}

// Threshold fires exactly once when the score first reaches At.
type Threshold struct {
	At    float64
	fired bool
}

// NewThreshold creates an unfired threshold.
func NewThreshold(at float64) Threshold {
	return Threshold{At: at}
}

// Check reports true on the first call with score >= At.
func (t *Threshold) Check(score float64) bool {
	if t.fired || score < t.At {
		return false
	}
	t.fired = true
	return true
}

// Fired reports whether the threshold has triggered.
func (t Threshold) Fired() bool {
	return t.fired
}

// PeriodicThreshold fires every Every points of score. A score jump across
// several periods fires once and skips the rest.
type PeriodicThreshold struct {
	Every float64
	next  float64
}

// NewPeriodicThreshold creates a trigger whose first firing is at every.
func NewPeriodicThreshold(every float64) PeriodicThreshold {
	return PeriodicThreshold{Every: every, next: every}
}

// Check reports whether a period boundary was crossed.
func (p *PeriodicThreshold) Check(score float64) bool {
	if p.Every <= 0 || score < p.next {
		return false
	}
	for p.next <= score {
		p.next += p.Every
	}
	return true
}

// Next returns the score of the next boundary.
func (p PeriodicThreshold) Next() float64 {
	return p.next
}

// NudgeClear pushes r right past any obstacle it overlaps, landing margin
// pixels beyond that obstacle's right edge. It gives up after maxIter
// passes and returns the rect as-is, which may still overlap.
func NudgeClear(r core.Rect, obstacles []core.Rect, margin, maxIter int) core.Rect {
	for range maxIter {
		moved := false
		for _, o := range obstacles {
			if r.Intersects(o) {
				r.X = o.Right() + margin
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return r
}

// PlaceAhead positions a pickup that is about to enter from the right.
// With afterObstacles it first moves behind the rightmost obstacle plus
// clearance, then it is nudged off anything it still overlaps.
func PlaceAhead(r core.Rect, obstacles *List, clearance int, afterObstacles bool) core.Rect {
	if afterObstacles {
		if right := obstacles.RightmostX(); right > 0 {
			r.X = max(r.X, right+clearance)
		}
	}
	return NudgeClear(r, obstacles.Rects(), clearance, DefaultNudgeIterations)
}

// SpawnRow creates a row of pickups on a random lane just past the right
// edge of the world.
func SpawnRow(rng *RNG, cfg config.RowConfig, kind Kind, worldW, groundY int, obstacles *List) []Entity {
	n := rng.IntRange(cfg.MinCount, cfg.MaxCount)
	laneY := groundY - rng.Choice(cfg.Lanes)

	startX := worldW + cfg.SpawnOffset
	if cfg.AfterObstacles {
		if right := obstacles.RightmostX(); right > 0 {
			startX = max(startX, right+cfg.Clearance)
		}
	}

	rects := obstacles.Rects()
	row := make([]Entity, 0, n)
	for i := range n {
		r := core.NewRect(startX+i*cfg.Spacing, laneY+rng.Jitter(cfg.Jitter), cfg.Width, cfg.Height)
		r = NudgeClear(r, rects, cfg.Clearance, DefaultNudgeIterations)
		row = append(row, NewEntity(kind, r, 0))
	}
	return row
}

// SpawnObstacle creates an obstacle of the given kind just past the right
// edge. Kinds without lanes stand on the ground.
func SpawnObstacle(rng *RNG, kind Kind, shape config.ObstacleKind, worldW, offset, groundY int) Entity {
	w := rng.IntRange(shape.Size.MinW, shape.Size.MaxW)
	h := rng.IntRange(shape.Size.MinH, shape.Size.MaxH)
	y := groundY - h
	if len(shape.Lanes) > 0 {
		y = groundY - rng.Choice(shape.Lanes)
	}
	return NewEntity(kind, core.NewRect(worldW+offset, y, w, h), rng.Phase())
}
