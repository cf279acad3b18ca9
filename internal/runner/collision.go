package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// HitOutcome is the result of running into an obstacle.
type HitOutcome int

const (
	HitNone     HitOutcome = iota // No hit, or the player was immune
	HitShielded                   // Shield absorbed the hit, i-frames started
	HitRevive                     // The one-time revive was spent
	HitFatal                      // Run over
)

// String returns the outcome name.
func (o HitOutcome) String() string {
	switch o {
	case HitNone:
		return "none"
	case HitShielded:
		return "shielded"
	case HitRevive:
		return "revive"
	case HitFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// HitPolicy describes what protections a game offers against obstacles.
type HitPolicy struct {
	ShieldIFrameMs int   // I-frames granted when a shield absorbs a hit
	Revive         *bool // Unused revive flag, cleared when spent; nil disables revives
}

// Immune reports whether obstacles are ignored right now.
func Immune(p *Player) bool {
	return p.Super() || p.IFrameMs() > 0
}

// ResolveObstacle applies the obstacle policy for a tick in which the
// player overlaps at least one obstacle.
func ResolveObstacle(p *Player, hit bool, policy HitPolicy) HitOutcome {
	if !hit || Immune(p) {
		return HitNone
	}
	if p.ConsumeShield(policy.ShieldIFrameMs) {
		return HitShielded
	}
	if policy.Revive != nil && *policy.Revive {
		*policy.Revive = false
		return HitRevive
	}
	return HitFatal
}

// EnergyMeter counts pickups toward a bonus mode.
type EnergyMeter struct {
	Value int
	Cap   int // 0 disables the meter
}

// Add adds n and reports true exactly when the cap is reached. The meter
// then starts over from zero.
func (m *EnergyMeter) Add(n int) bool {
	if m.Cap <= 0 {
		return false
	}
	m.Value = min(m.Cap, m.Value+n)
	if m.Value >= m.Cap {
		m.Value = 0
		return true
	}
	return false
}

// Fraction returns the fill level in [0, 1].
func (m EnergyMeter) Fraction() float64 {
	if m.Cap <= 0 {
		return 0
	}
	return float64(m.Value) / float64(m.Cap)
}

// DestroyNearestAhead removes the obstacle whose center is closest in
// front of the player, ignoring anything within lead pixels of the
// player's center. It reports false when nothing qualifies.
func DestroyNearestAhead(obstacles *List, player core.Rect, lead int) bool {
	limit := player.CenterX() + lead
	target, nearest := -1, 0
	for i, o := range obstacles.Items() {
		cx := o.Rect.CenterX()
		if cx <= limit {
			continue
		}
		if target < 0 || cx < nearest {
			target, nearest = i, cx
		}
	}
	if target < 0 {
		return false
	}
	obstacles.Remove(target)
	return true
}
