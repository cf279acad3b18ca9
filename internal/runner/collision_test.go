package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestResolveObstacle(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(p *Player)
		hit       bool
		revive    bool
		want      HitOutcome
		reviveSet bool
	}{
		{"no hit", func(p *Player) {}, false, true, HitNone, true},
		{"super ignores", func(p *Player) { p.StartSuper() }, true, true, HitNone, true},
		{"iframes ignore", func(p *Player) { p.GrantIFrames(100) }, true, true, HitNone, true},
		{"shield absorbs", func(p *Player) { p.GrantShield() }, true, true, HitShielded, true},
		{"revive spent", func(p *Player) {}, true, true, HitRevive, false},
		{"fatal", func(p *Player) {}, true, false, HitFatal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(rabbitPhysics(), testGround)
			tt.setup(p)
			revive := tt.revive
			got := ResolveObstacle(p, tt.hit, HitPolicy{ShieldIFrameMs: 1200, Revive: &revive})
			if got != tt.want {
				t.Errorf("outcome = %s, want %s", got, tt.want)
			}
			if revive != tt.reviveSet {
				t.Errorf("revive available = %v, want %v", revive, tt.reviveSet)
			}
		})
	}
}

func TestShieldScenario(t *testing.T) {
	p := NewPlayer(rabbitPhysics(), testGround)
	p.GrantShield()

	if got := ResolveObstacle(p, true, HitPolicy{ShieldIFrameMs: 1200}); got != HitShielded {
		t.Fatalf("first hit = %s, want shielded", got)
	}
	if p.Shield() {
		t.Error("shield should be consumed")
	}
	if p.IFrameMs() != 1200 {
		t.Errorf("iframes = %d, want 1200", p.IFrameMs())
	}
	// Still overlapping on the next tick is harmless
	if got := ResolveObstacle(p, true, HitPolicy{ShieldIFrameMs: 1200}); got != HitNone {
		t.Errorf("hit during iframes = %s, want none", got)
	}
}

func TestEnergyMeterWraps(t *testing.T) {
	m := EnergyMeter{Cap: 50}
	triggers := 0
	for i := 1; i <= 125; i++ {
		if m.Add(1) {
			triggers++
			if i%50 != 0 {
				t.Errorf("triggered at pickup %d", i)
			}
			if m.Value != 0 {
				t.Errorf("meter not reset: %d", m.Value)
			}
		}
	}
	if triggers != 2 {
		t.Errorf("triggers = %d, want 2", triggers)
	}
	if m.Value != 25 {
		t.Errorf("value = %d, want 25", m.Value)
	}
	if f := m.Fraction(); f != 0.5 {
		t.Errorf("fraction = %v, want 0.5", f)
	}

	off := EnergyMeter{}
	if off.Add(100) {
		t.Error("meter without cap should never trigger")
	}
}

func TestDestroyNearestAhead(t *testing.T) {
	player := core.NewRect(180, 524, 56, 46) // center 208

	l := NewList(4)
	l.Add(NewEntity(KindRock, core.NewRect(100, 500, 40, 70), 0)) // behind
	l.Add(NewEntity(KindRock, core.NewRect(210, 500, 40, 70), 0)) // center 230, inside lead
	l.Add(NewEntity(KindFox, core.NewRect(600, 514, 78, 56), 0))  // center 639
	l.Add(NewEntity(KindRock, core.NewRect(400, 500, 40, 70), 0)) // center 420, nearest

	if !DestroyNearestAhead(l, player, 30) {
		t.Fatal("should destroy one obstacle")
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	for _, e := range l.Items() {
		if e.Rect.X == 400 {
			t.Error("nearest obstacle ahead was not removed")
		}
	}

	if !DestroyNearestAhead(l, player, 30) {
		t.Fatal("fox should still qualify")
	}
	if DestroyNearestAhead(l, player, 30) {
		t.Error("nothing left ahead, should report false")
	}
	if l.Len() != 2 {
		t.Errorf("len = %d, want 2", l.Len())
	}
}
