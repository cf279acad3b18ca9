package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner character. Y grows downward; the player stands on
// groundY and can never rise above CeilingY.
type Player struct {
	cfg     config.PlayerPhysics
	groundY int

	x, y   float64
	vy     float64
	w, h   int
	ground bool

	jumps      int
	holding    bool
	holdMs     int
	cutApplied bool

	wings    bool
	wingFuel float64

	super   bool
	superMs int

	shield   bool
	iframeMs int
	sliding  bool
}

// NewPlayer creates a grounded player.
func NewPlayer(cfg config.PlayerPhysics, groundY int) *Player {
	p := &Player{cfg: cfg, groundY: groundY}
	p.Reset()
	return p
}

// Reset puts the player back on the ground with no powers.
func (p *Player) Reset() {
	cfg, groundY := p.cfg, p.groundY
	*p = Player{cfg: cfg, groundY: groundY}
	p.x = float64(cfg.X)
	p.w, p.h = cfg.Width, cfg.Height
	p.y = float64(groundY - p.h)
	p.ground = true
}

// StartJump launches a jump if the jump budget allows it.
func (p *Player) StartJump() bool {
	if p.wings && !p.cfg.JumpWhenFlying {
		return false
	}
	if p.jumps >= p.cfg.MaxJumps {
		return false
	}
	p.vy = p.cfg.JumpVelocity
	p.ground = false
	p.holding = true
	p.holdMs = 0
	p.cutApplied = false
	p.jumps++
	return true
}

// SetJumpHold records whether the jump input is down.
func (p *Player) SetJumpHold(down bool) {
	p.holding = down && p.vy < 0 && p.holdMs < p.cfg.MaxHoldMs
}

// ReleaseJump cuts the ascent short. The cut applies at most once per
// airborne phase and never while flying.
func (p *Player) ReleaseJump() {
	if !p.wings && p.vy < 0 && !p.cutApplied {
		p.vy *= p.cfg.JumpCutFactor
		p.cutApplied = true
	}
	p.holding = false
}

// Update advances the player by dt milliseconds. scoreGain is the score
// earned this tick and drains wing fuel; ascend is the flap input.
func (p *Player) Update(dt int, scoreGain float64, ascend bool) {
	if p.iframeMs > 0 {
		p.iframeMs -= dt
	}

	if p.super {
		p.superMs -= dt
		if p.superMs <= 0 {
			p.EndSuper()
		}
	}

	if p.wings {
		p.wingFuel -= scoreGain
		if p.wingFuel <= 0 {
			p.wings = false
		}
		// Flight physics still apply on the tick the fuel runs out
		if ascend {
			p.vy += p.cfg.WingAscendVel
		}
		p.vy += p.cfg.WingGravity
	} else if p.holding && p.vy < 0 && p.holdMs < p.cfg.MaxHoldMs {
		p.vy += p.cfg.Gravity * p.cfg.HoldGravityScale
		p.holdMs += dt
	} else {
		p.holding = false
		p.vy += p.cfg.Gravity
	}

	p.y += p.vy

	if p.y <= float64(p.cfg.CeilingY) {
		p.y = float64(p.cfg.CeilingY)
		if p.vy < 0 {
			p.vy = 0
		}
	}

	if p.y+float64(p.h) >= float64(p.groundY) {
		p.y = float64(p.groundY - p.h)
		p.vy = 0
		p.ground = true
		p.jumps = 0
		p.cutApplied = false
	} else {
		p.ground = false
	}
}

// GiveWings starts flight with a full fuel budget.
func (p *Player) GiveWings() {
	p.wings = true
	p.wingFuel = p.cfg.WingBudget
}

// StartSuper grows the player and makes it immune for SuperDurationMs.
func (p *Player) StartSuper() {
	p.super = true
	p.superMs = p.cfg.SuperDurationMs
	p.w = int(float64(p.cfg.Width) * p.cfg.SuperScale)
	p.h = int(float64(p.cfg.Height) * p.cfg.SuperScale)
	p.clampToGround()
}

// EndSuper restores the base size.
func (p *Player) EndSuper() {
	p.super = false
	p.superMs = 0
	p.w, p.h = p.cfg.Width, p.cfg.Height
	p.clampToGround()
}

func (p *Player) clampToGround() {
	p.y = min(p.y, float64(p.groundY-p.h))
}

// GrantShield gives a one-hit shield.
func (p *Player) GrantShield() {
	p.shield = true
}

// ConsumeShield spends the shield and starts i-frames. It reports false
// if there was no shield.
func (p *Player) ConsumeShield(iframeMs int) bool {
	if !p.shield {
		return false
	}
	p.shield = false
	p.GrantIFrames(iframeMs)
	return true
}

// GrantIFrames makes the player immune to obstacles for ms.
func (p *Player) GrantIFrames(ms int) {
	p.iframeMs = ms
}

// SetSlide switches the slide pose. It has no effect without a slide height.
func (p *Player) SetSlide(down bool) {
	p.sliding = down && p.cfg.SlideHeight > 0
}

// Rect returns the collision rectangle. Sliding lowers the top edge so the
// feet stay put.
func (p *Player) Rect() core.Rect {
	h := p.h
	if p.sliding {
		h = p.cfg.SlideHeight
	}
	return core.NewRect(int(p.x), int(p.y)+(p.h-h), p.w, h)
}

// Y returns the top of the standing pose.
func (p *Player) Y() float64 { return p.y }

// VY returns the vertical velocity in pixels per tick.
func (p *Player) VY() float64 { return p.vy }

// Height returns the current standing height.
func (p *Player) Height() int { return p.h }

// OnGround reports whether the player touched the ground last update.
func (p *Player) OnGround() bool { return p.ground }

// Jumps returns how many jumps were used since the last ground contact.
func (p *Player) Jumps() int { return p.jumps }

// CutApplied reports whether the current ascent was already cut.
func (p *Player) CutApplied() bool { return p.cutApplied }

// HasWings reports whether the player is flying.
func (p *Player) HasWings() bool { return p.wings }

// WingFuel returns the remaining flight budget in score points.
func (p *Player) WingFuel() float64 { return p.wingFuel }

// Super reports whether super mode is active.
func (p *Player) Super() bool { return p.super }

// SuperMs returns the remaining super time.
func (p *Player) SuperMs() int { return p.superMs }

// Shield reports whether a shield is held.
func (p *Player) Shield() bool { return p.shield }

// IFrameMs returns the remaining immunity time.
func (p *Player) IFrameMs() int { return p.iframeMs }

// Sliding reports whether the slide pose is active.
func (p *Player) Sliding() bool { return p.sliding }
