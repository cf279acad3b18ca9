package config

import (
	_ "embed"
)

//go:embed defaults/rabbit.yaml
var defaultRabbitYAML []byte

//go:embed defaults/parkour.yaml
var defaultParkourYAML []byte

// DefaultRabbitConfig returns the built-in Happy Rabbit configuration.
// It mirrors defaults/rabbit.yaml and is used if the embedded file fails to parse.
func DefaultRabbitConfig() RabbitConfig {
	var c RabbitConfig
	c.World = WorldConfig{Width: 800, Height: 600, GroundY: 570}
	c.Player = PlayerPhysics{
		X:                180,
		Width:            56,
		Height:           46,
		CeilingY:         90,
		Gravity:          1.02,
		JumpVelocity:     -13.2,
		MaxJumps:         2,
		MaxHoldMs:        200,
		HoldGravityScale: 0.42,
		JumpCutFactor:    0.5,
		WingGravity:      0.30,
		WingAscendVel:    -0.85,
		WingBudget:       600,
		SuperDurationMs:  8000,
		SuperScale:       1.18,
	}
	c.Speed = SpeedConfig{Base: 8.0, RampStart: 3000, Slope: 0.00055}
	c.ScoreRate = 0.035

	c.Obstacles.Cooldown = WindowConfig{Min: 1600, Max: 2400, ScoreFactor: 0.35, Floor: 1000}
	c.Obstacles.InitialMs = 1200
	c.Obstacles.SpawnOffset = 40
	c.Obstacles.CullMargin = 80
	c.Obstacles.Rock = ObstacleKind{Weight: 0.64, Size: SizeRange{MinW: 44, MaxW: 90, MinH: 48, MaxH: 110}}
	c.Obstacles.Fox = ObstacleKind{Weight: 0.36, Size: SizeRange{MinW: 78, MaxW: 78, MinH: 56, MaxH: 56}}

	c.Carrots = RowConfig{
		Cooldown:    WindowConfig{Min: 1100, Max: 1900},
		InitialMs:   1200,
		MinCount:    3,
		MaxCount:    6,
		Spacing:     34,
		Jitter:      8,
		Lanes:       []int{84, 68, 52},
		Width:       22,
		Height:      32,
		SpawnOffset: 80,
		Clearance:   140,
		CullMargin:  40,
		Bonus:       10,

		AfterObstacles: true,
	}

	c.Wings.Every = 500
	c.Wings.JitterMinMs = 800
	c.Wings.JitterMaxMs = 2000
	c.Wings.Lanes = []int{180, 140, 110}
	c.Wings.Width = 48
	c.Wings.Height = 36
	c.Wings.SpawnOffset = 80
	c.Wings.Clearance = 160
	c.Wings.CullMargin = 40

	c.Portals.HellAt = 3000
	c.Portals.HeavenAt = 6000
	c.Portals.Width = 70
	c.Portals.Height = 140
	c.Portals.Lift = 180
	c.Portals.SpawnOffset = 120
	c.Portals.Clearance = 200
	c.Portals.CullMargin = 40
	c.Portals.Charges = 5

	c.EnergyCap = 50
	c.ReviveCountdownMs = 3000
	c.ReviveIFrameMs = 1200
	c.SpecialLead = 30
	return c
}

// DefaultParkourConfig returns the built-in Parkour configuration.
func DefaultParkourConfig() ParkourConfig {
	var c ParkourConfig
	c.World = WorldConfig{Width: 900, Height: 480, GroundY: 380}
	c.Player = PlayerPhysics{
		X:                140,
		Width:            44,
		Height:           56,
		SlideHeight:      32,
		Gravity:          0.85,
		JumpVelocity:     -15.5,
		MaxJumps:         2,
		HoldGravityScale: 1.0,
		JumpCutFactor:    1.0,
		JumpWhenFlying:   true,
	}
	c.ScoreRate = 0.035
	c.ScorePerStep = 700
	c.SpeedPerStep = 3.0

	c.Normal = ParkourMode{
		BaseSpeed:       7.0,
		ScoreMultiplier: 1.0,
		Obstacles:       WindowConfig{Min: 500, Max: 1100, Floor: 320},
	}
	c.Normal.Weights.Box, c.Normal.Weights.Tall, c.Normal.Weights.Bird = 0.5, 0.32, 0.18

	c.Hard = ParkourMode{
		BaseSpeed:       8.8,
		DifficultyBonus: 0.3,
		ScoreMultiplier: 1.15,
		Obstacles:       WindowConfig{Min: 420, Max: 950, Floor: 320},
	}
	c.Hard.Weights.Box, c.Hard.Weights.Tall, c.Hard.Weights.Bird = 0.42, 0.30, 0.28

	c.Obstacles.GapPerStep = 120
	c.Obstacles.SpawnOffset = 20
	c.Obstacles.CullMargin = 40
	c.Obstacles.Box = ObstacleKind{Size: SizeRange{MinW: 26, MaxW: 58, MinH: 28, MaxH: 56}}
	c.Obstacles.Tall = ObstacleKind{Size: SizeRange{MinW: 30, MaxW: 42, MinH: 90, MaxH: 140}}
	c.Obstacles.Bird = ObstacleKind{
		Size:  SizeRange{MinW: 40, MaxW: 40, MinH: 26, MaxH: 26},
		Lanes: []int{150, 115, 80},
	}

	c.Coins = RowConfig{
		Cooldown:    WindowConfig{Min: 1300, Max: 2100},
		MinCount:    3,
		MaxCount:    6,
		Spacing:     26,
		Jitter:      6,
		Lanes:       []int{120, 80, 40},
		Width:       18,
		Height:      18,
		SpawnOffset: 60,
		Clearance:   120,
		CullMargin:  20,
		Bonus:       10,
	}

	c.Shields.Cooldown = WindowConfig{Min: 7000, Max: 11000}
	c.Shields.InitialMs = 8000
	c.Shields.Lanes = []int{130, 90}
	c.Shields.Size = 22
	c.Shields.SpawnOffset = 40
	c.Shields.Clearance = 120
	c.Shields.CullMargin = 20

	c.ShieldIFrameMs = 1200
	c.DayCycleRate = 0.00005
	return c
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rabbit":
		return defaultRabbitYAML
	case "parkour":
		return defaultParkourYAML
	default:
		return nil
	}
}
