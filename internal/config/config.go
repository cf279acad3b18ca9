// Package config provides YAML-based tuning for the runner games and the
// difficulty presets selectable from the command line.
package config

// WorldConfig defines the fixed simulation space. Rendering scales it to
// whatever terminal size is available.
type WorldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"`
}

// PlayerPhysics defines the player's size and the jump/flight tuning.
type PlayerPhysics struct {
	X           int `yaml:"x"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SlideHeight int `yaml:"slide_height"` // 0 disables the slide pose
	CeilingY    int `yaml:"ceiling_y"`

	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MaxJumps     int     `yaml:"max_jumps"`

	MaxHoldMs        int     `yaml:"max_hold_ms"` // 0 disables variable-height jumps
	HoldGravityScale float64 `yaml:"hold_gravity_scale"`
	JumpCutFactor    float64 `yaml:"jump_cut_factor"` // 1.0 disables the release cut

	WingGravity    float64 `yaml:"wing_gravity"`
	WingAscendVel  float64 `yaml:"wing_ascend_vel"`
	WingBudget     float64 `yaml:"wing_budget"`
	JumpWhenFlying bool    `yaml:"jump_when_flying"`

	SuperDurationMs int     `yaml:"super_duration_ms"`
	SuperScale      float64 `yaml:"super_scale"`
}

// SpeedConfig defines the score-to-scroll-speed curve: constant below
// RampStart, then linear with Slope.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`
	RampStart float64 `yaml:"ramp_start"`
	Slope     float64 `yaml:"slope"`
}

// WindowConfig is a cooldown range in milliseconds that narrows with score.
type WindowConfig struct {
	Min         int     `yaml:"min"`
	Max         int     `yaml:"max"`
	ScoreFactor float64 `yaml:"score_factor"`
	Floor       int     `yaml:"floor"`
}

// SizeRange defines random entity dimensions.
type SizeRange struct {
	MinW int `yaml:"min_w"`
	MaxW int `yaml:"max_w"`
	MinH int `yaml:"min_h"`
	MaxH int `yaml:"max_h"`
}

// ObstacleKind defines one weighted obstacle variety.
type ObstacleKind struct {
	Weight float64   `yaml:"weight"`
	Size   SizeRange `yaml:"size"`
	Lanes  []int     `yaml:"lanes"` // Heights above ground; empty = sits on ground
}

// RowConfig defines a row of collectibles spawned together.
type RowConfig struct {
	Cooldown    WindowConfig `yaml:"cooldown"`
	InitialMs   int          `yaml:"initial_ms"`
	MinCount    int          `yaml:"min_count"`
	MaxCount    int          `yaml:"max_count"`
	Spacing     int          `yaml:"spacing"`
	Jitter      int          `yaml:"jitter"`
	Lanes       []int        `yaml:"lanes"` // Heights above ground
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	SpawnOffset int          `yaml:"spawn_offset"` // Distance past the right edge
	Clearance   int          `yaml:"clearance"`    // Gap kept after obstacles
	CullMargin  int          `yaml:"cull_margin"`
	Bonus       int          `yaml:"bonus"` // Score added per pickup

	AfterObstacles bool `yaml:"after_obstacles"` // Start the row behind the rightmost obstacle
}

// RabbitConfig contains all configuration for Happy Rabbit.
type RabbitConfig struct {
	World     WorldConfig   `yaml:"world"`
	Player    PlayerPhysics `yaml:"player"`
	Speed     SpeedConfig   `yaml:"speed"`
	ScoreRate float64       `yaml:"score_rate"` // Score per millisecond
	Obstacles struct {
		Cooldown    WindowConfig `yaml:"cooldown"`
		InitialMs   int          `yaml:"initial_ms"`
		SpawnOffset int          `yaml:"spawn_offset"`
		CullMargin  int          `yaml:"cull_margin"`
		Rock        ObstacleKind `yaml:"rock"`
		Fox         ObstacleKind `yaml:"fox"`
	} `yaml:"obstacles"`
	Carrots RowConfig `yaml:"carrots"`
	Wings   struct {
		Every       int   `yaml:"every"` // Score interval between pickups
		JitterMinMs int   `yaml:"jitter_min_ms"`
		JitterMaxMs int   `yaml:"jitter_max_ms"`
		Lanes       []int `yaml:"lanes"`
		Width       int   `yaml:"width"`
		Height      int   `yaml:"height"`
		SpawnOffset int   `yaml:"spawn_offset"`
		Clearance   int   `yaml:"clearance"`
		CullMargin  int   `yaml:"cull_margin"`
	} `yaml:"wings"`
	Portals struct {
		HellAt      float64 `yaml:"hell_at"`
		HeavenAt    float64 `yaml:"heaven_at"`
		Width       int     `yaml:"width"`
		Height      int     `yaml:"height"`
		Lift        int     `yaml:"lift"` // Top edge height above ground
		SpawnOffset int     `yaml:"spawn_offset"`
		Clearance   int     `yaml:"clearance"`
		CullMargin  int     `yaml:"cull_margin"`
		Charges     int     `yaml:"charges"`
	} `yaml:"portals"`
	EnergyCap         int `yaml:"energy_cap"`
	ReviveCountdownMs int `yaml:"revive_countdown_ms"`
	ReviveIFrameMs    int `yaml:"revive_iframe_ms"`
	SpecialLead       int `yaml:"special_lead"` // Obstacles must be this far ahead
}

// ParkourMode holds tuning that differs between normal and hard mode.
type ParkourMode struct {
	BaseSpeed       float64      `yaml:"base_speed"`
	DifficultyBonus float64      `yaml:"difficulty_bonus"`
	ScoreMultiplier float64      `yaml:"score_multiplier"`
	Obstacles       WindowConfig `yaml:"obstacles"`
	Weights         struct {
		Box  float64 `yaml:"box"`
		Tall float64 `yaml:"tall"`
		Bird float64 `yaml:"bird"`
	} `yaml:"weights"`
}

// ParkourConfig contains all configuration for Parkour.
type ParkourConfig struct {
	World        WorldConfig   `yaml:"world"`
	Player       PlayerPhysics `yaml:"player"`
	ScoreRate    float64       `yaml:"score_rate"`
	ScorePerStep float64       `yaml:"score_per_step"` // Score at which difficulty rises by 1
	SpeedPerStep float64       `yaml:"speed_per_step"`
	Normal       ParkourMode   `yaml:"normal"`
	Hard         ParkourMode   `yaml:"hard"`
	StartHard    bool          `yaml:"start_hard"`
	Obstacles    struct {
		GapPerStep  float64      `yaml:"gap_per_step"` // Cooldown reduction per difficulty step
		SpawnOffset int          `yaml:"spawn_offset"`
		CullMargin  int          `yaml:"cull_margin"`
		Box         ObstacleKind `yaml:"box"`
		Tall        ObstacleKind `yaml:"tall"`
		Bird        ObstacleKind `yaml:"bird"`
	} `yaml:"obstacles"`
	Coins   RowConfig `yaml:"coins"`
	Shields struct {
		Cooldown    WindowConfig `yaml:"cooldown"`
		InitialMs   int          `yaml:"initial_ms"`
		Lanes       []int        `yaml:"lanes"`
		Size        int          `yaml:"size"`
		SpawnOffset int          `yaml:"spawn_offset"`
		Clearance   int          `yaml:"clearance"`
		CullMargin  int          `yaml:"cull_margin"`
	} `yaml:"shields"`
	ShieldIFrameMs int     `yaml:"shield_iframe_ms"`
	DayCycleRate   float64 `yaml:"day_cycle_rate"`
}

// Mode returns the tuning for the requested mode.
func (c *ParkourConfig) Mode(hard bool) ParkourMode {
	if hard {
		return c.Hard
	}
	return c.Normal
}
