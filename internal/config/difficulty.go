package config

// DifficultyPreset names a tuning override selectable with --difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No speed ramp, spawn windows never narrow
)

// ParsePreset maps a flag value to a preset. Unknown or empty values
// return "" so the loaded config is used untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ApplyRabbitPreset adjusts speed and obstacle density for a preset.
func ApplyRabbitPreset(cfg *RabbitConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base *= 0.8
		cfg.Speed.Slope *= 0.5
		cfg.Obstacles.Cooldown.Min += 400
		cfg.Obstacles.Cooldown.Max += 400
		cfg.Obstacles.Cooldown.ScoreFactor *= 0.5
	case DifficultyHard:
		cfg.Speed.Base *= 1.2
		cfg.Speed.RampStart /= 2
		cfg.Speed.Slope *= 1.5
		cfg.Obstacles.Cooldown.ScoreFactor *= 1.5
		cfg.Obstacles.Cooldown.Floor = max(cfg.Obstacles.Cooldown.Floor-200, 600)
	case DifficultyFixed:
		cfg.Speed.Slope = 0
		cfg.Obstacles.Cooldown.ScoreFactor = 0
	case DifficultyNormal:
		// Defaults
	}
}

// ApplyParkourPreset adjusts both modes for a preset. Hard also starts
// the game in hard mode.
func ApplyParkourPreset(cfg *ParkourConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Normal.BaseSpeed *= 0.8
		cfg.Hard.BaseSpeed *= 0.8
		cfg.SpeedPerStep *= 0.5
		cfg.Obstacles.GapPerStep *= 0.5
	case DifficultyHard:
		cfg.SpeedPerStep *= 1.5
		cfg.Obstacles.GapPerStep *= 1.5
		cfg.StartHard = true
	case DifficultyFixed:
		cfg.SpeedPerStep = 0
		cfg.Obstacles.GapPerStep = 0
	case DifficultyNormal:
		// Defaults
	}
}
