package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardCoded(t *testing.T) {
	var rabbit RabbitConfig
	if err := yaml.Unmarshal(GetDefaultYAML("rabbit"), &rabbit); err != nil {
		t.Fatalf("embedded rabbit.yaml: %v", err)
	}
	if !reflect.DeepEqual(rabbit, DefaultRabbitConfig()) {
		t.Errorf("rabbit.yaml and DefaultRabbitConfig differ:\n%+v\n%+v", rabbit, DefaultRabbitConfig())
	}

	var parkour ParkourConfig
	if err := yaml.Unmarshal(GetDefaultYAML("parkour"), &parkour); err != nil {
		t.Fatalf("embedded parkour.yaml: %v", err)
	}
	if !reflect.DeepEqual(parkour, DefaultParkourConfig()) {
		t.Errorf("parkour.yaml and DefaultParkourConfig differ:\n%+v\n%+v", parkour, DefaultParkourConfig())
	}
}

func TestGetDefaultYAMLUnknown(t *testing.T) {
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rabbit.yaml")
	data := []byte("score_rate: 0.5\nenergy_cap: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRabbit(path)
	if err != nil {
		t.Fatalf("LoadRabbit: %v", err)
	}
	if cfg.ScoreRate != 0.5 || cfg.EnergyCap != 7 {
		t.Errorf("custom values not applied: rate=%v cap=%d", cfg.ScoreRate, cfg.EnergyCap)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadParkour(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: expected fs.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParkour(bad); err == nil {
		t.Error("malformed YAML should return an error")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"insane", ""},
	}
	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyRabbitPreset(t *testing.T) {
	base := DefaultRabbitConfig()

	fixed := DefaultRabbitConfig()
	ApplyRabbitPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Slope != 0 || fixed.Obstacles.Cooldown.ScoreFactor != 0 {
		t.Errorf("fixed should disable ramps, got slope=%v factor=%v",
			fixed.Speed.Slope, fixed.Obstacles.Cooldown.ScoreFactor)
	}

	easy := DefaultRabbitConfig()
	ApplyRabbitPreset(&easy, DifficultyEasy)
	if easy.Speed.Base >= base.Speed.Base {
		t.Errorf("easy base speed %v should be below %v", easy.Speed.Base, base.Speed.Base)
	}

	hard := DefaultRabbitConfig()
	ApplyRabbitPreset(&hard, DifficultyHard)
	if hard.Speed.Base <= base.Speed.Base {
		t.Errorf("hard base speed %v should be above %v", hard.Speed.Base, base.Speed.Base)
	}
	if hard.Obstacles.Cooldown.Floor < 600 {
		t.Errorf("hard floor %d dropped below 600", hard.Obstacles.Cooldown.Floor)
	}

	normal := DefaultRabbitConfig()
	ApplyRabbitPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should leave defaults untouched")
	}
}

func TestApplyParkourPreset(t *testing.T) {
	hard := DefaultParkourConfig()
	ApplyParkourPreset(&hard, DifficultyHard)
	if !hard.StartHard {
		t.Error("hard preset should start in hard mode")
	}

	fixed := DefaultParkourConfig()
	ApplyParkourPreset(&fixed, DifficultyFixed)
	if fixed.SpeedPerStep != 0 || fixed.Obstacles.GapPerStep != 0 {
		t.Error("fixed preset should disable the difficulty ramp")
	}

	if m := fixed.Mode(true); m.ScoreMultiplier != 1.15 {
		t.Errorf("hard mode multiplier = %v, want 1.15", m.ScoreMultiplier)
	}
	if m := fixed.Mode(false); m.BaseSpeed != 7.0 {
		t.Errorf("normal mode base speed = %v, want 7", m.BaseSpeed)
	}
}
