package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRabbit loads Happy Rabbit configuration.
// Search order: customPath -> ~/.runner/configs/rabbit.yaml -> ./configs/rabbit.yaml -> embedded default
func LoadRabbit(customPath string) (RabbitConfig, error) {
	cfg, err := load[RabbitConfig]("rabbit", customPath, defaultRabbitYAML)
	if err != nil {
		return RabbitConfig{}, err
	}
	if cfg == nil {
		return DefaultRabbitConfig(), nil
	}
	return *cfg, nil
}

// LoadParkour loads Parkour configuration.
// Search order: customPath -> ~/.runner/configs/parkour.yaml -> ./configs/parkour.yaml -> embedded default
func LoadParkour(customPath string) (ParkourConfig, error) {
	cfg, err := load[ParkourConfig]("parkour", customPath, defaultParkourYAML)
	if err != nil {
		return ParkourConfig{}, err
	}
	if cfg == nil {
		return DefaultParkourConfig(), nil
	}
	return *cfg, nil
}

// load walks the search chain. A nil result with nil error means even the
// embedded YAML failed and the caller should fall back to hard-coded values.
func load[T any](gameID, customPath string, embedded []byte) (*T, error) {
	// Explicit path errors are reported, the rest of the chain is best-effort
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		var cfg T
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return &cfg, nil
	}

	candidates := []string{filepath.Join("configs", gameID+".yaml")}
	if userCfgPath := userConfigPath(gameID + ".yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg T
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return &cfg, nil
		}
	}

	var cfg T
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return nil, nil
	}
	return &cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
