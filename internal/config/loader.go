package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the breach runner configuration.
// Search order: customPath -> ~/.breach/configs/breach.yaml -> ./configs/breach.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		normalize(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breach.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				normalize(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breach.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			normalize(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreachYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// normalize backfills values a partial user config would leave in a state
// the simulation cannot run with. Bad inputs are clamped, never rejected.
func normalize(cfg *Config) {
	def := DefaultConfig()
	if len(cfg.Boss.RotationPeriods) == 0 {
		cfg.Boss.RotationPeriods = def.Boss.RotationPeriods
	}
	if cfg.Boss.VulnInterval <= 0 {
		cfg.Boss.VulnInterval = def.Boss.VulnInterval
	}
	if cfg.Boss.SizeFactor <= 0 {
		cfg.Boss.SizeFactor = def.Boss.SizeFactor
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breach", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
