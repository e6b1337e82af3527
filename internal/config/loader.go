package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game tuning.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// The result is not validated; flappy.New does that.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		cfg = DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}

	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Search paths are best-effort
	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		override := cfg
		if err := yaml.Unmarshal(data, &override); err == nil {
			return override, nil
		}
	}

	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// ParsePreset resolves a preset name. An empty name selects the classic preset.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetClassic, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want one of %v)", name, Presets())
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *FlappyConfig, preset Preset) {
	switch preset {
	case PresetFloaty:
		cfg.Bird.Kinematics = KinematicsTwoPhase
	case PresetLegacy:
		cfg.Bird.Kinematics = KinematicsTwoPhase
		cfg.Pipes.Collision = CollisionFront
		cfg.GameOver.Cooldown = 0
	}
}
