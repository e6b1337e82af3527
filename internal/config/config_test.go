package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("DefaultFlappyConfig().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero capacity", func(c *FlappyConfig) { c.Pipes.Capacity = 0 }, "pipes.capacity"},
		{"gap does not fit", func(c *FlappyConfig) { c.Pipes.HeightMax = 400 }, "pipes.height_max"},
		{"empty height range", func(c *FlappyConfig) { c.Pipes.HeightMin = 300 }, "height range"},
		{"margin below one", func(c *FlappyConfig) { c.Pipes.OffscreenMargin = 0.5 }, "offscreen_margin"},
		{"ring too short", func(c *FlappyConfig) { c.Pipes.Capacity = 2 }, "recycled pairs"},
		{"unknown kinematics", func(c *FlappyConfig) { c.Bird.Kinematics = "rocket" }, "bird.kinematics"},
		{"unknown respawn", func(c *FlappyConfig) { c.Pipes.Respawn = "never" }, "pipes.respawn"},
		{"negative cooldown", func(c *FlappyConfig) { c.GameOver.Cooldown = -1 }, "cooldown"},
		{"bird spawns off screen", func(c *FlappyConfig) { c.Bird.Y = 580 }, "bird.y"},
		{
			"two phase apex above speed",
			func(c *FlappyConfig) {
				c.Bird.Kinematics = KinematicsTwoPhase
				c.Physics.TwoPhase.ApexSpeed = 700
			},
			"apex_speed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Pipes.Width = 0
	cfg.GameOver.Cooldown = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"pipes.width", "game_over.cooldown"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadFlappyCustomPathOverridesSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "pipes:\n  capacity: 6\n  speed: 450\ngame_over:\n  cooldown: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Pipes.Capacity != 6 || cfg.Pipes.Speed != 450 || cfg.GameOver.Cooldown != 0 {
		t.Errorf("overrides not applied: %+v", cfg.Pipes)
	}
	if cfg.Pipes.Gap != 200 || cfg.Bird.Size != 50 {
		t.Errorf("missing keys should keep defaults, got gap=%v size=%v", cfg.Pipes.Gap, cfg.Bird.Size)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("pipes: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(path); err == nil {
		t.Error("unparseable custom config should be an error")
	}
}

func TestPresets(t *testing.T) {
	p, err := ParsePreset("")
	if err != nil || p != PresetClassic {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("turbo"); err == nil {
		t.Error("unknown preset should be rejected")
	}

	classic := DefaultFlappyConfig()
	ApplyPreset(&classic, PresetClassic)
	if classic != DefaultFlappyConfig() {
		t.Error("classic preset should not change the defaults")
	}

	floaty := DefaultFlappyConfig()
	ApplyPreset(&floaty, PresetFloaty)
	if floaty.Bird.Kinematics != KinematicsTwoPhase || floaty.Pipes.Collision != CollisionRing {
		t.Errorf("floaty preset = %+v", floaty.Bird)
	}

	legacy := DefaultFlappyConfig()
	ApplyPreset(&legacy, PresetLegacy)
	if legacy.Pipes.Collision != CollisionFront || legacy.GameOver.Cooldown != 0 {
		t.Errorf("legacy preset = %+v %+v", legacy.Pipes, legacy.GameOver)
	}
	for _, p := range Presets() {
		cfg := DefaultFlappyConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces an invalid config: %v", p, err)
		}
	}
}
