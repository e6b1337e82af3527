// Package config provides YAML-based tuning for the game: physics constants,
// pipe ring geometry, presets, and eager validation of the whole set.
package config

// Kinematics names a bird update rule.
type Kinematics string

const (
	// KinematicsClassic is the single-phase constant-gravity integrator.
	KinematicsClassic Kinematics = "classic"
	// KinematicsTwoPhase switches between rising and falling phases with
	// asymmetric accelerations for a floatier feel.
	KinematicsTwoPhase Kinematics = "two_phase"
)

// RespawnPolicy controls how many pairs the ring may recycle per update.
type RespawnPolicy string

const (
	// RespawnSingle recycles at most one pair per update, even after a long frame.
	RespawnSingle RespawnPolicy = "single"
	// RespawnCatchUp keeps recycling until the head pair is back on screen side.
	RespawnCatchUp RespawnPolicy = "catch_up"
)

// CollisionScope selects which pipes are tested against the bird.
type CollisionScope string

const (
	CollisionRing  CollisionScope = "ring"  // every pipe in the ring
	CollisionFront CollisionScope = "front" // only the head pair
)

// FlappyConfig contains all tuning for the game.
type FlappyConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Bird     BirdConfig     `yaml:"bird"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Pipes    PipesConfig    `yaml:"pipes"`
	GameOver GameOverConfig `yaml:"game_over"`
	Clock    ClockConfig    `yaml:"clock"`
}

// ScreenConfig defines the world size in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the player entity.
type BirdConfig struct {
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	Size       float64    `yaml:"size"`
	Kinematics Kinematics `yaml:"kinematics"`
}

// PhysicsConfig defines the bird's motion constants.
type PhysicsConfig struct {
	JumpSpeed    float64        `yaml:"jump_speed"`    // World units per second, upward
	GravityRatio float64        `yaml:"gravity_ratio"` // Gravity as a multiple of jump speed
	TwoPhase     TwoPhaseConfig `yaml:"two_phase"`
}

// Gravity returns the downward acceleration of the classic integrator.
func (p PhysicsConfig) Gravity() float64 {
	return p.JumpSpeed * p.GravityRatio
}

// TwoPhaseConfig defines the alternate rising/falling kinematics.
type TwoPhaseConfig struct {
	Speed     float64 `yaml:"speed"`      // Initial rising speed after a jump
	RiseScale float64 `yaml:"rise_scale"` // Position multiplier while rising
	RiseDecay float64 `yaml:"rise_decay"` // Speed lost per second while rising, in units of Speed
	FallScale float64 `yaml:"fall_scale"` // Position multiplier while falling
	FallAccel float64 `yaml:"fall_accel"` // Speed gained per second while falling, in units of Speed
	ApexSpeed float64 `yaml:"apex_speed"` // Rising speed below which the bird starts to fall
}

// PipesConfig defines the pipe ring geometry.
type PipesConfig struct {
	Capacity        int            `yaml:"capacity"`
	Width           float64        `yaml:"width"`
	Gap             float64        `yaml:"gap"`
	Distance        float64        `yaml:"distance"` // Spacing between consecutive pairs
	Speed           float64        `yaml:"speed"`    // Scroll speed, world units per second
	OffscreenMargin float64        `yaml:"offscreen_margin"`
	HeightMin       int            `yaml:"height_min"` // Upper pipe height range, [min, max)
	HeightMax       int            `yaml:"height_max"`
	Respawn         RespawnPolicy  `yaml:"respawn"`
	Collision       CollisionScope `yaml:"collision"`
}

// GameOverConfig defines the post-collision behavior.
type GameOverConfig struct {
	Cooldown float64 `yaml:"cooldown"` // Seconds before a restart is accepted
}

// ClockConfig defines how shells turn wall-clock time into frame deltas.
type ClockConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Longest delta fed to a single update
}

// Preset represents a named bundle of tuning overrides.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFloaty  Preset = "floaty"
	PresetLegacy  Preset = "legacy"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetFloaty, PresetLegacy}
}
