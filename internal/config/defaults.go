package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning.
// It matches defaults/flappy.yaml and backs it up if the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Bird: BirdConfig{
			X:          100,
			Y:          300,
			Size:       50,
			Kinematics: KinematicsClassic,
		},
		Physics: PhysicsConfig{
			JumpSpeed:    700,
			GravityRatio: 3,
			TwoPhase: TwoPhaseConfig{
				Speed:     600,
				RiseScale: 1.5,
				RiseDecay: 2.5,
				FallScale: 2.0,
				FallAccel: 2.0,
				ApexSpeed: 100,
			},
		},
		Pipes: PipesConfig{
			Capacity:        4,
			Width:           100,
			Gap:             200,
			Distance:        350,
			Speed:           300,
			OffscreenMargin: 1.5,
			HeightMin:       100,
			HeightMax:       300,
			Respawn:         RespawnSingle,
			Collision:       CollisionRing,
		},
		GameOver: GameOverConfig{
			Cooldown: 2,
		},
		Clock: ClockConfig{
			MaxFrameDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
