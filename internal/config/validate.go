package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid tuning")

// Validate checks every construction-time invariant of the tuning and
// reports all violations at once. A valid config can never place a pipe
// gap off screen or spawn a recycled pair inside the visible area.
func (c FlappyConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen: size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)

	check(c.Bird.Size > 0, "bird.size must be positive, got %v", c.Bird.Size)
	check(c.Bird.Size < c.Screen.Height, "bird.size %v must be below screen.height %v", c.Bird.Size, c.Screen.Height)
	check(c.Bird.Y > 0 && c.Bird.Y+c.Bird.Size < c.Screen.Height,
		"bird.y %v must spawn the bird fully on screen", c.Bird.Y)

	switch c.Bird.Kinematics {
	case KinematicsClassic:
		check(c.Physics.JumpSpeed > 0, "physics.jump_speed must be positive, got %v", c.Physics.JumpSpeed)
		check(c.Physics.GravityRatio > 0, "physics.gravity_ratio must be positive, got %v", c.Physics.GravityRatio)
	case KinematicsTwoPhase:
		tp := c.Physics.TwoPhase
		check(tp.Speed > 0, "physics.two_phase.speed must be positive, got %v", tp.Speed)
		check(tp.RiseScale > 0 && tp.FallScale > 0, "physics.two_phase scales must be positive")
		check(tp.RiseDecay > 0 && tp.FallAccel > 0, "physics.two_phase accelerations must be positive")
		check(tp.ApexSpeed >= 0 && tp.ApexSpeed < tp.Speed,
			"physics.two_phase.apex_speed %v must be in [0, speed)", tp.ApexSpeed)
	default:
		check(false, "bird.kinematics: unknown rule %q", c.Bird.Kinematics)
	}

	p := c.Pipes
	check(p.Capacity > 0, "pipes.capacity must be positive, got %d", p.Capacity)
	check(p.Width > 0, "pipes.width must be positive, got %v", p.Width)
	check(p.Gap > c.Bird.Size, "pipes.gap %v must be wider than the bird %v", p.Gap, c.Bird.Size)
	check(p.Distance >= p.Width, "pipes.distance %v must not be below pipes.width %v", p.Distance, p.Width)
	check(p.Speed >= 0, "pipes.speed must not be negative, got %v", p.Speed)
	check(p.OffscreenMargin >= 1, "pipes.offscreen_margin must be at least 1, got %v", p.OffscreenMargin)
	check(p.HeightMin >= 0 && p.HeightMin < p.HeightMax,
		"pipes height range [%d, %d) must be non-empty and non-negative", p.HeightMin, p.HeightMax)
	check(float64(p.HeightMax)+p.Gap < c.Screen.Height,
		"pipes.height_max %d + pipes.gap %v must stay below screen.height %v", p.HeightMax, p.Gap, c.Screen.Height)
	// A recycled pair lands capacity*distance right of where the head was dropped.
	check(float64(p.Capacity)*p.Distance-p.Width*p.OffscreenMargin >= c.Screen.Width,
		"pipes.capacity*distance too small: recycled pairs would appear on screen")
	check(p.Respawn == RespawnSingle || p.Respawn == RespawnCatchUp,
		"pipes.respawn: unknown policy %q", p.Respawn)
	check(p.Collision == CollisionRing || p.Collision == CollisionFront,
		"pipes.collision: unknown scope %q", p.Collision)

	check(c.GameOver.Cooldown >= 0, "game_over.cooldown must not be negative, got %v", c.GameOver.Cooldown)
	check(c.Clock.MaxFrameDelta > 0, "clock.max_frame_delta must be positive, got %v", c.Clock.MaxFrameDelta)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
}
