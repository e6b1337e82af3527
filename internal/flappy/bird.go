package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player entity: a square hitbox that only moves vertically.
type Bird struct {
	Pos      core.Vec // Upper-left corner of the hitbox
	Velocity float64  // Positive is upward, i.e. decreasing screen Y
	Phase    Phase

	size float64
	kin  Kinematics
}

// NewBird creates a bird at the configured spawn point with zero velocity.
func NewBird(cfg config.FlappyConfig) *Bird {
	return &Bird{
		Pos:   core.Vec{X: cfg.Bird.X, Y: cfg.Bird.Y},
		Phase: PhaseFalling,
		size:  cfg.Bird.Size,
		kin:   NewKinematics(cfg),
	}
}

// Size returns the hitbox edge length. It never changes.
func (b *Bird) Size() float64 {
	return b.size
}

// Jump sets the velocity to the jump speed of the bird's kinematics.
func (b *Bird) Jump() {
	b.kin.Jump(b)
}

// Update advances the bird by dt seconds.
func (b *Bird) Update(dt float64) {
	b.kin.Update(b, dt)
}

// OnScreen reports whether the whole hitbox is strictly inside [0, screenH].
// Horizontal bounds are not checked; the bird never moves sideways.
func (b *Bird) OnScreen(screenH float64) bool {
	r := b.Bounds()
	return r.Top() > 0 && r.Bottom() < screenH
}

// Bounds returns the current hitbox.
func (b *Bird) Bounds() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.size, b.size)
}
