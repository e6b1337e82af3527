package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Phase is the bird's vertical phase.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseRising
)

func (p Phase) String() string {
	if p == PhaseRising {
		return "rising"
	}
	return "falling"
}

// Kinematics is a bird update rule. Rules only differ in how they react to a
// jump and how they integrate one frame; the bird's data stays the same.
type Kinematics interface {
	Jump(b *Bird)
	Update(b *Bird, dt float64)
}

// NewKinematics returns the rule selected by cfg.Bird.Kinematics.
func NewKinematics(cfg config.FlappyConfig) Kinematics {
	if cfg.Bird.Kinematics == config.KinematicsTwoPhase {
		return TwoPhase{cfg.Physics.TwoPhase}
	}
	return Classic{
		JumpSpeed: cfg.Physics.JumpSpeed,
		Gravity:   cfg.Physics.Gravity(),
	}
}

// Classic is a single-phase integrator with constant gravity.
type Classic struct {
	JumpSpeed float64
	Gravity   float64
}

// Jump resets the velocity to the jump speed. Repeated jumps do not stack.
func (k Classic) Jump(b *Bird) {
	b.Velocity = k.JumpSpeed
	b.Phase = PhaseRising
}

// Update moves the bird by its velocity, then applies gravity.
func (k Classic) Update(b *Bird, dt float64) {
	b.Pos.Y -= b.Velocity * dt
	b.Velocity -= k.Gravity * dt
	if b.Velocity <= 0 {
		b.Phase = PhaseFalling
	}
}

// TwoPhase rises quickly after a jump, hangs near the apex, then falls with
// its own acceleration. Velocity is reported signed: +s rising, -s falling.
type TwoPhase struct {
	config.TwoPhaseConfig
}

// Jump starts a rise at the configured speed.
func (k TwoPhase) Jump(b *Bird) {
	b.Phase = PhaseRising
	b.Velocity = k.Speed
}

// Update integrates one frame of the current phase.
func (k TwoPhase) Update(b *Bird, dt float64) {
	switch b.Phase {
	case PhaseRising:
		s := b.Velocity
		b.Pos.Y -= s * dt * k.RiseScale
		b.Velocity = s - k.Speed*dt*k.RiseDecay

		// The apex check uses the speed the frame started with.
		if s < k.ApexSpeed {
			b.Phase = PhaseFalling
			b.Velocity = 0
		}
	case PhaseFalling:
		s := -b.Velocity
		b.Pos.Y += s * dt * k.FallScale
		b.Velocity = -(s + k.Speed*dt*k.FallAccel)
	}
}
