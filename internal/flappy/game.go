// Package flappy implements the game core: bird kinematics, the recycled pipe
// ring and the Starting/Running/GameOver state machine. It is deterministic
// for a given seed and sequence of inputs and frame deltas, and knows nothing
// about terminals, windows or wall-clock time.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game owns the bird, the pipes and the current state.
type Game struct {
	cfg   config.FlappyConfig
	seeds SeedPolicy

	state State
	bird  *Bird
	pipes *Pipes

	round   int     // Rounds entered so far; 0 while Starting
	frames  int     // Simulated frames in the current round
	elapsed float64 // Simulated seconds in the current round
}

// New validates cfg and creates a game in the Starting state.
func New(cfg config.FlappyConfig, seeds SeedPolicy) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if seeds == nil {
		return nil, fmt.Errorf("flappy: seed policy is required")
	}

	return &Game{
		cfg:   cfg,
		seeds: seeds,
		state: Starting{},
		bird:  NewBird(cfg),
		pipes: NewPipes(cfg, seeds),
	}, nil
}

// HandleInput applies a discrete input. It returns true when the player asked
// to quit; the game state is left untouched in that case.
func (g *Game) HandleInput(a core.Action) (quit bool) {
	if a == core.ActionQuit {
		return true
	}

	prev := g.state
	next, eff := onInput(g.state, a)
	g.state = next

	switch eff {
	case effectJump:
		g.bird.Jump()
	case effectRestart:
		g.restart()
	}
	if _, wasRunning := prev.(Running); !wasRunning {
		if _, running := next.(Running); running {
			g.round++
		}
	}
	return false
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64) {
	next, eff := onFrame(g.state, dt)
	g.state = next
	if eff != effectSimulate {
		return
	}

	g.bird.Update(dt)
	g.pipes.Update(dt)
	g.frames++
	g.elapsed += dt

	reason, fatal := g.judge()
	g.state = onVerdict(g.state, reason, fatal, g.cfg.GameOver.Cooldown)
}

// judge checks the bird against the screen and the pipes.
func (g *Game) judge() (EndReason, bool) {
	if !g.bird.OnScreen(g.cfg.Screen.Height) {
		return EndOutOfBounds, true
	}

	hitbox := g.bird.Bounds()
	hit := false
	if g.cfg.Pipes.Collision == config.CollisionFront {
		hit = g.pipes.FrontCollidesWith(hitbox)
	} else {
		hit = g.pipes.CollidesWith(hitbox)
	}
	if hit {
		return EndCollision, true
	}
	return "", false
}

func (g *Game) restart() {
	g.bird = NewBird(g.cfg)
	g.pipes.Reset(g.seeds)
	g.frames = 0
	g.elapsed = 0
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Bird returns the bird. Callers may inspect it; tests may move it.
func (g *Game) Bird() *Bird {
	return g.bird
}

// Pipes returns the pipe ring.
func (g *Game) Pipes() *Pipes {
	return g.pipes
}

// Round returns how many times the game has entered Running.
func (g *Game) Round() int {
	return g.round
}

// Frames returns the number of simulated frames in the current round.
func (g *Game) Frames() int {
	return g.frames
}

// Elapsed returns the simulated time of the current round in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Seed returns the seed of the current round's pipes.
func (g *Game) Seed() int64 {
	return g.pipes.Seed()
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
