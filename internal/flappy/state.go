package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the game's phase. It is one of Starting, Running or GameOver.
type State interface {
	fmt.Stringer
	state()
}

// Starting waits for the first primary input. It is never re-entered.
type Starting struct{}

// Running simulates the bird and the pipes every frame.
type Running struct{}

// GameOver freezes the world until the cooldown has elapsed and the player
// asks for another round.
type GameOver struct {
	Reason   EndReason
	Cooldown float64 // Seconds left before a restart is accepted
}

func (Starting) state() {}
func (Running) state()  {}
func (GameOver) state() {}

func (Starting) String() string { return "starting" }
func (Running) String() string  { return "running" }
func (GameOver) String() string { return "game_over" }

// CanRestart reports whether a primary input would start a new round.
func (s GameOver) CanRestart() bool {
	return s.Cooldown <= 0
}

// EndReason describes why a round ended.
type EndReason string

const (
	EndOutOfBounds EndReason = "out_of_bounds"
	EndCollision   EndReason = "collision"
)

// effect is a side effect on the world requested by a transition.
type effect int

const (
	effectNone effect = iota
	effectJump
	effectRestart
	effectSimulate
)

// onInput is the transition for a non-quit input.
func onInput(s State, a core.Action) (State, effect) {
	if a != core.ActionPrimary {
		return s, effectNone
	}

	switch s := s.(type) {
	case Starting:
		return Running{}, effectNone
	case Running:
		return s, effectJump
	case GameOver:
		if !s.CanRestart() {
			return s, effectNone
		}
		return Running{}, effectRestart
	}
	return s, effectNone
}

// onFrame is the transition for a frame of dt seconds. A Running result asks
// the caller to simulate and then judge the frame with onVerdict.
func onFrame(s State, dt float64) (State, effect) {
	switch s := s.(type) {
	case Running:
		return s, effectSimulate
	case GameOver:
		s.Cooldown = max(s.Cooldown-dt, 0)
		return s, effectNone
	}
	return s, effectNone
}

// onVerdict ends the round when the simulated frame was fatal.
func onVerdict(s State, reason EndReason, fatal bool, cooldown float64) State {
	if _, ok := s.(Running); !ok || !fatal {
		return s
	}
	return GameOver{Reason: reason, Cooldown: cooldown}
}
