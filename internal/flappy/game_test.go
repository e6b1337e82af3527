package flappy

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestGame(t *testing.T, cfg config.FlappyConfig) *Game {
	t.Helper()

	g, err := New(cfg, FixedSeed(2024))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := classicConfig()
	cfg.Pipes.Capacity = 0

	_, err := New(cfg, FixedSeed(1))
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("New() error = %v, expected ErrInvalid", err)
	}

	if _, err := New(classicConfig(), nil); err == nil {
		t.Error("New() without a seed policy should fail")
	}
}

func TestStartingIsFrozen(t *testing.T) {
	g := newTestGame(t, classicConfig())

	before := g.Pipes().Bounds()
	for range 120 {
		g.Update(1.0 / 60)
	}

	if _, ok := g.State().(Starting); !ok {
		t.Fatalf("State() = %v, expected starting", g.State())
	}
	if g.Bird().Pos.Y != 300 || g.Frames() != 0 || g.Round() != 0 {
		t.Errorf("world moved while starting: y=%v frames=%d round=%d", g.Bird().Pos.Y, g.Frames(), g.Round())
	}
	after := g.Pipes().Bounds()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("pipe %d moved while starting", i)
		}
	}
}

func TestQuitLeavesStateAlone(t *testing.T) {
	g := newTestGame(t, classicConfig())

	if !g.HandleInput(core.ActionQuit) {
		t.Error("HandleInput(Quit) should report quit while starting")
	}
	if _, ok := g.State().(Starting); !ok {
		t.Errorf("State() = %v after quit, expected starting", g.State())
	}

	g.HandleInput(core.ActionPrimary)
	if !g.HandleInput(core.ActionQuit) {
		t.Error("HandleInput(Quit) should report quit while running")
	}
	if _, ok := g.State().(Running); !ok {
		t.Errorf("State() = %v after quit, expected running", g.State())
	}
}

func TestStartDoesNotJump(t *testing.T) {
	g := newTestGame(t, classicConfig())

	if g.HandleInput(core.ActionPrimary) {
		t.Fatal("primary input should not quit")
	}
	if _, ok := g.State().(Running); !ok {
		t.Fatalf("State() = %v, expected running", g.State())
	}
	if g.Round() != 1 {
		t.Errorf("Round() = %d, expected 1", g.Round())
	}
	if g.Bird().Velocity != 0 {
		t.Errorf("Velocity = %v, the starting input should not flap", g.Bird().Velocity)
	}

	g.HandleInput(core.ActionPrimary)
	if g.Bird().Velocity != 700 {
		t.Errorf("Velocity = %v after a jump, expected 700", g.Bird().Velocity)
	}
}

func TestFallingOffScreenEndsRound(t *testing.T) {
	g := newTestGame(t, classicConfig())
	g.HandleInput(core.ActionPrimary)

	for range 120 {
		g.Update(1.0 / 60)
		if _, over := g.State().(GameOver); over {
			break
		}
	}

	over, ok := g.State().(GameOver)
	if !ok {
		t.Fatalf("State() = %v, expected game over", g.State())
	}
	if over.Reason != EndOutOfBounds {
		t.Errorf("Reason = %q, expected %q", over.Reason, EndOutOfBounds)
	}
	if over.Cooldown != 2 {
		t.Errorf("Cooldown = %v, expected 2", over.Cooldown)
	}
	// Free fall from y=300 reaches the floor after roughly half a second.
	if g.Frames() < 25 || g.Frames() > 40 {
		t.Errorf("Frames() = %d, expected about 30", g.Frames())
	}
}

func TestForcedOutOfBoundsEndsSameFrame(t *testing.T) {
	g := newTestGame(t, classicConfig())
	g.HandleInput(core.ActionPrimary)

	g.Bird().Pos.Y = 700
	g.Update(1.0 / 60)

	over, ok := g.State().(GameOver)
	if !ok || over.Reason != EndOutOfBounds {
		t.Fatalf("State() = %v, expected game over (out_of_bounds)", g.State())
	}
	if g.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", g.Frames())
	}
}

func TestPipeCollisionEndsRound(t *testing.T) {
	for _, scope := range []config.CollisionScope{config.CollisionRing, config.CollisionFront} {
		t.Run(string(scope), func(t *testing.T) {
			cfg := classicConfig()
			cfg.Pipes.Collision = scope
			g := newTestGame(t, cfg)
			g.HandleInput(core.ActionPrimary)

			front := g.Pipes().Front()
			g.Bird().Pos = core.Vec{X: front.X() + 20, Y: 10}
			g.Update(1.0 / 60)

			over, ok := g.State().(GameOver)
			if !ok || over.Reason != EndCollision {
				t.Fatalf("State() = %v, expected game over (collision)", g.State())
			}
		})
	}
}

func TestGameOverCooldownAndRestart(t *testing.T) {
	g := newTestGame(t, classicConfig())
	g.HandleInput(core.ActionPrimary)
	g.Bird().Pos.Y = 700
	g.Update(1.0 / 60)

	frozenY := g.Bird().Pos.Y
	frozen := g.Pipes().Bounds()

	// Restart is refused while the cooldown runs.
	g.HandleInput(core.ActionPrimary)
	g.Update(1.0)
	over, ok := g.State().(GameOver)
	if !ok {
		t.Fatalf("State() = %v, expected game over", g.State())
	}
	if over.Cooldown != 1 || over.CanRestart() {
		t.Errorf("Cooldown = %v, expected 1 and no restart yet", over.Cooldown)
	}
	g.HandleInput(core.ActionPrimary)
	if _, ok := g.State().(GameOver); !ok {
		t.Fatalf("restart accepted during cooldown")
	}

	g.Update(1.5)
	over = g.State().(GameOver)
	if over.Cooldown != 0 || !over.CanRestart() {
		t.Fatalf("Cooldown = %v, expected 0 and restart allowed", over.Cooldown)
	}

	// The world stays frozen for the whole game over.
	if g.Bird().Pos.Y != frozenY || g.Frames() != 1 {
		t.Errorf("world moved during game over: y=%v frames=%d", g.Bird().Pos.Y, g.Frames())
	}
	after := g.Pipes().Bounds()
	for i := range frozen {
		if frozen[i] != after[i] {
			t.Fatalf("pipe %d moved during game over", i)
		}
	}

	g.HandleInput(core.ActionPrimary)
	if _, ok := g.State().(Running); !ok {
		t.Fatalf("State() = %v, expected running after restart", g.State())
	}
	if g.Round() != 2 || g.Frames() != 0 || g.Elapsed() != 0 {
		t.Errorf("Round/Frames/Elapsed = %d/%d/%v, expected 2/0/0", g.Round(), g.Frames(), g.Elapsed())
	}
	if g.Bird().Pos.Y != 300 || g.Bird().Velocity != 0 {
		t.Errorf("bird not respawned: %+v", g.Bird())
	}

	fresh := NewPipes(classicConfig(), FixedSeed(2024))
	got, want := g.Pipes().Bounds(), fresh.Bounds()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pipe %d after restart = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestZeroCooldownRestartsImmediately(t *testing.T) {
	cfg := classicConfig()
	cfg.GameOver.Cooldown = 0
	g := newTestGame(t, cfg)
	g.HandleInput(core.ActionPrimary)
	g.Bird().Pos.Y = -100
	g.Update(1.0 / 60)

	if _, ok := g.State().(GameOver); !ok {
		t.Fatalf("State() = %v, expected game over", g.State())
	}
	g.HandleInput(core.ActionPrimary)
	if _, ok := g.State().(Running); !ok {
		t.Errorf("State() = %v, expected running", g.State())
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() (int, float64, EndReason) {
		g := newTestGame(t, classicConfig())
		g.HandleInput(core.ActionPrimary)

		for frame := 0; frame < 3000; frame++ {
			if frame%22 == 0 {
				g.HandleInput(core.ActionPrimary)
			}
			g.Update(1.0 / 60)
			if over, ok := g.State().(GameOver); ok {
				return g.Frames(), g.Bird().Pos.Y, over.Reason
			}
		}
		return g.Frames(), g.Bird().Pos.Y, ""
	}

	f1, y1, r1 := play()
	f2, y2, r2 := play()
	if f1 != f2 || y1 != y2 || r1 != r2 {
		t.Errorf("runs diverged: (%d, %v, %q) vs (%d, %v, %q)", f1, y1, r1, f2, y2, r2)
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		action core.Action
		to     State
		effect effect
	}{
		{"start", Starting{}, core.ActionPrimary, Running{}, effectNone},
		{"jump", Running{}, core.ActionPrimary, Running{}, effectJump},
		{"cooling down", GameOver{Reason: EndCollision, Cooldown: 0.5}, core.ActionPrimary, GameOver{Reason: EndCollision, Cooldown: 0.5}, effectNone},
		{"restart", GameOver{Reason: EndCollision}, core.ActionPrimary, Running{}, effectRestart},
		{"no-op action", Running{}, core.ActionNone, Running{}, effectNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			to, eff := onInput(tc.from, tc.action)
			if to != tc.to || eff != tc.effect {
				t.Errorf("onInput(%v, %v) = (%v, %v), expected (%v, %v)", tc.from, tc.action, to, eff, tc.to, tc.effect)
			}
		})
	}
}
