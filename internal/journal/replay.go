package journal

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"gopkg.in/yaml.v3"
)

// ErrMismatch is returned by Verify when a replay diverges from the record.
var ErrMismatch = errors.New("replay does not match recording")

// ErrUnfinished is returned when the events run out before the round ends.
var ErrUnfinished = errors.New("replay did not reach game over")

// Replay rebuilds the game from the run's tuning and seed, starts a round and
// feeds it every recorded event.
func Replay(run Run) (Outcome, error) {
	cfg := config.DefaultFlappyConfig()
	if run.Tuning != "" {
		if err := yaml.Unmarshal([]byte(run.Tuning), &cfg); err != nil {
			return Outcome{}, fmt.Errorf("journal: cannot parse tuning of run %d: %w", run.ID, err)
		}
	}

	g, err := flappy.New(cfg, flappy.FixedSeed(run.Seed))
	if err != nil {
		return Outcome{}, fmt.Errorf("journal: run %d: %w", run.ID, err)
	}

	g.HandleInput(core.ActionPrimary)
	for i, ev := range run.Events {
		switch ev.Kind {
		case KindTick:
			g.Update(ev.DT)
		case KindInput:
			g.HandleInput(ev.Action)
		default:
			return Outcome{}, fmt.Errorf("journal: run %d event %d: unknown kind %q", run.ID, i, ev.Kind)
		}
	}

	over, ok := g.State().(flappy.GameOver)
	if !ok {
		return Outcome{}, fmt.Errorf("journal: run %d: %w", run.ID, ErrUnfinished)
	}
	return outcomeOf(g, over), nil
}

// Verify replays run and compares the result with the recorded outcome.
func Verify(run Run) (Outcome, error) {
	got, err := Replay(run)
	if err != nil {
		return got, err
	}

	want := run.Outcome
	switch {
	case got.Frames != want.Frames:
		return got, fmt.Errorf("journal: run %d: %w: %d frames, recorded %d", run.ID, ErrMismatch, got.Frames, want.Frames)
	case got.Reason != want.Reason:
		return got, fmt.Errorf("journal: run %d: %w: ended by %s, recorded %s", run.ID, ErrMismatch, got.Reason, want.Reason)
	case got.Respawns != want.Respawns:
		return got, fmt.Errorf("journal: run %d: %w: %d respawns, recorded %d", run.ID, ErrMismatch, got.Respawns, want.Respawns)
	case math.Abs(got.FinalY-want.FinalY) > 1e-9:
		return got, fmt.Errorf("journal: run %d: %w: final y %v, recorded %v", run.ID, ErrMismatch, got.FinalY, want.FinalY)
	}
	return got, nil
}
