package journal

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"gopkg.in/yaml.v3"
)

// Recorder wraps a game and captures every event from the moment a round
// enters Running until it ends. The input that starts or restarts a round is
// not recorded; Replay issues it itself.
type Recorder struct {
	game    *flappy.Game
	tuning  string
	current *Run
}

// NewRecorder wraps g.
func NewRecorder(g *flappy.Game) (*Recorder, error) {
	data, err := yaml.Marshal(g.Config())
	if err != nil {
		return nil, err
	}
	return &Recorder{game: g, tuning: string(data)}, nil
}

// Game returns the wrapped game.
func (r *Recorder) Game() *flappy.Game {
	return r.game
}

// Recording reports whether a round is being captured.
func (r *Recorder) Recording() bool {
	return r.current != nil
}

// HandleInput forwards a to the game and records it.
func (r *Recorder) HandleInput(a core.Action) (quit bool) {
	before := r.game.State()
	quit = r.game.HandleInput(a)
	if quit {
		return true
	}
	r.observe(Input(a), before)
	return false
}

// Update forwards a frame to the game. It returns the finished run when this
// frame ended the round, nil otherwise.
func (r *Recorder) Update(dt float64) *Run {
	before := r.game.State()
	r.game.Update(dt)
	return r.observe(Tick(dt), before)
}

func (r *Recorder) observe(ev Event, before flappy.State) *Run {
	_, wasRunning := before.(flappy.Running)
	if wasRunning && r.current != nil {
		r.current.Events = append(r.current.Events, ev)
	}

	switch st := r.game.State().(type) {
	case flappy.Running:
		if !wasRunning {
			r.current = &Run{Seed: r.game.Seed(), Tuning: r.tuning}
		}
	case flappy.GameOver:
		if wasRunning && r.current != nil {
			run := r.current
			r.current = nil
			run.Outcome = outcomeOf(r.game, st)
			return run
		}
	}
	return nil
}

func outcomeOf(g *flappy.Game, over flappy.GameOver) Outcome {
	return Outcome{
		Frames:   g.Frames(),
		Elapsed:  g.Elapsed(),
		Respawns: g.Pipes().Respawns(),
		Reason:   over.Reason,
		FinalY:   g.Bird().Pos.Y,
	}
}
