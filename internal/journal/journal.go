// Package journal records rounds as seed plus input and frame events, and
// replays them through a fresh game. Because the core is deterministic, a
// replay must end exactly where the recorded round did.
package journal

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Kind is the type of a journal event.
type Kind string

const (
	KindTick  Kind = "tick"
	KindInput Kind = "input"
)

// Event is one call into the game while it was running.
type Event struct {
	Kind   Kind
	DT     float64     // Frame delta for ticks
	Action core.Action // Action for inputs
}

// Tick returns a frame event.
func Tick(dt float64) Event {
	return Event{Kind: KindTick, DT: dt}
}

// Input returns an input event.
func Input(a core.Action) Event {
	return Event{Kind: KindInput, Action: a}
}

// Outcome summarizes how a round ended.
type Outcome struct {
	Frames   int
	Elapsed  float64
	Respawns int
	Reason   flappy.EndReason
	FinalY   float64 // Bird Y on the fatal frame
}

// Run is a recorded round.
type Run struct {
	ID        int64
	Seed      int64
	Tuning    string // YAML of the game configuration
	CreatedAt time.Time
	Outcome
	Events []Event
}
