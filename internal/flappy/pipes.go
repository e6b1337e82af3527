package flappy

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ring"
)

// Pipes is the fixed-capacity ring of pipe pairs scrolling right to left.
// Pairs are created once and recycled: when the head pair scrolls past the
// left edge it is moved behind the last pair with a fresh gap, and the head
// advances.
type Pipes struct {
	cfg     config.PipesConfig
	screenW float64
	screenH float64

	ring     *ring.Ring[Pair]
	rng      *rand.Rand
	seed     int64
	respawns int
}

// NewPipes builds the ring, drawing its seed from seeds.
func NewPipes(cfg config.FlappyConfig, seeds SeedPolicy) *Pipes {
	p := &Pipes{
		cfg:     cfg.Pipes,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
	}
	p.reseed(seeds)
	p.ring = ring.New(p.cfg.Capacity, func(i int) Pair {
		return p.spawn(p.startX(i))
	})
	return p
}

// Reset re-seeds the RNG and lays the pairs out exactly as NewPipes does.
func (p *Pipes) Reset(seeds SeedPolicy) {
	p.reseed(seeds)
	p.ring.Rewind()
	for i, pair := range p.ring.All() {
		*pair = p.spawn(p.startX(i))
	}
	p.respawns = 0
}

func (p *Pipes) reseed(seeds SeedPolicy) {
	p.seed = seeds.Seed()
	p.rng = rand.New(rand.NewSource(p.seed))
}

// startX is the initial left edge of the i-th pair: the first one sits one
// spacing past the off-screen spawn line.
func (p *Pipes) startX(i int) float64 {
	return p.screenW + p.cfg.Width + float64(i+1)*p.cfg.Distance
}

// threshold is the X below which the head pair counts as gone.
func (p *Pipes) threshold() float64 {
	return -p.cfg.Width * p.cfg.OffscreenMargin
}

func (p *Pipes) spawn(x float64) Pair {
	upper := p.cfg.HeightMin + p.rng.Intn(p.cfg.HeightMax-p.cfg.HeightMin)
	return newPair(x, float64(upper), p.cfg.Width, p.cfg.Gap, p.screenH)
}

// Update scrolls every pair left by speed*dt and recycles the head pair once
// it has left the screen. With the single respawn policy at most one pair is
// recycled per call; catch_up keeps going until the head is back in range.
func (p *Pipes) Update(dt float64) {
	dx := -p.cfg.Speed * dt
	for pair := range p.ring.Slots() {
		pair.moveBy(dx)
	}

	for p.ring.Front().X() < p.threshold() {
		p.respawnFront()
		if p.cfg.Respawn != config.RespawnCatchUp {
			break
		}
	}
}

func (p *Pipes) respawnFront() {
	x := p.ring.Back().X() + p.cfg.Distance
	*p.ring.Front() = p.spawn(x)
	p.ring.Advance()
	p.respawns++
}

// CollidesWith reports whether r overlaps any pipe in the ring.
func (p *Pipes) CollidesWith(r core.Rect) bool {
	for pair := range p.ring.Slots() {
		if pair.CollidesWith(r) {
			return true
		}
	}
	return false
}

// FrontCollidesWith reports whether r overlaps a pipe of the head pair only.
func (p *Pipes) FrontCollidesWith(r core.Rect) bool {
	return p.ring.Front().CollidesWith(r)
}

// Bounds returns the hitboxes of every pipe, upper then lower, in ring order.
func (p *Pipes) Bounds() []core.Rect {
	out := make([]core.Rect, 0, 2*p.ring.Len())
	for _, pair := range p.ring.All() {
		out = append(out, pair.Upper.Bounds(), pair.Lower.Bounds())
	}
	return out
}

// Pairs iterates copies of the pairs from the head to the back.
func (p *Pipes) Pairs() iter.Seq2[int, Pair] {
	return func(yield func(int, Pair) bool) {
		for i, pair := range p.ring.All() {
			if !yield(i, *pair) {
				return
			}
		}
	}
}

// Front returns a copy of the head pair.
func (p *Pipes) Front() Pair {
	return *p.ring.Front()
}

// Head returns the physical slot index of the head pair.
func (p *Pipes) Head() int {
	return p.ring.Head()
}

// Len returns the ring capacity.
func (p *Pipes) Len() int {
	return p.ring.Len()
}

// Respawns returns how many pairs have been recycled since the last reset.
func (p *Pipes) Respawns() int {
	return p.respawns
}

// Seed returns the seed the RNG was last initialized with.
func (p *Pipes) Seed() int64 {
	return p.seed
}
