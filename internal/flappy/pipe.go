package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Pipe is a single rectangular obstacle.
type Pipe struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the pipe's hitbox.
func (p Pipe) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Pair is an upper pipe hanging from the top of the screen and a lower pipe
// standing on the bottom, separated by a vertical gap. Both pipes always share
// the same X and width.
type Pair struct {
	Upper Pipe
	Lower Pipe
}

// newPair builds a pair at x whose gap starts at upperHeight.
func newPair(x, upperHeight, width, gap, screenH float64) Pair {
	lowerY := upperHeight + gap
	return Pair{
		Upper: Pipe{X: x, Y: 0, Width: width, Height: upperHeight},
		Lower: Pipe{X: x, Y: lowerY, Width: width, Height: screenH - lowerY},
	}
}

// X returns the shared left edge of the pair.
func (p Pair) X() float64 {
	return p.Upper.X
}

// Gap returns the vertical extent of the passage between the pipes.
func (p Pair) Gap() float64 {
	return p.Lower.Y - p.Upper.Height
}

// CollidesWith reports whether r overlaps either pipe.
func (p Pair) CollidesWith(r core.Rect) bool {
	return p.Upper.Bounds().Intersects(r) || p.Lower.Bounds().Intersects(r)
}

func (p *Pair) moveBy(dx float64) {
	p.Upper.X += dx
	p.Lower.X += dx
}
