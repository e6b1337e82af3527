// Package scene turns a game into a flat list of colored rectangles and text
// lines in world units. Shells only have to draw what Build returns.
package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Shape is a filled rectangle.
type Shape struct {
	Rect  core.Rect
	Color core.Color
	Alpha float64 // 1 is opaque
}

// Scene is everything a renderer needs for one frame.
type Scene struct {
	Width, Height float64
	Background    core.Color
	Shapes        []Shape // Back to front
	Text          []string
}

// Overlay reports whether the scene carries a translucent overlay.
func (s Scene) Overlay() bool {
	for _, sh := range s.Shapes {
		if sh.Alpha < 1 {
			return true
		}
	}
	return false
}

const (
	StartPrompt   = "Press Space to start!"
	RestartPrompt = "Game over! Press Space to restart"
)

// Build describes the current frame of g.
func Build(g *flappy.Game) Scene {
	cfg := g.Config()
	sc := Scene{
		Width:      cfg.Screen.Width,
		Height:     cfg.Screen.Height,
		Background: core.ColorBlack,
	}

	switch st := g.State().(type) {
	case flappy.Starting:
		sc.Text = []string{StartPrompt}
		return sc
	case flappy.Running:
		sc.Background = core.ColorCyan
		sc.Shapes = world(g)
	case flappy.GameOver:
		sc.Background = core.ColorCyan
		sc.Shapes = append(world(g), Shape{
			Rect:  core.NewRect(0, 0, sc.Width, sc.Height),
			Color: core.ColorRed,
			Alpha: 0.5,
		})
		sc.Text = []string{gameOverText(st)}
	}
	return sc
}

func world(g *flappy.Game) []Shape {
	shapes := make([]Shape, 0, 2*g.Pipes().Len()+1)
	for _, r := range g.Pipes().Bounds() {
		shapes = append(shapes, Shape{Rect: r, Color: core.ColorGreen, Alpha: 1})
	}
	shapes = append(shapes, Shape{Rect: g.Bird().Bounds(), Color: core.ColorYellow, Alpha: 1})
	return shapes
}

func gameOverText(st flappy.GameOver) string {
	if st.CanRestart() {
		return RestartPrompt
	}
	return fmt.Sprintf("Game over! Restart in %d", int(math.Ceil(st.Cooldown)))
}
