// Package window runs the game in a native window with Ebitengine.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
)

var palette = map[core.Color]color.NRGBA{
	core.ColorDefault: {0, 0, 0, 255},
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 170, 0, 255},
	core.ColorYellow:  {255, 215, 0, 255},
	core.ColorCyan:    {135, 206, 235, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

var (
	flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Game adapts a session to ebiten.Game.
type Game struct {
	session *session.Session
	font    font.Face
	width   int
	height  int
}

// New wraps s. The logical screen matches the world size.
func New(s *session.Session) *Game {
	cfg := s.Game().Config()
	return &Game{
		session: s,
		font:    basicfont.Face7x13,
		width:   int(cfg.Screen.Width),
		height:  int(cfg.Screen.Height),
	}
}

// Update delivers key-down edges, then advances one frame of 1/TPS seconds.
func (g *Game) Update() error {
	if anyJustPressed(quitKeys) && g.session.Input(core.ActionQuit) {
		return ebiten.Termination
	}
	if anyJustPressed(flapKeys) {
		g.session.Input(core.ActionPrimary)
	}

	g.session.Tick(1 / float64(ebiten.TPS()))
	return nil
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw paints the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.session.Scene()
	screen.Fill(colorOf(sc.Background, 1))

	for _, sh := range sc.Shapes {
		r := sh.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			colorOf(sh.Color, sh.Alpha), false)
	}

	face := g.font.Metrics()
	lineHeight := face.Height.Ceil()
	y := g.height/2 - lineHeight*len(sc.Text)/2
	for _, line := range sc.Text {
		w := font.MeasureString(g.font, line).Ceil()
		text.Draw(screen, line, g.font, (g.width-w)/2, y, palette[core.ColorWhite])
		y += lineHeight
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func colorOf(c core.Color, alpha float64) color.NRGBA {
	rgba, ok := palette[c]
	if !ok {
		rgba = palette[core.ColorDefault]
	}
	rgba.A = uint8(core.ClampF(alpha, 0, 1) * 255)
	return rgba
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, tps int) error {
	g := New(s)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizable(false)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
