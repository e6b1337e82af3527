package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/scene"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlack:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

const (
	glyphSolid = '█'
	glyphSky   = ' '
)

// Rasterize draws a scene into dst, scaling world units to cells.
// Opaque shapes become solid blocks; a translucent shape tints everything
// drawn before it instead of covering it.
func Rasterize(sc scene.Scene, dst *core.Screen) {
	dst.Fill(glyphSky, sc.Background)
	if sc.Width <= 0 || sc.Height <= 0 {
		return
	}

	sx := float64(dst.Width()) / sc.Width
	sy := float64(dst.Height()) / sc.Height

	for _, sh := range sc.Shapes {
		if sh.Alpha < 1 {
			dst.Tint(sh.Color)
			continue
		}
		x0, y0, x1, y1 := cellSpan(sh.Rect.Scale(sx, sy))
		dst.FillCells(x0, y0, x1, y1, glyphSolid, sh.Color)
	}

	top := (dst.Height() - len(sc.Text)) / 2
	for i, line := range sc.Text {
		dst.DrawTextCentered(top+i, line, core.ColorWhite)
	}
}

// cellSpan rounds a rect in cell units to a half-open cell range, keeping at
// least one cell for any rect with a positive size.
func cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = int(math.Round(r.X)), int(math.Round(r.Right()))
	y0, y1 = int(math.Round(r.Y)), int(math.Round(r.Bottom()))
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
