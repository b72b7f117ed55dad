package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"golang.org/x/image/colornames"
)

// Renderer draws the world as flat colored boxes. Debug adds the grid,
// pursuer paths and a status line.
type Renderer struct {
	Config common.Config
	Debug  bool
}

func NewRenderer(cfg common.Config) *Renderer {
	return &Renderer{Config: cfg}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Black)

	for _, s := range Collect(w, r.Config, r.Debug) {
		switch {
		case s.Bar:
			drawBar(screen, s)
		case s.Label == "path":
			fillRect(screen, s.Box, color.RGBA{R: 255, G: 255, B: 0, A: 96})
		default:
			fillRect(screen, s.Box, ColorFor(s.Label))
			if s.Layer == LayerWeapon {
				vector.StrokeRect(screen, float32(s.Box.X), float32(s.Box.Y), float32(s.Box.Width), float32(s.Box.Height), 1, colornames.White, false)
			}
		}
	}

	if r.Debug {
		r.drawGrid(screen)
	}
}

// DrawStatus prints a one-line summary in the top-left corner.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	if screen == nil || status == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}

func (r *Renderer) drawGrid(screen *ebiten.Image) {
	cfg := r.Config
	line := color.RGBA{R: 255, G: 255, B: 255, A: 32}
	for col := 0; col <= cfg.Columns; col++ {
		x := float32(col * cfg.CellWidth)
		vector.StrokeLine(screen, x, 0, x, float32(cfg.Rows*cfg.CellHeight), 1, line, false)
	}
	for row := 0; row <= cfg.Rows; row++ {
		y := float32(row * cfg.CellHeight)
		vector.StrokeLine(screen, 0, y, float32(cfg.Columns*cfg.CellWidth), y, 1, line, false)
	}
}

func drawBar(screen *ebiten.Image, s Shape) {
	fillRect(screen, s.Box, colornames.Darkslategray)
	filled := s.Box
	filled.Width = int(float64(s.Box.Width) * s.Fill)
	if filled.Width <= 0 {
		return
	}
	c := colornames.Limegreen
	if s.Label == "cooldown" {
		c = colornames.Deepskyblue
	}
	fillRect(screen, filled, c)
}

func fillRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

// StatusLine formats the frame counter and timing for DrawStatus.
func StatusLine(frame uint64, fps float64, avgFrameMS float64, playerHP int) string {
	return fmt.Sprintf("frame %d  fps %.1f  update %.2fms  hp %d", frame, fps, avgFrameMS, playerHP)
}
