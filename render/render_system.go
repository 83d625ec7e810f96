// Package render draws canvases and the message log in an ebiten window
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bsp-rogue/canvas"
	"bsp-rogue/config"
	"bsp-rogue/systems"
)

// Glyphs draws single characters on a grid of square cells
type Glyphs interface {
	DrawGlyph(target *ebiten.Image, char rune, x, y int, clr color.Color)
	CellSize() int
}

// DebugFont draws with ebiten's built in font when no tileset is available.
// It only has ASCII and ignores colour.
type DebugFont struct {
	Size int
}

func (f DebugFont) CellSize() int { return f.Size }

// DrawGlyph draws a glyph at tile position (x, y) from the top left
func (f DebugFont) DrawGlyph(target *ebiten.Image, char rune, x, y int, _ color.Color) {
	// the debug font is 6 pixels wide
	ebitenutil.DebugPrintAt(target, string(systems.ASCIIGlyph(char)), x*f.Size+(f.Size-6)/2, y*f.Size)
}

var separatorColor = color.RGBA{200, 200, 200, 255}

// RenderSystem draws the game canvas with the message panel below it
type RenderSystem struct {
	glyphs Glyphs
}

// NewRenderSystem creates a renderer that draws with the given glyphs
func NewRenderSystem(glyphs Glyphs) *RenderSystem {
	return &RenderSystem{glyphs: glyphs}
}

// CellSize is the size of one canvas cell in pixels
func (s *RenderSystem) CellSize() int {
	return s.glyphs.CellSize()
}

// Draw draws the canvas and the most recent messages
func (s *RenderSystem) Draw(screen *ebiten.Image, c *canvas.Canvas, log *systems.MessageLog) {
	s.drawCanvas(screen, c)
	s.drawMessagesPanel(screen, c.Width(), c.Height(), log)
}

func (s *RenderSystem) drawCanvas(screen *ebiten.Image, c *canvas.Canvas) {
	size := float32(s.glyphs.CellSize())
	for y := 0; y < c.Height(); y++ {
		row := c.Height() - 1 - y
		for x := 0; x < c.Width(); x++ {
			u, err := c.Get(x, y)
			if err != nil {
				continue
			}
			if u.Background != canvas.Black {
				vector.DrawFilledRect(screen, float32(x)*size, float32(row)*size, size, size, u.Background, false)
			}
			if u.Char != ' ' {
				s.glyphs.DrawGlyph(screen, u.Char, x, row, u.Foreground)
			}
		}
	}
}

// drawMessagesPanel draws a separator under the map and the newest messages
// below it, newest first
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image, width, top int, log *systems.MessageLog) {
	for x := 0; x < width; x++ {
		s.glyphs.DrawGlyph(screen, '─', x, top, separatorColor)
	}
	if log == nil {
		return
	}
	for i, msg := range log.RecentMessages(config.MessagePanelHeight - 1) {
		s.drawString(screen, msg.Text, 1, top+1+i, width-2, msg.Color())
	}
}

func (s *RenderSystem) drawString(screen *ebiten.Image, text string, x, y, maxLen int, clr color.Color) {
	i := 0
	for _, char := range text {
		if i >= maxLen {
			return
		}
		s.glyphs.DrawGlyph(screen, char, x+i, y, clr)
		i++
	}
}

// CellAt converts a pixel position to canvas coordinates. ok is false
// outside the canvas.
func (s *RenderSystem) CellAt(c *canvas.Canvas, px, py int) (x, y int, ok bool) {
	size := s.glyphs.CellSize()
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/size, c.Height()-1-py/size
	return x, y, c.InBounds(x, y)
}
