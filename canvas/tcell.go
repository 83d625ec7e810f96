package canvas

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen draws canvases on a terminal. Canvas row 0 is the bottom line
// of the drawn area, which starts at the top left of the screen.
type TcellScreen struct {
	screen tcell.Screen
}

// NewTcellScreen wraps an initialised screen
func NewTcellScreen(screen tcell.Screen) *TcellScreen {
	return &TcellScreen{screen: screen}
}

// Screen returns the wrapped screen
func (t *TcellScreen) Screen() tcell.Screen {
	return t.screen
}

// RGBToTcell converts a colour for use in a tcell style
func RGBToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw copies the canvas to the screen without showing it. Cells that do
// not fit on the screen are skipped.
func (t *TcellScreen) Draw(c *Canvas) {
	screenWidth, screenHeight := t.screen.Size()
	for y := 0; y < c.height; y++ {
		row := c.height - 1 - y
		if row >= screenHeight {
			continue
		}
		for x := 0; x < c.width && x < screenWidth; x++ {
			u := c.units[y*c.width+x]
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(u.Foreground)).
				Background(RGBToTcell(u.Background))
			t.screen.SetContent(x, row, u.Char, nil, style)
		}
	}
}

// Flush draws the canvas and shows it
func (t *TcellScreen) Flush(c *Canvas) {
	t.Draw(c)
	t.screen.Show()
}

// CellAt converts a screen position to canvas coordinates. ok is false when
// the position is outside the canvas.
func (t *TcellScreen) CellAt(c *Canvas, screenX, screenY int) (x, y int, ok bool) {
	x, y = screenX, c.height-1-screenY
	return x, y, c.InBounds(x, y)
}

// ClickedCell returns the canvas cell under a primary button press
func (t *TcellScreen) ClickedCell(c *Canvas, ev *tcell.EventMouse) (x, y int, ok bool) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return 0, 0, false
	}
	sx, sy := ev.Position()
	return t.CellAt(c, sx, sy)
}
