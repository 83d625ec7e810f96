package systems

import (
	"bsp-rogue/gamemap"
)

// Camera maps canvas cells to world coordinates. A canvas cell (x, y) shows
// the world tile (x+X, y+Y).
type Camera struct {
	X, Y int
}

// CenterOn moves the camera so that target is drawn at the centre of the box
// spanned by two canvas corners. It reports whether the camera moved.
func (c *Camera) CenterOn(target, corner1, corner2 gamemap.Coordinate) bool {
	box := gamemap.SortBox(corner1, corner2)
	width := box[1].X - box[0].X + 1
	height := box[1].Y - box[0].Y + 1
	centerX := box[0].X + width/2
	centerY := box[0].Y + height/2

	oldX, oldY := c.X, c.Y
	c.X = target.X - centerX
	c.Y = target.Y - centerY
	return oldX != c.X || oldY != c.Y
}

// ScreenToWorld converts canvas coordinates to world coordinates
func (c *Camera) ScreenToWorld(x, y int) gamemap.Coordinate {
	return gamemap.NewCoordinate(x+c.X, y+c.Y)
}

// WorldToScreen converts world coordinates to canvas coordinates
func (c *Camera) WorldToScreen(p gamemap.Coordinate) (x, y int) {
	return p.X - c.X, p.Y - c.Y
}
