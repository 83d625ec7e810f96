package gamemap

import "fmt"

// Region is an axis-aligned rectangle of tiles. It is used both as a BSP
// partition and as the footprint of a room.
//
// Position is the bottom-left corner. The right column and top row are
// derived once at construction since the region never changes afterwards.
type Region struct {
	Width    int
	Height   int
	Position Coordinate

	edgeX int
	topY  int
}

// NewRegion creates a region of the given size with its bottom-left corner
// at position
func NewRegion(width, height int, position Coordinate) Region {
	return Region{
		Width:    width,
		Height:   height,
		Position: position,
		edgeX:    position.X + width - 1,
		topY:     position.Y + height - 1,
	}
}

// EdgeX returns the rightmost column of the region
func (r Region) EdgeX() int {
	return r.edgeX
}

// TopY returns the topmost row of the region
func (r Region) TopY() int {
	return r.topY
}

// TopRight returns the top-right corner of the region
func (r Region) TopRight() Coordinate {
	return Coordinate{X: r.edgeX, Y: r.topY}
}

// Center returns the middle tile of the region, rounded down
func (r Region) Center() Coordinate {
	return Coordinate{X: r.Position.X + (r.Width-1)/2, Y: r.Position.Y + (r.Height-1)/2}
}

// Overlaps reports whether c lies inside the region, borders included
func (r Region) Overlaps(c Coordinate) bool {
	return c.X >= r.Position.X && c.X <= r.edgeX &&
		c.Y >= r.Position.Y && c.Y <= r.topY
}

// Contains reports whether other lies entirely inside r
func (r Region) Contains(other Region) bool {
	return r.Overlaps(other.Position) && r.Overlaps(other.TopRight())
}

// Intersects reports whether the two regions share at least one tile
func (r Region) Intersects(other Region) bool {
	return r.Position.X <= other.edgeX && other.Position.X <= r.edgeX &&
		r.Position.Y <= other.topY && other.Position.Y <= r.topY
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d@%s", r.Width, r.Height, r.Position)
}
