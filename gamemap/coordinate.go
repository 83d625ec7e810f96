package gamemap

import "fmt"

// Coordinate is a point on the tile grid.
// X grows to the right and Y grows upward, so (0, 0) is the bottom-left cell.
type Coordinate struct {
	X int
	Y int
}

// NewCoordinate creates a Coordinate at (x, y)
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy)
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// SortBox takes any two corners of a box and returns the box as
// [bottom-left, top-right]. X and Y are compared independently.
func SortBox(a, b Coordinate) [2]Coordinate {
	return [2]Coordinate{
		{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}
