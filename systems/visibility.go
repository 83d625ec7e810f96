package systems

import (
	"bsp-rogue/gamemap"
)

// IsVisible reports whether target can be seen from observer. The line
// between them is walked from the observer; any occupied tile before the
// target blocks the view. The target itself may be occupied, so walls are
// visible.
func IsVisible(observer, target gamemap.Coordinate, area *gamemap.Area) bool {
	w := gamemap.NewLineWalker(observer, target)
	// the observer's own tile never blocks
	w.Next()
	for w.Next() {
		if w.AtTarget() {
			return true
		}
		if p := w.Pos(); area.Occupied(p.X, p.Y) {
			return false
		}
	}
	return true
}

// VisibleCells returns every cell within radius of the observer, measured
// as the larger of the two axis distances, that the observer can see
func VisibleCells(observer gamemap.Coordinate, radius int, area *gamemap.Area) []gamemap.Coordinate {
	var cells []gamemap.Coordinate
	for x := observer.X - radius; x <= observer.X+radius; x++ {
		for y := observer.Y - radius; y <= observer.Y+radius; y++ {
			c := gamemap.NewCoordinate(x, y)
			if IsVisible(observer, c, area) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
