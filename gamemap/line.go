package gamemap

// LineWalker iterates the cells of an integer Bresenham line without
// allocating. Both endpoints are visited, starting at the origin.
//
//	w := NewLineWalker(from, to)
//	for w.Next() {
//		c := w.Pos()
//	}
type LineWalker struct {
	x, y     int
	tx, ty   int
	dx, dy   int
	sx, sy   int
	err      int
	started  bool
	finished bool
}

// NewLineWalker creates a walker from one cell to another
func NewLineWalker(from, to Coordinate) LineWalker {
	w := LineWalker{
		x: from.X, y: from.Y,
		tx: to.X, ty: to.Y,
		dx: abs(to.X - from.X),
		dy: -abs(to.Y - from.Y),
		sx: 1, sy: 1,
	}
	if from.X > to.X {
		w.sx = -1
	}
	if from.Y > to.Y {
		w.sy = -1
	}
	w.err = w.dx + w.dy
	return w
}

// Next advances to the next cell. It returns false once the target has been
// passed.
func (w *LineWalker) Next() bool {
	if w.finished {
		return false
	}
	if !w.started {
		w.started = true
		return true
	}
	if w.x == w.tx && w.y == w.ty {
		w.finished = true
		return false
	}
	e2 := 2 * w.err
	if e2 >= w.dy {
		w.err += w.dy
		w.x += w.sx
	}
	if e2 <= w.dx {
		w.err += w.dx
		w.y += w.sy
	}
	return true
}

// Pos returns the current cell
func (w *LineWalker) Pos() Coordinate {
	return Coordinate{X: w.x, Y: w.y}
}

// AtTarget reports whether the current cell is the end of the line
func (w *LineWalker) AtTarget() bool {
	return w.x == w.tx && w.y == w.ty
}

// Line returns every cell from one point to another, both included
func Line(from, to Coordinate) []Coordinate {
	cells := make([]Coordinate, 0, max(abs(to.X-from.X), abs(to.Y-from.Y))+1)
	w := NewLineWalker(from, to)
	for w.Next() {
		cells = append(cells, w.Pos())
	}
	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
