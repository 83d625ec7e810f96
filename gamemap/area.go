package gamemap

// Area is a sparse, unbounded tile map keyed by column then row.
// Cells that were never written read as the default tile.
type Area struct {
	tiles       map[int]map[int]Tile
	defaultFill Tile

	// bounds of every written cell
	minX, minY int
	maxX, maxY int
	written    bool
	count      int
}

// NewArea creates an empty area. Unwritten cells read as a tile holding fill,
// or as open floor when fill is empty.
func NewArea(fill ...WorldObject) *Area {
	return &Area{
		tiles:       make(map[int]map[int]Tile),
		defaultFill: NewTile(fill...),
	}
}

// GetTile returns a copy of the tile at (x, y)
func (a *Area) GetTile(x, y int) Tile {
	if column, exists := a.tiles[x]; exists {
		if tile, exists := column[y]; exists {
			return tile.Clone()
		}
	}
	return a.defaultFill.Clone()
}

// isEmpty avoids the copy made by GetTile on hot paths
func (a *Area) isEmpty(x, y int) bool {
	if column, exists := a.tiles[x]; exists {
		if tile, exists := column[y]; exists {
			return tile.Empty()
		}
	}
	return a.defaultFill.Empty()
}

// Occupied reports whether anything is on the tile at (x, y)
func (a *Area) Occupied(x, y int) bool {
	return !a.isEmpty(x, y)
}

// SetTile overwrites the tile at (x, y)
func (a *Area) SetTile(x, y int, t Tile) {
	column, exists := a.tiles[x]
	if !exists {
		column = make(map[int]Tile)
		a.tiles[x] = column
	}
	if _, exists := column[y]; !exists {
		a.count++
	}
	column[y] = t.Clone()
	a.grow(x, y)
}

func (a *Area) grow(x, y int) {
	if !a.written {
		a.minX, a.maxX, a.minY, a.maxY = x, x, y, y
		a.written = true
		return
	}
	a.minX = min(a.minX, x)
	a.maxX = max(a.maxX, x)
	a.minY = min(a.minY, y)
	a.maxY = max(a.maxY, y)
}

// Fill writes t to every cell of the box spanned by the two corners
func (a *Area) Fill(corner1, corner2 Coordinate, t Tile) {
	box := SortBox(corner1, corner2)
	for x := box[0].X; x <= box[1].X; x++ {
		for y := box[0].Y; y <= box[1].Y; y++ {
			a.SetTile(x, y, t)
		}
	}
}

// RegionIsEmpty reports whether every cell of the box spanned by the two
// corners has no contents
func (a *Area) RegionIsEmpty(corner1, corner2 Coordinate) bool {
	box := SortBox(corner1, corner2)
	for x := box[0].X; x <= box[1].X; x++ {
		for y := box[0].Y; y <= box[1].Y; y++ {
			if !a.isEmpty(x, y) {
				return false
			}
		}
	}
	return true
}

// PlaceRegion draws a hollow room: the whole rectangle becomes wall and the
// interior, inset by one tile, is cleared. Regions two tiles wide or high
// have no interior and stay solid.
func (a *Area) PlaceRegion(r Region) {
	a.Fill(r.Position, r.TopRight(), NewTile(Wall))
	if r.Width <= 2 || r.Height <= 2 {
		return
	}
	a.Fill(r.Position.Add(1, 1), r.TopRight().Add(-1, -1), NewTile())
}

// Bounds returns the bottom-left and top-right corners of the written cells.
// ok is false when nothing has been written.
func (a *Area) Bounds() (bottomLeft, topRight Coordinate, ok bool) {
	if !a.written {
		return Coordinate{}, Coordinate{}, false
	}
	return Coordinate{X: a.minX, Y: a.minY}, Coordinate{X: a.maxX, Y: a.maxY}, true
}

// Len returns the number of written cells
func (a *Area) Len() int {
	return a.count
}

// String renders the written part of the area, top row first
func (a *Area) String() string {
	bottomLeft, topRight, ok := a.Bounds()
	if !ok {
		return ""
	}
	width := topRight.X - bottomLeft.X + 1
	buf := make([]rune, 0, (width+1)*(topRight.Y-bottomLeft.Y+1))
	for y := topRight.Y; y >= bottomLeft.Y; y-- {
		for x := bottomLeft.X; x <= topRight.X; x++ {
			buf = append(buf, a.GetTile(x, y).Glyph())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
