package systems

import (
	"bsp-rogue/gamemap"
)

// Wall connection bits used to pick a box drawing glyph
const (
	WallConnectTop    = 1
	WallConnectRight  = 2
	WallConnectBottom = 4
	WallConnectLeft   = 8
)

// wallGlyphs maps a connection mask to its box drawing character
var wallGlyphs = [16]rune{
	0:  '■',
	1:  '│',
	2:  '─',
	3:  '└',
	4:  '│',
	5:  '│',
	6:  '┌',
	7:  '├',
	8:  '─',
	9:  '┘',
	10: '─',
	11: '┴',
	12: '┐',
	13: '┤',
	14: '┬',
	15: '┼',
}

// WallMask returns which of the four neighbours of (x, y) are walls
func WallMask(area *gamemap.Area, x, y int) int {
	mask := 0
	if isWall(area, x, y+1) {
		mask |= WallConnectTop
	}
	if isWall(area, x+1, y) {
		mask |= WallConnectRight
	}
	if isWall(area, x, y-1) {
		mask |= WallConnectBottom
	}
	if isWall(area, x-1, y) {
		mask |= WallConnectLeft
	}
	return mask
}

// WallGlyph returns the glyph for the tile at (x, y). Walls that border open
// floor, diagonals included, are drawn with box drawing characters that join
// their wall neighbours. Every other tile keeps its own glyph.
func WallGlyph(area *gamemap.Area, x, y int) rune {
	tile := area.GetTile(x, y)
	if !tile.Has(gamemap.Wall) || !hasAdjacentFloor(area, x, y) {
		return tile.Glyph()
	}
	return wallGlyphs[WallMask(area, x, y)]
}

func isWall(area *gamemap.Area, x, y int) bool {
	return area.GetTile(x, y).Has(gamemap.Wall)
}

func hasAdjacentFloor(area *gamemap.Area, x, y int) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if (dx != 0 || dy != 0) && !area.Occupied(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// ASCIIGlyph replaces block and box drawing characters with the closest
// ASCII character, for fonts that have nothing else
func ASCIIGlyph(r rune) rune {
	switch r {
	case '█', '■':
		return '#'
	case '─', '═':
		return '-'
	case '│', '║':
		return '|'
	case '┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼', '╔', '╗', '╚', '╝':
		return '+'
	case '·':
		return '.'
	}
	if r > 0x7e {
		return '?'
	}
	return r
}
