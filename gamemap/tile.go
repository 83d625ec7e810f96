package gamemap

import (
	"image/color"
	"slices"
)

// WorldObject is a tag for something occupying a tile
type WorldObject int

const (
	Wall WorldObject = iota
	Player
	// Unknown fills the discovered-area cache where nothing has been seen yet
	Unknown
)

// Default appearance values. A definition using them is skipped when a tile
// looks for its glyph or background.
var (
	DefaultGlyph      = ' '
	DefaultBackground = color.RGBA{0, 0, 0, 255}
)

// TileDefinition describes how a world object looks on the canvas
type TileDefinition struct {
	Glyph rune
	FG    color.RGBA
	BG    color.RGBA
}

// Definitions maps each world object to its appearance
var Definitions = map[WorldObject]TileDefinition{
	Wall:    {Glyph: '█', FG: color.RGBA{160, 160, 160, 255}, BG: DefaultBackground},
	Player:  {Glyph: 'O', FG: color.RGBA{255, 255, 0, 255}, BG: DefaultBackground},
	Unknown: {Glyph: DefaultGlyph, FG: color.RGBA{64, 64, 64, 255}, BG: DefaultBackground},
}

// Definition returns the appearance of the object, or a magenta '?' for
// objects without one
func (o WorldObject) Definition() TileDefinition {
	if def, exists := Definitions[o]; exists {
		return def
	}
	return TileDefinition{Glyph: '?', FG: color.RGBA{255, 0, 255, 255}, BG: DefaultBackground}
}

func (o WorldObject) String() string {
	switch o {
	case Wall:
		return "wall"
	case Player:
		return "player"
	case Unknown:
		return "unknown"
	}
	return "object"
}

// Tile is the ordered list of objects on one cell. No contents means open floor.
type Tile struct {
	Contents []WorldObject
}

// NewTile creates a tile holding the given objects in order
func NewTile(objects ...WorldObject) Tile {
	if len(objects) == 0 {
		return Tile{}
	}
	return Tile{Contents: slices.Clone(objects)}
}

// Empty reports whether nothing occupies the tile
func (t Tile) Empty() bool {
	return len(t.Contents) == 0
}

// Has reports whether the tile holds the given object
func (t Tile) Has(o WorldObject) bool {
	return slices.Contains(t.Contents, o)
}

// Clone returns a tile that does not share its contents with t
func (t Tile) Clone() Tile {
	return NewTile(t.Contents...)
}

// Glyph returns the first non-default glyph of the contents, in insertion order
func (t Tile) Glyph() rune {
	for _, obj := range t.Contents {
		if g := obj.Definition().Glyph; g != DefaultGlyph {
			return g
		}
	}
	return DefaultGlyph
}

// Foreground returns the glyph colour of the object that provides the glyph
func (t Tile) Foreground() color.RGBA {
	for _, obj := range t.Contents {
		def := obj.Definition()
		if def.Glyph != DefaultGlyph {
			return def.FG
		}
	}
	return color.RGBA{255, 255, 255, 255}
}

// Background returns the first non-default background of the contents
func (t Tile) Background() color.RGBA {
	for _, obj := range t.Contents {
		if bg := obj.Definition().BG; bg != DefaultBackground {
			return bg
		}
	}
	return DefaultBackground
}
