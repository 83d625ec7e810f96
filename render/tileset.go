package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// srcTileSize is the glyph size in the tileset image
const srcTileSize = 12

// cp437 maps the non-ASCII glyphs the game draws to their code page 437 index
var cp437 = map[rune]int{
	'█': 219, '■': 254, '·': 250,
	'│': 179, '─': 196, '┌': 218, '┐': 191, '└': 192, '┘': 217,
	'├': 195, '┤': 180, '┬': 194, '┴': 193, '┼': 197,
	'║': 186, '═': 205, '╔': 201, '╗': 187, '╚': 200, '╝': 188,
}

// Tileset handles loading and drawing the tile spritesheet
type Tileset struct {
	Image    *ebiten.Image
	TileSize int
	Width    int // Number of tiles horizontally in the tileset
	Height   int // Number of tiles vertically in the tileset
}

// NewTileset loads a 16 column code page 437 tileset of 12x12 glyphs
func NewTileset(filename string, tileSize int) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open tileset: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", filename, err)
	}

	ebitenImage := ebiten.NewImageFromImage(img)
	bounds := ebitenImage.Bounds()
	return &Tileset{
		Image:    ebitenImage,
		TileSize: tileSize,
		Width:    bounds.Dx() / srcTileSize,
		Height:   bounds.Dy() / srcTileSize,
	}, nil
}

// GetTileCoords returns the position of a glyph in the tileset
func (t *Tileset) GetTileCoords(char rune) (int, int) {
	index, ok := cp437[char]
	if !ok {
		index = int(char)
		if char > 0xff {
			index = '?'
		}
	}
	return index % 16, index / 16
}

// CellSize is the size of one glyph on screen
func (t *Tileset) CellSize() int {
	return t.TileSize
}

// DrawGlyph draws a glyph at tile position (x, y) from the top left
func (t *Tileset) DrawGlyph(target *ebiten.Image, char rune, x, y int, clr color.Color) {
	tx, ty := t.GetTileCoords(char)
	if tx >= t.Width || ty >= t.Height {
		tx, ty = t.GetTileCoords('?')
	}

	sx, sy := tx*srcTileSize, ty*srcTileSize
	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / float64(srcTileSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x*t.TileSize), float64(y*t.TileSize))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}

	rect := image.Rect(sx, sy, sx+srcTileSize, sy+srcTileSize)
	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
}
