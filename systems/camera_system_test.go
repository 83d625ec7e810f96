package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bsp-rogue/gamemap"
)

func TestCameraCenterOn(t *testing.T) {
	var c Camera
	target := gamemap.NewCoordinate(10, 10)

	assert.True(t, c.CenterOn(target, gamemap.NewCoordinate(9, 7), gamemap.NewCoordinate(1, 1)))
	assert.Equal(t, Camera{X: 5, Y: 6}, c)
	assert.False(t, c.CenterOn(target, gamemap.NewCoordinate(1, 1), gamemap.NewCoordinate(9, 7)))

	assert.Equal(t, target, c.ScreenToWorld(5, 4))
	x, y := c.WorldToScreen(target)
	assert.Equal(t, 5, x)
	assert.Equal(t, 4, y)
}

func TestWallGlyph(t *testing.T) {
	area := gamemap.NewArea()
	area.PlaceRegion(gamemap.NewRegion(3, 3, gamemap.NewCoordinate(0, 0)))

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"bottom left", 0, 0, '└'},
		{"top right", 2, 2, '┐'},
		{"top left", 0, 2, '┌'},
		{"bottom right", 2, 0, '┘'},
		{"bottom side", 1, 0, '─'},
		{"left side", 0, 1, '│'},
		{"floor", 1, 1, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WallGlyph(area, tt.x, tt.y))
		})
	}

	solid := gamemap.NewArea()
	solid.Fill(gamemap.NewCoordinate(0, 0), gamemap.NewCoordinate(2, 2), gamemap.NewTile(gamemap.Wall))
	assert.Equal(t, '█', WallGlyph(solid, 1, 1), "buried walls keep the solid glyph")
	assert.Equal(t, WallConnectTop|WallConnectRight|WallConnectBottom|WallConnectLeft, WallMask(solid, 1, 1))
}

func TestASCIIGlyph(t *testing.T) {
	for in, want := range map[rune]rune{
		'█': '#',
		'┼': '+',
		'│': '|',
		'─': '-',
		'.': '.',
		'O': 'O',
		'é': '?',
	} {
		assert.Equal(t, want, ASCIIGlyph(in), "%q", in)
	}
}
