package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Default canvas dimensions in tiles
	DefaultCanvasWidth  = 80
	DefaultCanvasHeight = 40

	// MessagePanelHeight is the number of text rows under the map
	MessagePanelHeight = 6

	// MinCanvasSize leaves room for the frame and one tile of map
	MinCanvasSize = 3
)

// ScreenSize returns the logical screen size in tiles for a canvas: the map
// on top and the message panel below it
func ScreenSize(canvasWidth, canvasHeight int) (width, height int) {
	return canvasWidth, canvasHeight + MessagePanelHeight
}

// GetWindowSize returns the window size in pixels
func GetWindowSize(canvasWidth, canvasHeight int) (width, height int) {
	w, h := ScreenSize(canvasWidth, canvasHeight)
	return w * TileSize, h * TileSize
}
