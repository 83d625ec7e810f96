package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bsp-rogue/config"
	"bsp-rogue/generation"
	"bsp-rogue/render"
	"bsp-rogue/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	settings     config.Settings
	generator    generation.MapGenerator
	logger       *slog.Logger
	player       *systems.Player
	renderSystem *render.RenderSystem
}

// NewGame creates a game window session in a dungeon built from settings
func NewGame(settings config.Settings, generator generation.MapGenerator, logger *slog.Logger) (*Game, error) {
	var glyphs render.Glyphs = render.DebugFont{Size: config.TileSize}
	if settings.Tileset != "" {
		tileset, err := render.NewTileset(settings.Tileset, config.TileSize)
		if err != nil {
			logger.Warn("falling back to the debug font", "err", err)
		} else {
			glyphs = tileset
		}
	}

	g := &Game{
		settings:     settings,
		generator:    generator,
		logger:       logger,
		renderSystem: render.NewRenderSystem(glyphs),
	}
	if err := g.newDungeon(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newDungeon() error {
	p, err := systems.NewSession(g.generator, sessionConfig(g.settings, g.logger))
	if err != nil {
		return err
	}
	g.player = p
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.newDungeon()
	}

	for key, dir := range map[ebiten.Key][2]int{
		ebiten.KeyArrowUp:    {0, 1},
		ebiten.KeyArrowDown:  {0, -1},
		ebiten.KeyArrowLeft:  {-1, 0},
		ebiten.KeyArrowRight: {1, 0},
	} {
		if inpututil.IsKeyJustPressed(key) {
			if _, err := g.player.Step(dir[0], dir[1]); err != nil {
				return err
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if x, y, ok := g.renderSystem.CellAt(g.player.Canvas, px, py); ok {
			if _, err := g.player.Click(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.player.Canvas, g.player.Log)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := config.ScreenSize(g.settings.CanvasWidth, g.settings.CanvasHeight)
	size := g.renderSystem.CellSize()
	return w * size, h * size
}
