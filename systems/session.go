package systems

import (
	"log/slog"

	"bsp-rogue/generation"
)

// SessionConfig describes the sessions a front end starts
type SessionConfig struct {
	Dungeon      generation.DungeonConfig
	CanvasWidth  int
	CanvasHeight int
	BoxWalls     bool
	// Logger receives the session's events at debug level. Nil logs nothing.
	Logger *slog.Logger
}

// NewSession generates a dungeon and starts a player in it, ready to draw
func NewSession(gen generation.MapGenerator, cfg SessionConfig) (*Player, error) {
	d, err := gen.Generate(cfg.Dungeon)
	if err != nil {
		return nil, err
	}

	p := NewPlayer(d, cfg.CanvasWidth, cfg.CanvasHeight)
	p.BoxWalls = cfg.BoxWalls
	if cfg.Logger != nil {
		p.LogEvents(cfg.Logger)
	}
	if err := p.Redraw(); err != nil {
		return nil, err
	}
	return p, nil
}
