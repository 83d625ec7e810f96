package systems

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsp-rogue/gamemap"
	"bsp-rogue/generation"
)

// fixedGenerator hands out the same one room dungeon every time
type fixedGenerator struct {
	room  gamemap.Region
	err   error
	seed  int64
	calls int
}

func (g *fixedGenerator) Generate(cfg generation.DungeonConfig) (*generation.Dungeon, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	area := gamemap.NewArea()
	area.PlaceRegion(g.room)
	return &generation.Dungeon{Config: cfg, Seed: g.seed, Area: area, Rooms: []gamemap.Region{g.room}}, nil
}

func (g *fixedGenerator) SetSeed(seed int64)       { g.seed = seed }
func (g *fixedGenerator) Seed() int64              { return g.seed }
func (g *fixedGenerator) SetLogger(_ *slog.Logger) {}

func TestNewSession(t *testing.T) {
	gen := &fixedGenerator{room: gamemap.NewRegion(9, 7, gamemap.NewCoordinate(0, 0))}

	p, err := NewSession(gen, SessionConfig{
		Dungeon:      generation.DefaultDungeonConfig(),
		CanvasWidth:  11,
		CanvasHeight: 9,
		BoxWalls:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, gamemap.NewCoordinate(4, 3), p.Location)
	assert.True(t, p.BoxWalls)

	// drawn and ready
	u, err := p.Canvas.Get(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 'O', u.Char)
	assert.Equal(t, '│', unitAtWorld(t, p, 0, 3).Char)

	msgs := p.Log.RecentMessages(1)
	require.Len(t, msgs, 1)
	assert.Equal(t, "You enter a dungeon of 1 rooms.", msgs[0].Text)
}

func TestNewSessionGeneratorError(t *testing.T) {
	failing := errors.New("out of rooms")
	gen := &fixedGenerator{err: failing}

	p, err := NewSession(gen, SessionConfig{CanvasWidth: 11, CanvasHeight: 9})
	assert.ErrorIs(t, err, failing)
	assert.Nil(t, p)
}

func TestNewSessionCanvasTooSmall(t *testing.T) {
	gen := &fixedGenerator{room: gamemap.NewRegion(9, 7, gamemap.NewCoordinate(0, 0))}

	_, err := NewSession(gen, SessionConfig{CanvasWidth: 0, CanvasHeight: 0})
	assert.Error(t, err)
}
