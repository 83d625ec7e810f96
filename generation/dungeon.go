package generation

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"bsp-rogue/gamemap"
)

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	rng    *rand.Rand
	seed   int64
	logger *slog.Logger
}

// Option configures a DungeonGenerator
type Option func(*DungeonGenerator)

// WithSeed makes the generator reproducible
func WithSeed(seed int64) Option {
	return func(g *DungeonGenerator) {
		g.SetSeed(seed)
	}
}

// WithLogger sets where generation progress is logged. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(g *DungeonGenerator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewDungeonGenerator creates a new dungeon generator, seeded from the clock
// unless WithSeed is given
func NewDungeonGenerator(opts ...Option) *DungeonGenerator {
	g := &DungeonGenerator{
		logger: slog.New(slog.DiscardHandler),
	}
	g.SetSeed(time.Now().UnixNano())
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// SetLogger replaces the logger, nil silences the generator
func (g *DungeonGenerator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g.logger = logger
}

// Seed returns the seed the generator was last set to
func (g *DungeonGenerator) Seed() int64 {
	return g.seed
}

// Dungeon is the result of one generation run
type Dungeon struct {
	ID     uuid.UUID
	Config DungeonConfig
	Seed   int64
	Area   *gamemap.Area
	// Rooms lists every leaf room in tree order
	Rooms []gamemap.Region
	// Depth is the deepest level of the partition tree that was reached
	Depth int
	// Hallways counts the corridors that were carved
	Hallways int
}

// StartPosition returns the centre of the first room, or the origin when the
// dungeon has no rooms
func (d *Dungeon) StartPosition() gamemap.Coordinate {
	if len(d.Rooms) == 0 {
		return gamemap.NewCoordinate(0, 0)
	}
	return d.Rooms[0].Center()
}

func (d *Dungeon) String() string {
	return fmt.Sprintf("dungeon %s: %dx%d, %d rooms, %d hallways, depth %d, seed %d",
		d.ID, d.Config.DungeonWidth, d.Config.DungeonHeight, len(d.Rooms), d.Hallways, d.Depth, d.Seed)
}

// GenerateDungeon builds a dungeon with a clock seeded generator and returns
// its map
func GenerateDungeon(cfg DungeonConfig) (*gamemap.Area, error) {
	d, err := NewDungeonGenerator().Generate(cfg)
	if err != nil {
		return nil, err
	}
	return d.Area, nil
}
