package generation

import "log/slog"

// MapGenerator is what the front ends need from a generator. It lets them
// be driven by a fixed dungeon in tests.
type MapGenerator interface {
	Generate(cfg DungeonConfig) (*Dungeon, error)
	SetSeed(seed int64)
	Seed() int64
	SetLogger(logger *slog.Logger)
}

var _ MapGenerator = (*DungeonGenerator)(nil)
