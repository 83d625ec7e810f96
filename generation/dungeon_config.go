package generation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for a configuration no dungeon can be built from
var ErrInvalidConfig = errors.New("invalid dungeon configuration")

// DungeonConfig drives one run of the BSP generator
type DungeonConfig struct {
	DungeonWidth  int `yaml:"dungeon_width"`
	DungeonHeight int `yaml:"dungeon_height"`
	// SplitTolerance is how far from an even split a partition may land, in
	// percent. At 0 every split is down the middle.
	SplitTolerance int `yaml:"split_tolerance"`
	// MaxSplitDepth bounds the BSP tree depth. A full tree holds 2^depth rooms.
	MaxSplitDepth int `yaml:"max_split_depth"`
	MinRoomWidth  int `yaml:"min_room_width"`
	MinRoomHeight int `yaml:"min_room_height"`
}

// DefaultDungeonConfig returns the standard 150x50 dungeon
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		DungeonWidth:   150,
		DungeonHeight:  50,
		SplitTolerance: 25,
		MaxSplitDepth:  4,
		MinRoomWidth:   6,
		MinRoomHeight:  6,
	}
}

// Validate rejects configurations that cannot produce a dungeon
func (c DungeonConfig) Validate() error {
	switch {
	case c.MinRoomWidth <= 0 || c.MinRoomHeight <= 0:
		return fmt.Errorf("%w: minimum room size %dx%d must be positive",
			ErrInvalidConfig, c.MinRoomWidth, c.MinRoomHeight)
	case c.DungeonWidth < 2*c.MinRoomWidth:
		return fmt.Errorf("%w: dungeon width %d is less than twice the minimum room width %d",
			ErrInvalidConfig, c.DungeonWidth, c.MinRoomWidth)
	case c.DungeonHeight < 2*c.MinRoomHeight:
		return fmt.Errorf("%w: dungeon height %d is less than twice the minimum room height %d",
			ErrInvalidConfig, c.DungeonHeight, c.MinRoomHeight)
	case c.SplitTolerance < 0 || c.SplitTolerance > 100:
		return fmt.Errorf("%w: split tolerance %d is outside 0-100", ErrInvalidConfig, c.SplitTolerance)
	case c.MaxSplitDepth < 1:
		return fmt.Errorf("%w: max split depth %d must be at least 1", ErrInvalidConfig, c.MaxSplitDepth)
	}

	_, _, splitsVertically := c.splitRange(c.DungeonHeight, c.MinRoomHeight)
	_, _, splitsHorizontally := c.splitRange(c.DungeonWidth, c.MinRoomWidth)
	if !splitsVertically && !splitsHorizontally {
		return fmt.Errorf("%w: a %dx%d dungeon cannot be split with tolerance %d and minimum room %dx%d",
			ErrInvalidConfig, c.DungeonWidth, c.DungeonHeight, c.SplitTolerance, c.MinRoomWidth, c.MinRoomHeight)
	}
	return nil
}

// minChildLength is the shortest a child partition may be along a region
// of the given length
func (c DungeonConfig) minChildLength(length int) int {
	return int(float64(length) * (float64(100-c.SplitTolerance) / 2) / 100)
}

// splitRange returns the inclusive range of split offsets along a region of
// the given length. ok is false when the children would be shorter than
// minRoomLength or the range is empty.
func (c DungeonConfig) splitRange(length, minRoomLength int) (lo, hi int, ok bool) {
	minChild := c.minChildLength(length)
	if minChild < minRoomLength {
		return 0, 0, false
	}
	lo, hi = minChild+1, length-minChild
	return lo, hi, lo <= hi
}
