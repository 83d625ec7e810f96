package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bsp-rogue/generation"
)

// Front ends
const (
	FrontendEbiten   = "ebiten"
	FrontendTerminal = "terminal"
)

// ErrInvalidSettings is returned for settings the game cannot start with
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is everything a run of the game can be configured with. It is
// read from an optional YAML file and then from command line flags, which
// take precedence.
type Settings struct {
	Dungeon generation.DungeonConfig `yaml:"dungeon"`
	// Seed makes generation reproducible. Nil seeds from the clock.
	Seed         *int64 `yaml:"seed"`
	CanvasWidth  int    `yaml:"canvas_width"`
	CanvasHeight int    `yaml:"canvas_height"`
	Frontend     string `yaml:"frontend"`
	BoxWalls     bool   `yaml:"box_walls"`
	// Tileset is a CP437 sprite sheet of 12x12 glyphs. Without one the
	// window falls back to the debug font.
	Tileset  string `yaml:"tileset"`
	LogLevel string `yaml:"log_level"`

	// Print dumps the dungeon as text instead of starting a front end
	Print bool `yaml:"-"`
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		Dungeon:      generation.DefaultDungeonConfig(),
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Frontend:     FrontendEbiten,
		LogLevel:     "info",
	}
}

// Decode reads YAML settings from r on top of s. Unknown keys are an error.
func Decode(r io.Reader, s *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode settings: %w", err)
	}
	return nil
}

// Load reads a settings file on top of the defaults
func Load(path string) (Settings, error) {
	s := Default()
	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the game cannot start with
func (s Settings) Validate() error {
	if err := s.Dungeon.Validate(); err != nil {
		return err
	}
	if s.CanvasWidth < MinCanvasSize || s.CanvasHeight < MinCanvasSize {
		return fmt.Errorf("%w: canvas %dx%d is smaller than %dx%d",
			ErrInvalidSettings, s.CanvasWidth, s.CanvasHeight, MinCanvasSize, MinCanvasSize)
	}
	switch s.Frontend {
	case FrontendEbiten, FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidSettings, s.Frontend)
	}
	if _, err := s.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// SlogLevel parses LogLevel
func (s Settings) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel)))
	return level, err
}

func newFlagSet(name string, s *Settings, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(configPath, "config", *configPath, "path to a YAML settings file")
	fs.Func("seed", "generation seed, a random dungeon when unset", func(v string) error {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		s.Seed = &seed
		return nil
	})
	fs.IntVar(&s.Dungeon.DungeonWidth, "width", s.Dungeon.DungeonWidth, "dungeon width in tiles")
	fs.IntVar(&s.Dungeon.DungeonHeight, "height", s.Dungeon.DungeonHeight, "dungeon height in tiles")
	fs.IntVar(&s.Dungeon.SplitTolerance, "split-tolerance", s.Dungeon.SplitTolerance, "how far from the middle a partition may be split, in percent")
	fs.IntVar(&s.Dungeon.MaxSplitDepth, "depth", s.Dungeon.MaxSplitDepth, "partition depth, a full tree has 2^depth rooms")
	fs.IntVar(&s.Dungeon.MinRoomWidth, "min-room-width", s.Dungeon.MinRoomWidth, "minimum room width")
	fs.IntVar(&s.Dungeon.MinRoomHeight, "min-room-height", s.Dungeon.MinRoomHeight, "minimum room height")
	fs.IntVar(&s.CanvasWidth, "canvas-width", s.CanvasWidth, "view width in tiles")
	fs.IntVar(&s.CanvasHeight, "canvas-height", s.CanvasHeight, "view height in tiles")
	fs.StringVar(&s.Frontend, "frontend", s.Frontend, "front end: ebiten or terminal")
	fs.BoolVar(&s.BoxWalls, "box-walls", s.BoxWalls, "draw walls with box drawing characters")
	fs.StringVar(&s.Tileset, "tileset", s.Tileset, "CP437 tileset image for the window")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&s.Print, "print", s.Print, "print the dungeon as text and exit")
	return fs
}

// FromArgs builds the settings for a run: defaults, then the file named by
// --config, then every other flag on the command line
func FromArgs(name string, args []string, output io.Writer) (Settings, error) {
	// the first pass only finds the settings file
	first := Default()
	var path string
	fs := newFlagSet(name, &first, &path)
	fs.SetOutput(output)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	s := Default()
	if path != "" {
		var err error
		if s, err = Load(path); err != nil {
			return Settings{}, err
		}
	}

	fs = newFlagSet(name, &s, &path)
	fs.SetOutput(output)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}
