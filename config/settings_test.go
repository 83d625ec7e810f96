package config

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsp-rogue/generation"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, generation.DefaultDungeonConfig(), s.Dungeon)
	assert.Equal(t, 80, s.CanvasWidth)
	assert.Equal(t, 40, s.CanvasHeight)

	level, err := s.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	s := Default()
	err := Decode(strings.NewReader("dungeon:\n  dungeon_width: 60\nseed: 9\nbox_walls: true\n"), &s)
	require.NoError(t, err)

	assert.Equal(t, 60, s.Dungeon.DungeonWidth)
	assert.Equal(t, 50, s.Dungeon.DungeonHeight)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(9), *s.Seed)
	assert.True(t, s.BoxWalls)
	assert.Equal(t, FrontendEbiten, s.Frontend)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	s := Default()
	err := Decode(strings.NewReader("dungeon:\n  widht: 60\n"), &s)
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	s := Default()
	require.NoError(t, Decode(strings.NewReader(""), &s))
	assert.Equal(t, Default(), s)
}

func TestLoad(t *testing.T) {
	s, err := Load(writeSettings(t, "frontend: terminal\ncanvas_width: 60\n"))
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, s.Frontend)
	assert.Equal(t, 60, s.CanvasWidth)
	assert.Equal(t, 40, s.CanvasHeight)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromArgsFlagsWinOverFile(t *testing.T) {
	path := writeSettings(t, "seed: 9\ndungeon:\n  dungeon_width: 60\n  max_split_depth: 3\n")

	s, err := FromArgs("test", []string{"--config", path, "--seed", "5", "--print"}, io.Discard)
	require.NoError(t, err)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(5), *s.Seed)
	assert.Equal(t, 60, s.Dungeon.DungeonWidth)
	assert.Equal(t, 3, s.Dungeon.MaxSplitDepth)
	assert.True(t, s.Print)
}

func TestFromArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"help", []string{"-h"}, flag.ErrHelp},
		{"unknown frontend", []string{"--frontend", "web"}, ErrInvalidSettings},
		{"tiny canvas", []string{"--canvas-width", "2"}, ErrInvalidSettings},
		{"bad log level", []string{"--log-level", "loud"}, ErrInvalidSettings},
		{"bad dungeon", []string{"--depth", "0"}, generation.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArgs("test", tt.args, io.Discard)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := FromArgs("test", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWindowSize(t *testing.T) {
	w, h := ScreenSize(80, 40)
	assert.Equal(t, 80, w)
	assert.Equal(t, 46, h)

	w, h = GetWindowSize(80, 40)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 736, h)
}

func TestSeedZeroIsASeed(t *testing.T) {
	s, err := FromArgs("test", nil, io.Discard)
	require.NoError(t, err)
	assert.Nil(t, s.Seed, "no seed means a random dungeon")

	s, err = FromArgs("test", []string{"--seed", "0"}, io.Discard)
	require.NoError(t, err)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(0), *s.Seed)

	_, err = FromArgs("test", []string{"--seed", "abc"}, io.Discard)
	assert.ErrorContains(t, err, "-seed")

	path := writeSettings(t, "seed: 0\n")
	s, err = FromArgs("test", []string{"--config", path}, io.Discard)
	require.NoError(t, err)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(0), *s.Seed)
}
