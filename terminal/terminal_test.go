package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsp-rogue/gamemap"
	"bsp-rogue/systems"
)

func newTestGame(t *testing.T, regenerate Regenerate) (*Game, tcell.SimulationScreen) {
	t.Helper()
	area := gamemap.NewArea()
	area.PlaceRegion(gamemap.NewRegion(9, 7, gamemap.NewCoordinate(0, 0)))
	area.SetTile(6, 3, gamemap.NewTile(gamemap.Wall))

	p := systems.NewPlayerAt(area, gamemap.NewCoordinate(4, 3), 11, 9)
	require.NoError(t, p.Redraw())

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(11, 10)

	g := New(s, p, regenerate)
	g.Draw()
	return g, s
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDraw(t *testing.T) {
	_, s := newTestGame(t, nil)

	assert.Equal(t, 'O', runeAt(s, 5, 4))
	assert.Equal(t, '┌', runeAt(s, 0, 0))
	assert.Equal(t, '┘', runeAt(s, 10, 8))
	assert.Equal(t, ' ', runeAt(s, 0, 9), "no messages yet")
}

func TestKeys(t *testing.T) {
	g, s := newTestGame(t, nil)

	quit, err := g.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, gamemap.NewCoordinate(4, 4), g.Player().Location)

	_, err = g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	require.NoError(t, err)
	assert.Equal(t, gamemap.NewCoordinate(4, 3), g.Player().Location)

	// the pillar is two steps to the right
	for i := 0; i < 2; i++ {
		_, err = g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
		require.NoError(t, err)
	}
	assert.Equal(t, gamemap.NewCoordinate(5, 3), g.Player().Location)

	g.Draw()
	assert.Equal(t, 'Y', runeAt(s, 0, 9), "blocked move is reported on the status line")
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t, nil)

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		quit, err := g.HandleEvent(ev)
		require.NoError(t, err)
		assert.True(t, quit)
	}
}

func TestMouseClick(t *testing.T) {
	g, _ := newTestGame(t, nil)
	p := g.Player()

	target := gamemap.NewCoordinate(2, 1)
	cx, cy := p.Camera.WorldToScreen(target)
	sx, sy := cx, p.Canvas.Height()-1-cy

	_, err := g.HandleEvent(tcell.NewEventMouse(sx, sy, tcell.Button1, tcell.ModNone))
	require.NoError(t, err)
	assert.Equal(t, target, p.Location)

	// holding the button does not click again
	before := p.Location
	_, err = g.HandleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	require.NoError(t, err)
	assert.Equal(t, before, p.Location)

	_, err = g.HandleEvent(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	require.NoError(t, err)
	assert.Equal(t, before, p.Location)
}

func TestRegenerate(t *testing.T) {
	fresh := systems.NewPlayerAt(gamemap.NewArea(), gamemap.NewCoordinate(0, 0), 11, 9)
	g, _ := newTestGame(t, func() (*systems.Player, error) { return fresh, nil })

	_, err := g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	require.NoError(t, err)
	assert.Same(t, fresh, g.Player())

	failing := errors.New("no dungeon")
	g.regenerate = func() (*systems.Player, error) { return nil, failing }
	_, err = g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.ErrorIs(t, err, failing)
	assert.Same(t, fresh, g.Player())
}
