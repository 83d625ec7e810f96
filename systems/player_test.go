package systems

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsp-rogue/canvas"
	"bsp-rogue/gamemap"
	"bsp-rogue/generation"
)

// newTestPlayer puts the player in a 9x7 room with a pillar two tiles to
// their right
func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	area := gamemap.NewArea()
	area.PlaceRegion(gamemap.NewRegion(9, 7, gamemap.NewCoordinate(0, 0)))
	area.SetTile(6, 3, gamemap.NewTile(gamemap.Wall))

	p := NewPlayerAt(area, gamemap.NewCoordinate(4, 3), 11, 9)
	require.NoError(t, p.Redraw())
	return p
}

func unitAtWorld(t *testing.T, p *Player, x, y int) canvas.Unit {
	t.Helper()
	cx, cy := p.Camera.WorldToScreen(gamemap.NewCoordinate(x, y))
	u, err := p.Canvas.Get(cx, cy)
	require.NoError(t, err)
	return u
}

func TestPlayerRedraw(t *testing.T) {
	p := newTestPlayer(t)

	// the view is centred inside the frame
	u, err := p.Canvas.Get(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 'O', u.Char)
	assert.Equal(t, canvas.Move(gamemap.NewCoordinate(4, 3)), u.OnClick)

	corner, err := p.Canvas.Get(0, 8)
	require.NoError(t, err)
	assert.Equal(t, '┌', corner.Char)
	assert.Equal(t, canvas.ActionNone, corner.OnClick.Kind)

	assert.Equal(t, FloorGlyph, unitAtWorld(t, p, 3, 3).Char)
	assert.Equal(t, '█', unitAtWorld(t, p, 0, 3).Char)
	assert.Equal(t, '█', unitAtWorld(t, p, 4, 6).Char)

	// behind the pillar nothing is known yet
	hidden := unitAtWorld(t, p, 7, 3)
	assert.Equal(t, ' ', hidden.Char)
	assert.True(t, p.Discovered.GetTile(7, 3).Has(gamemap.Unknown))

	// what was seen is remembered
	assert.True(t, p.Discovered.GetTile(0, 3).Has(gamemap.Wall))
	assert.True(t, p.Discovered.GetTile(3, 3).Empty())
}

func TestPlayerRemembersFloor(t *testing.T) {
	p := newTestPlayer(t)

	for _, dy := range []int{1, 1} {
		moved, err := p.Step(0, dy)
		require.NoError(t, err)
		require.True(t, moved)
	}
	require.Equal(t, gamemap.NewCoordinate(4, 5), p.Location)
	assert.True(t, p.Discovered.GetTile(7, 3).Empty(), "seen from above the pillar")

	for _, dy := range []int{-1, -1} {
		_, err := p.Step(0, dy)
		require.NoError(t, err)
	}
	u := unitAtWorld(t, p, 7, 3)
	assert.Equal(t, FloorGlyph, u.Char)
	assert.Equal(t, rememberedFloorFG, u.Foreground)
	assert.NotEqual(t, visibleFloorBG, u.Background)
}

func TestPlayerStepIntoWall(t *testing.T) {
	p := newTestPlayer(t)
	var blocked []MoveBlockedEvent
	p.Events.Subscribe(EventMoveBlocked, func(e Event) {
		blocked = append(blocked, e.(MoveBlockedEvent))
	})

	moved, err := p.Step(2, 0)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, gamemap.NewCoordinate(4, 3), p.Location)
	require.Len(t, blocked, 1)
	assert.Equal(t, gamemap.NewCoordinate(6, 3), blocked[0].At)

	msgs := p.Log.RecentMessages(1)
	require.Len(t, msgs, 1)
	assert.Equal(t, "You can't walk through walls.", msgs[0].Text)
	assert.Equal(t, MessageTypeAlert, msgs[0].Type)
}

func TestPlayerClick(t *testing.T) {
	p := newTestPlayer(t)
	var moves []PlayerMoveEvent
	p.Events.Subscribe(EventMovement, func(e Event) {
		moves = append(moves, e.(PlayerMoveEvent))
	})

	cx, cy := p.Camera.WorldToScreen(gamemap.NewCoordinate(2, 1))
	moved, err := p.Click(cx, cy)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, gamemap.NewCoordinate(2, 1), p.Location)
	require.Len(t, moves, 1)
	assert.Equal(t, PlayerMoveEvent{From: gamemap.NewCoordinate(4, 3), To: gamemap.NewCoordinate(2, 1), Cause: MoveByClick}, moves[0])

	// the view follows the player
	u, err := p.Canvas.Get(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 'O', u.Char)

	// the frame has no action
	moved, err = p.Click(0, 0)
	require.NoError(t, err)
	assert.False(t, moved)

	_, err = p.Click(11, 0)
	assert.ErrorIs(t, err, canvas.ErrOutOfBounds)
}

func TestPlayerBoxWalls(t *testing.T) {
	p := newTestPlayer(t)
	p.BoxWalls = true
	require.NoError(t, p.Redraw())

	assert.Equal(t, '│', unitAtWorld(t, p, 0, 3).Char)
	assert.Equal(t, '─', unitAtWorld(t, p, 4, 6).Char)
	assert.Equal(t, '■', unitAtWorld(t, p, 6, 3).Char)
}

func TestNewPlayerInDungeon(t *testing.T) {
	d, err := generation.NewDungeonGenerator(generation.WithSeed(3)).Generate(generation.DefaultDungeonConfig())
	require.NoError(t, err)

	p := NewPlayer(d, 80, 40)
	require.NoError(t, p.Redraw())
	assert.Equal(t, d.StartPosition(), p.Location)

	cx, cy := p.Camera.WorldToScreen(p.Location)
	u, err := p.Canvas.Get(cx, cy)
	require.NoError(t, err)
	assert.Equal(t, 'O', u.Char)

	msgs := p.Log.RecentMessages(5)
	require.NotEmpty(t, msgs)
	assert.Equal(t, MessageTypeSystem, msgs[len(msgs)-1].Type)
}

func TestPlayerLogEvents(t *testing.T) {
	p := newTestPlayer(t)
	var buf bytes.Buffer
	p.LogEvents(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := p.Step(1, 0)
	require.NoError(t, err)
	_, err = p.Step(1, 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="player moved"`)
	assert.Contains(t, out, "cause=step")
	assert.Contains(t, out, `msg="camera moved"`)
	assert.Contains(t, out, `msg="move blocked"`)
}
