package systems

import (
	"image/color"
	"log/slog"

	"bsp-rogue/canvas"
	"bsp-rogue/gamemap"
	"bsp-rogue/generation"
)

var (
	visibleFloorBG    = color.RGBA{28, 28, 44, 255}
	visibleFloorFG    = color.RGBA{150, 150, 170, 255}
	rememberedFloorFG = color.RGBA{70, 70, 80, 255}
)

// FloorGlyph marks open floor the player has seen
const FloorGlyph = '.'

// Player is one play session: the live map, what the player has discovered
// of it so far, where the player stands and the canvas the view is drawn on
type Player struct {
	Area       *gamemap.Area
	Discovered *gamemap.Area
	Location   gamemap.Coordinate
	Canvas     *canvas.Canvas
	Camera     Camera
	Log        *MessageLog
	Events     *EventManager
	// BoxWalls draws room outlines with box drawing characters
	BoxWalls bool
}

// NewPlayer starts a session in the first room of a generated dungeon
func NewPlayer(d *generation.Dungeon, canvasWidth, canvasHeight int) *Player {
	p := NewPlayerAt(d.Area, d.StartPosition(), canvasWidth, canvasHeight)
	p.Log.Addf(MessageTypeSystem, "You enter a dungeon of %d rooms.", len(d.Rooms))
	return p
}

// NewPlayerAt starts a session on any map
func NewPlayerAt(area *gamemap.Area, location gamemap.Coordinate, canvasWidth, canvasHeight int) *Player {
	p := &Player{
		Area:       area,
		Discovered: gamemap.NewArea(gamemap.Unknown),
		Location:   location,
		Canvas:     canvas.New(canvasWidth, canvasHeight),
		Log:        NewMessageLog(),
		Events:     NewEventManager(),
	}
	p.Events.Subscribe(EventMoveBlocked, func(Event) {
		p.Log.AddTyped(MessageTypeAlert, "You can't walk through walls.")
	})
	return p
}

// LogEvents writes the session's events to logger at debug level
func (p *Player) LogEvents(logger *slog.Logger) {
	p.Events.Subscribe(EventMovement, func(e Event) {
		m := e.(PlayerMoveEvent)
		logger.Debug("player moved", "from", m.From, "to", m.To, "cause", m.Cause)
	})
	p.Events.Subscribe(EventMoveBlocked, func(e Event) {
		m := e.(MoveBlockedEvent)
		logger.Debug("move blocked", "at", m.At, "cause", m.Cause)
	})
	p.Events.Subscribe(EventCameraUpdate, func(e Event) {
		c := e.(CameraUpdateEvent)
		logger.Debug("camera moved", "x", c.X, "y", c.Y)
	})
}

// DrawArea draws the player's view into the box spanned by two canvas
// corners, centred on the player. Tiles in sight are drawn from the live map
// and remembered, the rest are drawn as remembered. Every cell gets a move
// action to the world tile it shows.
func (p *Player) DrawArea(corner1, corner2 gamemap.Coordinate) error {
	box := gamemap.SortBox(corner1, corner2)
	if p.Camera.CenterOn(p.Location, box[0], box[1]) {
		p.Events.Emit(CameraUpdateEvent{X: p.Camera.X, Y: p.Camera.Y})
	}

	for x := box[0].X; x <= box[1].X; x++ {
		for y := box[0].Y; y <= box[1].Y; y++ {
			world := p.Camera.ScreenToWorld(x, y)
			u := p.unitAt(world)
			u.OnClick = canvas.Move(world)
			if err := p.Canvas.SetUnit(x, y, u); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Player) unitAt(world gamemap.Coordinate) canvas.Unit {
	if world == p.Location {
		def := gamemap.Player.Definition()
		return canvas.Unit{Char: def.Glyph, Foreground: def.FG, Background: visibleFloorBG}
	}

	if IsVisible(p.Location, world, p.Area) {
		tile := p.Area.GetTile(world.X, world.Y)
		p.Discovered.SetTile(world.X, world.Y, tile)
		if tile.Empty() {
			return canvas.Unit{Char: FloorGlyph, Foreground: visibleFloorFG, Background: visibleFloorBG}
		}
		return canvas.Unit{
			Char:       p.glyph(p.Area, world, tile),
			Foreground: tile.Foreground(),
			Background: tile.Background(),
		}
	}

	tile := p.Discovered.GetTile(world.X, world.Y)
	if tile.Empty() {
		return canvas.Unit{Char: FloorGlyph, Foreground: rememberedFloorFG, Background: canvas.Black}
	}
	return canvas.Unit{
		Char:       p.glyph(p.Discovered, world, tile),
		Foreground: dim(tile.Foreground()),
		Background: tile.Background(),
	}
}

func (p *Player) glyph(area *gamemap.Area, at gamemap.Coordinate, tile gamemap.Tile) rune {
	if p.BoxWalls {
		return WallGlyph(area, at.X, at.Y)
	}
	return tile.Glyph()
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

// Redraw frames the canvas and draws the view inside the frame
func (p *Player) Redraw() error {
	w, h := p.Canvas.Width(), p.Canvas.Height()
	if w < 3 || h < 3 {
		return p.DrawArea(gamemap.NewCoordinate(0, 0), gamemap.NewCoordinate(w-1, h-1))
	}
	if err := p.Canvas.DrawFrame(gamemap.NewCoordinate(0, 0), gamemap.NewCoordinate(w-1, h-1), ""); err != nil {
		return err
	}
	return p.DrawArea(gamemap.NewCoordinate(1, 1), gamemap.NewCoordinate(w-2, h-2))
}

// Click follows the action of the clicked canvas cell and redraws. It
// reports whether the player moved.
func (p *Player) Click(x, y int) (bool, error) {
	u, err := p.Canvas.Get(x, y)
	if err != nil {
		return false, err
	}
	moved := false
	if u.OnClick.Kind == canvas.ActionMove {
		moved = p.moveTo(u.OnClick.Target, MoveByClick)
	}
	return moved, p.Redraw()
}

// Step moves the player one tile and redraws. It reports whether the player
// moved.
func (p *Player) Step(dx, dy int) (bool, error) {
	moved := p.moveTo(p.Location.Add(dx, dy), MoveByStep)
	return moved, p.Redraw()
}

func (p *Player) moveTo(target gamemap.Coordinate, cause MoveCause) bool {
	if target == p.Location {
		return false
	}
	if p.Area.Occupied(target.X, target.Y) {
		p.Events.Emit(MoveBlockedEvent{At: target, Cause: cause})
		return false
	}
	from := p.Location
	p.Location = target
	p.Events.Emit(PlayerMoveEvent{From: from, To: target, Cause: cause})
	return true
}
