// Package terminal plays the game in a terminal through tcell
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"bsp-rogue/canvas"
	"bsp-rogue/systems"
)

// Regenerate starts a session in a fresh dungeon
type Regenerate func() (*systems.Player, error)

// Game drives one player session on a terminal screen. The status line under
// the map shows the newest message.
type Game struct {
	screen     *canvas.TcellScreen
	player     *systems.Player
	regenerate Regenerate
	buttons    tcell.ButtonMask
}

// New creates a game on an initialised screen. regenerate may be nil.
func New(screen tcell.Screen, player *systems.Player, regenerate Regenerate) *Game {
	return &Game{
		screen:     canvas.NewTcellScreen(screen),
		player:     player,
		regenerate: regenerate,
	}
}

// Player returns the current session
func (g *Game) Player() *systems.Player {
	return g.player
}

// Draw shows the canvas and the status line
func (g *Game) Draw() {
	s := g.screen.Screen()
	s.Clear()
	g.screen.Draw(g.player.Canvas)

	row := g.player.Canvas.Height()
	if msgs := g.player.Log.RecentMessages(1); len(msgs) > 0 {
		style := tcell.StyleDefault.Foreground(canvas.RGBToTcell(msgs[0].Color()))
		x := 0
		for _, r := range msgs[0].Text {
			s.SetContent(x, row, r, nil, style)
			x++
		}
	}
	s.Show()
}

// HandleEvent applies one terminal event. It reports whether the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Screen().Sync()
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		wasPressed := g.buttons & tcell.Button1
		g.buttons = ev.Buttons()
		// act on the press only, not while the button is held
		if pressed == 0 || wasPressed != 0 {
			return false, nil
		}
		if x, y, ok := g.screen.ClickedCell(g.player.Canvas, ev); ok {
			_, err := g.player.Click(x, y)
			return false, err
		}
	}
	return false, nil
}

func (g *Game) handleKey(ev *tcell.EventKey) (bool, error) {
	step := func(dx, dy int) (bool, error) {
		_, err := g.player.Step(dx, dy)
		return false, err
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		return step(0, 1)
	case tcell.KeyDown:
		return step(0, -1)
	case tcell.KeyLeft:
		return step(-1, 0)
	case tcell.KeyRight:
		return step(1, 0)
	case tcell.KeyRune:
	default:
		return false, nil
	}

	switch ev.Rune() {
	case 'q':
		return true, nil
	case 'k':
		return step(0, 1)
	case 'j':
		return step(0, -1)
	case 'h':
		return step(-1, 0)
	case 'l':
		return step(1, 0)
	case 'r':
		if g.regenerate == nil {
			return false, nil
		}
		p, err := g.regenerate()
		if err != nil {
			return false, err
		}
		g.player = p
		return false, g.player.Redraw()
	}
	return false, nil
}

// Run draws and handles events until the player quits. Events are read on
// their own goroutine and handed to the loop.
func (g *Game) Run() error {
	if err := g.player.Redraw(); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := g.screen.Screen().PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		g.Draw()
		ev, ok := <-events
		if !ok {
			return nil
		}
		done, err := g.HandleEvent(ev)
		if err != nil || done {
			return err
		}
	}
}
