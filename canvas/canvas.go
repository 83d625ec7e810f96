// Package canvas is a fixed size grid of characters with a background colour
// and a click action per cell. Column 0 is the left edge and row 0 the bottom.
package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"bsp-rogue/gamemap"
)

var (
	// ErrOutOfBounds is returned when reading or writing outside the canvas
	ErrOutOfBounds = errors.New("canvas coordinate out of bounds")
	// ErrFrameChars is returned by DrawFrame for a fill string that is not
	// empty and not exactly six characters
	ErrFrameChars = errors.New("frame needs exactly six characters")
)

// DefaultFrame is drawn when DrawFrame is given no characters:
// top left, top right, bottom right, bottom left, horizontal, vertical
const DefaultFrame = "┌┐┘└─│"

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// ActionKind says what clicking a cell does
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
)

// Action is attached to a cell and followed when the cell is clicked
type Action struct {
	Kind   ActionKind
	Target gamemap.Coordinate
}

// Move returns an action that moves the player to target
func Move(target gamemap.Coordinate) Action {
	return Action{Kind: ActionMove, Target: target}
}

// Unit is one cell of the canvas
type Unit struct {
	Char       rune
	Foreground color.RGBA
	Background color.RGBA
	OnClick    Action
}

// Blank is the content of a cell that was never written
func Blank() Unit {
	return Unit{Char: ' ', Foreground: White, Background: Black}
}

// Canvas is a bounded character grid
type Canvas struct {
	width, height int
	units         []Unit
}

// New creates a blank canvas
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.units = make([]Unit, c.width*c.height)
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) is on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) index(x, y int) (int, error) {
	if !c.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return y*c.width + x, nil
}

// Clear resets every cell to Blank
func (c *Canvas) Clear() {
	blank := Blank()
	for i := range c.units {
		c.units[i] = blank
	}
}

// Get returns the cell at (x, y)
func (c *Canvas) Get(x, y int) (Unit, error) {
	i, err := c.index(x, y)
	if err != nil {
		return Unit{}, err
	}
	return c.units[i], nil
}

// Set writes a character with the default foreground
func (c *Canvas) Set(x, y int, ch rune, bg color.RGBA, action Action) error {
	return c.SetUnit(x, y, Unit{Char: ch, Foreground: White, Background: bg, OnClick: action})
}

// SetUnit overwrites the cell at (x, y)
func (c *Canvas) SetUnit(x, y int, u Unit) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.units[i] = u
	return nil
}

// setChar replaces the character of a cell and keeps its colours and action
func (c *Canvas) setChar(x, y int, ch rune) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.units[i].Char = ch
	return nil
}

func (c *Canvas) checkBox(a, b gamemap.Coordinate) ([2]gamemap.Coordinate, error) {
	box := gamemap.SortBox(a, b)
	if _, err := c.index(box[0].X, box[0].Y); err != nil {
		return box, err
	}
	if _, err := c.index(box[1].X, box[1].Y); err != nil {
		return box, err
	}
	return box, nil
}

// Fill writes ch to every cell of the box spanned by two corners
func (c *Canvas) Fill(a, b gamemap.Coordinate, ch rune) error {
	box, err := c.checkBox(a, b)
	if err != nil {
		return err
	}
	for x := box[0].X; x <= box[1].X; x++ {
		for y := box[0].Y; y <= box[1].Y; y++ {
			c.units[y*c.width+x].Char = ch
		}
	}
	return nil
}

// DrawFrame draws the outline of the box spanned by two corners. fills is
// empty for DefaultFrame or six characters in DefaultFrame's order.
func (c *Canvas) DrawFrame(a, b gamemap.Coordinate, fills string) error {
	if fills == "" {
		fills = DefaultFrame
	}
	chars := []rune(fills)
	if len(chars) != 6 {
		return fmt.Errorf("%w: got %q", ErrFrameChars, fills)
	}
	topLeft, topRight, bottomRight, bottomLeft, horizontal, vertical :=
		chars[0], chars[1], chars[2], chars[3], chars[4], chars[5]

	box, err := c.checkBox(a, b)
	if err != nil {
		return err
	}
	lo, hi := box[0], box[1]

	for x := lo.X; x <= hi.X; x++ {
		c.units[lo.Y*c.width+x].Char = horizontal
		c.units[hi.Y*c.width+x].Char = horizontal
	}
	for y := lo.Y; y <= hi.Y; y++ {
		c.units[y*c.width+lo.X].Char = vertical
		c.units[y*c.width+hi.X].Char = vertical
	}
	c.units[lo.Y*c.width+lo.X].Char = bottomLeft
	c.units[hi.Y*c.width+hi.X].Char = topRight
	c.units[hi.Y*c.width+lo.X].Char = topLeft
	c.units[lo.Y*c.width+hi.X].Char = bottomRight
	return nil
}

// WriteText word wraps text into the box spanned by two corners, starting at
// its top left. A newline starts a new line and a tab takes up a cell without
// overwriting it. Words longer than the box are broken across lines and text
// that does not fit is dropped.
func (c *Canvas) WriteText(a, b gamemap.Coordinate, text string) error {
	box, err := c.checkBox(a, b)
	if err != nil {
		return err
	}
	left, top := box[0].X, box[1].Y
	width := box[1].X - box[0].X + 1
	height := box[1].Y - box[0].Y + 1

	row, col := 0, 0
	newline := func() bool {
		row++
		col = 0
		return row < height
	}
	put := func(ch rune) {
		if ch != '\t' {
			_ = c.setChar(left+col, top-row, ch)
		}
		col++
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 && !newline() {
			return nil
		}
		for _, word := range strings.Fields(strings.ReplaceAll(line, "\t", "\x00")) {
			chars := []rune(strings.ReplaceAll(word, "\x00", "\t"))
			if col > 0 {
				// the word and the space before it must fit, unless the word
				// would not fit on a line of its own either
				if col+1+len(chars) > width && len(chars) <= width {
					if !newline() {
						return nil
					}
				} else if col+1 < width {
					col++
				} else if !newline() {
					return nil
				}
			}
			for _, ch := range chars {
				if col >= width && !newline() {
					return nil
				}
				put(ch)
			}
		}
	}
	return nil
}

// String renders the characters of the canvas, top row first
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height * 2)
	for y := c.height - 1; y >= 0; y-- {
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.units[y*c.width+x].Char)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes the canvas to w, top row first
func (c *Canvas) Print(w io.Writer) error {
	_, err := io.WriteString(w, c.String())
	return err
}
