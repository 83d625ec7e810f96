package generation

import (
	"fmt"
	"math/rand"

	"bsp-rogue/gamemap"
)

// Hallway is a corridor that could connect two rooms
type Hallway interface {
	// Valid reports whether the corridor's walkable line is still free on the map
	Valid(area *gamemap.Area) bool
	// Carve writes the corridor walls and clears its walkable line
	Carve(area *gamemap.Area)
}

// StraightHallway runs along one row (Vertical false) or one column
// (Vertical true). Start and End are the facing walls of the two rooms.
type StraightHallway struct {
	Vertical bool
	Line     int
	Start    int
	End      int
}

func (h StraightHallway) point(along int) gamemap.Coordinate {
	if h.Vertical {
		return gamemap.NewCoordinate(h.Line, along)
	}
	return gamemap.NewCoordinate(along, h.Line)
}

// Valid reports whether the strip strictly between the two room walls is empty
func (h StraightHallway) Valid(area *gamemap.Area) bool {
	if h.End-h.Start < 2 {
		return false
	}
	return area.RegionIsEmpty(h.point(h.Start+1), h.point(h.End-1))
}

// Carve fills a three wide band with wall and clears its centre line,
// which opens a doorway in both room walls
func (h StraightHallway) Carve(area *gamemap.Area) {
	if h.Vertical {
		area.Fill(
			gamemap.NewCoordinate(h.Line-1, h.Start),
			gamemap.NewCoordinate(h.Line+1, h.End),
			gamemap.NewTile(gamemap.Wall),
		)
	} else {
		area.Fill(
			gamemap.NewCoordinate(h.Start, h.Line-1),
			gamemap.NewCoordinate(h.End, h.Line+1),
			gamemap.NewTile(gamemap.Wall),
		)
	}
	area.Fill(h.point(h.Start), h.point(h.End), gamemap.NewTile())
}

func (h StraightHallway) String() string {
	axis := "horizontal"
	if h.Vertical {
		axis = "vertical"
	}
	return fmt.Sprintf("straight %s hallway on %d from %d to %d", axis, h.Line, h.Start, h.End)
}

// Corner names where the turning point of a bent hallway sits within the
// hallway's bounding box. The legs leave the turning point away from it:
// a TopLeft corner has its horizontal leg running right and its vertical
// leg running down.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// horizontalStep is the x direction of the horizontal leg
func (c Corner) horizontalStep() int {
	if c == TopLeft || c == BottomLeft {
		return 1
	}
	return -1
}

// verticalStep is the y direction of the vertical leg
func (c Corner) verticalStep() int {
	if c == TopLeft || c == TopRight {
		return -1
	}
	return 1
}

// BentHallway is an L shaped corridor with a single turn. The horizontal leg
// runs HorizontalDist tiles from Turn to one room's wall and the vertical leg
// runs VerticalDist tiles from Turn to the other room's wall.
type BentHallway struct {
	Corner         Corner
	Turn           gamemap.Coordinate
	HorizontalDist int
	VerticalDist   int
}

// horizontalEnd is the room wall reached by the horizontal leg
func (h BentHallway) horizontalEnd() gamemap.Coordinate {
	return h.Turn.Add(h.Corner.horizontalStep()*h.HorizontalDist, 0)
}

// verticalEnd is the room wall reached by the vertical leg
func (h BentHallway) verticalEnd() gamemap.Coordinate {
	return h.Turn.Add(0, h.Corner.verticalStep()*h.VerticalDist)
}

// Valid reports whether both legs are empty between the turn and the room
// walls. The vertical leg starts one tile past the turn, which the
// horizontal leg already covers.
func (h BentHallway) Valid(area *gamemap.Area) bool {
	if h.HorizontalDist < 1 || h.VerticalDist < 1 {
		return false
	}
	hx, vy := h.Corner.horizontalStep(), h.Corner.verticalStep()
	if !area.RegionIsEmpty(h.Turn, h.horizontalEnd().Add(-hx, 0)) {
		return false
	}
	if h.VerticalDist < 2 {
		return true
	}
	return area.RegionIsEmpty(h.Turn.Add(0, vy), h.verticalEnd().Add(0, -vy))
}

// Carve draws two perpendicular wall bands meeting at the turn, closes the
// outer corner of the joint and clears both centre lines
func (h BentHallway) Carve(area *gamemap.Area) {
	wall := gamemap.NewTile(gamemap.Wall)
	hx, vy := h.Corner.horizontalStep(), h.Corner.verticalStep()

	area.Fill(h.Turn.Add(0, -1), h.horizontalEnd().Add(0, 1), wall)
	area.Fill(h.Turn.Add(-1, 0), h.verticalEnd().Add(1, 0), wall)
	area.SetTile(h.Turn.X-hx, h.Turn.Y-vy, wall)

	area.Fill(h.Turn, h.horizontalEnd(), gamemap.NewTile())
	area.Fill(h.Turn, h.verticalEnd(), gamemap.NewTile())
}

func (h BentHallway) String() string {
	return fmt.Sprintf("bent %s hallway turning at %s (%d across, %d up/down)",
		h.Corner, h.Turn, h.HorizontalDist, h.VerticalDist)
}

// HallwayCandidates lists every straight or single-bend corridor that fits
// between two rooms, without looking at the map
func HallwayCandidates(a, b gamemap.Region) []Hallway {
	lower, upper := a, b
	if b.Position.Y < a.Position.Y {
		lower, upper = b, a
	}

	horizontal := lower.TopY() >= upper.Position.Y+2 && upper.TopY() >= lower.Position.Y+2
	vertical := lower.EdgeX() >= upper.Position.X+2 && upper.EdgeX() >= lower.Position.X+2

	var candidates []Hallway
	if horizontal {
		candidates = append(candidates, horizontalCandidates(lower, upper)...)
	}
	if vertical {
		candidates = append(candidates, verticalCandidates(lower, upper)...)
	}
	if !horizontal && !vertical {
		candidates = append(candidates, bentCandidates(lower, upper)...)
	}
	return candidates
}

// horizontalCandidates connects rooms sharing rows, one per shared interior row
func horizontalCandidates(lower, upper gamemap.Region) []Hallway {
	left, right := lower, upper
	if upper.Position.X < lower.Position.X {
		left, right = upper, lower
	}
	if right.Position.X-left.EdgeX() < 2 {
		return nil
	}

	from := max(lower.Position.Y, upper.Position.Y)
	to := min(lower.TopY(), upper.TopY())

	var candidates []Hallway
	for y := from + 1; y < to; y++ {
		candidates = append(candidates, StraightHallway{
			Line:  y,
			Start: left.EdgeX(),
			End:   right.Position.X,
		})
	}
	return candidates
}

// verticalCandidates connects rooms sharing columns, one per shared interior column
func verticalCandidates(lower, upper gamemap.Region) []Hallway {
	if upper.Position.Y-lower.TopY() < 2 {
		return nil
	}

	from := max(lower.Position.X, upper.Position.X)
	to := min(lower.EdgeX(), upper.EdgeX())

	var candidates []Hallway
	for x := from + 1; x < to; x++ {
		candidates = append(candidates, StraightHallway{
			Vertical: true,
			Line:     x,
			Start:    lower.TopY(),
			End:      upper.Position.Y,
		})
	}
	return candidates
}

// bentCandidates connects diagonal rooms. The turn is either above the lower
// room, leaving through its top wall, or beside it, leaving through its side
// wall. Every interior row and column pairing that keeps the turn outside
// both rooms is a candidate.
func bentCandidates(lower, upper gamemap.Region) []Hallway {
	var candidates []Hallway
	lowerIsLeft := lower.Position.X < upper.Position.X

	// turn above the lower room: vertical leg from its top wall, horizontal
	// leg into the side of the upper room
	for x := lower.Position.X + 1; x < lower.EdgeX(); x++ {
		for y := upper.Position.Y + 1; y < upper.TopY(); y++ {
			if y <= lower.TopY() {
				continue
			}
			if lowerIsLeft {
				if x >= upper.Position.X {
					continue
				}
				candidates = append(candidates, BentHallway{
					Corner:         TopLeft,
					Turn:           gamemap.NewCoordinate(x, y),
					HorizontalDist: upper.Position.X - x,
					VerticalDist:   y - lower.TopY(),
				})
			} else {
				if x <= upper.EdgeX() {
					continue
				}
				candidates = append(candidates, BentHallway{
					Corner:         TopRight,
					Turn:           gamemap.NewCoordinate(x, y),
					HorizontalDist: x - upper.EdgeX(),
					VerticalDist:   y - lower.TopY(),
				})
			}
		}
	}

	// turn below the upper room: horizontal leg from the side of the lower
	// room, vertical leg into the bottom wall of the upper room
	for x := upper.Position.X + 1; x < upper.EdgeX(); x++ {
		for y := lower.Position.Y + 1; y < lower.TopY(); y++ {
			if y >= upper.Position.Y {
				continue
			}
			if lowerIsLeft {
				if x <= lower.EdgeX() {
					continue
				}
				candidates = append(candidates, BentHallway{
					Corner:         BottomRight,
					Turn:           gamemap.NewCoordinate(x, y),
					HorizontalDist: x - lower.EdgeX(),
					VerticalDist:   upper.Position.Y - y,
				})
			} else {
				if x >= lower.Position.X {
					continue
				}
				candidates = append(candidates, BentHallway{
					Corner:         BottomLeft,
					Turn:           gamemap.NewCoordinate(x, y),
					HorizontalDist: lower.Position.X - x,
					VerticalDist:   upper.Position.Y - y,
				})
			}
		}
	}

	return candidates
}

// ValidHallways returns the candidates between two rooms that fit the
// current state of the map
func ValidHallways(area *gamemap.Area, a, b gamemap.Region) []Hallway {
	var valid []Hallway
	for _, h := range HallwayCandidates(a, b) {
		if h.Valid(area) {
			valid = append(valid, h)
		}
	}
	return valid
}

// CreateHallwayFromValid carves one of the given hallways chosen uniformly at
// random. It returns the carved hallway, or nil when there is none.
func CreateHallwayFromValid(area *gamemap.Area, rng *rand.Rand, valid []Hallway) Hallway {
	if len(valid) == 0 {
		return nil
	}
	h := valid[rng.Intn(len(valid))]
	h.Carve(area)
	return h
}

// CreateHallway connects two rooms with a random valid hallway. It returns
// nil and leaves the map untouched when no hallway fits.
func CreateHallway(area *gamemap.Area, rng *rand.Rand, a, b gamemap.Region) Hallway {
	return CreateHallwayFromValid(area, rng, ValidHallways(area, a, b))
}
