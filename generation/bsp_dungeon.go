package generation

import (
	"log/slog"

	"github.com/google/uuid"

	"bsp-rogue/gamemap"
)

// SplitDirection says how a BSP node divides its region. A vertical split
// stacks the children on top of each other, a horizontal split puts them
// side by side.
type SplitDirection int

const (
	SplitRandom SplitDirection = iota
	SplitVertical
	SplitHorizontal
)

func (d SplitDirection) String() string {
	switch d {
	case SplitVertical:
		return "vertical"
	case SplitHorizontal:
		return "horizontal"
	}
	return "random"
}

// BSPNode represents a node in the binary space partitioning tree. A node
// has either no children or two, and only leaves carry a room.
type BSPNode struct {
	Region      gamemap.Region
	Left, Right *BSPNode
	Room        *gamemap.Region
}

// IsLeaf reports whether the node was never split
func (node *BSPNode) IsLeaf() bool {
	return node.Left == nil
}

// Rooms collects every room in the subtree, left to right
func (node *BSPNode) Rooms() []gamemap.Region {
	var rooms []gamemap.Region
	node.collectRooms(&rooms)
	return rooms
}

// Leaves returns the nodes that were never split, left to right
func (node *BSPNode) Leaves() []*BSPNode {
	if node.IsLeaf() {
		return []*BSPNode{node}
	}
	return append(node.Left.Leaves(), node.Right.Leaves()...)
}

func (node *BSPNode) collectRooms(rooms *[]gamemap.Region) {
	if node.Room != nil {
		*rooms = append(*rooms, *node.Room)
	}
	if node.Left != nil {
		node.Left.collectRooms(rooms)
	}
	if node.Right != nil {
		node.Right.collectRooms(rooms)
	}
}

// bspRun holds the state of a single Generate call
type bspRun struct {
	g        *DungeonGenerator
	cfg      DungeonConfig
	area     *gamemap.Area
	logger   *slog.Logger
	hallways int
	depth    int
}

// Generate builds a dungeon by recursively partitioning the configured
// rectangle, placing a room in every partition at the last level and
// joining sibling subtrees with hallways on the way back up
func (g *DungeonGenerator) Generate(cfg DungeonConfig) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	run := &bspRun{
		g:      g,
		cfg:    cfg,
		area:   gamemap.NewArea(),
		logger: g.logger.With("dungeon_id", id.String(), "seed", g.seed),
	}
	run.logger.Debug("generating dungeon",
		"width", cfg.DungeonWidth, "height", cfg.DungeonHeight,
		"max_split_depth", cfg.MaxSplitDepth, "split_tolerance", cfg.SplitTolerance)

	root := &BSPNode{
		Region: gamemap.NewRegion(cfg.DungeonWidth, cfg.DungeonHeight, gamemap.NewCoordinate(0, 0)),
	}
	run.split(root, 0, SplitRandom)
	if len(root.Rooms()) == 0 {
		run.placeFallbackRoom(root)
	}

	d := &Dungeon{
		ID:       id,
		Config:   cfg,
		Seed:     g.seed,
		Area:     run.area,
		Rooms:    root.Rooms(),
		Depth:    run.depth,
		Hallways: run.hallways,
	}
	run.logger.Info("dungeon generated",
		"rooms", len(d.Rooms), "hallways", d.Hallways, "depth", d.Depth)
	return d, nil
}

// split divides node in the given direction and recurses into the children.
// A random direction that cannot fit two rooms is retried once on the other
// axis. A fixed direction that cannot fit leaves the node as an empty leaf.
func (r *bspRun) split(node *BSPNode, depth int, direction SplitDirection) {
	vertical := direction == SplitVertical
	if direction == SplitRandom {
		vertical = r.g.rng.Intn(2) == 0
	}

	length, minRoom := node.Region.Width, r.cfg.MinRoomWidth
	if vertical {
		length, minRoom = node.Region.Height, r.cfg.MinRoomHeight
	}

	lo, hi, ok := r.cfg.splitRange(length, minRoom)
	if !ok {
		if direction == SplitRandom {
			retry := SplitVertical
			if vertical {
				retry = SplitHorizontal
			}
			r.split(node, depth, retry)
			return
		}
		r.logger.Debug("partition too small to split",
			"region", node.Region.String(), "direction", direction.String(), "depth", depth)
		return
	}

	offset := lo + r.g.rng.Intn(hi-lo+1)
	pos := node.Region.Position
	// the cell at offset-1 is left between the children for the dividing wall
	if vertical {
		node.Left = &BSPNode{Region: gamemap.NewRegion(node.Region.Width, offset-1, pos)}
		node.Right = &BSPNode{Region: gamemap.NewRegion(node.Region.Width, node.Region.Height-offset, pos.Add(0, offset))}
	} else {
		node.Left = &BSPNode{Region: gamemap.NewRegion(offset-1, node.Region.Height, pos)}
		node.Right = &BSPNode{Region: gamemap.NewRegion(node.Region.Width-offset, node.Region.Height, pos.Add(offset, 0))}
	}

	depth++
	r.depth = max(r.depth, depth)

	if depth < r.cfg.MaxSplitDepth {
		r.split(node.Left, depth, SplitRandom)
		r.split(node.Right, depth, SplitRandom)
		if !node.Left.IsLeaf() {
			r.connectSubtrees(node.Left, node.Right)
		}
		return
	}

	for _, child := range []*BSPNode{node.Left, node.Right} {
		r.placeRoom(child)
	}
	if node.Left.Room == nil || node.Right.Room == nil {
		return
	}
	if h := CreateHallway(r.area, r.g.rng, *node.Left.Room, *node.Right.Room); h != nil {
		r.hallways++
		r.logger.Debug("hallway carved", "hallway", h, "depth", depth)
	} else {
		r.logger.Debug("no hallway fits between sibling rooms",
			"a", node.Left.Room.String(), "b", node.Right.Room.String())
	}
}

// placeFallbackRoom puts a room in the largest leaf when no branch of the
// tree reached the last level. Every leaf is at least the minimum room size.
func (r *bspRun) placeFallbackRoom(root *BSPNode) {
	var largest *BSPNode
	for _, leaf := range root.Leaves() {
		if largest == nil || leaf.Region.Width*leaf.Region.Height > largest.Region.Width*largest.Region.Height {
			largest = leaf
		}
	}
	r.logger.Debug("no partition reached the last level, placing a single room",
		"region", largest.Region.String(), "depth", r.depth)
	r.placeRoom(largest)
}

// connectSubtrees pools the valid hallways between every room of one subtree
// and every room of the other, then carves one of them
func (r *bspRun) connectSubtrees(a, b *BSPNode) Hallway {
	roomsB := b.Rooms()
	var pool []Hallway
	for _, roomA := range a.Rooms() {
		for _, roomB := range roomsB {
			pool = append(pool, ValidHallways(r.area, roomA, roomB)...)
		}
	}

	h := CreateHallwayFromValid(r.area, r.g.rng, pool)
	if h == nil {
		r.logger.Debug("subtrees left disconnected",
			"a", a.Region.String(), "b", b.Region.String())
		return nil
	}
	r.hallways++
	r.logger.Debug("hallway carved between subtrees", "hallway", h, "candidates", len(pool))
	return h
}

// placeRoom picks a random room size and position inside the node's region
// and carves it. Neither side of the room may be more than three times the
// other.
func (r *bspRun) placeRoom(node *BSPNode) {
	region := node.Region
	if region.Width < r.cfg.MinRoomWidth || region.Height < r.cfg.MinRoomHeight {
		r.logger.Debug("no space for a room", "region", region.String())
		return
	}

	rng := r.g.rng
	width := r.cfg.MinRoomWidth + rng.Intn(region.Width-r.cfg.MinRoomWidth+1)
	height := r.cfg.MinRoomHeight + rng.Intn(region.Height-r.cfg.MinRoomHeight+1)
	if height > width*3 {
		height = width * 3
	}
	if width > height*3 {
		width = height * 3
	}

	// a room as wide as its region is pinned, otherwise it keeps at least
	// one column clear on the right
	x := region.Position.X
	if width < region.Width {
		x += rng.Intn(region.EdgeX() - width - region.Position.X + 1)
	}
	y := region.Position.Y
	if height < region.Height {
		y += rng.Intn(region.TopY() - height - region.Position.Y + 1)
	}

	room := gamemap.NewRegion(width, height, gamemap.NewCoordinate(x, y))
	node.Room = &room
	r.area.PlaceRegion(room)
}
