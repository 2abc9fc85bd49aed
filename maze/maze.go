// Package maze holds the game grid: cell kinds parsed from a map file,
// traversability queries used by the pathfinder, and the flank-route
// projection used by pursuing ghosts.
package maze

// GridSize is the pixel width/height of one grid cell.
const GridSize = 16

// Columns and Rows fix the playfield dimensions. Every map file must
// describe exactly this many cells.
const (
	Columns = 19
	Rows    = 19
)

// Pixel dimensions of the playfield.
const (
	Width  = GridSize * Columns
	Height = GridSize * Rows
)

// Cell kinds as they appear in map files.
const (
	KindWall = iota
	KindPath
	KindPlayerSpawn
	KindLargePickup
	KindGhostSpawnA
	KindGhostSpawnB
	KindGhostSpawnC
)

// Cell is a grid coordinate.
type Cell struct {
	X int
	Y int
}

// Pixel returns the top-left pixel position of the cell.
func (c Cell) Pixel() (int, int) {
	return c.X * GridSize, c.Y * GridSize
}

// ManhattanDistance returns the grid distance between two cells.
func (c Cell) ManhattanDistance(o Cell) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// CellAt converts a pixel position to the grid cell containing it.
func CellAt(px, py int) Cell {
	return Cell{X: px / GridSize, Y: py / GridSize}
}

// Direction of movement on the grid.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid offset for one step in the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Maze is one parsed level grid.
type Maze struct {
	ID   int
	Name string

	cells       []int
	playerSpawn Cell
	ghostSpawns []Cell

	tileImgs tileImages
}

func (m *Maze) valid(x, y int) bool {
	return x >= 0 && y >= 0 && x < Columns && y < Rows
}

// KindAt returns the cell kind, or KindWall for out-of-bounds positions.
func (m *Maze) KindAt(x, y int) int {
	if !m.valid(x, y) {
		return KindWall
	}
	return m.cells[y*Columns+x]
}

// IsPath reports whether the cell can be traversed. Anything that is not
// a wall counts, including spawn and pickup cells.
func (m *Maze) IsPath(x, y int) bool {
	return m.valid(x, y) && m.cells[y*Columns+x] != KindWall
}

// PlayerSpawn returns the grid cell the player starts on.
func (m *Maze) PlayerSpawn() Cell {
	return m.playerSpawn
}

// GhostSpawns returns the ghost start cells in file order.
func (m *Maze) GhostSpawns() []Cell {
	out := make([]Cell, len(m.ghostSpawns))
	copy(out, m.ghostSpawns)
	return out
}

// PathCells returns every traversable cell.
func (m *Maze) PathCells() []Cell {
	out := make([]Cell, 0, Columns*Rows)
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if m.cells[y*Columns+x] != KindWall {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// FlankRoute projects a point distance cells ahead of base along dir,
// following corners: when the straight line hits a wall it turns towards
// the first open side (left, right, down, up probe order) and keeps
// walking from there.
func (m *Maze) FlankRoute(base Cell, distance int, dir Direction) Cell {
	seek := base

	for i := 0; i < distance; i++ {
		dx, dy := dir.Delta()
		nx, ny := seek.X+dx, seek.Y+dy

		if m.IsPath(nx, ny) {
			seek = Cell{X: nx, Y: ny}
			continue
		}

		switch {
		case m.IsPath(seek.X-1, seek.Y):
			dir = Left
			seek = Cell{X: seek.X - 1, Y: seek.Y}
		case m.IsPath(seek.X+1, seek.Y):
			dir = Right
			seek = Cell{X: seek.X + 1, Y: seek.Y}
		case m.IsPath(seek.X, seek.Y+1):
			dir = Down
			seek = Cell{X: seek.X, Y: seek.Y + 1}
		case m.IsPath(seek.X, seek.Y-1):
			dir = Up
			seek = Cell{X: seek.X, Y: seek.Y - 1}
		default:
			// Fully boxed in; stay put.
			return seek
		}
	}

	return seek
}
