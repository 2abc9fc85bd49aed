package nav

import (
	"errors"
	"sort"

	"pacgo/maze"
)

// DefaultMaxDepth is the search depth budget used when none is configured.
const DefaultMaxDepth = 20

var (
	// ErrNoPath is returned when the target is not traversable, is
	// unreachable, or lies beyond the depth budget.
	ErrNoPath = errors.New("nav: no path to target")

	// ErrNoMaze is returned when a PathFinder is constructed without an
	// active maze. This is a setup error, not a per-search condition.
	ErrNoMaze = errors.New("nav: no active maze")
)

// CostFunc returns the movement cost of entering a cell. The ghost
// registry uses this to make occupied cells expensive so ghosts spread
// out instead of stacking on the same route.
type CostFunc func(x, y int) float64

// node is one arena slot of search state. Its fields are only meaningful
// while gen matches the finder's current search generation; stale slots
// are reinitialized on first touch instead of being cleared up front.
type node struct {
	cost      float64
	heuristic float64
	depth     int
	parent    int

	gen       uint64
	openGen   uint64
	closedGen uint64
}

// PathFinder runs single-shot weighted A* searches over a maze grid.
// Nodes live in a flat arena indexed by cell position with parents stored
// as arena indices; a generation stamp makes each FindPath call start
// from clean state without re-zeroing the whole arena.
type PathFinder struct {
	m        *maze.Maze
	costOf   CostFunc
	maxDepth int

	nodes []node
	open  []int
	gen   uint64
}

// NewPathFinder builds a finder for the given maze. costOf may be nil, in
// which case every cell costs 1. maxDepth <= 0 selects DefaultMaxDepth.
func NewPathFinder(m *maze.Maze, costOf CostFunc, maxDepth int) (*PathFinder, error) {
	if m == nil {
		return nil, ErrNoMaze
	}
	if costOf == nil {
		costOf = func(int, int) float64 { return 1 }
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathFinder{
		m:        m,
		costOf:   costOf,
		maxDepth: maxDepth,
		nodes:    make([]node, maze.Columns*maze.Rows),
	}, nil
}

func cellIndex(c maze.Cell) int {
	return c.Y*maze.Columns + c.X
}

func indexCell(i int) maze.Cell {
	return maze.Cell{X: i % maze.Columns, Y: i / maze.Columns}
}

func manhattan(x, y int, target maze.Cell) float64 {
	return float64((maze.Cell{X: x, Y: y}).ManhattanDistance(target))
}

// pushOpen inserts an arena index into the open list and restores
// f-ascending order. sort.SliceStable keeps insertion order on equal f,
// so ties are broken by discovery order.
func (pf *PathFinder) pushOpen(i int) {
	pf.nodes[i].openGen = pf.gen
	pf.open = append(pf.open, i)
	sort.SliceStable(pf.open, func(a, b int) bool {
		na, nb := &pf.nodes[pf.open[a]], &pf.nodes[pf.open[b]]
		return na.cost+na.heuristic < nb.cost+nb.heuristic
	})
}

func (pf *PathFinder) removeOpen(i int) {
	for j, v := range pf.open {
		if v == i {
			pf.open = append(pf.open[:j], pf.open[j+1:]...)
			return
		}
	}
}

// FindPath searches from start to target and returns a start-first Path.
// The returned path always begins with the start cell; its last cell is
// the target. ErrNoPath is returned when the target is a wall, when the
// search exhausts its options, or when the depth budget runs out first.
func (pf *PathFinder) FindPath(start, target maze.Cell) (*Path, error) {
	pf.gen++
	pf.open = pf.open[:0]

	if !pf.m.IsPath(target.X, target.Y) {
		return nil, ErrNoPath
	}
	if start.X < 0 || start.Y < 0 || start.X >= maze.Columns || start.Y >= maze.Rows {
		return nil, ErrNoPath
	}

	si := cellIndex(start)
	ti := cellIndex(target)

	s := &pf.nodes[si]
	s.gen = pf.gen
	s.cost = 0
	s.heuristic = manhattan(start.X, start.Y, target)
	s.depth = 0
	s.parent = -1
	pf.pushOpen(si)

	var deltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	depth := 0
	for depth < pf.maxDepth && len(pf.open) > 0 {
		ci := pf.open[0]
		if ci == ti {
			break
		}
		pf.open = pf.open[1:]
		cur := pf.nodes[ci]
		pf.nodes[ci].openGen = 0
		pf.nodes[ci].closedGen = pf.gen

		cx, cy := ci%maze.Columns, ci/maze.Columns
		for _, d := range deltas {
			nx, ny := cx+d[0], cy+d[1]
			if !pf.m.IsPath(nx, ny) {
				continue
			}

			ni := ny*maze.Columns + nx
			nb := &pf.nodes[ni]
			cand := cur.cost + pf.costOf(nx, ny)

			// A cheaper way in: evict the node from open and closed so
			// it gets re-examined under the improved cost.
			if nb.gen == pf.gen && cand < nb.cost {
				if nb.openGen == pf.gen {
					pf.removeOpen(ni)
					nb.openGen = 0
				}
				nb.closedGen = 0
			}

			if nb.openGen == pf.gen || nb.closedGen == pf.gen {
				continue
			}

			nb.gen = pf.gen
			nb.cost = cand
			nb.heuristic = manhattan(nx, ny, target)
			nb.parent = ci
			nb.depth = cur.depth + 1
			if nb.depth > depth {
				depth = nb.depth
			}
			pf.pushOpen(ni)
		}
	}

	t := &pf.nodes[ti]
	if t.gen != pf.gen || t.parent < 0 {
		// Nothing linked into the target: unreachable, or the depth
		// budget ran out first.
		return nil, ErrNoPath
	}

	steps := make([]maze.Cell, 0, t.depth+1)
	for i := ti; i != si; i = pf.nodes[i].parent {
		if i < 0 {
			return nil, ErrNoPath
		}
		steps = append(steps, indexCell(i))
	}
	steps = append(steps, start)
	for a, b := 0, len(steps)-1; a < b; a, b = a+1, b-1 {
		steps[a], steps[b] = steps[b], steps[a]
	}

	return newPath(steps), nil
}
