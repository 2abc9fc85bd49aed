package nav

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"pacgo/maze"
)

// openMaze builds a maze with walls on the border and open floor inside.
// mutate may flip cells to walls before parsing.
func openMaze(t *testing.T, mutate func(cells [][]int)) *maze.Maze {
	t.Helper()

	cells := make([][]int, maze.Rows)
	for y := range cells {
		cells[y] = make([]int, maze.Columns)
		for x := range cells[y] {
			if x == 0 || y == 0 || x == maze.Columns-1 || y == maze.Rows-1 {
				cells[y][x] = maze.KindWall
			} else {
				cells[y][x] = maze.KindPath
			}
		}
	}
	cells[1][1] = maze.KindPlayerSpawn
	if mutate != nil {
		mutate(cells)
	}

	var b strings.Builder
	b.WriteString("1 - Test\n")
	for _, row := range cells {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = strconv.Itoa(v)
		}
		b.WriteString(strings.Join(fields, " "))
		b.WriteString("\n")
	}

	m, err := maze.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("building test maze: %v", err)
	}
	return m
}

func newFinder(t *testing.T, m *maze.Maze, costOf CostFunc, maxDepth int) *PathFinder {
	t.Helper()
	pf, err := NewPathFinder(m, costOf, maxDepth)
	if err != nil {
		t.Fatalf("NewPathFinder: %v", err)
	}
	return pf
}

func pathSteps(p *Path) []maze.Cell {
	out := make([]maze.Cell, 0, p.StepCount())
	for i := 0; i < p.StepCount(); i++ {
		c, _ := p.StepAt(i)
		out = append(out, c)
	}
	return out
}

func assertWellFormed(t *testing.T, p *Path, start, target maze.Cell) {
	t.Helper()
	steps := pathSteps(p)
	if len(steps) == 0 {
		t.Fatalf("empty path")
	}
	if steps[0] != start {
		t.Fatalf("first step = %v, want start %v", steps[0], start)
	}
	if steps[len(steps)-1] != target {
		t.Fatalf("last step = %v, want target %v", steps[len(steps)-1], target)
	}
	for i := 1; i < len(steps); i++ {
		if steps[i-1].ManhattanDistance(steps[i]) != 1 {
			t.Fatalf("steps %v and %v are not 4-adjacent", steps[i-1], steps[i])
		}
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	m := openMaze(t, nil)
	pf := newFinder(t, m, nil, 64)

	start := maze.Cell{X: 1, Y: 1}
	target := maze.Cell{X: 17, Y: 17}

	p, err := pf.FindPath(start, target)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	assertWellFormed(t, p, start, target)

	// No obstacles, unit costs: the optimal route is exactly the
	// manhattan distance, plus one for the start cell itself.
	if p.StepCount() != 33 {
		t.Fatalf("StepCount = %d, want 33", p.StepCount())
	}
}

func TestFindPathFailures(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(cells [][]int)
		maxDepth int
		start    maze.Cell
		target   maze.Cell
	}{
		{
			name:     "target_is_wall",
			maxDepth: 64,
			start:    maze.Cell{X: 1, Y: 1},
			target:   maze.Cell{X: 0, Y: 0},
		},
		{
			name: "target_walled_off",
			mutate: func(cells [][]int) {
				cells[8][8] = maze.KindWall
				cells[8][10] = maze.KindWall
				cells[7][9] = maze.KindWall
				cells[9][9] = maze.KindWall
			},
			maxDepth: 64,
			start:    maze.Cell{X: 1, Y: 1},
			target:   maze.Cell{X: 9, Y: 8},
		},
		{
			name:     "depth_budget_exceeded",
			maxDepth: DefaultMaxDepth,
			start:    maze.Cell{X: 1, Y: 1},
			target:   maze.Cell{X: 17, Y: 17},
		},
		{
			name:     "start_equals_target",
			maxDepth: 64,
			start:    maze.Cell{X: 5, Y: 5},
			target:   maze.Cell{X: 5, Y: 5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := openMaze(t, tc.mutate)
			pf := newFinder(t, m, nil, tc.maxDepth)
			if _, err := pf.FindPath(tc.start, tc.target); !errors.Is(err, ErrNoPath) {
				t.Fatalf("err = %v, want ErrNoPath", err)
			}
		})
	}
}

func TestFindPathAvoidsOccupiedCells(t *testing.T) {
	m := openMaze(t, nil)
	occupied := maze.Cell{X: 2, Y: 1}
	costOf := func(x, y int) float64 {
		if x == occupied.X && y == occupied.Y {
			return 10
		}
		return 1
	}

	start := maze.Cell{X: 1, Y: 1}
	target := maze.Cell{X: 3, Y: 1}

	free := newFinder(t, m, nil, 64)
	base, err := free.FindPath(start, target)
	if err != nil {
		t.Fatalf("unoccupied FindPath: %v", err)
	}

	pf := newFinder(t, m, costOf, 64)
	p, err := pf.FindPath(start, target)
	if err != nil {
		t.Fatalf("occupied FindPath: %v", err)
	}
	assertWellFormed(t, p, start, target)

	for _, step := range pathSteps(p) {
		if step == occupied {
			t.Fatalf("path routes through the occupied cell: %v", pathSteps(p))
		}
	}

	// The detour is longer in steps but cheaper in cost; raising a cell's
	// occupancy cost must never shorten the chosen route.
	if p.StepCount() < base.StepCount() {
		t.Fatalf("occupied route %d steps shorter than unoccupied %d", p.StepCount(), base.StepCount())
	}
}

func TestFindPathReusesCleanState(t *testing.T) {
	m := openMaze(t, nil)
	pf := newFinder(t, m, nil, 64)

	// First search seeds the arena with costs and parents; the second
	// must not see any of it.
	if _, err := pf.FindPath(maze.Cell{X: 1, Y: 1}, maze.Cell{X: 17, Y: 17}); err != nil {
		t.Fatalf("first FindPath: %v", err)
	}

	start := maze.Cell{X: 10, Y: 10}
	target := maze.Cell{X: 10, Y: 14}
	p, err := pf.FindPath(start, target)
	if err != nil {
		t.Fatalf("second FindPath: %v", err)
	}
	assertWellFormed(t, p, start, target)
	if p.StepCount() != 5 {
		t.Fatalf("StepCount = %d, want 5", p.StepCount())
	}
}

func TestNewPathFinderRequiresMaze(t *testing.T) {
	if _, err := NewPathFinder(nil, nil, 0); !errors.Is(err, ErrNoMaze) {
		t.Fatalf("err = %v, want ErrNoMaze", err)
	}
}
