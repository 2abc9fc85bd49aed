package entity

import (
	"strconv"
	"strings"
	"testing"

	"pacgo/maze"
)

// buildMaze parses a maze from a kind grid, placing the player spawn at
// the given cell.
func buildMaze(t *testing.T, cells [][]int, playerSpawn maze.Cell) *maze.Maze {
	t.Helper()

	cells[playerSpawn.Y][playerSpawn.X] = maze.KindPlayerSpawn

	var b strings.Builder
	b.WriteString("1 - test\n")
	for _, row := range cells {
		fields := make([]string, len(row))
		for i, k := range row {
			fields[i] = strconv.Itoa(k)
		}
		b.WriteString(strings.Join(fields, " "))
		b.WriteString("\n")
	}

	m, err := maze.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

// openCells returns a grid that is all path except the border walls.
func openCells() [][]int {
	cells := make([][]int, maze.Rows)
	for y := range cells {
		cells[y] = make([]int, maze.Columns)
		for x := range cells[y] {
			if x > 0 && y > 0 && x < maze.Columns-1 && y < maze.Rows-1 {
				cells[y][x] = maze.KindPath
			}
		}
	}
	return cells
}

func openMaze(t *testing.T, playerSpawn maze.Cell) *maze.Maze {
	t.Helper()
	return buildMaze(t, openCells(), playerSpawn)
}

// fixedTarget is a strategy that always aims at one cell.
type fixedTarget struct {
	c maze.Cell
}

func (s fixedTarget) SelectTarget(State, PursuitView) maze.Cell {
	return s.c
}

func newTestGhost(t *testing.T, m *maze.Maze, reg *Registry, strategy TargetStrategy, velocity int, spawn maze.Cell) *Ghost {
	t.Helper()
	g, err := NewGhost("test", m, reg, strategy, velocity, 64, spawn, nil)
	if err != nil {
		t.Fatalf("NewGhost: %v", err)
	}
	reg.AddGhost(g)
	return g
}

func TestGhostRecalculatesOnStepAlignment(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, maze.Cell{X: 1, Y: 1})

	g.Update()
	if g.path == nil {
		t.Fatal("expected a path after the first update")
	}
	first := g.path

	// Mid-segment: no recalculation.
	g.Update()
	if g.path != first {
		t.Fatal("path replaced while between cells")
	}

	// Snap onto the tracked step; the next tick must search again.
	g.X, g.Y = g.step.Pixel()
	g.Update()
	if g.path == first {
		t.Fatal("expected a fresh path once aligned with the tracked step")
	}
}

func TestGhostOvershootRedistribution(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	// Target one cell diagonally away forces a turn after the first
	// step, so the overshoot spills onto a perpendicular axis.
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 2, Y: 2}}, 3, maze.Cell{X: 1, Y: 1})

	// Five ticks of 3px leave 1px to the step at (2,1); the sixth tick
	// covers that 1px and spends the remaining 2px downward.
	for i := 0; i < 6; i++ {
		g.Update()
	}

	if g.X != 32 || g.Y != 18 {
		t.Fatalf("position = (%d,%d), want (32,18)", g.X, g.Y)
	}
	if g.step != (maze.Cell{X: 2, Y: 2}) {
		t.Fatalf("tracked step = %v, want (2,2)", g.step)
	}
	if g.facing != maze.Down {
		t.Fatalf("facing = %v, want down", g.facing)
	}
}

func TestGhostEatenQueuesStateUntilSpawn(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	spawn := maze.Cell{X: 1, Y: 1}
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, spawn)

	// Away from home when eaten.
	away := maze.Cell{X: 5, Y: 5}
	g.X, g.Y = away.Pixel()
	g.Eat()
	if g.State() != StateEaten {
		t.Fatalf("state = %v, want eaten", g.State())
	}

	// Power-up expires mid-flight: only the queue updates.
	g.OnPlayerVulnerabilityChanged(true)
	g.Update()
	if g.State() != StateEaten {
		t.Fatalf("state = %v while away from spawn, want eaten", g.State())
	}

	// Reaching home applies the queued state.
	g.X, g.Y = spawn.Pixel()
	g.Update()
	if g.State() != StateTracking {
		t.Fatalf("state = %v at spawn, want tracking", g.State())
	}
}

func TestGhostVulnerabilityMapping(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, maze.Cell{X: 1, Y: 1})

	g.OnPlayerVulnerabilityChanged(false)
	if g.State() != StateFleeing {
		t.Fatalf("state = %v after player powered up, want fleeing", g.State())
	}
	g.OnPlayerVulnerabilityChanged(true)
	if g.State() != StateTracking {
		t.Fatalf("state = %v after power-up expired, want tracking", g.State())
	}
}

func TestGhostWanderFallback(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	// Target a wall cell so the primary search always fails.
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 0, Y: 0}}, 1, maze.Cell{X: 5, Y: 5})

	g.Update()
	if g.path == nil {
		t.Fatal("expected a wander path when the target is unreachable")
	}
	sx, sy := (maze.Cell{X: 5, Y: 5}).Pixel()
	if g.X == sx && g.Y == sy {
		t.Fatal("ghost did not move on its wander path")
	}
}

func TestGhostSkipsTickWhenMisalignedOnBothAxes(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, maze.Cell{X: 1, Y: 1})

	g.Update()
	if !g.hasStep {
		t.Fatal("expected a tracked step after the first update")
	}

	// Knock the ghost diagonally off its tracked step. No single axis
	// leads to the step, so the tick must not move it.
	px, py := g.step.Pixel()
	g.X, g.Y = px+3, py+5
	wantX, wantY := g.X, g.Y

	g.Update()
	if g.X != wantX || g.Y != wantY {
		t.Fatalf("position = (%d,%d), want unchanged (%d,%d)", g.X, g.Y, wantX, wantY)
	}
}

func TestGhostStandsStillWhenBoxedIn(t *testing.T) {
	cells := openCells()
	// Seal the chamber at (5,5).
	for _, d := range [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
		cells[5+d[1]][5+d[0]] = maze.KindWall
	}
	m := buildMaze(t, cells, maze.Cell{X: 9, Y: 9})

	reg := NewRegistry()
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, maze.Cell{X: 5, Y: 5})

	g.Update()
	sx, sy := (maze.Cell{X: 5, Y: 5}).Pixel()
	if g.X != sx || g.Y != sy {
		t.Fatalf("boxed-in ghost moved to (%d,%d)", g.X, g.Y)
	}
	if g.path != nil {
		t.Fatal("boxed-in ghost holds a path")
	}
}
