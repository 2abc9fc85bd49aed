package entity

import (
	"math/rand"
	"testing"

	"pacgo/maze"
)

func TestRegistryOccupancyCost(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, maze.Cell{X: 3, Y: 3})

	if got := reg.OccupancyCost(3, 3); got != 10 {
		t.Fatalf("occupied cell cost = %v, want 10", got)
	}
	if got := reg.OccupancyCost(4, 3); got != 1 {
		t.Fatalf("empty cell cost = %v, want 1", got)
	}
}

func TestRegistryGhostAtSkipsEaten(t *testing.T) {
	m := openMaze(t, maze.Cell{X: 9, Y: 9})
	reg := NewRegistry()
	g := newTestGhost(t, m, reg, fixedTarget{maze.Cell{X: 9, Y: 1}}, 1, maze.Cell{X: 3, Y: 3})

	if _, ok := reg.GhostAt(maze.Cell{X: 3, Y: 3}); !ok {
		t.Fatal("expected a ghost on its spawn cell")
	}
	g.Eat()
	if _, ok := reg.GhostAt(maze.Cell{X: 3, Y: 3}); ok {
		t.Fatal("eaten ghost should not collide")
	}
}

func TestPickupBoard(t *testing.T) {
	cells := openCells()
	cells[1][1] = maze.KindLargePickup
	m := buildMaze(t, cells, maze.Cell{X: 9, Y: 9})

	b := NewPickupBoard(m)
	before := b.Remaining()
	if before == 0 {
		t.Fatal("empty board")
	}

	// Spawn cells carry no dot.
	if _, ok := b.At(maze.Cell{X: 9, Y: 9}); ok {
		t.Fatal("player spawn should be empty")
	}

	p, ok := b.Consume(maze.Cell{X: 1, Y: 1})
	if !ok || p.Kind != PickupLarge {
		t.Fatalf("Consume(1,1) = %v, %v; want a large pickup", p, ok)
	}
	if b.Remaining() != before-1 {
		t.Fatalf("remaining = %d, want %d", b.Remaining(), before-1)
	}
	if _, ok := b.Consume(maze.Cell{X: 1, Y: 1}); ok {
		t.Fatal("double consume")
	}

	// Fruit lands on a free cell and does not count toward clearing.
	rng := rand.New(rand.NewSource(1))
	if !b.SpawnFruit(m, rng, maze.Cell{X: 9, Y: 9}) {
		t.Fatal("no room for fruit")
	}
	if b.Remaining() != before-1 {
		t.Fatalf("fruit changed the dot count: %d", b.Remaining())
	}
}
