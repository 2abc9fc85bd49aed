package entity

import (
	"math/rand"

	"pacgo/maze"
)

// PickupKind distinguishes the three collectible types.
type PickupKind int

const (
	// PickupSmall is the basic dot covering most path cells.
	PickupSmall PickupKind = iota
	// PickupLarge sits on the map's designated corner cells.
	PickupLarge
	// PickupFruit appears mid-level and powers the player up.
	PickupFruit
)

// Pickup is one collectible sitting on a cell.
type Pickup struct {
	Cell maze.Cell
	Kind PickupKind
}

// PickupBoard tracks the uncollected pickups of one level. Small dots
// seed every path cell except spawns; large pickups seed the cells the
// map marks for them. Fruit is added later by the level director.
type PickupBoard struct {
	items map[maze.Cell]*Pickup
	dots  int
}

// NewPickupBoard seeds a board from the maze layout.
func NewPickupBoard(m *maze.Maze) *PickupBoard {
	b := &PickupBoard{items: make(map[maze.Cell]*Pickup)}
	for _, c := range m.PathCells() {
		switch m.KindAt(c.X, c.Y) {
		case maze.KindPath:
			b.put(c, PickupSmall)
		case maze.KindLargePickup:
			b.put(c, PickupLarge)
		}
	}
	return b
}

func (b *PickupBoard) put(c maze.Cell, kind PickupKind) {
	if _, taken := b.items[c]; taken {
		return
	}
	b.items[c] = &Pickup{Cell: c, Kind: kind}
	if kind != PickupFruit {
		b.dots++
	}
}

// Consume removes and returns the pickup on a cell, if any.
func (b *PickupBoard) Consume(c maze.Cell) (*Pickup, bool) {
	p, ok := b.items[c]
	if !ok {
		return nil, false
	}
	delete(b.items, c)
	if p.Kind != PickupFruit {
		b.dots--
	}
	return p, true
}

// Remaining counts the dots still on the board. Fruit does not count;
// the level is clear once every small and large pickup is collected.
func (b *PickupBoard) Remaining() int {
	return b.dots
}

// At returns the pickup on a cell without consuming it.
func (b *PickupBoard) At(c maze.Cell) (*Pickup, bool) {
	p, ok := b.items[c]
	return p, ok
}

// All returns every uncollected pickup.
func (b *PickupBoard) All() []*Pickup {
	out := make([]*Pickup, 0, len(b.items))
	for _, p := range b.items {
		out = append(out, p)
	}
	return out
}

// SpawnFruit drops a fruit on a random empty path cell, avoiding the
// given occupied cells. Returns false when no free cell exists.
func (b *PickupBoard) SpawnFruit(m *maze.Maze, rng *rand.Rand, avoid ...maze.Cell) bool {
	free := make([]maze.Cell, 0, 32)
outer:
	for _, c := range m.PathCells() {
		if _, taken := b.items[c]; taken {
			continue
		}
		for _, a := range avoid {
			if c == a {
				continue outer
			}
		}
		free = append(free, c)
	}
	if len(free) == 0 {
		return false
	}
	c := free[rng.Intn(len(free))]
	b.items[c] = &Pickup{Cell: c, Kind: PickupFruit}
	return true
}
