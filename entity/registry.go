package entity

import "pacgo/maze"

// occupiedCellCost is what entering a ghost-held cell costs a search.
// High enough that any open detour wins, low enough that a blocked
// corridor is still walkable.
const occupiedCellCost = 10

// Registry holds every live entity for one scene and answers the
// cross-entity queries the pursuit controllers need: the player snapshot
// for targeting and live ghost positions for the occupancy cost.
type Registry struct {
	player *Player
	ghosts []*Ghost
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetPlayer installs the player entity.
func (r *Registry) SetPlayer(p *Player) {
	r.player = p
}

// Player returns the registered player, or nil.
func (r *Registry) Player() *Player {
	return r.player
}

// AddGhost registers a ghost. Registered ghosts raise the occupancy cost
// of their current cell for every other ghost's searches.
func (r *Registry) AddGhost(g *Ghost) {
	r.ghosts = append(r.ghosts, g)
}

// Ghosts returns the registered ghosts in registration order.
func (r *Registry) Ghosts() []*Ghost {
	return r.ghosts
}

// OccupancyCost prices entering a cell for the pathfinder: expensive
// when any ghost currently stands there, the base cost otherwise. It
// reads live positions on every call so ghosts route around each other
// mid-tick rather than stacking on one corridor.
func (r *Registry) OccupancyCost(x, y int) float64 {
	for _, g := range r.ghosts {
		c := g.Cell()
		if c.X == x && c.Y == y {
			return occupiedCellCost
		}
	}
	return 1
}

// Reset snaps all entities back to their spawn cells.
func (r *Registry) Reset() {
	if r.player != nil {
		r.player.ResetToSpawn()
	}
	for _, g := range r.ghosts {
		g.ResetToSpawn()
	}
}

// GhostAt returns the first non-eaten ghost overlapping the given cell.
// Collision handling uses this to decide between losing a life and
// eating a ghost.
func (r *Registry) GhostAt(cell maze.Cell) (*Ghost, bool) {
	for _, g := range r.ghosts {
		if g.State() != StateEaten && g.Cell() == cell {
			return g, true
		}
	}
	return nil, false
}
