package entity

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"pacgo/maze"
	"pacgo/nav"
	"pacgo/sprites"
)

// State is one behavioral mode of a ghost's pursuit machine.
type State int

const (
	// StateTracking chases the strategy's target cell.
	StateTracking State = iota
	// StateFleeing runs pursuit against an avoidance target while the
	// player is powered up.
	StateFleeing
	// StateEaten sends the ghost home; pending transitions queue until
	// the spawn cell is reached.
	StateEaten
)

func (s State) String() string {
	switch s {
	case StateFleeing:
		return "fleeing"
	case StateEaten:
		return "eaten"
	default:
		return "tracking"
	}
}

// wanderRange bounds the random fallback neighborhood: cell offsets in
// [-wanderRange, wanderRange) on both axes.
const wanderRange = 2

// GhostArt bundles the animations a ghost cycles through. Any field may
// be nil; drawing degrades to the nearest available set.
type GhostArt struct {
	Walk    map[maze.Direction]*sprites.Animation
	Fleeing *sprites.Animation
	Eaten   map[maze.Direction]*sprites.Animation
}

// Ghost is one pursuit controller: a state machine that picks targets
// through its strategy, paths to them, and walks the path in pixel
// space at a fixed velocity.
type Ghost struct {
	Name string

	X, Y int

	m        *maze.Maze
	reg      *Registry
	finder   *nav.PathFinder
	strategy TargetStrategy
	velocity int
	spawn    maze.Cell

	state     State
	queued    State
	hasQueued bool

	path    *nav.Path
	step    maze.Cell
	hasStep bool
	facing  maze.Direction

	rng *rand.Rand
	art *GhostArt
}

// NewGhost builds a pursuit controller starting on spawn in Tracking
// state. reg supplies live ghost positions for the occupancy cost and
// the player snapshot for targeting. art may be nil.
func NewGhost(name string, m *maze.Maze, reg *Registry, strategy TargetStrategy, velocity, searchDepth int, spawn maze.Cell, art *GhostArt) (*Ghost, error) {
	finder, err := nav.NewPathFinder(m, reg.OccupancyCost, searchDepth)
	if err != nil {
		return nil, err
	}
	px, py := spawn.Pixel()
	return &Ghost{
		Name:     name,
		X:        px,
		Y:        py,
		m:        m,
		reg:      reg,
		finder:   finder,
		strategy: strategy,
		velocity: velocity,
		spawn:    spawn,
		state:    StateTracking,
		facing:   maze.Left,
		rng:      rand.New(rand.NewSource(int64(spawn.X)<<16 | int64(spawn.Y))),
		art:      art,
	}, nil
}

// Cell returns the grid cell containing the ghost.
func (g *Ghost) Cell() maze.Cell {
	return maze.CellAt(g.X, g.Y)
}

// State returns the current pursuit state.
func (g *Ghost) State() State {
	return g.state
}

// Spawn returns the ghost's home cell.
func (g *Ghost) Spawn() maze.Cell {
	return g.spawn
}

// OnPlayerVulnerabilityChanged flips the pursuit state with the player's
// power-up status: ghosts track a vulnerable player and flee from one
// that cannot be hurt. While eaten the transition is queued and applied
// when the ghost reaches its spawn.
func (g *Ghost) OnPlayerVulnerabilityChanged(isVulnerable bool) {
	desired := StateFleeing
	if isVulnerable {
		desired = StateTracking
	}
	if g.state == StateEaten {
		g.queued = desired
		g.hasQueued = true
		return
	}
	g.state = desired
}

// Eat sends the ghost home. Unless the power-up ends first, it resumes
// fleeing once it gets there.
func (g *Ghost) Eat() {
	g.state = StateEaten
	g.queued = StateFleeing
	g.hasQueued = true
	g.path = nil
	g.hasStep = false
}

// ResetToSpawn rebuilds the ghost for a fresh scene.
func (g *Ghost) ResetToSpawn() {
	px, py := g.spawn.Pixel()
	g.X = px
	g.Y = py
	g.state = StateTracking
	g.hasQueued = false
	g.path = nil
	g.hasStep = false
	g.facing = maze.Left
}

// Update advances the ghost one tick: apply any queued state at spawn,
// recalculate the path when pixel-aligned with the tracked step, then
// move toward the step, spilling leftover velocity onto the next step
// when this one is closer than a full tick of travel.
func (g *Ghost) Update() {
	cell := g.Cell()

	if g.state == StateEaten && cell == g.spawn && g.hasQueued {
		g.state = g.queued
		g.hasQueued = false
		g.path = nil
		g.hasStep = false
	}

	if g.needsRecalc() {
		if !g.recalc(cell) {
			return
		}
	}

	g.move()
	g.advanceArt()
}

// needsRecalc reports whether a new search is due: no live path, or the
// ghost sits exactly on its tracked step's pixel corner. The exact
// equality matters; committing to a new step while between cells would
// let the ghost drift diagonally.
func (g *Ghost) needsRecalc() bool {
	if g.path == nil || !g.hasStep {
		return true
	}
	px, py := g.step.Pixel()
	return g.X == px && g.Y == py
}

func (g *Ghost) target(cell maze.Cell) maze.Cell {
	if g.state == StateEaten {
		return g.spawn
	}
	p := g.reg.Player()
	view := PursuitView{Ghost: cell}
	if p != nil {
		view.Player = p.Cell()
		view.PlayerFacing = p.Facing()
	}
	return g.strategy.SelectTarget(g.state, view)
}

// recalc runs a fresh search and commits the first real step. On failure
// it falls back to a random wander target; if that search fails too the
// ghost simply stands still this tick.
func (g *Ghost) recalc(cell maze.Cell) bool {
	path, err := g.finder.FindPath(cell, g.target(cell))
	if err != nil {
		path, err = g.finder.FindPath(cell, g.wanderTarget(cell))
		if err != nil {
			g.path = nil
			g.hasStep = false
			return false
		}
	}

	// Index 0 is the cell the ghost already stands on; walk past it to
	// the first step that actually moves.
	step, ok := path.Walk(2)
	if !ok {
		g.path = nil
		g.hasStep = false
		return false
	}
	g.path = path
	g.step = step
	g.hasStep = true
	return true
}

// wanderTarget picks a random traversable cell near the ghost, skipping
// its own cell. When the whole neighborhood is walled off the ghost's
// own cell comes back, which the caller's search then rejects.
func (g *Ghost) wanderTarget(cell maze.Cell) maze.Cell {
	candidates := make([]maze.Cell, 0, 16)
	for dy := -wanderRange; dy < wanderRange; dy++ {
		for dx := -wanderRange; dx < wanderRange; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := cell.X+dx, cell.Y+dy
			if g.m.IsPath(x, y) {
				candidates = append(candidates, maze.Cell{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return cell
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// move travels up to velocity pixels toward the tracked step along the
// one axis the ghost is misaligned on. Overshoot spills onto the next
// path step so apparent speed stays constant across cell boundaries.
func (g *Ghost) move() {
	px, py := g.step.Pixel()
	dx, dy := px-g.X, py-g.Y

	if (dx != 0) == (dy != 0) {
		// Either already on the step or misaligned on both axes; the
		// next recalculation straightens this out.
		log.Printf("ghost %s: bad step alignment at (%d,%d) toward (%d,%d), skipping tick", g.Name, g.X, g.Y, px, py)
		return
	}

	remaining := abs(dx) + abs(dy)
	travel := g.velocity
	if travel <= remaining {
		g.shift(sign(dx)*travel, sign(dy)*travel)
		return
	}

	// Snap onto the step and spend the excess along the next one.
	excess := travel - remaining
	g.shift(dx, dy)

	if !g.path.HasNext() {
		return
	}
	next, ok := g.path.Next()
	if !ok {
		return
	}
	g.step = next
	nx, ny := next.Pixel()
	g.shift(sign(nx-g.X)*excess, sign(ny-g.Y)*excess)
}

func (g *Ghost) shift(dx, dy int) {
	g.X += dx
	g.Y += dy
	switch {
	case dx < 0:
		g.facing = maze.Left
	case dx > 0:
		g.facing = maze.Right
	case dy < 0:
		g.facing = maze.Up
	case dy > 0:
		g.facing = maze.Down
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func (g *Ghost) currentAnim() *sprites.Animation {
	if g.art == nil {
		return nil
	}
	switch g.state {
	case StateFleeing:
		if g.art.Fleeing != nil {
			return g.art.Fleeing
		}
	case StateEaten:
		if a := g.art.Eaten[g.facing]; a != nil {
			return a
		}
	}
	return g.art.Walk[g.facing]
}

func (g *Ghost) advanceArt() {
	if a := g.currentAnim(); a != nil {
		a.Advance()
	}
}

// Draw renders the ghost frame for its state and facing.
func (g *Ghost) Draw(screen *ebiten.Image) {
	a := g.currentAnim()
	if a == nil {
		return
	}
	frame := a.Current()
	if frame == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.X), float64(g.Y))
	screen.DrawImage(frame, op)
}
