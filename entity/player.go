// Package entity implements the moving pieces of the game: the player,
// the ghosts with their pursuit state machines, pickups, and the registry
// that ties them together for cross-entity queries.
package entity

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"pacgo/maze"
	"pacgo/sprites"
)

// VulnerabilityListener is notified whenever the player flips between
// being hurt-able and being powered up. isVulnerable is true when a ghost
// touch would cost a life.
type VulnerabilityListener func(isVulnerable bool)

// Player is the user-controlled entity. Position is in pixels; movement
// is grid-locked: direction changes only commit on cell boundaries, with
// the requested turn buffered until the next boundary where it fits.
type Player struct {
	X, Y int

	m        *maze.Maze
	spawn    maze.Cell
	velocity int

	dir     maze.Direction
	nextDir maze.Direction
	moving  bool

	invulnTicks int
	listeners   []VulnerabilityListener

	anim *sprites.Animation
}

// NewPlayer places a player on the maze's spawn cell. anim may be nil.
func NewPlayer(m *maze.Maze, velocity int, anim *sprites.Animation) *Player {
	spawn := m.PlayerSpawn()
	px, py := spawn.Pixel()
	return &Player{
		X:        px,
		Y:        py,
		m:        m,
		spawn:    spawn,
		velocity: velocity,
		dir:      maze.None,
		nextDir:  maze.None,
		anim:     anim,
	}
}

// Cell returns the grid cell containing the player.
func (p *Player) Cell() maze.Cell {
	return maze.CellAt(p.X, p.Y)
}

// Facing returns the direction the player last moved in.
func (p *Player) Facing() maze.Direction {
	return p.dir
}

// Vulnerable reports whether a ghost touch would cost a life.
func (p *Player) Vulnerable() bool {
	return p.invulnTicks == 0
}

// OnVulnerabilityChanged registers a listener for power-up transitions.
func (p *Player) OnVulnerabilityChanged(fn VulnerabilityListener) {
	p.listeners = append(p.listeners, fn)
}

// PowerUp makes the player untouchable for the given number of ticks.
func (p *Player) PowerUp(ticks int) {
	wasVulnerable := p.Vulnerable()
	p.invulnTicks = ticks
	if wasVulnerable && ticks > 0 {
		p.notify(false)
	}
}

func (p *Player) notify(isVulnerable bool) {
	for _, fn := range p.listeners {
		fn(isVulnerable)
	}
}

// SetDirection buffers a turn request. Reversals apply immediately; any
// other turn waits for the next cell boundary where the way is open.
func (p *Player) SetDirection(d maze.Direction) {
	if d == maze.None {
		return
	}
	if opposite(d) == p.dir {
		p.dir = d
		p.nextDir = maze.None
		return
	}
	p.nextDir = d
}

func opposite(d maze.Direction) maze.Direction {
	switch d {
	case maze.Up:
		return maze.Down
	case maze.Down:
		return maze.Up
	case maze.Left:
		return maze.Right
	case maze.Right:
		return maze.Left
	default:
		return maze.None
	}
}

func (p *Player) aligned() bool {
	return p.X%maze.GridSize == 0 && p.Y%maze.GridSize == 0
}

func (p *Player) canMove(from maze.Cell, d maze.Direction) bool {
	dx, dy := d.Delta()
	return p.m.IsPath(from.X+dx, from.Y+dy)
}

// Update advances the player one tick: commit a buffered turn if the
// boundary allows it, then slide along the current direction until a wall
// blocks the way.
func (p *Player) Update() {
	if p.invulnTicks > 0 {
		p.invulnTicks--
		if p.invulnTicks == 0 {
			p.notify(true)
		}
	}

	if p.aligned() {
		cell := p.Cell()
		if p.nextDir != maze.None && p.canMove(cell, p.nextDir) {
			p.dir = p.nextDir
			p.nextDir = maze.None
		}
		p.moving = p.dir != maze.None && p.canMove(cell, p.dir)
	}

	if !p.moving {
		return
	}

	dx, dy := p.dir.Delta()
	p.X += dx * p.velocity
	p.Y += dy * p.velocity

	if p.anim != nil {
		p.anim.Advance()
	}
}

// ResetToSpawn snaps the player back to its spawn cell after a life is
// lost. Power-up state is cleared without notifying listeners; the scene
// reset rebuilds ghost state anyway.
func (p *Player) ResetToSpawn() {
	px, py := p.spawn.Pixel()
	p.X = px
	p.Y = py
	p.dir = maze.None
	p.nextDir = maze.None
	p.moving = false
	p.invulnTicks = 0
	if p.anim != nil {
		p.anim.Reset()
	}
}

// Draw renders the player frame rotated to its facing direction.
func (p *Player) Draw(screen *ebiten.Image) {
	if p.anim == nil {
		return
	}
	frame := p.anim.Current()
	if frame == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	half := float64(sprites.FrameSize) / 2
	op.GeoM.Translate(-half, -half)
	switch p.dir {
	case maze.Down:
		op.GeoM.Rotate(math.Pi / 2)
	case maze.Left:
		op.GeoM.Scale(-1, 1)
	case maze.Up:
		op.GeoM.Rotate(-math.Pi / 2)
	}
	op.GeoM.Translate(float64(p.X)+half, float64(p.Y)+half)
	screen.DrawImage(frame, op)
}
