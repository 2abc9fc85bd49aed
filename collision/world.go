// Package collision wraps a chipmunk space for the one query the game
// needs each tick: which ghosts currently overlap the player. Entities
// move themselves on the grid; their bodies are kinematic mirrors synced
// before every step.
package collision

import (
	"sort"

	"github.com/jakecoffman/cp"
)

// bodyRadius is slightly under half a sprite frame so entities brushing
// past each other in adjacent corridors do not register as contact.
const bodyRadius = 7

// World holds the simulation space with one circle body per entity.
type World struct {
	space       *cp.Space
	player      *cp.Body
	playerShape *cp.Shape
	ghosts      []*cp.Body
}

// NewWorld builds a space with a player body and ghostCount ghost bodies.
func NewWorld(ghostCount int) *World {
	w := &World{space: cp.NewSpace()}

	w.player = w.space.AddBody(cp.NewKinematicBody())
	w.playerShape = w.space.AddShape(cp.NewCircle(w.player, bodyRadius, cp.Vector{}))
	w.playerShape.SetSensor(true)

	for i := 0; i < ghostCount; i++ {
		body := w.space.AddBody(cp.NewKinematicBody())
		shape := w.space.AddShape(cp.NewCircle(body, bodyRadius, cp.Vector{}))
		shape.SetSensor(true)
		shape.UserData = i
		w.ghosts = append(w.ghosts, body)
	}

	return w
}

// SyncPlayer mirrors the player's pixel position into the space. x and y
// are the sprite's top-left corner; the body sits at its center.
func (w *World) SyncPlayer(x, y int) {
	w.player.SetPosition(center(x, y))
}

// SyncGhost mirrors one ghost's pixel position into the space.
func (w *World) SyncGhost(i int, x, y int) {
	w.ghosts[i].SetPosition(center(x, y))
}

func center(x, y int) cp.Vector {
	return cp.Vector{X: float64(x) + 8, Y: float64(y) + 8}
}

// Overlaps steps the space and returns the indexes of every ghost body
// currently overlapping the player.
func (w *World) Overlaps() []int {
	w.space.Step(1.0 / 60.0)

	var hit []int
	w.space.ShapeQuery(w.playerShape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		if i, ok := shape.UserData.(int); ok {
			hit = append(hit, i)
		}
	})
	sort.Ints(hit)
	return hit
}
