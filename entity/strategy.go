package entity

import (
	"fmt"

	"pacgo/maze"
)

// PursuitView is the snapshot a strategy sees when picking a target.
type PursuitView struct {
	Ghost        maze.Cell
	Player       maze.Cell
	PlayerFacing maze.Direction
}

// TargetStrategy picks the cell a ghost should path towards for the
// given pursuit state. The controller overrides the choice with the
// ghost's spawn cell while the ghost is eaten.
type TargetStrategy interface {
	SelectTarget(state State, view PursuitView) maze.Cell
}

// DirectStrategy chases the player's exact cell. While the ghost is
// fleeing it heads for a point projected ahead of the player instead,
// putting distance between them.
type DirectStrategy struct {
	m             *maze.Maze
	avoidDistance int
}

// NewDirectStrategy builds a direct chaser. avoidDistance is how many
// cells ahead of the player the fleeing target is projected.
func NewDirectStrategy(m *maze.Maze, avoidDistance int) *DirectStrategy {
	return &DirectStrategy{m: m, avoidDistance: avoidDistance}
}

func (s *DirectStrategy) SelectTarget(state State, view PursuitView) maze.Cell {
	if state == StateFleeing {
		return s.m.FlankRoute(view.Player, s.avoidDistance, view.PlayerFacing)
	}
	return view.Player
}

// FlankStrategy aims ahead of the player along its facing direction,
// cutting off escape routes. Once the ghost closes within lockDistance
// it drops the prediction and chases the player's cell directly.
type FlankStrategy struct {
	m             *maze.Maze
	flankDistance int
	lockDistance  int
}

// NewFlankStrategy builds a flanking chaser.
func NewFlankStrategy(m *maze.Maze, flankDistance, lockDistance int) *FlankStrategy {
	return &FlankStrategy{m: m, flankDistance: flankDistance, lockDistance: lockDistance}
}

func (s *FlankStrategy) SelectTarget(state State, view PursuitView) maze.Cell {
	// Lock-on applies in every state, fleeing included.
	if view.Ghost.ManhattanDistance(view.Player) < s.lockDistance {
		return view.Player
	}
	return s.m.FlankRoute(view.Player, s.flankDistance, view.PlayerFacing)
}

// StrategyFor maps a configured variant name to its strategy. The
// speedflank variant shares flank targeting; its extra velocity comes
// from its ghost config.
func StrategyFor(m *maze.Maze, variant string, flankDistance, lockDistance int) (TargetStrategy, error) {
	switch variant {
	case "direct":
		return NewDirectStrategy(m, flankDistance), nil
	case "flank", "speedflank":
		return NewFlankStrategy(m, flankDistance, lockDistance), nil
	default:
		return nil, fmt.Errorf("entity: unknown ghost variant %q", variant)
	}
}
