// Package nav provides grid pathfinding for ghost pursuit: a bounded
// weighted A* search and the step-cursor Path it produces.
package nav

import "pacgo/maze"

// Path is an ordered run of grid cells from a search start to its target.
// A cursor addresses the step currently being followed; it only ever moves
// forward. Paths are built by PathFinder.FindPath and are not mutated
// afterwards.
type Path struct {
	steps  []maze.Cell
	cursor int
}

func newPath(steps []maze.Cell) *Path {
	return &Path{steps: steps, cursor: -1}
}

// StepAt returns the step at index i, if it exists.
func (p *Path) StepAt(i int) (maze.Cell, bool) {
	if i < 0 || i >= len(p.steps) {
		return maze.Cell{}, false
	}
	return p.steps[i], true
}

// CurrentStep returns the step under the cursor. Before the first Next
// call the cursor is unset; CurrentStep then advances to the first step.
func (p *Path) CurrentStep() (maze.Cell, bool) {
	if p.cursor == -1 {
		return p.Next()
	}
	return p.StepAt(p.cursor)
}

// Next advances the cursor one step and returns the new current step.
func (p *Path) Next() (maze.Cell, bool) {
	p.cursor++
	return p.StepAt(p.cursor)
}

// HasNext reports whether a step exists past the cursor.
func (p *Path) HasNext() bool {
	return p.cursor+1 < len(p.steps)
}

// Walk moves the cursor forward by exactly n steps. The move only commits
// when the target index is in bounds; otherwise the cursor is left
// untouched and ok is false.
func (p *Path) Walk(n int) (maze.Cell, bool) {
	step, ok := p.StepAt(p.cursor + n)
	if ok {
		p.cursor += n
	}
	return step, ok
}

// StepCount returns the number of steps in the path.
func (p *Path) StepCount() int {
	return len(p.steps)
}
