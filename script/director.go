// Package script runs the tengo level director: a small embedded script
// that tunes per-level difficulty without recompiling the game.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Plan is the director's verdict for one level start.
type Plan struct {
	// MaxFruit bounds how many fruit pickups are scattered on the maze.
	MaxFruit int
	// InvulnerabilityTicks is how long a fruit power-up lasts.
	InvulnerabilityTicks int
}

// Director compiles the level script once and re-runs it with fresh
// inputs each time a level starts.
type Director struct {
	compiled *tengo.Compiled
}

// NewDirector compiles the script source.
func NewDirector(src []byte) (*Director, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math", "rand"))
	if err := s.Add("level", 0); err != nil {
		return nil, fmt.Errorf("script: add level: %w", err)
	}
	if err := s.Add("lives", 0); err != nil {
		return nil, fmt.Errorf("script: add lives: %w", err)
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile director: %w", err)
	}
	return &Director{compiled: compiled}, nil
}

// PlanLevel runs the director for a level about to start.
func (d *Director) PlanLevel(level, lives int) (Plan, error) {
	run := d.compiled.Clone()
	if err := run.Set("level", level); err != nil {
		return Plan{}, fmt.Errorf("script: set level: %w", err)
	}
	if err := run.Set("lives", lives); err != nil {
		return Plan{}, fmt.Errorf("script: set lives: %w", err)
	}
	if err := run.Run(); err != nil {
		return Plan{}, fmt.Errorf("script: run director: %w", err)
	}

	plan := Plan{
		MaxFruit:             run.Get("max_fruit").Int(),
		InvulnerabilityTicks: run.Get("invulnerability_ticks").Int(),
	}
	if plan.MaxFruit < 0 {
		plan.MaxFruit = 0
	}
	if plan.InvulnerabilityTicks <= 0 {
		return Plan{}, fmt.Errorf("script: director produced invulnerability_ticks=%d", plan.InvulnerabilityTicks)
	}
	return plan, nil
}
