package main

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"pacgo/assets"
	"pacgo/collision"
	"pacgo/entity"
	"pacgo/maze"
	"pacgo/script"
	"pacgo/specs"
	"pacgo/sprites"
)

// fruitIntervalTicks is how long after a fruit is collected (or the
// level starts) the next one appears.
const fruitIntervalTicks = 600

type tickResult int

const (
	tickNone tickResult = iota
	tickLifeLost
	tickCleared
)

// Level is one running scene: the maze, its pickups, and every entity
// on it. Score and lives live on the Game; the level reports what
// happened each tick and the game reacts.
type Level struct {
	m      *maze.Maze
	reg    *entity.Registry
	player *entity.Player
	board  *entity.PickupBoard
	world  *collision.World
	plan   script.Plan

	fruitLeft  int
	fruitTimer int
	rng        *rand.Rand
}

// NewLevel loads a map by name and assembles the scene around it.
func NewLevel(g *Game, name string, levelNumber int) (*Level, error) {
	r, err := assets.OpenMap(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	m, err := maze.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	plan, err := g.director.PlanLevel(levelNumber, g.lives)
	if err != nil {
		return nil, err
	}
	// game.yaml holds the power-up ceiling; the director only scales
	// it down for later levels.
	if plan.InvulnerabilityTicks > g.gameSpec.InvulnerabilityTicks {
		plan.InvulnerabilityTicks = g.gameSpec.InvulnerabilityTicks
	}

	reg := entity.NewRegistry()

	playerFrames, err := g.sheet.Frames(g.gameSpec.PlayerFrames)
	if err != nil {
		return nil, err
	}
	player := entity.NewPlayer(m, g.gameSpec.PlayerVelocity, sprites.NewAnimation(playerFrames))
	reg.SetPlayer(player)

	spawns := m.GhostSpawns()
	if len(spawns) == 0 {
		return nil, fmt.Errorf("level %s: no ghost spawn cells", name)
	}
	for i, spec := range g.ghostsSpec.Ghosts {
		strategy, err := entity.StrategyFor(m, spec.Variant, spec.FlankDistance, spec.LockDistance)
		if err != nil {
			return nil, err
		}
		art, err := ghostArt(g.sheet, spec, g.gameSpec.GhostSprites)
		if err != nil {
			return nil, err
		}
		ghost, err := entity.NewGhost(spec.Name, m, reg, strategy, spec.Velocity, spec.SearchDepth, spawns[i%len(spawns)], art)
		if err != nil {
			return nil, err
		}
		reg.AddGhost(ghost)
		player.OnVulnerabilityChanged(ghost.OnPlayerVulnerabilityChanged)
	}

	return &Level{
		m:          m,
		reg:        reg,
		player:     player,
		board:      entity.NewPickupBoard(m),
		world:      collision.NewWorld(len(reg.Ghosts())),
		plan:       plan,
		fruitLeft:  plan.MaxFruit,
		fruitTimer: fruitIntervalTicks,
		rng:        rand.New(rand.NewSource(int64(levelNumber))),
	}, nil
}

// ghostArt slices one ghost's animations out of the sheet.
func ghostArt(sheet *sprites.Sheet, spec specs.GhostSpec, shared specs.SharedGhostSprites) (*entity.GhostArt, error) {
	walk, err := directionalAnims(sheet, spec.Sprites)
	if err != nil {
		return nil, err
	}
	eaten, err := directionalAnims(sheet, shared.Eaten)
	if err != nil {
		return nil, err
	}
	fleeingFrames, err := sheet.Frames(shared.Fleeing)
	if err != nil {
		return nil, err
	}
	return &entity.GhostArt{
		Walk:    walk,
		Fleeing: sprites.NewAnimation(fleeingFrames),
		Eaten:   eaten,
	}, nil
}

func directionalAnims(sheet *sprites.Sheet, d specs.DirectionalSprites) (map[maze.Direction]*sprites.Animation, error) {
	out := make(map[maze.Direction]*sprites.Animation, 4)
	for dir, origins := range map[maze.Direction][][]int{
		maze.Right: d.Right,
		maze.Left:  d.Left,
		maze.Up:    d.Up,
		maze.Down:  d.Down,
	} {
		frames, err := sheet.Frames(origins)
		if err != nil {
			return nil, err
		}
		out[dir] = sprites.NewAnimation(frames)
	}
	return out, nil
}

// Update runs one simulation tick in fixed order: player, pickups,
// ghosts, then collision consequences.
func (l *Level) Update(g *Game) tickResult {
	l.player.Update()

	if p, ok := l.board.Consume(l.player.Cell()); ok {
		switch p.Kind {
		case entity.PickupSmall:
			g.score += g.gameSpec.SmallPickupPoints
			g.playSound("chomp")
		case entity.PickupLarge:
			g.score += g.gameSpec.LargePickupPoints
			g.playSound("chomp")
		case entity.PickupFruit:
			g.score += g.gameSpec.FruitPickupPoints
			l.player.PowerUp(l.plan.InvulnerabilityTicks)
			g.playSound("power")
		}
	}

	for _, ghost := range l.reg.Ghosts() {
		ghost.Update()
	}

	l.world.SyncPlayer(l.player.X, l.player.Y)
	for i, ghost := range l.reg.Ghosts() {
		l.world.SyncGhost(i, ghost.X, ghost.Y)
	}
	for _, i := range l.world.Overlaps() {
		ghost := l.reg.Ghosts()[i]
		if ghost.State() == entity.StateEaten {
			continue
		}
		if l.player.Vulnerable() {
			g.playSound("death")
			return tickLifeLost
		}
		ghost.Eat()
		g.score += g.gameSpec.GhostEatenPoints
		g.playSound("ghost_eaten")
	}

	if l.fruitLeft > 0 {
		l.fruitTimer--
		if l.fruitTimer <= 0 {
			if l.board.SpawnFruit(l.m, l.rng, l.player.Cell()) {
				l.fruitLeft--
			}
			l.fruitTimer = fruitIntervalTicks
		}
	}

	if l.board.Remaining() == 0 {
		return tickCleared
	}
	return tickNone
}

// ResetScene puts every entity back on its spawn after a life is lost.
// Collected pickups stay collected.
func (l *Level) ResetScene() {
	l.reg.Reset()
}

// Draw renders the maze, pickups, then entities.
func (l *Level) Draw(screen *ebiten.Image) {
	l.m.Draw(screen)

	for _, p := range l.board.All() {
		px, py := p.Cell.Pixel()
		cx := float32(px) + maze.GridSize/2
		cy := float32(py) + maze.GridSize/2
		switch p.Kind {
		case entity.PickupSmall:
			vector.DrawFilledCircle(screen, cx, cy, 2, colornames.Navajowhite, false)
		case entity.PickupLarge:
			vector.DrawFilledCircle(screen, cx, cy, 5, colornames.Navajowhite, false)
		case entity.PickupFruit:
			vector.DrawFilledCircle(screen, cx, cy, 6, colornames.Crimson, true)
		}
	}

	for _, ghost := range l.reg.Ghosts() {
		ghost.Draw(screen)
	}
	l.player.Draw(screen)
}
