package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pacgo/assets"
	"pacgo/maze"
	"pacgo/score"
	"pacgo/script"
	"pacgo/specs"
	"pacgo/sprites"
)

const (
	hudHeight  = 24
	baseWidth  = maze.Width
	baseHeight = maze.Height + hudHeight
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modePaused
	modeEnded
)

type Game struct {
	mode  mode
	debug bool
	mute  bool
	quit  bool

	sheet      *sprites.Sheet
	ghostsSpec specs.GhostsSpec
	gameSpec   specs.GameSpec
	director   *script.Director

	sounds map[string]*audio.Player
	store  *score.Store

	levelNames []string
	levelIdx   int

	level *Level
	score int
	lives int

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	endUI   *ebitenui.UI

	topRuns []score.Entry
	watcher *specs.Watcher
}

func NewGame(startLevel string, debug, mute bool, store *score.Store) (*Game, error) {
	ghosts, err := specs.LoadGhosts()
	if err != nil {
		return nil, err
	}
	gameSpec, err := specs.LoadGame()
	if err != nil {
		return nil, err
	}
	src, err := specs.LoadDirectorScript()
	if err != nil {
		return nil, err
	}
	director, err := script.NewDirector(src)
	if err != nil {
		return nil, err
	}

	names := assets.MapNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("no embedded maps")
	}
	idx := 0
	if startLevel != "" {
		found := false
		for i, n := range names {
			if n == startLevel {
				idx = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown level %q, have %v", startLevel, names)
		}
	}

	g := &Game{
		debug:      debug,
		mute:       mute,
		sheet:      sprites.NewSheet(assets.SpriteSheet),
		ghostsSpec: ghosts,
		gameSpec:   gameSpec,
		director:   director,
		store:      store,
		levelNames: names,
		levelIdx:   idx,
		lives:      gameSpec.Lives,
	}
	g.loadSounds()
	g.menuUI = NewMenuUI(g)
	g.pauseUI = NewPauseUI(g)
	g.refreshTopRuns()

	if debug {
		w, err := specs.NewWatcher("specs", "assets/maps")
		if err != nil {
			log.Printf("spec watcher unavailable: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) loadSounds() {
	g.sounds = make(map[string]*audio.Player)
	for _, name := range []string{"chomp", "power", "ghost_eaten", "death"} {
		p, err := assets.LoadAudioPlayer(name + ".wav")
		if err != nil {
			log.Printf("load sound %s: %v", name, err)
			continue
		}
		g.sounds[name] = p
	}
}

func (g *Game) playSound(name string) {
	if g.mute {
		return
	}
	p, ok := g.sounds[name]
	if !ok {
		return
	}
	p.Rewind()
	p.Play()
}

func (g *Game) refreshTopRuns() {
	if g.store == nil {
		return
	}
	runs, err := g.store.Top(5)
	if err != nil {
		log.Printf("load top runs: %v", err)
		return
	}
	g.topRuns = runs
}

// startRun begins a fresh game from the selected starting level.
func (g *Game) startRun() {
	g.score = 0
	g.lives = g.gameSpec.Lives
	if err := g.startLevel(g.levelIdx); err != nil {
		log.Printf("start level: %v", err)
		return
	}
	g.mode = modePlaying
}

func (g *Game) startLevel(idx int) error {
	level, err := NewLevel(g, g.levelNames[idx], idx+1)
	if err != nil {
		return err
	}
	g.levelIdx = idx
	g.level = level
	return nil
}

func (g *Game) endRun(message string) {
	if g.store != nil {
		if _, err := g.store.Record("player", g.levelIdx+1, g.score); err != nil {
			log.Printf("record run: %v", err)
		}
		g.refreshTopRuns()
	}
	g.endUI = NewEndUI(g, message)
	g.mode = modeEnded
}

// reloadSpecs re-reads the on-disk spec overrides and rebuilds the
// running level with them. Score and lives carry over.
func (g *Game) reloadSpecs() {
	ghosts, err := specs.LoadGhosts()
	if err != nil {
		log.Printf("reload ghosts spec: %v", err)
		return
	}
	gameSpec, err := specs.LoadGame()
	if err != nil {
		log.Printf("reload game spec: %v", err)
		return
	}
	src, err := specs.LoadDirectorScript()
	if err != nil {
		log.Printf("reload director script: %v", err)
		return
	}
	director, err := script.NewDirector(src)
	if err != nil {
		log.Printf("recompile director: %v", err)
		return
	}

	g.ghostsSpec = ghosts
	g.gameSpec = gameSpec
	g.director = director

	if g.level != nil {
		if err := g.startLevel(g.levelIdx); err != nil {
			log.Printf("rebuild level after spec reload: %v", err)
		}
	}
	log.Print("specs reloaded")
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Reload:
		g.reloadSpecs()
	case err := <-g.watcher.Errors:
		log.Printf("spec watcher: %v", err)
	default:
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	switch g.mode {
	case modeMenu:
		g.menuUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startRun()
		}

	case modePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modePaused
			return nil
		}
		g.handleMovementKeys()

		switch g.level.Update(g) {
		case tickLifeLost:
			g.lives--
			if g.lives <= 0 {
				g.endRun("Game Over")
				return nil
			}
			g.level.ResetScene()

		case tickCleared:
			next := g.levelIdx + 1
			if next >= len(g.levelNames) {
				g.endRun("You Win")
				return nil
			}
			if err := g.startLevel(next); err != nil {
				log.Printf("advance level: %v", err)
				g.endRun("You Win")
			}
		}

	case modePaused:
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modePlaying
		}

	case modeEnded:
		g.endUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.mode = modeMenu
		}
	}

	return nil
}

func (g *Game) handleMovementKeys() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		g.level.player.SetDirection(maze.Up)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		g.level.player.SetDirection(maze.Down)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		g.level.player.SetDirection(maze.Left)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		g.level.player.SetDirection(maze.Right)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeMenu:
		g.drawMenuScores(screen)
		g.menuUI.Draw(screen)

	case modePlaying, modePaused, modeEnded:
		if g.level != nil {
			g.level.Draw(screen)
		}
		g.drawHUD(screen)
		if g.mode == modePaused {
			g.pauseUI.Draw(screen)
		}
		if g.mode == modeEnded {
			g.endUI.Draw(screen)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score %d   Lives %d   Level %d", g.score, g.lives, g.levelIdx+1),
		4, maze.Height+4)

	if g.debug && g.level != nil {
		for i, ghost := range g.level.reg.Ghosts() {
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("%s %s %v", ghost.Name, ghost.State(), ghost.Cell()),
				4, 14*i)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f", ebiten.ActualFPS()), baseWidth-64, maze.Height+4)
	}
}

func (g *Game) drawMenuScores(screen *ebiten.Image) {
	for i, e := range g.topRuns {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%d. %-8s %6d  lvl %d", i+1, e.Name, e.Points, e.Level),
			8, baseHeight-14*(len(g.topRuns)-i)-4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
