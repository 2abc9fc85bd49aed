package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"pacgo/score"
)

// openStore opens the scoreboard database. The game runs without one
// when it cannot be opened; scores just are not kept.
func openStore(path string) *score.Store {
	s, err := score.Open(path)
	if err != nil {
		log.Printf("scoreboard unavailable: %v", err)
		return nil
	}
	return s
}

func main() {
	level := flag.String("level", "", "map name in assets/maps (basename, .txt optional)")
	debug := flag.Bool("debug", false, "show ghost state overlay and reload specs on change")
	mute := flag.Bool("mute", false, "disable sound effects")
	scoresPath := flag.String("scores", "scores.db", "path to the scoreboard database")
	flag.Parse()

	store := openStore(*scoresPath)
	if store != nil {
		defer store.Close()
	}

	game, err := NewGame(strings.TrimSuffix(*level, ".txt"), *debug, *mute, store)
	if err != nil {
		log.Fatal(err)
	}
	if game.watcher != nil {
		defer game.watcher.Close()
	}

	ebiten.SetWindowSize(baseWidth*3, baseHeight*3)
	ebiten.SetWindowTitle("pacgo")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
