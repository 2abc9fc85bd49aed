package specs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec unmarshals a yaml spec file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("specs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("specs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GhostsSpec is the top-level shape of ghosts.yaml.
type GhostsSpec struct {
	Ghosts []GhostSpec `yaml:"ghosts"`
}

// GhostSpec configures one ghost: its pursuit variant, speed, search
// budget, and the spritesheet cells used for each movement direction.
type GhostSpec struct {
	Name          string `yaml:"name"`
	Variant       string `yaml:"variant"`
	Velocity      int    `yaml:"velocity"`
	FlankDistance int    `yaml:"flank_distance"`
	LockDistance  int    `yaml:"lock_distance"`
	SearchDepth   int    `yaml:"search_depth"`

	Sprites DirectionalSprites `yaml:"sprites"`
}

// DirectionalSprites lists spritesheet frame origins per facing.
type DirectionalSprites struct {
	Right [][]int `yaml:"right"`
	Left  [][]int `yaml:"left"`
	Up    [][]int `yaml:"up"`
	Down  [][]int `yaml:"down"`
}

// SharedGhostSprites holds the frame sets every ghost swaps to while
// fleeing or returning to spawn after being eaten.
type SharedGhostSprites struct {
	Fleeing [][]int            `yaml:"fleeing"`
	Eaten   DirectionalSprites `yaml:"eaten"`
}

// GameSpec is the top-level shape of game.yaml.
type GameSpec struct {
	Lives                int `yaml:"lives"`
	SmallPickupPoints    int `yaml:"small_pickup_points"`
	LargePickupPoints    int `yaml:"large_pickup_points"`
	FruitPickupPoints    int `yaml:"fruit_pickup_points"`
	GhostEatenPoints     int `yaml:"ghost_eaten_points"`
	InvulnerabilityTicks int `yaml:"invulnerability_ticks"`
	PlayerVelocity       int `yaml:"player_velocity"`

	GhostSprites SharedGhostSprites `yaml:"ghost_sprites"`
	PlayerFrames [][]int            `yaml:"player_frames"`
}

// LoadGhosts reads ghosts.yaml.
func LoadGhosts() (GhostsSpec, error) {
	return LoadSpec[GhostsSpec]("ghosts.yaml")
}

// LoadGame reads game.yaml.
func LoadGame() (GameSpec, error) {
	return LoadSpec[GameSpec]("game.yaml")
}

// LoadDirectorScript reads the raw level director script source.
func LoadDirectorScript() ([]byte, error) {
	return Load("level.tengo")
}
