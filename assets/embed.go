package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sprites.png *.wav maps/*.txt
var assetsFS embed.FS

// SpriteSheet is the embedded game sprite sheet as an *ebiten.Image.
var SpriteSheet *ebiten.Image

var audioContext = audio.NewContext(44100)

func init() {
	SpriteSheet = loadImageFromAssets("sprites.png")
}

// LoadImage loads an embedded image asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAudioPlayer loads an embedded wav asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return audioContext.NewPlayer(stream)
}

// OpenMap opens a map file by name, e.g. "level1". An on-disk copy under
// assets/maps/ takes priority over the embedded one so maps can be
// tweaked without rebuilding.
func OpenMap(name string) (io.ReadCloser, error) {
	rel := "maps/" + name + ".txt"
	if f, err := os.Open(filepath.Join("assets", filepath.FromSlash(rel))); err == nil {
		return f, nil
	}
	f, err := assetsFS.Open(rel)
	if err != nil {
		return nil, fmt.Errorf("open map %q: %w", name, err)
	}
	return f, nil
}

// MapNames lists the embedded map names in lexical order.
func MapNames() []string {
	entries, err := fs.ReadDir(assetsFS, "maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func loadImageFromAssets(path string) *ebiten.Image {
	img, err := LoadImage(path)
	if err != nil {
		log.Fatalf("embed: load %s: %v", path, err)
	}
	return img
}
