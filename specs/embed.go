// Package specs holds the data-driven configuration for the game: ghost
// behavior specs, global game tuning, and the level director script. All
// files are embedded; an on-disk specs/ directory, when present, takes
// priority so values can be tweaked without rebuilding.
package specs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml *.tengo
var specsFS embed.FS

// Load reads a spec file, preferring an on-disk override.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskSpecPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "specs/")
}

func diskSpecPath(clean string) string {
	return filepath.Join("specs", filepath.FromSlash(clean))
}
