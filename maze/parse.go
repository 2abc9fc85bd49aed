package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidMap wraps every map parsing failure.
var ErrInvalidMap = errors.New("maze: invalid map")

// Map files start with a header line "ID - NAME" followed by Rows lines of
// Columns space-separated cell digits.
var headerPattern = regexp.MustCompile(`^(\d+)\s*-\s*([\w ]+)$`)

// Parse reads a map file.
func Parse(r io.Reader) (*Maze, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing header line", ErrInvalidMap)
	}
	match := headerPattern.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
	if match == nil {
		return nil, fmt.Errorf("%w: malformed header line, want 'ID - NAME'", ErrInvalidMap)
	}
	id, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: header id: %v", ErrInvalidMap, err)
	}

	m := &Maze{
		ID:    id,
		Name:  strings.TrimSpace(match[2]),
		cells: make([]int, Columns*Rows),
	}

	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if row >= Rows {
			return nil, fmt.Errorf("%w: too many data lines, want %d", ErrInvalidMap, Rows)
		}

		fields := strings.Fields(line)
		if len(fields) != Columns {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrInvalidMap, row+2, len(fields), Columns)
		}
		for col, field := range fields {
			kind, err := strconv.Atoi(field)
			if err != nil || kind < KindWall || kind > KindGhostSpawnC {
				return nil, fmt.Errorf("%w: line %d col %d: bad cell %q", ErrInvalidMap, row+2, col+1, field)
			}
			m.cells[row*Columns+col] = kind
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}
	if row != Rows {
		return nil, fmt.Errorf("%w: found %d data lines, want %d", ErrInvalidMap, row, Rows)
	}

	if err := m.scanSpawns(); err != nil {
		return nil, err
	}
	return m, nil
}

// scanSpawns records the player and ghost spawn cells.
func (m *Maze) scanSpawns() error {
	foundPlayer := false
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			switch m.cells[y*Columns+x] {
			case KindPlayerSpawn:
				if foundPlayer {
					return fmt.Errorf("%w: multiple player spawn points", ErrInvalidMap)
				}
				foundPlayer = true
				m.playerSpawn = Cell{X: x, Y: y}
			case KindGhostSpawnA, KindGhostSpawnB, KindGhostSpawnC:
				m.ghostSpawns = append(m.ghostSpawns, Cell{X: x, Y: y})
			}
		}
	}
	if !foundPlayer {
		return fmt.Errorf("%w: no player spawn point", ErrInvalidMap)
	}
	return nil
}
