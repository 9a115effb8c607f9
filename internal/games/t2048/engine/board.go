// Package engine implements the 2048 board transformation rules.
// It is pure: every operation takes a Board and returns a new one, and
// nothing here performs I/O or keeps state between calls.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// WinTile is the tile value that wins a classic game.
const WinTile = 2048

// Tile is a single numbered tile on the board.
// The zero Tile (Value == 0) represents an empty cell.
type Tile struct {
	ID       string
	Value    int
	Row, Col int

	IsNew    bool // Spawned this turn
	IsMerged bool // Produced by a merge this turn

	// MergedFrom holds the source tiles consumed by a merge. Only used for
	// animation and auditing.
	MergedFrom []Tile
}

// Empty reports whether the tile is an empty cell.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Pos returns the tile's grid position.
func (t Tile) Pos() Position {
	return Position{Row: t.Row, Col: t.Col}
}

// settled returns a copy with per-turn flags cleared.
func (t Tile) settled() Tile {
	t.IsNew = false
	t.IsMerged = false
	t.MergedFrom = nil
	return t
}

// Position is a cell coordinate.
type Position struct {
	Row, Col int
}

// Valid reports whether the position is on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Board is a 4x4 grid indexed [row][col].
type Board [BoardSize][BoardSize]Tile

// At returns the tile at p and whether the cell is occupied.
func (b Board) At(p Position) (Tile, bool) {
	if !p.Valid() {
		return Tile{}, false
	}
	t := b[p.Row][p.Col]
	return t, !t.Empty()
}

// Place returns a copy of the board with t written at its own position.
func (b Board) Place(t Tile) Board {
	if !t.Pos().Valid() {
		return b
	}
	b[t.Row][t.Col] = t
	return b
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b Board) EmptyCells() []Position {
	var cells []Position
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Empty() {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Tiles returns all occupied tiles in row-major order.
func (b Board) Tiles() []Tile {
	var tiles []Tile
	for r := range BoardSize {
		for c := range BoardSize {
			if !b[r][c].Empty() {
				tiles = append(tiles, b[r][c])
			}
		}
	}
	return tiles
}

// Values returns the tile values as a plain matrix (0 = empty).
func (b Board) Values() [BoardSize][BoardSize]int {
	var v [BoardSize][BoardSize]int
	for r := range BoardSize {
		for c := range BoardSize {
			v[r][c] = b[r][c].Value
		}
	}
	return v
}

// Settled returns a copy of the board with all per-turn flags cleared.
func (b Board) Settled() Board {
	for r := range BoardSize {
		for c := range BoardSize {
			b[r][c] = b[r][c].settled()
		}
	}
	return b
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Value > maxVal {
				maxVal = b[r][c].Value
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	sum := 0
	for r := range BoardSize {
		for c := range BoardSize {
			sum += b[r][c].Value
		}
	}
	return sum
}

// String renders the board values as a fixed-width grid.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := b[r][c].Value; v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%5s", cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromValues builds a board from a value matrix, giving each tile an ID
// from ids. Zero entries stay empty.
func FromValues(values [BoardSize][BoardSize]int, ids IDSource) Board {
	if ids == nil {
		ids = NewUUIDSource()
	}
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			if values[r][c] == 0 {
				continue
			}
			b[r][c] = Tile{ID: ids.NextID(), Value: values[r][c], Row: r, Col: c}
		}
	}
	return b
}

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in probe order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection parses a direction name or its single-letter form.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("engine: unknown direction %q", s)
	}
}
