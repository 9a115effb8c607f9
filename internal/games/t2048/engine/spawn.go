package engine

import (
	"math/rand"
	"time"
)

// DefaultFourProb is the chance a spawned tile is a 4 instead of a 2.
const DefaultFourProb = 0.10

// Spawner places new tiles into empty cells.
// It is not safe for concurrent use; each session owns its own.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
	ids      IDSource
}

// NewSpawner creates a spawner drawing from rng.
// A nil rng is seeded from the clock. A nil ids draws UUIDs from rng so a
// seeded game is fully reproducible.
func NewSpawner(rng *rand.Rand, fourProb float64, ids IDSource) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if fourProb < 0 || fourProb > 1 {
		fourProb = DefaultFourProb
	}
	if ids == nil {
		ids = NewSeededUUIDSource(rng)
	}
	return &Spawner{rng: rng, fourProb: fourProb, ids: ids}
}

// IDs returns the source used to name spawned tiles.
func (s *Spawner) IDs() IDSource {
	return s.ids
}

// Spawn places a 2 (or, with probability fourProb, a 4) on a uniformly
// chosen empty cell. On a full board it returns b unchanged and false.
func (s *Spawner) Spawn(b Board) (Board, Tile, bool) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return b, Tile{}, false
	}

	cell := cells[s.rng.Intn(len(cells))]

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	t := Tile{
		ID:    s.ids.NextID(),
		Value: value,
		Row:   cell.Row,
		Col:   cell.Col,
		IsNew: true,
	}
	return b.Place(t), t, true
}

// Seed returns a board with n spawned tiles.
func (s *Spawner) Seed(n int) Board {
	var b Board
	for range n {
		b, _, _ = s.Spawn(b)
	}
	return b
}
