package engine

import (
	"math/rand"
	"testing"
)

func TestSpawnLandsOnEmptyCell(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), DefaultFourProb, &SequentialIDs{})
	b := board([4][4]int{
		{2, 4, 8, 16},
		{2, 4, 8, 16},
		{2, 4, 8, 16},
		{2, 4, 0, 16},
	})

	next, tile, ok := s.Spawn(b)
	if !ok {
		t.Fatal("Spawn() on a board with one empty cell should succeed")
	}
	if tile.Row != 3 || tile.Col != 2 {
		t.Errorf("spawned at (%d,%d), want (3,2)", tile.Row, tile.Col)
	}
	if tile.Value != 2 && tile.Value != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", tile.Value)
	}
	if !tile.IsNew {
		t.Error("spawned tile should be marked new")
	}
	if next[3][2].ID != tile.ID {
		t.Error("spawned tile missing from returned board")
	}
	if !b[3][2].Empty() {
		t.Error("Spawn() modified its input board")
	}
}

func TestSpawnFullBoard(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), DefaultFourProb, nil)
	b := board([4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	next, _, ok := s.Spawn(b)
	if ok {
		t.Error("Spawn() on a full board should report false")
	}
	if next.Values() != b.Values() {
		t.Error("Spawn() on a full board changed it")
	}
}

func TestSpawnDistribution(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(42)), DefaultFourProb, &SequentialIDs{})

	const trials = 20000
	fours := 0
	cells := map[Position]int{}
	for range trials {
		_, tile, _ := s.Spawn(Board{})
		if tile.Value == 4 {
			fours++
		}
		cells[tile.Pos()]++
	}

	ratio := float64(fours) / trials
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("four ratio = %.3f, want about %.2f", ratio, DefaultFourProb)
	}
	if len(cells) != BoardSize*BoardSize {
		t.Errorf("spawns covered %d cells, want %d", len(cells), BoardSize*BoardSize)
	}
	for p, n := range cells {
		if n < trials/BoardSize/BoardSize/2 {
			t.Errorf("cell %+v chosen %d times, distribution too skewed", p, n)
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	a := NewSpawner(rand.New(rand.NewSource(99)), DefaultFourProb, nil)
	b := NewSpawner(rand.New(rand.NewSource(99)), DefaultFourProb, nil)

	ba := a.Seed(2)
	bb := b.Seed(2)

	if ba.Values() != bb.Values() {
		t.Errorf("same seed produced different boards:\n%v\n%v", ba, bb)
	}
	for _, tile := range ba.Tiles() {
		if other := bb[tile.Row][tile.Col]; other.ID != tile.ID {
			t.Errorf("same seed produced different IDs %q and %q", tile.ID, other.ID)
		}
	}
}

func TestSeed(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(3)), DefaultFourProb, &SequentialIDs{})
	b := s.Seed(2)
	if n := len(b.Tiles()); n != 2 {
		t.Errorf("Seed(2) placed %d tiles, want 2", n)
	}
}

func TestNewSpawnerClampsProbability(t *testing.T) {
	s := NewSpawner(nil, 3, nil)
	if s.fourProb != DefaultFourProb {
		t.Errorf("fourProb = %v, want default %v", s.fourProb, DefaultFourProb)
	}

	always := NewSpawner(rand.New(rand.NewSource(5)), 1, &SequentialIDs{})
	for range 50 {
		if _, tile, _ := always.Spawn(Board{}); tile.Value != 4 {
			t.Fatalf("fourProb 1 spawned %d", tile.Value)
		}
	}
}
