package engine

import (
	"strings"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"DOWN", DirDown, false},
		{" l ", DirLeft, false},
		{"r", DirRight, false},
		{"sideways", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	for _, dir := range Directions {
		back, err := ParseDirection(dir.String())
		if err != nil || back != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), back, err)
		}
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should be invalid")
	}
}

func TestBoardQueries(t *testing.T) {
	b := board([4][4]int{
		{2, 0, 0, 0},
		{0, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 8},
	})

	if got := len(b.EmptyCells()); got != 13 {
		t.Errorf("EmptyCells() = %d cells, want 13", got)
	}
	if got := b.MaxTile(); got != 64 {
		t.Errorf("MaxTile() = %d, want 64", got)
	}
	if got := b.Sum(); got != 74 {
		t.Errorf("Sum() = %d, want 74", got)
	}
	if tile, ok := b.At(Position{1, 1}); !ok || tile.Value != 64 {
		t.Errorf("At(1,1) = %+v, %v", tile, ok)
	}
	if _, ok := b.At(Position{4, 0}); ok {
		t.Error("At() off the board should report false")
	}
	if !strings.Contains(b.String(), "64") {
		t.Errorf("String() missing tile value:\n%s", b)
	}
}

func TestBoardSettled(t *testing.T) {
	b := board([4][4]int{{2}})
	b[0][0].IsNew = true
	b[0][0].MergedFrom = []Tile{{Value: 1}}

	s := b.Settled()
	if s[0][0].IsNew || s[0][0].MergedFrom != nil {
		t.Errorf("Settled() kept per-turn flags: %+v", s[0][0])
	}
	if !b[0][0].IsNew {
		t.Error("Settled() modified its receiver")
	}
}

func TestPlaceOffBoard(t *testing.T) {
	var b Board
	got := b.Place(Tile{Value: 2, Row: 7, Col: 0})
	if len(got.Tiles()) != 0 {
		t.Error("Place() off the board should be ignored")
	}
}
