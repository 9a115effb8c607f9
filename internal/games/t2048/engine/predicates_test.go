package engine

import "testing"

func TestCanMove(t *testing.T) {
	tests := []struct {
		name   string
		values [4][4]int
		want   bool
	}{
		{
			name: "empty cell",
			values: [4][4]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 0},
			},
			want: true,
		},
		{
			name: "horizontal pair",
			values: [4][4]int{
				{2, 2, 4, 8},
				{4, 8, 16, 32},
				{8, 16, 32, 64},
				{16, 32, 64, 128},
			},
			want: true,
		},
		{
			name: "vertical pair",
			values: [4][4]int{
				{2, 4, 8, 16},
				{2, 8, 16, 32},
				{4, 16, 32, 64},
				{8, 32, 64, 128},
			},
			want: true,
		},
		{
			name: "checkerboard",
			values: [4][4]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name:   "empty board",
			values: [4][4]int{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(board(tt.values)); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMoveInDirection(t *testing.T) {
	b := board([4][4]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{16, 0, 0, 0},
	})

	want := map[Direction]bool{
		DirLeft:  false,
		DirRight: true,
		DirUp:    false,
		DirDown:  false,
	}
	for dir, expected := range want {
		if got := CanMoveInDirection(b, dir); got != expected {
			t.Errorf("CanMoveInDirection(%s) = %v, want %v", dir, got, expected)
		}
	}

	legal := LegalMoves(b)
	if len(legal) != 1 || legal[0] != DirRight {
		t.Errorf("LegalMoves() = %v, want [right]", legal)
	}
}

func TestCanMoveAgreesWithMove(t *testing.T) {
	b := board([4][4]int{
		{2, 2, 0, 4},
		{0, 0, 0, 0},
		{8, 0, 8, 0},
		{0, 4, 0, 2},
	})
	for _, dir := range Directions {
		if CanMoveInDirection(b, dir) != Move(b, dir).Moved {
			t.Errorf("%s: predicate disagrees with Move", dir)
		}
	}
}

func TestHasWon(t *testing.T) {
	tests := []struct {
		name   string
		values [4][4]int
		target int
		want   bool
	}{
		{"below target", [4][4]int{{1024, 512}}, WinTile, false},
		{"exact target", [4][4]int{{2048}}, WinTile, true},
		{"beyond target", [4][4]int{{0, 0, 4096}}, WinTile, true},
		{"custom target", [4][4]int{{128}}, 128, true},
		{"disabled target", [4][4]int{{4096}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasWonAt(board(tt.values), tt.target); got != tt.want {
				t.Errorf("HasWonAt(%d) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}

	if !HasWon(board([4][4]int{{2048}})) {
		t.Error("HasWon() should detect a 2048 tile")
	}
}
