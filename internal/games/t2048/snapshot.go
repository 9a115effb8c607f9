package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// Snapshot captures the observable game state for determinism testing and
// replay.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Score   int
	Best    int
	Board   [engine.BoardSize][engine.BoardSize]int
	IDs     [engine.BoardSize][engine.BoardSize]string
	MaxTile int
	Status  Status
	HasWon  bool
	CanUndo bool
	Paused  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.session.State()

	snap := Snapshot{
		Tick:    g.tick,
		Mode:    g.mode,
		Score:   st.Score,
		Best:    st.BestScore,
		Board:   st.Board.Values(),
		MaxTile: st.Board.MaxTile(),
		Status:  st.Status,
		HasWon:  st.HasWonBefore,
		CanUndo: st.CanUndo,
		Paused:  g.paused,
	}
	for r := range engine.BoardSize {
		for c := range engine.BoardSize {
			snap.IDs[r][c] = st.Board[r][c].ID
		}
	}
	return snap
}
