package t2048

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// ErrNoSave is returned by a SaveStore when no game is stored under a key.
var ErrNoSave = errors.New("t2048: no saved game")

// saveVersion is bumped whenever the saved layout changes incompatibly.
const saveVersion = 1

// SaveStore persists encoded sessions and best scores.
type SaveStore interface {
	LoadGame(ctx context.Context, key string) ([]byte, error)
	SaveGame(ctx context.Context, key string, data []byte) error
	DeleteGame(ctx context.Context, key string) error
	LoadBest(ctx context.Context, key string) (int, error)
	SaveBest(ctx context.Context, key string, best int) error
}

type savedTile struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

type savedBoard [engine.BoardSize][engine.BoardSize]*savedTile

type savedSnapshot struct {
	Board savedBoard `json:"board"`
	Score int        `json:"score"`
}

type saveFile struct {
	Version int            `json:"version"`
	Board   savedBoard     `json:"board"`
	Score   int            `json:"score"`
	Status  Status         `json:"status"`
	HasWon  bool           `json:"has_won"`
	CanUndo bool           `json:"can_undo"`
	Undo    *savedSnapshot `json:"undo"`
}

func encodeBoard(b engine.Board) savedBoard {
	var out savedBoard
	for r := range engine.BoardSize {
		for c := range engine.BoardSize {
			t := b[r][c]
			if t.Empty() {
				continue
			}
			out[r][c] = &savedTile{ID: t.ID, Value: t.Value}
		}
	}
	return out
}

func decodeBoard(in savedBoard, ids engine.IDSource) (engine.Board, error) {
	var b engine.Board
	for r := range engine.BoardSize {
		for c := range engine.BoardSize {
			st := in[r][c]
			if st == nil {
				continue
			}
			if !validTileValue(st.Value) {
				return b, fmt.Errorf("t2048: invalid tile value %d at (%d,%d)", st.Value, r, c)
			}
			id := st.ID
			if id == "" {
				id = ids.NextID()
			}
			b[r][c] = engine.Tile{ID: id, Value: st.Value, Row: r, Col: c}
		}
	}
	return b, nil
}

// validTileValue accepts powers of two from 2 upward.
func validTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Encode serializes the session for a SaveStore.
func (s *Session) Encode() ([]byte, error) {
	f := saveFile{
		Version: saveVersion,
		Board:   encodeBoard(s.board),
		Score:   s.score,
		Status:  s.status,
		HasWon:  s.hasWon,
		CanUndo: s.undo != nil,
	}
	if s.undo != nil {
		f.Undo = &savedSnapshot{Board: encodeBoard(s.undo.board), Score: s.undo.score}
	}
	return json.Marshal(f)
}

// Decode restores a session encoded by Encode. opts apply as for
// NewSession; the restored best score is at least the restored score.
func Decode(data []byte, opts ...Option) (*Session, error) {
	var f saveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("t2048: cannot parse save: %w", err)
	}
	if f.Version != saveVersion {
		return nil, fmt.Errorf("t2048: unsupported save version %d", f.Version)
	}
	if !f.Status.Valid() {
		return nil, fmt.Errorf("t2048: unknown status %q", f.Status)
	}
	if f.Score < 0 {
		return nil, fmt.Errorf("t2048: negative score %d", f.Score)
	}

	s := newSession(opts...)

	board, err := decodeBoard(f.Board, s.spawner.IDs())
	if err != nil {
		return nil, err
	}
	if len(board.Tiles()) == 0 {
		return nil, errors.New("t2048: saved board is empty")
	}

	s.board = board
	s.score = f.Score
	s.best = max(s.best, f.Score)
	s.status = f.Status
	s.hasWon = f.HasWon || f.Status == StatusWon
	if s.status == StatusPlaying && !engine.CanMove(board) {
		s.status = StatusLost
	}

	if f.CanUndo && f.Undo != nil {
		prev, err := decodeBoard(f.Undo.Board, s.spawner.IDs())
		if err != nil {
			return nil, err
		}
		if len(prev.Tiles()) == 0 {
			return nil, errors.New("t2048: saved undo board is empty")
		}
		if f.Undo.Score < 0 {
			return nil, fmt.Errorf("t2048: negative undo score %d", f.Undo.Score)
		}
		s.undo = &snapshot{board: prev, score: f.Undo.Score}
	}
	return s, nil
}

// Persistence binds a session to a SaveStore under fixed keys.
type Persistence struct {
	Store   SaveStore
	GameKey string
	BestKey string
	Logger  *log.Logger
}

func (p Persistence) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}

// Load returns the stored session, or a fresh one when nothing usable is
// stored. It never fails; storage and decode problems are logged.
func (p Persistence) Load(ctx context.Context, opts ...Option) *Session {
	best, err := p.Store.LoadBest(ctx, p.BestKey)
	if err != nil {
		p.logger().Debug("cannot load best score", "key", p.BestKey, "error", err)
	}
	opts = append(opts, WithBestScore(best))

	data, err := p.Store.LoadGame(ctx, p.GameKey)
	switch {
	case errors.Is(err, ErrNoSave):
		return NewSession(opts...)
	case err != nil:
		p.logger().Debug("cannot load saved game", "key", p.GameKey, "error", err)
		return NewSession(opts...)
	}

	s, err := Decode(data, opts...)
	if err != nil {
		p.logger().Debug("discarding saved game", "key", p.GameKey, "error", err)
		return NewSession(opts...)
	}
	return s
}

// Save writes the session and best score. Lost games are removed so the
// next load starts fresh.
func (p Persistence) Save(ctx context.Context, s *Session) error {
	if err := p.Store.SaveBest(ctx, p.BestKey, s.best); err != nil {
		return fmt.Errorf("t2048: cannot save best score: %w", err)
	}

	if s.status == StatusLost {
		if err := p.Store.DeleteGame(ctx, p.GameKey); err != nil {
			return fmt.Errorf("t2048: cannot delete saved game: %w", err)
		}
		return nil
	}

	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("t2048: cannot encode game: %w", err)
	}
	if err := p.Store.SaveGame(ctx, p.GameKey, data); err != nil {
		return fmt.Errorf("t2048: cannot save game: %w", err)
	}
	return nil
}
