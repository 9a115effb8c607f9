package storage

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var _ t2048.SaveStore = (*Store)(nil)

// LoadGame returns the saved game under key, or t2048.ErrNoSave.
func (s *Store) LoadGame(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM saved_games WHERE key = ?", key,
	).Scan(&data)
	if isNoRows(err) {
		return nil, t2048.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game %q: %w", key, err)
	}
	return data, nil
}

// SaveGame stores data under key, replacing any previous save.
func (s *Store) SaveGame(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saved_games (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", key, err)
	}
	return nil
}

// DeleteGame removes the save under key. Missing saves are not an error.
func (s *Store) DeleteGame(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM saved_games WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete game %q: %w", key, err)
	}
	return nil
}

// LoadBest returns the best score under key, or 0.
func (s *Store) LoadBest(ctx context.Context, key string) (int, error) {
	var best int
	err := s.db.QueryRowContext(ctx,
		"SELECT best FROM best_scores WHERE key = ?", key,
	).Scan(&best)
	if isNoRows(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score %q: %w", key, err)
	}
	return best, nil
}

// SaveBest records best under key. A lower value never replaces a higher one.
func (s *Store) SaveBest(ctx context.Context, key string, best int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO best_scores (key, best, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET best = MAX(best, excluded.best), updated_at = excluded.updated_at`,
		key, best,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score %q: %w", key, err)
	}
	return nil
}
