package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.t2048/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandPath() = %q, want prefix %q", got, home)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandPath() changed an absolute path: %q", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{GameID: "2048", Player: "ann", Score: 100, MaxTile: 16},
		{GameID: "2048", Player: "bob", Score: 50, MaxTile: 8},
		{GameID: "2048", Player: "ann", Score: 200, MaxTile: 32},
		{GameID: "2048_endless", Player: "cy", Score: 500, MaxTile: 64},
	} {
		if _, err := store.SaveScore(ctx, e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, "2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Player != "ann" || scores[0].MaxTile != 32 {
		t.Errorf("top entry = %+v, want ann with max tile 32", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	endless, err := store.TopScores(ctx, "2048_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ctx, ScoreEntry{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(ctx, "test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores(ctx, "test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 scores without limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	high, err := store.HighScore(ctx, "2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 100})
	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 300})
	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 200})

	high, err = store.HighScore(ctx, "2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 100})
	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 200})
	store.SaveScore(ctx, ScoreEntry{GameID: "2048_endless", Score: 300})

	if err := store.ClearScores(ctx, "2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores(ctx, "2048", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(classic))
	}

	endless, _ := store.TopScores(ctx, "2048_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	empty, err := store.GameStats(ctx, "2048")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 100, MaxTile: 16})
	store.SaveScore(ctx, ScoreEntry{GameID: "2048", Score: 300, MaxTile: 64})

	stats, err := store.GameStats(ctx, "2048")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 64 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.AllGamesStats(ctx)
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["2048"].TotalScore != 400 {
		t.Errorf("AllGamesStats() = %v", all)
	}
}

func TestStoreSavedGames(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, err := store.LoadGame(ctx, "ann/game2048"); !errors.Is(err, t2048.ErrNoSave) {
		t.Fatalf("LoadGame() on empty store error = %v, want ErrNoSave", err)
	}

	if err := store.SaveGame(ctx, "ann/game2048", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.SaveGame(ctx, "ann/game2048", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}

	data, err := store.LoadGame(ctx, "ann/game2048")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("LoadGame() = %s, want latest save", data)
	}

	if err := store.DeleteGame(ctx, "ann/game2048"); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}
	if _, err := store.LoadGame(ctx, "ann/game2048"); !errors.Is(err, t2048.ErrNoSave) {
		t.Errorf("LoadGame() after delete error = %v, want ErrNoSave", err)
	}
	if err := store.DeleteGame(ctx, "missing"); err != nil {
		t.Errorf("DeleteGame() on missing key failed: %v", err)
	}
}

func TestStoreBestScores(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	best, err := store.LoadBest(ctx, "ann/best")
	if err != nil || best != 0 {
		t.Fatalf("LoadBest() = %d, %v; want 0, nil", best, err)
	}

	store.SaveBest(ctx, "ann/best", 400)
	store.SaveBest(ctx, "ann/best", 100)

	best, err = store.LoadBest(ctx, "ann/best")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 400 {
		t.Errorf("LoadBest() = %d, want 400 (lower value must not replace higher)", best)
	}
}

func TestStoreBacksSession(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	p := t2048.Persistence{Store: store, GameKey: "ann/game2048", BestKey: "ann/game2048-best"}

	s := p.Load(ctx, t2048.WithSeed(3))
	if err := p.Save(ctx, s); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	restored := p.Load(ctx, t2048.WithSeed(4))
	if restored.Board().Values() != s.Board().Values() {
		t.Errorf("restored board:\n%v\nwant\n%v", restored.Board(), s.Board())
	}
}
