package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/sweeper-arcade/internal/core"
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

func save(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := store.SaveScore(ScoreEntry{GameID: gameID, Player: "tester", Score: sc}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(ScoreEntry{GameID: "minesweeper", Player: "alice", SessionID: "abc-123", Score: 42})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveScore() should return the row id")
	}

	scores, err := store.TopScores("minesweeper", 10, core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	got := scores[0]
	if got.ID != id || got.GameID != "minesweeper" || got.Player != "alice" || got.SessionID != "abc-123" || got.Score != 42 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if got.CreatedAt.IsZero() || time.Since(got.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt not parsed: %v", got.CreatedAt)
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 1}); err == nil {
		t.Error("SaveScore() without a game id should fail")
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "minesweeper", 100, 50, 200)
	save(t, store, "other", 5)

	tests := []struct {
		name     string
		order    core.ScoreOrder
		expected []int
	}{
		{"lower is better", core.ScoreLowerIsBetter, []int{50, 100, 200}},
		{"higher is better", core.ScoreHigherIsBetter, []int{200, 100, 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("minesweeper", 10, tc.order)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tc.expected) {
				t.Fatalf("Expected %d scores, got %d", len(tc.expected), len(scores))
			}
			for i, want := range tc.expected {
				if scores[i].Score != want {
					t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
				}
			}
		})
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "test", 100, 200, 300, 400, 500)

	scores, err := store.TopScores("test", 3, core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 100 || scores[1].Score != 200 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	for _, player := range []string{"first", "second", "third"} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "minesweeper", Player: player, Score: 30}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("minesweeper", 10, core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if scores[i].Player != want {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, want)
		}
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestScore("minesweeper", core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok {
		t.Error("empty game should have no best score")
	}

	save(t, store, "minesweeper", 100, 30, 200)

	best, ok, err := store.BestScore("minesweeper", core.ScoreLowerIsBetter)
	if err != nil || !ok || best != 30 {
		t.Errorf("BestScore(lower) = %d, %v, %v; expected 30", best, ok, err)
	}

	best, ok, err = store.BestScore("minesweeper", core.ScoreHigherIsBetter)
	if err != nil || !ok || best != 200 {
		t.Errorf("BestScore(higher) = %d, %v, %v; expected 200", best, ok, err)
	}
}

func TestStoreRecordScore(t *testing.T) {
	store := openTestStore(t)
	order := core.ScoreLowerIsBetter

	steps := []struct {
		score   int
		newBest bool
	}{
		{60, true},  // first result is always a best
		{90, false}, // slower
		{60, false}, // tie is not a new best
		{45, true},  // faster
	}

	for i, step := range steps {
		res, err := store.RecordScore(ScoreEntry{GameID: "minesweeper", Score: step.score}, order)
		if err != nil {
			t.Fatalf("RecordScore() #%d failed: %v", i, err)
		}
		if res.NewBest != step.newBest {
			t.Errorf("RecordScore(%d) NewBest = %v, expected %v", step.score, res.NewBest, step.newBest)
		}
		if res.HadBest != (i > 0) {
			t.Errorf("RecordScore(%d) HadBest = %v", step.score, res.HadBest)
		}
	}

	all, err := store.AllScores("minesweeper", order)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != len(steps) {
		t.Errorf("every recorded score should be stored, got %d", len(all))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "minesweeper", 100, 200)
	save(t, store, "minesweeper_expert", 300)

	n, err := store.ClearScores("minesweeper")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d rows, expected 2", n)
	}

	scores, _ := store.TopScores("minesweeper", 10, core.ScoreLowerIsBetter)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	expert, _ := store.TopScores("minesweeper_expert", 10, core.ScoreLowerIsBetter)
	if len(expert) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		save(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test", core.ScoreHigherIsBetter)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected best score first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("minesweeper", core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for an empty game: %+v", empty)
	}

	save(t, store, "minesweeper", 10, 20, 30)
	save(t, store, "points", 5, 15)

	stats, err := store.GetGameStats("minesweeper", core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.BestScore != 10 || stats.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats(func(id string) core.ScoreOrder {
		if id == "minesweeper" {
			return core.ScoreLowerIsBetter
		}
		return core.ScoreHigherIsBetter
	})
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["minesweeper"].BestScore != 10 {
		t.Errorf("minesweeper best = %d, expected 10", all["minesweeper"].BestScore)
	}
	if all["points"].BestScore != 15 {
		t.Errorf("points best = %d, expected 15", all["points"].BestScore)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('minesweeper', 77);`)
	if err != nil {
		t.Fatalf("creating old schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("minesweeper", 10, core.ScoreLowerIsBetter)
	if err != nil {
		t.Fatalf("TopScores() after migration failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 77 || scores[0].Player != "" {
		t.Errorf("old rows should survive migration: %+v", scores)
	}

	save(t, store, "minesweeper", 12)
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
