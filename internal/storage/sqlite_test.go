package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func mustSave(t *testing.T, store *Store, e ScoreEntry) {
	t.Helper()
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", e, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 400, Lines: 10, Level: 1})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 400 {
		t.Errorf("Expected 400 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 100, Lines: 3, Level: 0})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 1240, Lines: 14, Level: 1})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 40, Lines: 1, Level: 0})
	mustSave(t, store, ScoreEntry{GameID: "other", Score: 9999})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 1240 || scores[1].Score != 100 || scores[2].Score != 40 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Lines != 14 || scores[0].Level != 1 {
		t.Errorf("Expected lines=14 level=1 on best entry, got lines=%d level=%d",
			scores[0].Lines, scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 100, Lines: 2})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 100, Lines: 5})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Lines != 5 {
		t.Errorf("Expected the entry with more lines first, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, ScoreEntry{GameID: "tetris", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	all, err := store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to cover 5 scores, got %d", len(all))
	}
}

func TestStoreSaveScoreRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name  string
		entry ScoreEntry
	}{
		{"empty game id", ScoreEntry{Score: 10}},
		{"negative score", ScoreEntry{GameID: "tetris", Score: -1}},
		{"negative lines", ScoreEntry{GameID: "tetris", Lines: -1}},
		{"negative level", ScoreEntry{GameID: "tetris", Level: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.SaveScore(tt.entry)
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 300})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 200})

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 200})
	mustSave(t, store, ScoreEntry{GameID: "other", Score: 300})

	n, err := store.ClearScores("tetris")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cleared records, got %d", n)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 100, Lines: 4, Level: 0})
	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 500, Lines: 21, Level: 2})

	stats, err = store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 500 {
		t.Errorf("Expected high score 500, got %d", stats.HighScore)
	}
	if stats.AvgScore != 300 {
		t.Errorf("Expected average 300, got %f", stats.AvgScore)
	}
	if stats.TotalLines != 25 {
		t.Errorf("Expected 25 total lines, got %d", stats.TotalLines)
	}
	if stats.BestLevel != 2 {
		t.Errorf("Expected best level 2, got %d", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	store := openTestStore(t)

	v, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("SchemaVersion() = %d, want %d", v, len(migrations))
	}
}

func TestStoreUpgradesLegacyTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	raw, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = raw.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('tetris', 700);`)
	if err != nil {
		t.Fatalf("seed legacy schema: %v", err)
	}
	raw.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 || scores[0].Lines != 0 || scores[0].Level != 0 {
		t.Fatalf("legacy rows = %+v, want one row with score 700 and zero lines/level", scores)
	}

	mustSave(t, store, ScoreEntry{GameID: "tetris", Score: 900, Lines: 8, Level: 0})
	if v, _ := store.SchemaVersion(); v != len(migrations) {
		t.Errorf("SchemaVersion() = %d after upgrade, want %d", v, len(migrations))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/.tetris/scores.db", filepath.Join(home, ".tetris", "scores.db")},
		{"./scores.db", "./scores.db"},
		{"~other/scores.db", "~other/scores.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
