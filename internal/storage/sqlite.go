// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// ErrInvalidEntry is returned when a score record cannot be stored as given.
var ErrInvalidEntry = errors.New("storage: invalid score entry")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is the result of one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Lines     int
	Level     int
	CreatedAt time.Time
}

// migrations are applied in order; PRAGMA user_version records how many
// have run. Databases written before lines/level were tracked pick up the
// new columns with zero values.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);`,

	`ALTER TABLE scores ADD COLUMN lines INTEGER NOT NULL DEFAULT 0;
	ALTER TABLE scores ADD COLUMN level INTEGER NOT NULL DEFAULT 0;`,

	`CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC, lines DESC);`,
}

// Open creates or opens a SQLite database at dbPath ("~/" is expanded),
// creating parent directories and bringing the schema up to date.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share the store; one connection serializes their writes.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate runs every migration newer than the stored schema version, each
// in its own transaction.
func (s *Store) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	start := version
	if version == 0 {
		if start, err = s.unversionedStep(); err != nil {
			return err
		}
	}

	for i := start; i < len(migrations); i++ {
		if err := s.applyMigration(i); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	if start > version && start == len(migrations) {
		_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", start))
		return err
	}
	return nil
}

// unversionedStep guesses how far a database without user_version already
// is: no scores table, a table without lines/level, or a current table.
func (s *Store) unversionedStep() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'scores'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("inspect schema: %w", err)
	}
	switch {
	case n == 0:
		return 0, nil
	case s.hasColumn("scores", "lines"):
		return len(migrations), nil
	default:
		return 1, nil
	}
}

func (s *Store) applyMigration(i int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(migrations[i]); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) hasColumn(table, column string) bool {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid      int
			name     string
			typ      string
			notNull  int
			defValue any
			pk       int
		)
		if rows.Scan(&cid, &name, &typ, &notNull, &defValue, &pk) == nil && name == column {
			return true
		}
	}
	return false
}

// SchemaVersion returns the number of migrations applied to the database.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.GameID == "" {
		return 0, fmt.Errorf("%w: empty game id", ErrInvalidEntry)
	}
	if e.Score < 0 || e.Lines < 0 || e.Level < 0 {
		return 0, fmt.Errorf("%w: negative counters (score %d, lines %d, level %d)",
			ErrInvalidEntry, e.Score, e.Lines, e.Level)
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, lines, level) VALUES (?, ?, ?, ?)",
		e.GameID, e.Score, e.Lines, e.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score, then lines, descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, lines, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, lines DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Lines, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game and returns how many
// records were removed.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared scores: %w", err)
	}
	return n, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int
	BestLevel  int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), COALESCE(MAX(level), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalLines, &stats.BestLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime converts a created_at column value; the driver may hand back
// either a time.Time or the raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
