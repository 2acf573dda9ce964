package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite run archive with WAL mode enabled, creating the
// schema when missing.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	input_path TEXT NOT NULL,
	language TEXT NOT NULL,
	created_at TEXT NOT NULL,
	messages INTEGER NOT NULL,
	tokens INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_words (
	run_id TEXT NOT NULL,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	rank INTEGER NOT NULL,
	PRIMARY KEY(run_id, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_words_rank ON run_words(run_id, rank);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun stores a run and its ranked words in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, input_path, language, created_at, messages, tokens)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.InputPath, r.Language, r.CreatedAt.UTC().Format(time.RFC3339), r.Messages, r.Tokens)
	if err != nil {
		return err
	}

	for _, w := range r.Words {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_words (run_id, word, count, rank)
			VALUES (?, ?, ?, ?)`,
			r.ID, w.Word, w.Count, w.Rank)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run with its full word table.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var (
		r       store.Run
		created string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, input_path, language, created_at, messages, tokens
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.InputPath, &r.Language, &created, &r.Messages, &r.Tokens)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}

	if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return store.Run{}, false, err
	}

	if r.Words, err = s.TopWords(ctx, id, -1); err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns archived runs, newest first, without their word tables.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_path, language, created_at, messages, tokens
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var (
			r       store.Run
			created string
		)
		if err := rows.Scan(&r.ID, &r.InputPath, &r.Language, &created, &r.Messages, &r.Tokens); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// TopWords returns a run's ranked words. A negative k returns all of them.
func (s *sqliteStore) TopWords(ctx context.Context, runID string, k int) ([]store.WordCount, error) {
	query := `
		SELECT word, count, rank FROM run_words
		WHERE run_id = ? ORDER BY rank ASC`
	args := []any{runID}
	if k >= 0 {
		query += " LIMIT ?"
		args = append(args, k)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []store.WordCount
	for rows.Next() {
		var w store.WordCount
		if err := rows.Scan(&w.Word, &w.Count, &w.Rank); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
