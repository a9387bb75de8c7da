package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one row per item in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the SQLite database at dsn,
// applies pragmas and creates the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	if err := EnsureDir(dsn); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer, one connection: keeps in-memory databases coherent too.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &SQLiteStore{db: db, path: dsn}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLiteStore) DB() *sql.DB { return s.db }

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Load(ctx context.Context) (Progress, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'saved_at'`).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query meta: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, goal, current, history FROM records`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	p := make(Progress)
	for rows.Next() {
		var (
			id            string
			goal, current sql.NullInt64
			history       string
		)
		if err := rows.Scan(&id, &goal, &current, &history); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r := &Record{}
		if goal.Valid {
			r.Goal = intPtr(int(goal.Int64))
		}
		if current.Valid {
			r.Current = intPtr(int(current.Int64))
		}
		if err := json.Unmarshal([]byte(history), &r.History); err != nil {
			return nil, fmt.Errorf("%w: history of %q: %v", ErrInvalidStore, id, err)
		}
		if len(r.History) == 0 {
			r.History = nil
		}
		if (r.Goal == nil) != (r.Current == nil) {
			return nil, fmt.Errorf("%w: %q has only one of goal and current", ErrInvalidStore, id)
		}
		p[id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) Save(ctx context.Context, p Progress) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (id, goal, current, history) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range p.Keys() {
		r := p[id]
		history := []byte("[]")
		if r != nil && len(r.History) > 0 {
			history, err = json.Marshal(r.History)
			if err != nil {
				return fmt.Errorf("marshal history of %q: %w", id, err)
			}
		}
		var goal, current sql.NullInt64
		if r != nil && r.Goal != nil {
			goal = sql.NullInt64{Int64: int64(*r.Goal), Valid: true}
		}
		if r != nil && r.Current != nil {
			current = sql.NullInt64{Int64: int64(*r.Current), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, id, goal, current, string(history)); err != nil {
			return fmt.Errorf("insert %q: %w", id, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('saved_at', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("update meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = FULL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id      TEXT PRIMARY KEY,
			goal    INTEGER,
			current INTEGER,
			history TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
