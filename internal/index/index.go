// Package index persists the anchor table in a SQLite database so the link
// rewriter can load it instead of rescanning the tree. The index also
// records a content checksum per indexed file; a mismatch at load time
// means the tree changed since indexing and resolutions may be stale.
package index

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mithrel/mdref/internal/anchor"
)

// Store wraps the index database.
type Store struct {
	db *sql.DB
}

// Open connects to (creating if needed) the index at path using the pure-Go
// sqlite driver, enables WAL mode, and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS files (
  path TEXT PRIMARY KEY,
  checksum TEXT NOT NULL,
  indexed_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS anchors (
  path TEXT NOT NULL,
  slug TEXT NOT NULL,
  label TEXT NOT NULL,
  PRIMARY KEY(path, slug)
);
CREATE INDEX IF NOT EXISTS idx_anchors_path ON anchors(path);
`)
	return err
}

// Save replaces the stored table wholesale. The index is rebuilt on every
// run, never updated incrementally.
func (s *Store) Save(ctx context.Context, table *anchor.Table, sums map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM anchors`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM files`); err != nil {
		return err
	}
	for _, e := range table.Entries() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO anchors(path, slug, label) VALUES(?,?,?)`,
			e.Path, e.Slug, e.Label); err != nil {
			return err
		}
	}
	now := time.Now().UTC()
	for path, sum := range sums {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO files(path, checksum, indexed_at) VALUES(?,?,?)`,
			path, sum, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the stored table and the per-file checksums recorded with it.
func (s *Store) Load(ctx context.Context) (*anchor.Table, map[string]string, error) {
	table := anchor.NewTable()
	rows, err := s.db.QueryContext(ctx, `SELECT path, slug, label FROM anchors ORDER BY path, slug`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var path, slug, label string
		if err := rows.Scan(&path, &slug, &label); err != nil {
			return nil, nil, err
		}
		table.Add(path, slug, label)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	sums := make(map[string]string)
	frows, err := s.db.QueryContext(ctx, `SELECT path, checksum FROM files`)
	if err != nil {
		return nil, nil, err
	}
	defer frows.Close()
	for frows.Next() {
		var path, sum string
		if err := frows.Scan(&path, &sum); err != nil {
			return nil, nil, err
		}
		sums[path] = sum
	}
	return table, sums, frows.Err()
}
