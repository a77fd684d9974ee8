// Package storage implements the SQLite-backed record store: schema
// management, per-table CRUD over incomes and expenses, user lookup, and
// the transactional write path.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the single shared handle over the SQLite file. It is created
// at the composition root and passed explicitly to every consumer; there
// is no package-level instance.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath, ensures the schema and
// returns a usable handle. Every call yields a functionally equivalent
// handle; callers that want reuse keep the one they got.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "Database opened", "path", dbPath)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
