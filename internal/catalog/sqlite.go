// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/tomtom215/moodrec/internal/recommend"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS media_items (
	position    INTEGER PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	title       TEXT NOT NULL,
	kind        TEXT NOT NULL CHECK (kind IN ('movie', 'book')),
	genres      TEXT NOT NULL,
	creator     TEXT NOT NULL DEFAULT '',
	year        INTEGER NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	rating      REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_media_items_kind ON media_items(kind);
`

// SQLiteStore keeps a catalog in a SQLite table. Genres are stored as a
// JSON array; position preserves catalog order.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens the database at path and creates the table if
// needed. ":memory:" opens the process-wide shared in-memory database.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	connStr := path
	if path == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// In-memory databases are per connection; keep a single one.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Import replaces the table contents with items in one transaction.
func (s *SQLiteStore) Import(ctx context.Context, source string, items []recommend.MediaItem) (int, error) {
	c, err := New(source, items)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM media_items"); err != nil {
		return 0, fmt.Errorf("clear media_items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO media_items (position, id, title, kind, genres, creator, year, description, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range c.items {
		genres, err := json.Marshal(item.Genres)
		if err != nil {
			return 0, fmt.Errorf("marshal genres for %q: %w", item.Title, err)
		}
		if _, err := stmt.ExecContext(ctx, i, item.ID, item.Title, string(item.Kind), string(genres),
			item.Creator, item.Year, item.Description, item.Rating); err != nil {
			return 0, fmt.Errorf("insert %q: %w", item.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return c.Len(), nil
}

// Load implements Provider.
func (s *SQLiteStore) Load(ctx context.Context) ([]recommend.MediaItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, kind, genres, creator, year, description, rating
		FROM media_items
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query media_items: %w", err)
	}
	defer rows.Close()

	var items []recommend.MediaItem
	for rows.Next() {
		var (
			item   recommend.MediaItem
			kind   string
			genres string
		)
		if err := rows.Scan(&item.ID, &item.Title, &kind, &genres, &item.Creator,
			&item.Year, &item.Description, &item.Rating); err != nil {
			return nil, fmt.Errorf("scan media_items: %w", err)
		}
		item.Kind = recommend.MediaKind(kind)
		if err := json.Unmarshal([]byte(genres), &item.Genres); err != nil {
			return nil, fmt.Errorf("decode genres for %q: %w", item.Title, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media_items: %w", err)
	}
	return items, nil
}

// Name implements Provider.
func (s *SQLiteStore) Name() string { return "sqlite" }

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
