package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteBatch = 200

const createBlobsTable = `CREATE TABLE IF NOT EXISTS blobs (
	path       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

// SQLiteStore keeps blobs as rows in a single table
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite database at dbPath and ensures the blobs table
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("open sqlite: empty db path")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("open sqlite: create db dir: %w", err)
	}

	dsn := "file:" + dbPath + "?mode=rwc&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: sql open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sqlite: ping: %w", err)
	}

	if _, err := db.Exec(createBlobsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sqlite: create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// List selects blob paths by prefix
func (s *SQLiteStore) List(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path FROM blobs WHERE instr(path, ?) = 1 ORDER BY path`,
		prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan blob path: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ReadAll selects blob contents in batches
func (s *SQLiteStore) ReadAll(ctx context.Context, paths []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(paths))
	for start := 0; start < len(paths); start += sqliteBatch {
		batch := paths[start:min(start+sqliteBatch, len(paths))]

		args := make([]any, len(batch))
		for i, p := range batch {
			args[i] = p
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(batch)), ",")

		rows, err := s.db.QueryContext(ctx,
			`SELECT path, data FROM blobs WHERE path IN (`+placeholders+`)`, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to read blobs: %w", err)
		}
		for rows.Next() {
			var (
				name string
				data []byte
			)
			if err := rows.Scan(&name, &data); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan blob: %w", err)
			}
			out[name] = data
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read blobs: %w", err)
		}
	}
	return out, nil
}

// Write upserts a blob row
func (s *SQLiteStore) Write(ctx context.Context, path string, data []byte) error {
	if err := validatePath(path); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blobs (path, data) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET data = excluded.data,
		 updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		path, data)
	if err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
