package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

const upsertKV = `
INSERT INTO kv (key, value, updated_at) VALUES (:key, :value, :updated_at)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type kvRow struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt int64  `db:"updated_at"`
}

// SQLiteRepository stores session values in a single key/value table.
type SQLiteRepository struct {
	db *sqlx.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the kv table.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Get returns the value for key and whether it exists.
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	row := kvRow{Key: key, Value: value, UpdatedAt: time.Now().UnixMilli()}
	if _, err := r.db.NamedExecContext(ctx, upsertKV, row); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Snapshot reads every row into a SessionDocument.
func (r *SQLiteRepository) Snapshot(ctx context.Context) (SessionDocument, error) {
	var rows []kvRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT key, value, updated_at FROM kv ORDER BY key`); err != nil {
		return SessionDocument{}, fmt.Errorf("select kv: %w", err)
	}
	doc := SessionDocument{Values: make(map[string]string, len(rows))}
	for _, row := range rows {
		doc.Values[row.Key] = row.Value
		if row.UpdatedAt > doc.Metadata.LastUpdate {
			doc.Metadata.LastUpdate = row.UpdatedAt
		}
	}
	return doc, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
