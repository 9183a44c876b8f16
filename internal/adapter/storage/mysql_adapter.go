package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	k          VARCHAR(255) NOT NULL PRIMARY KEY,
	v          MEDIUMTEXT   NOT NULL,
	updated_at DATETIME     NOT NULL
)`

const upsertKV = `
INSERT INTO kv_store (k, v, updated_at) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = VALUES(updated_at)`

type MySQLAdapter struct {
	db  *sql.DB
	now func() time.Time
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db, now: time.Now}
}

// EnsureSchema creates the kv_store table if it does not exist.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createKVTable); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ?`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query kv_store: %w", err)
	}

	return value, true, nil
}

func (m *MySQLAdapter) Set(ctx context.Context, key, value string) error {
	if _, err := m.db.ExecContext(ctx, upsertKV, key, value, m.now()); err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

func (m *MySQLAdapter) SetMulti(ctx context.Context, entries map[string]string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := m.now()
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if _, err := tx.ExecContext(ctx, upsertKV, key, entries[key], now); err != nil {
			return fmt.Errorf("upsert %q: %w", key, err)
		}
	}

	return tx.Commit()
}
