package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Get returns the raw payload stored under key. ok is false when no row exists.
func (r *StateRepo) Get(ctx context.Context, key string) (payload string, ok bool, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key = ?`, key)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("state get: %w", err)
	}
	return payload, true, nil
}

// Put replaces the payload stored under key inside tx.
func (r *StateRepo) Put(ctx context.Context, tx *sql.Tx, key string, payload string, now time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO state (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, payload, now)
	if err != nil {
		return fmt.Errorf("state put: %w", err)
	}
	return nil
}
