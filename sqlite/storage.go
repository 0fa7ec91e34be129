package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/mdview"
)

// Ensure LocalStorage implements mdview.Storage.
var _ mdview.Storage = (*LocalStorage)(nil)

// LocalStorage implements mdview.Storage on the local_storage table.
type LocalStorage struct {
	db *DB
}

// NewLocalStorage creates a new LocalStorage.
func NewLocalStorage(db *DB) *LocalStorage {
	return &LocalStorage{db: db}
}

// GetItem returns the value stored under key.
func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", mdview.Errorf(mdview.EINVALID, "storage key required")
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", mdview.Errorf(mdview.ENOTFOUND, "item %q not found", key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read item %q: %w", key, err)
	}
	return value, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return mdview.Errorf(mdview.EINVALID, "storage key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write item %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *LocalStorage) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, mdview.Errorf(mdview.ENOTFOUND, "item %q not found", key)
	}
	if err != nil {
		return time.Time{}, err
	}
	return parseRFC3339(value, "updated_at")
}
