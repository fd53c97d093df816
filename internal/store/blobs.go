package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// BlobRepo is a minimal durable key-value surface. Each key holds one
// opaque payload replaced wholesale on write; the profile blob is the
// only key the app currently uses.
type BlobRepo struct {
	db *sql.DB
}

// Get returns the payload stored under key and whether it exists.
func (r *BlobRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM blobs WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob %q: %w", key, err)
	}
	return payload, true, nil
}

// Put atomically replaces the payload under key.
func (r *BlobRepo) Put(ctx context.Context, key, payload string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blobs (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		key, payload)
	if err != nil {
		return fmt.Errorf("put blob %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *BlobRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}
