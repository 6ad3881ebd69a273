package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/RMahshie/eqpresets/internal/repository"
)

//go:embed schema.sql
var schema string

// PostgresSettingsStore implements SettingsStore for PostgreSQL
type PostgresSettingsStore struct {
	db *sql.DB
}

// NewPostgresSettingsStore creates a new PostgreSQL settings store
func NewPostgresSettingsStore(db *sql.DB) *PostgresSettingsStore {
	return &PostgresSettingsStore{db: db}
}

// Migrate creates the settings table if it does not exist
func (r *PostgresSettingsStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}
	return nil
}

// Get retrieves a setting by key
func (r *PostgresSettingsStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM equalizer_settings
		WHERE key = $1`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces a setting
func (r *PostgresSettingsStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO equalizer_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()`

	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// Remove deletes a setting. Removing an absent key succeeds.
func (r *PostgresSettingsStore) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM equalizer_settings WHERE key = $1`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove setting %q: %w", key, err)
	}
	return nil
}

// ListKeys returns all setting keys in ascending order
func (r *PostgresSettingsStore) ListKeys(ctx context.Context) ([]string, error) {
	query := `SELECT key FROM equalizer_settings ORDER BY key`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

var _ repository.SettingsStore = (*PostgresSettingsStore)(nil)
