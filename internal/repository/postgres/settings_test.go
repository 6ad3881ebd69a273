package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a PostgreSQL container and returns a migrated store
func setupPostgres(t *testing.T) *PostgresSettingsStore {
	t.Helper()
	ctx := context.Background()

	container, err := pgContainer.Run(ctx,
		"postgres:15-alpine",
		pgContainer.WithDatabase("eqpresets_test"),
		pgContainer.WithUsername("testuser"),
		pgContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewPostgresSettingsStore(db)
	require.NoError(t, store.Migrate(ctx))
	return store
}

func TestPostgresSettingsStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := setupPostgres(t)
	ctx := context.Background()

	// Migrate is idempotent
	require.NoError(t, store.Migrate(ctx))

	_, ok, err := store.Get(ctx, "enhancedBands")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "enhancedBands", []byte(`[60,1000]`)))
	require.NoError(t, store.Set(ctx, "enhancedBands", []byte(`[60,150,1000]`)))
	require.NoError(t, store.Set(ctx, "enhancedPersistedPresetName", []byte(`"Jazz"`)))

	value, ok, err := store.Get(ctx, "enhancedBands")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[60,150,1000]`), value)

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"enhancedBands", "enhancedPersistedPresetName"}, keys)

	require.NoError(t, store.Remove(ctx, "enhancedPersistedPresetName"))
	require.NoError(t, store.Remove(ctx, "enhancedPersistedPresetName"))

	keys, err = store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"enhancedBands"}, keys)
}
