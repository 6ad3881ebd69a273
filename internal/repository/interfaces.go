package repository

import (
	"context"

	"github.com/RMahshie/eqpresets/pkg/models"
)

// PresetRepository defines the interface for durable preset operations.
// Implementations do not lock; callers must not run mutating operations
// concurrently against the same store.
type PresetRepository interface {
	Load(ctx context.Context) (models.PresetCollection, error)
	Save(ctx context.Context, presets models.PresetCollection) error
	Upsert(ctx context.Context, name string, values []models.EqualizerValue) (int, error)
	Delete(ctx context.Context, name string) error
	Snapshot(ctx context.Context) ([]byte, error)
}

// SettingsStore defines the host key/value settings interface
type SettingsStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	ListKeys(ctx context.Context) ([]string, error)
}

// BundleSource provides the read-only default preset file used for seeding
type BundleSource interface {
	// Open returns the raw bundle bytes, or ErrBundleNotFound if it does not exist
	Open(ctx context.Context) ([]byte, error)
	// Describe names the bundle location for logs
	Describe() string
}
