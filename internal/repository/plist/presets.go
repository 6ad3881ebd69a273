package plist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/repository"
	"github.com/RMahshie/eqpresets/pkg/models"
)

var _ repository.PresetRepository = (*PresetRepository)(nil)

// PresetRepository implements repository.PresetRepository on a plist file
type PresetRepository struct {
	path   string
	format Format
	seeder *Seeder
}

// Config holds configuration for the plist preset repository
type Config struct {
	Path   string
	Format Format
	// Bundle seeds the durable file on first use. Optional.
	Bundle repository.BundleSource
}

// NewPresetRepository creates a new file-backed preset repository
func NewPresetRepository(cfg Config) (*PresetRepository, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("presets path is required")
	}
	r := &PresetRepository{
		path:   cfg.Path,
		format: cfg.Format,
	}
	if cfg.Bundle != nil {
		r.seeder = NewSeeder(cfg.Path, cfg.Bundle)
	}
	return r, nil
}

// Path returns the durable file location
func (r *PresetRepository) Path() string {
	return r.path
}

// Load reads the preset collection, seeding the durable file first if it has
// never been written. A store with no durable file and no bundle is empty.
func (r *PresetRepository) Load(ctx context.Context) (models.PresetCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.seeder != nil {
		if _, err := r.seeder.Seed(ctx); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", r.path).Msg("No preset file, returning empty collection")
			return models.PresetCollection{}, nil
		}
		return nil, repository.Unavailable("read", r.path, err)
	}
	if len(data) == 0 {
		return nil, repository.Corrupt("decode", r.path, fmt.Errorf("empty file"))
	}

	presets, err := Decode(data)
	if err != nil {
		return nil, repository.Corrupt("decode", r.path, err)
	}

	log.Debug().Str("path", r.path).Int("presets", len(presets)).Msg("Loaded presets")
	return presets, nil
}

// Save replaces the durable file with the collection sorted by name
func (r *PresetRepository) Save(ctx context.Context, presets models.PresetCollection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(presets, r.format)
	if err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	if err := writeFileAtomic(r.path, data); err != nil {
		return repository.Unavailable("write", r.path, err)
	}

	log.Debug().Str("path", r.path).Int("presets", len(presets)).Str("format", r.format.String()).Msg("Saved presets")
	return nil
}

// Upsert replaces any preset named name with the given values and returns the
// preset's position in the sorted collection
func (r *PresetRepository) Upsert(ctx context.Context, name string, values []models.EqualizerValue) (int, error) {
	presets, err := r.Load(ctx)
	if err != nil {
		return -1, err
	}

	presets = append(presets.Without(name), models.EqualizerPreset{
		Name:   name,
		Values: append([]models.EqualizerValue(nil), values...),
	})
	presets = presets.Sorted()

	if err := r.Save(ctx, presets); err != nil {
		return -1, err
	}

	index := presets.IndexOf(name)
	log.Info().Str("preset", name).Int("index", index).Int("values", len(values)).Msg("Preset stored")
	return index, nil
}

// Delete removes the preset named name. Deleting an absent preset succeeds
// without rewriting the file.
func (r *PresetRepository) Delete(ctx context.Context, name string) error {
	presets, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if presets.IndexOf(name) < 0 {
		log.Debug().Str("preset", name).Msg("Delete of absent preset ignored")
		return nil
	}

	if err := r.Save(ctx, presets.Without(name)); err != nil {
		return err
	}

	log.Info().Str("preset", name).Msg("Preset deleted")
	return nil
}

// Snapshot returns the encoded current collection
func (r *PresetRepository) Snapshot(ctx context.Context) ([]byte, error) {
	presets, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := Encode(presets, r.format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode presets: %w", err)
	}
	return data, nil
}

// writeFileAtomic writes data to a sibling temp file and renames it over path
// so readers never observe a partially written file.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
