package plist

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/repository"
)

// Seeder copies a bundled default preset file into the durable location the
// first time it is needed. The existence of the durable file is the only guard:
// once it exists, the bundle is never consulted again.
type Seeder struct {
	path   string
	bundle repository.BundleSource
}

// NewSeeder creates a seeder for the durable file at path
func NewSeeder(path string, bundle repository.BundleSource) *Seeder {
	return &Seeder{path: path, bundle: bundle}
}

// Seed copies the bundle byte-for-byte into place if no durable file exists.
// It reports whether a copy happened. A missing bundle is not an error.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, repository.Unavailable("stat", s.path, err)
	}

	data, err := s.bundle.Open(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			log.Warn().Str("bundle", s.bundle.Describe()).Msg("Bundled presets missing, starting without presets")
			return false, nil
		}
		return false, repository.Unavailable("seed", s.bundle.Describe(), err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return false, repository.Unavailable("seed", s.path, err)
	}

	log.Info().Str("bundle", s.bundle.Describe()).Str("path", s.path).Int("bytes", len(data)).Msg("Seeded presets from bundle")
	return true, nil
}
