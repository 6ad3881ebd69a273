package equalizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/repository"
	"github.com/RMahshie/eqpresets/pkg/models"
)

// settingsRecord reads and writes models.EqualizerSettings through the
// well-known keys of a SettingsStore
type settingsRecord struct {
	store repository.SettingsStore
}

// settingsEntry is one key of a settings write. A nil value removes the key.
type settingsEntry struct {
	key   string
	value any
}

func bandsEntry(bands []float64) settingsEntry {
	return settingsEntry{key: models.SettingsKeyBands, value: bands}
}

func valuesEntry(values []float64) settingsEntry {
	return settingsEntry{key: models.SettingsKeyValues, value: values}
}

func presetNameEntry(name *string) settingsEntry {
	if name == nil {
		return settingsEntry{key: models.SettingsKeyPresetName}
	}
	return settingsEntry{key: models.SettingsKeyPresetName, value: *name}
}

// load returns the stored settings. Values that are missing or cannot be
// decoded are left empty.
func (r settingsRecord) load(ctx context.Context) (models.EqualizerSettings, error) {
	var s models.EqualizerSettings
	if _, err := r.get(ctx, models.SettingsKeyBands, &s.Bands); err != nil {
		return s, err
	}
	if _, err := r.get(ctx, models.SettingsKeyValues, &s.Values); err != nil {
		return s, err
	}
	var name string
	ok, err := r.get(ctx, models.SettingsKeyPresetName, &name)
	if err != nil {
		return s, err
	}
	if ok {
		s.PresetName = &name
	}
	return s, nil
}

// write applies entries in order. When one fails, the keys already written
// are put back to what they held before, so the store never keeps half of
// an update.
func (r settingsRecord) write(ctx context.Context, entries ...settingsEntry) error {
	type previous struct {
		raw    []byte
		exists bool
	}

	encoded := make([][]byte, len(entries))
	prev := make([]previous, len(entries))
	for i, e := range entries {
		if e.value != nil {
			raw, err := json.Marshal(e.value)
			if err != nil {
				return fmt.Errorf("failed to encode setting %s: %w", e.key, err)
			}
			encoded[i] = raw
		}
		raw, ok, err := r.store.Get(ctx, e.key)
		if err != nil {
			return fmt.Errorf("failed to read setting %s: %w", e.key, err)
		}
		prev[i] = previous{raw: raw, exists: ok}
	}

	for i, e := range entries {
		var err error
		switch {
		case encoded[i] != nil:
			err = r.store.Set(ctx, e.key, encoded[i])
		case prev[i].exists:
			err = r.store.Remove(ctx, e.key)
		}
		if err == nil {
			continue
		}

		err = fmt.Errorf("failed to write setting %s: %w", e.key, err)
		for j := i - 1; j >= 0; j-- {
			var rbErr error
			if prev[j].exists {
				rbErr = r.store.Set(ctx, entries[j].key, prev[j].raw)
			} else {
				rbErr = r.store.Remove(ctx, entries[j].key)
			}
			if rbErr != nil {
				log.Error().Err(rbErr).Str("key", entries[j].key).Msg("Failed to restore setting")
				err = errors.Join(err, fmt.Errorf("failed to restore setting %s: %w", entries[j].key, rbErr))
			}
		}
		return err
	}
	return nil
}

// savePresetName persists the selected preset, removing the key when name is nil
func (r settingsRecord) savePresetName(ctx context.Context, name *string) error {
	return r.write(ctx, presetNameEntry(name))
}

func (r settingsRecord) get(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}
