package equalizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/eqpresets/internal/repository/memory"
	"github.com/RMahshie/eqpresets/pkg/models"
)

func TestSettingsRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	record := settingsRecord{store: store}

	name := "Rock"
	require.NoError(t, record.write(ctx,
		bandsEntry([]float64{60, 2400.5}),
		valuesEntry([]float64{-1.25, 3}),
		presetNameEntry(&name),
	))

	stored, err := record.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 2400.5}, stored.Bands)
	assert.Equal(t, []float64{-1.25, 3}, stored.Values)
	require.NotNil(t, stored.PresetName)
	assert.Equal(t, "Rock", *stored.PresetName)
	assert.True(t, stored.HasUsableBands())

	require.NoError(t, record.savePresetName(ctx, nil))
	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SettingsKeyBands, models.SettingsKeyValues}, keys)
}

func TestSettingsRecord_IgnoresUndecodableValues(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	require.NoError(t, store.Set(ctx, models.SettingsKeyBands, []byte("{not json")))
	require.NoError(t, store.Set(ctx, models.SettingsKeyPresetName, []byte("42")))

	stored, err := settingsRecord{store: store}.load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored.Bands)
	assert.Nil(t, stored.PresetName)
	assert.False(t, stored.HasUsableBands())
}

func TestSettingsRecord_ClearAbsentNameSkipsRemove(t *testing.T) {
	store := &MockSettingsStore{}
	store.On("Get", mock.Anything, models.SettingsKeyPresetName).Return(nil, false, nil)

	err := settingsRecord{store: store}.savePresetName(context.Background(), nil)
	assert.NoError(t, err)
	store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestSettingsRecord_ReadFailure(t *testing.T) {
	store := &MockSettingsStore{}
	store.On("Get", mock.Anything, models.SettingsKeyBands).Return(nil, false, assert.AnError)

	_, err := settingsRecord{store: store}.load(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSettingsRecord_WriteRestoresEarlierKeysOnFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	require.NoError(t, store.Set(ctx, models.SettingsKeyBands, []byte(`[60,1000]`)))

	failing := failingSettingsStore{SettingsStore: store, failKey: models.SettingsKeyPresetName}
	name := "Jazz"
	err := settingsRecord{store: failing}.write(ctx,
		bandsEntry([]float64{60, 400, 1000}),
		valuesEntry([]float64{1, 2, 3}),
		presetNameEntry(&name),
	)
	assert.ErrorIs(t, err, assert.AnError)

	bands, ok, err := store.Get(ctx, models.SettingsKeyBands)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[60,1000]`), bands)

	_, ok, err = store.Get(ctx, models.SettingsKeyValues)
	require.NoError(t, err)
	assert.False(t, ok, "a key that did not exist before is removed again")
}
