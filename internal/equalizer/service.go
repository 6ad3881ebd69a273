// Package equalizer holds the equalizer model: the current bands and gains,
// the selected preset, and the named preset curves mirrored from the preset store.
package equalizer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/repository"
	"github.com/RMahshie/eqpresets/pkg/models"
)

var (
	// ErrInvalid marks edits the model refuses
	ErrInvalid = errors.New("invalid equalizer edit")

	ErrTooFewBands      = fmt.Errorf("%w: cannot have less than 2 EQ bands", ErrInvalid)
	ErrBandExists       = fmt.Errorf("%w: band already exists", ErrInvalid)
	ErrInvalidFrequency = fmt.Errorf("%w: frequency must be a positive number", ErrInvalid)
	ErrIndexOutOfRange  = fmt.Errorf("%w: band index out of range", ErrInvalid)
	ErrValueCount       = fmt.Errorf("%w: value count does not match band count", ErrInvalid)
	ErrInvalidName      = fmt.Errorf("%w: preset name must not be empty", ErrInvalid)

	// ErrPresetNotFound is returned when selecting a preset that does not exist
	ErrPresetNotFound = fmt.Errorf("preset %w", repository.ErrNotFound)
)

// PresetCurve pairs a preset name with its curve
type PresetCurve struct {
	Name  string
	Curve models.Curve
}

// State is a snapshot of the equalizer model
type State struct {
	Bands   []float64
	Values  []float64
	Labels  []string
	Preset  *string
	On      bool
	Presets []string
}

// EqualizerService edits the equalizer model and keeps the preset store,
// the settings store and the in-memory view consistent. It is the only writer
// of the preset store.
type EqualizerService interface {
	State() State
	SetValues(ctx context.Context, values []float64) (State, error)
	SetValue(ctx context.Context, index int, value float64) (State, error)
	AddBand(ctx context.Context, frequency float64) (State, error)
	RemoveBand(ctx context.Context, index int) (State, error)
	SelectPreset(ctx context.Context, name string) (State, error)
	SavePreset(ctx context.Context, name string) (State, error)
	UpsertPreset(ctx context.Context, name string, values []models.EqualizerValue) (int, error)
	DeletePreset(ctx context.Context, name string) (State, error)
}

type equalizerService struct {
	mu       sync.Mutex
	presets  repository.PresetRepository
	settings settingsRecord

	bands  []float64
	values []float64
	preset *string
	curves []PresetCurve
}

// NewEqualizerService loads presets and restores the last band configuration
// and selected preset from settings
func NewEqualizerService(ctx context.Context, presets repository.PresetRepository, settings repository.SettingsStore) (EqualizerService, error) {
	s := &equalizerService{
		presets:  presets,
		settings: settingsRecord{store: settings},
	}

	collection, err := presets.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.curves = make([]PresetCurve, len(collection))
	for i, p := range collection.Sorted() {
		s.curves[i] = PresetCurve{Name: p.Name, Curve: models.CurveFromValues(p.Values)}
	}

	stored, err := s.settings.load(ctx)
	if err != nil {
		return nil, err
	}
	if stored.HasUsableBands() {
		s.bands = stored.Bands
		s.values = stored.Values
	} else {
		s.bands = slices.Clone(models.DefaultBands)
		s.values = models.DefaultValues()
	}
	s.preset = stored.PresetName

	log.Info().
		Int("presets", len(s.curves)).
		Int("bands", len(s.bands)).
		Bool("restored", stored.HasUsableBands()).
		Msg("Equalizer model initialized")
	return s, nil
}

// State returns a snapshot of the model
func (s *equalizerService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetValues replaces every gain. Changing gains deselects the current preset.
func (s *equalizerService) SetValues(ctx context.Context, values []float64) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(values) != len(s.bands) {
		return s.snapshot(), ErrValueCount
	}
	if err := s.applyValues(ctx, slices.Clone(values)); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// SetValue sets the gain of the band at index
func (s *equalizerService) SetValue(ctx context.Context, index int, value float64) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.values) {
		return s.snapshot(), ErrIndexOutOfRange
	}
	values := slices.Clone(s.values)
	values[index] = value
	if err := s.applyValues(ctx, values); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// AddBand inserts a flat band at its sorted position
func (s *equalizerService) AddBand(ctx context.Context, frequency float64) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return s.snapshot(), ErrInvalidFrequency
	}
	index, found := slices.BinarySearch(s.bands, frequency)
	if found {
		return s.snapshot(), ErrBandExists
	}

	bands := slices.Insert(slices.Clone(s.bands), index, frequency)
	values := slices.Insert(slices.Clone(s.values), index, 0)
	if err := s.applyBands(ctx, bands, values); err != nil {
		return s.snapshot(), err
	}

	log.Info().Float64("frequency", frequency).Int("index", index).Msg("Band added")
	return s.snapshot(), nil
}

// RemoveBand deletes the band at index, keeping at least two bands
func (s *equalizerService) RemoveBand(ctx context.Context, index int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.bands) {
		return s.snapshot(), ErrIndexOutOfRange
	}
	if len(s.bands) <= 2 {
		return s.snapshot(), ErrTooFewBands
	}

	removed := s.bands[index]
	bands := slices.Delete(slices.Clone(s.bands), index, index+1)
	values := slices.Delete(slices.Clone(s.values), index, index+1)
	if err := s.applyBands(ctx, bands, values); err != nil {
		return s.snapshot(), err
	}

	log.Info().Float64("frequency", removed).Int("index", index).Msg("Band removed")
	return s.snapshot(), nil
}

// SelectPreset loads the named preset's curve. An empty name restores the
// default curve, as does a preset with fewer than two bands.
func (s *equalizerService) SelectPreset(ctx context.Context, name string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var selected *string
	if name != "" {
		selected = &name
	}
	if sameName(s.preset, selected) {
		return s.snapshot(), nil
	}

	bands := slices.Clone(models.DefaultBands)
	values := models.DefaultValues()
	if selected != nil {
		i := s.curveIndex(name)
		if i < 0 {
			return s.snapshot(), ErrPresetNotFound
		}
		if curve := s.curves[i].Curve; curve.Len() > 1 {
			bands = curve.Bands()
			values = curve.Values()
		}
	}

	if err := s.persist(ctx, bands, values, selected); err != nil {
		return s.snapshot(), err
	}
	s.bands, s.values, s.preset = bands, values, selected

	log.Info().Str("preset", name).Int("bands", len(bands)).Msg("Preset selected")
	return s.snapshot(), nil
}

// SavePreset stores the current curve under name and selects it
func (s *equalizerService) SavePreset(ctx context.Context, name string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	preset, err := models.PresetFromBands(name, s.bands, s.values)
	if err != nil {
		return s.snapshot(), fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	index, err := s.storePreset(ctx, name, preset.Values)
	if err != nil {
		return s.snapshot(), err
	}

	if err := s.settings.savePresetName(ctx, &name); err != nil {
		return s.snapshot(), err
	}
	s.preset = &name

	log.Info().Str("preset", name).Int("index", index).Msg("Preset saved")
	return s.snapshot(), nil
}

// UpsertPreset stores a preset with explicit values and returns its position
// in the sorted collection. The current selection is left as is.
func (s *equalizerService) UpsertPreset(ctx context.Context, name string, values []models.EqualizerValue) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.storePreset(ctx, name, values)
}

// storePreset writes the preset to the store and mirrors it into the sorted
// curve list. Caller must hold s.mu.
func (s *equalizerService) storePreset(ctx context.Context, name string, values []models.EqualizerValue) (int, error) {
	if strings.TrimSpace(name) == "" {
		return -1, ErrInvalidName
	}

	index, err := s.presets.Upsert(ctx, name, values)
	if err != nil {
		return -1, err
	}

	entry := PresetCurve{Name: name, Curve: models.CurveFromValues(values)}
	i, found := slices.BinarySearchFunc(s.curves, name, func(c PresetCurve, target string) int {
		return strings.Compare(c.Name, target)
	})
	if found {
		s.curves[i] = entry
	} else {
		s.curves = slices.Insert(s.curves, i, entry)
	}
	return index, nil
}

// DeletePreset removes the named preset. Deleting an unknown preset succeeds.
func (s *equalizerService) DeletePreset(ctx context.Context, name string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.presets.Delete(ctx, name); err != nil {
		return s.snapshot(), err
	}

	if i := s.curveIndex(name); i >= 0 {
		s.curves = slices.Delete(s.curves, i, i+1)
	}
	if s.preset != nil && *s.preset == name {
		if err := s.settings.savePresetName(ctx, nil); err != nil {
			return s.snapshot(), err
		}
		s.preset = nil
	}

	log.Info().Str("preset", name).Msg("Preset removed from equalizer")
	return s.snapshot(), nil
}

// applyValues persists new gains and deselects the current preset.
// Caller must hold s.mu.
func (s *equalizerService) applyValues(ctx context.Context, values []float64) error {
	if slices.Equal(values, s.values) {
		return nil
	}
	if err := s.settings.write(ctx, valuesEntry(values), presetNameEntry(nil)); err != nil {
		return err
	}
	s.values = values
	s.preset = nil
	return nil
}

// applyBands persists a new band layout and deselects the current preset.
// Caller must hold s.mu.
func (s *equalizerService) applyBands(ctx context.Context, bands, values []float64) error {
	if err := s.persist(ctx, bands, values, nil); err != nil {
		return err
	}
	s.bands, s.values, s.preset = bands, values, nil
	return nil
}

func (s *equalizerService) persist(ctx context.Context, bands, values []float64, preset *string) error {
	return s.settings.write(ctx, bandsEntry(bands), valuesEntry(values), presetNameEntry(preset))
}

func (s *equalizerService) curveIndex(name string) int {
	return slices.IndexFunc(s.curves, func(c PresetCurve) bool {
		return c.Name == name
	})
}

func (s *equalizerService) snapshot() State {
	state := State{
		Bands:   slices.Clone(s.bands),
		Values:  slices.Clone(s.values),
		Labels:  make([]string, len(s.bands)),
		On:      slices.ContainsFunc(s.values, func(v float64) bool { return v != 0 }),
		Presets: make([]string, len(s.curves)),
	}
	for i := range s.bands {
		state.Labels[i] = ColumnLabel(s.bands[i], s.values[i])
	}
	for i, c := range s.curves {
		state.Presets[i] = c.Name
	}
	if s.preset != nil {
		name := *s.preset
		state.Preset = &name
	}
	return state
}

// ColumnLabel renders a band column header: the frequency over the gain
func ColumnLabel(frequency, value float64) string {
	return fmt.Sprintf("%s\n%.2f", models.FormatFrequency(frequency), value)
}

func sameName(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
