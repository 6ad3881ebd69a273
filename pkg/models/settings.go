package models

import "math"

// Well-known settings keys shared with the host settings store
const (
	SettingsKeyBands      = "enhancedBands"
	SettingsKeyValues     = "enhancedValues"
	SettingsKeyPresetName = "enhancedPersistedPresetName"
)

// DefaultBands are the band frequencies used when no usable configuration is stored
var DefaultBands = []float64{60, 150, 400, 1000, 2400, 15000}

// EqualizerSettings is the typed view over the three persisted settings keys
type EqualizerSettings struct {
	Bands      []float64
	Values     []float64
	PresetName *string
}

// HasUsableBands reports whether the stored bands and values can replace the
// defaults: at least two finite, positive, strictly ascending bands with one
// finite gain each
func (s EqualizerSettings) HasUsableBands() bool {
	if len(s.Bands) < 2 || len(s.Values) != len(s.Bands) {
		return false
	}
	for i, b := range s.Bands {
		if b <= 0 || math.IsInf(b, 0) || math.IsNaN(b) {
			return false
		}
		if i > 0 && b <= s.Bands[i-1] {
			return false
		}
	}
	for _, v := range s.Values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// DefaultValues returns a flat gain slice matching DefaultBands
func DefaultValues() []float64 {
	return make([]float64, len(DefaultBands))
}
