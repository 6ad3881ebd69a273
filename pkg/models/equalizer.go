package models

import (
	"fmt"
	"slices"
	"strings"
)

// EqualizerPreset is a named set of band gains
type EqualizerPreset struct {
	Name   string           `json:"name" plist:"name" doc:"Preset name, unique within the collection"`
	Values []EqualizerValue `json:"values" plist:"values" doc:"Band gains, order is not significant"`
}

// Frequencies returns the distinct frequencies of the preset in ascending order
func (p EqualizerPreset) Frequencies() []float64 {
	freqs := make([]float64, 0, len(p.Values))
	for _, v := range p.Values {
		freqs = append(freqs, v.Frequency)
	}
	slices.Sort(freqs)
	return slices.Compact(freqs)
}

// IsDegenerate reports whether the preset has fewer than two distinct bands.
// Degenerate presets are stored as-is but select the default curve.
func (p EqualizerPreset) IsDegenerate() bool {
	return len(p.Frequencies()) < 2
}

// Clone returns a deep copy of the preset
func (p EqualizerPreset) Clone() EqualizerPreset {
	return EqualizerPreset{
		Name:   p.Name,
		Values: slices.Clone(p.Values),
	}
}

// PresetCollection is the full list of stored presets. Whenever it is persisted
// or read back it is ordered by name (case-sensitive, byte-wise).
type PresetCollection []EqualizerPreset

// Sorted returns a copy of the collection ordered by name. Presets sharing a
// name keep their relative order.
func (c PresetCollection) Sorted() PresetCollection {
	out := c.Clone()
	slices.SortStableFunc(out, func(a, b EqualizerPreset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// IsSorted reports whether the collection is ordered by name
func (c PresetCollection) IsSorted() bool {
	return slices.IsSortedFunc(c, func(a, b EqualizerPreset) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// IndexOf returns the position of the preset with the given name, or -1
func (c PresetCollection) IndexOf(name string) int {
	return slices.IndexFunc(c, func(p EqualizerPreset) bool {
		return p.Name == name
	})
}

// Names returns the preset names in collection order
func (c PresetCollection) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name
	}
	return names
}

// Without returns a copy of the collection with every preset named name removed
func (c PresetCollection) Without(name string) PresetCollection {
	out := make(PresetCollection, 0, len(c))
	for _, p := range c {
		if p.Name != name {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Clone returns a deep copy of the collection
func (c PresetCollection) Clone() PresetCollection {
	if c == nil {
		return PresetCollection{}
	}
	out := make(PresetCollection, len(c))
	for i, p := range c {
		out[i] = p.Clone()
	}
	return out
}

// PresetFromBands builds a preset from index-aligned band and gain slices
func PresetFromBands(name string, bands, values []float64) (EqualizerPreset, error) {
	if len(bands) != len(values) {
		return EqualizerPreset{}, fmt.Errorf("band count %d does not match value count %d", len(bands), len(values))
	}

	seen := make(map[float64]struct{}, len(bands))
	preset := EqualizerPreset{
		Name:   name,
		Values: make([]EqualizerValue, 0, len(bands)),
	}
	for i, band := range bands {
		if _, dup := seen[band]; dup {
			return EqualizerPreset{}, fmt.Errorf("duplicate band frequency %g", band)
		}
		seen[band] = struct{}{}
		preset.Values = append(preset.Values, EqualizerValue{Frequency: band, Value: values[i]})
	}
	return preset, nil
}
