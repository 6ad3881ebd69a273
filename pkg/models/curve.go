package models

import (
	"maps"
	"math"
	"slices"
)

// Curve maps band frequencies to gains. It is a value object: building one from
// a preset and converting it back are stateless transforms.
type Curve struct {
	values map[float64]float64
}

// NewCurve creates a curve from a frequency to gain mapping
func NewCurve(values map[float64]float64) Curve {
	return Curve{values: maps.Clone(values)}
}

// CurveFromValues creates a curve from equalizer values. A later value for the
// same frequency replaces an earlier one.
func CurveFromValues(values []EqualizerValue) Curve {
	m := make(map[float64]float64, len(values))
	for _, v := range values {
		m[v.Frequency] = v.Value
	}
	return Curve{values: m}
}

// Len returns the number of bands in the curve
func (c Curve) Len() int {
	return len(c.values)
}

// Bands returns the curve frequencies in ascending order
func (c Curve) Bands() []float64 {
	return slices.Sorted(maps.Keys(c.values))
}

// Values returns the gains ordered by ascending frequency
func (c Curve) Values() []float64 {
	bands := c.Bands()
	out := make([]float64, len(bands))
	for i, b := range bands {
		out[i] = c.values[b]
	}
	return out
}

// EqualizerValues converts the curve back to equalizer values ordered by frequency
func (c Curve) EqualizerValues() []EqualizerValue {
	bands := c.Bands()
	out := make([]EqualizerValue, len(bands))
	for i, b := range bands {
		out[i] = EqualizerValue{Frequency: b, Value: c.values[b]}
	}
	return out
}

// SetValue sets the gain at a frequency, adding the band if needed
func (c *Curve) SetValue(frequency, value float64) {
	if c.values == nil {
		c.values = make(map[float64]float64)
	}
	c.values[frequency] = value
}

// ValueForFrequency returns the gain at frequency. Between two bands the gain
// is interpolated linearly over log frequency; outside the band range the
// nearest edge gain is used. An empty curve is flat, and so is NaN.
func (c Curve) ValueForFrequency(frequency float64) float64 {
	if math.IsNaN(frequency) {
		return 0
	}
	if v, ok := c.values[frequency]; ok {
		return v
	}
	bands := c.Bands()
	if len(bands) == 0 {
		return 0
	}
	if frequency <= bands[0] {
		return c.values[bands[0]]
	}
	last := bands[len(bands)-1]
	if frequency >= last {
		return c.values[last]
	}

	hi, _ := slices.BinarySearch(bands, frequency)
	lo := hi - 1
	f0, f1 := bands[lo], bands[hi]
	g0, g1 := c.values[f0], c.values[f1]
	if f0 <= 0 {
		t := (frequency - f0) / (f1 - f0)
		return g0 + t*(g1-g0)
	}
	t := math.Log(frequency/f0) / math.Log(f1/f0)
	return g0 + t*(g1-g0)
}
