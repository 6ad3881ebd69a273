package models

import (
	"strconv"
)

// EqualizerValue represents the gain applied at a single band frequency
type EqualizerValue struct {
	Frequency float64 `json:"frequency" plist:"frequency" exclusiveMinimum:"0" doc:"Band center frequency in Hz"`
	Value     float64 `json:"value" plist:"value" doc:"Gain in dB"`
}

// FormatFrequency renders a band frequency the way column headers show it,
// e.g. "60Hz", "1kHz", "2.4kHz".
func FormatFrequency(frequency float64) string {
	if frequency >= 1000 {
		return strconv.FormatFloat(frequency/1000, 'f', -1, 64) + "kHz"
	}
	return strconv.FormatFloat(frequency, 'f', -1, 64) + "Hz"
}
