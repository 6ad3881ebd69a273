// Package plist stores equalizer presets in a property list file.
package plist

import (
	"fmt"
	"strings"

	howett "howett.net/plist"

	"github.com/RMahshie/eqpresets/pkg/models"
)

// Format selects the plist encoding used for writes. Reads accept any encoding.
type Format int

const (
	FormatBinary Format = iota
	FormatXML
)

// ParseFormat converts a configuration value ("binary" or "xml") to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "binary", "bplist":
		return FormatBinary, nil
	case "xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("unsupported plist format %q", s)
	}
}

func (f Format) String() string {
	if f == FormatXML {
		return "xml"
	}
	return "binary"
}

// document is the root dictionary of the durable file
type document struct {
	Presets []models.EqualizerPreset `plist:"presets"`
}

// Encode serializes presets, sorted by name, in the given format
func Encode(presets models.PresetCollection, format Format) ([]byte, error) {
	doc := document{Presets: presets.Sorted()}
	if format == FormatXML {
		return howett.MarshalIndent(doc, howett.XMLFormat, "\t")
	}
	return howett.Marshal(doc, howett.BinaryFormat)
}

// Decode parses a plist document of any encoding and returns its presets sorted by name
func Decode(data []byte) (models.PresetCollection, error) {
	var doc document
	if _, err := howett.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return models.PresetCollection(doc.Presets).Sorted(), nil
}
