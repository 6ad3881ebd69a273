package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ListPresetsRequest represents a request to list stored presets
type ListPresetsRequest struct{}

// ListPresetsResponseBody is the body of the list presets response
type ListPresetsResponseBody struct {
	Presets []EqualizerPreset `json:"presets" doc:"Stored presets ordered by name"`
}

// ListPresetsResponse represents the stored preset collection
type ListPresetsResponse struct {
	Body ListPresetsResponseBody
}

// UpsertPresetRequestBody carries the values of a preset to store
type UpsertPresetRequestBody struct {
	Values []EqualizerValue `json:"values" required:"true" doc:"Band gains of the preset"`
}

// UpsertPresetRequest represents a request to create or replace a preset
type UpsertPresetRequest struct {
	Name string `path:"name" minLength:"1" maxLength:"128" doc:"Preset name"`
	Body UpsertPresetRequestBody
}

// UpsertPresetResponseBody is the body of the upsert response
type UpsertPresetResponseBody struct {
	Name  string `json:"name" doc:"Preset name"`
	Index int    `json:"index" doc:"Position of the preset in the sorted collection"`
}

// UpsertPresetResponse represents the result of storing a preset
type UpsertPresetResponse struct {
	Body UpsertPresetResponseBody
}

// DeletePresetRequest represents a request to delete a preset by name
type DeletePresetRequest struct {
	Name string `path:"name" minLength:"1" maxLength:"128" doc:"Preset name"`
}

// BackupPresetsRequest represents a request to back up the preset file
type BackupPresetsRequest struct{}

// BackupPresetsResponseBody is the body of the backup response
type BackupPresetsResponseBody struct {
	Key         string `json:"key" doc:"Object key of the backup"`
	DownloadURL string `json:"download_url" doc:"Pre-signed URL to download the backup"`
}

// BackupPresetsResponse represents the stored backup
type BackupPresetsResponse struct {
	Body BackupPresetsResponseBody
}

// GetEqualizerRequest represents a request for the current equalizer state
type GetEqualizerRequest struct{}

// EqualizerStateBody describes the current equalizer configuration
type EqualizerStateBody struct {
	Bands   []float64 `json:"bands" doc:"Band frequencies in Hz, ascending"`
	Values  []float64 `json:"values" doc:"Gain per band in dB"`
	Labels  []string  `json:"labels" doc:"Column label per band"`
	Preset  *string   `json:"preset,omitempty" doc:"Selected preset name"`
	On      bool      `json:"on" doc:"Whether any band has a non-zero gain"`
	Presets []string  `json:"presets" doc:"Available preset names ordered by name"`
}

// EqualizerStateResponse represents the current equalizer state
type EqualizerStateResponse struct {
	Body EqualizerStateBody
}

// SetValuesRequestBody carries a full set of gains
type SetValuesRequestBody struct {
	Values []float64 `json:"values" required:"true" doc:"Gain per band in dB"`
}

// SetValuesRequest represents a request to replace all gains
type SetValuesRequest struct {
	Body SetValuesRequestBody
}

// SetValueRequestBody carries a single gain
type SetValueRequestBody struct {
	Value float64 `json:"value" doc:"Gain in dB"`
}

// SetValueRequest represents a request to set the gain of one band
type SetValueRequest struct {
	Index int `path:"index" minimum:"0" doc:"Band index"`
	Body  SetValueRequestBody
}

// AddBandRequestBody carries the frequency of a new band
type AddBandRequestBody struct {
	Frequency float64 `json:"frequency" exclusiveMinimum:"0" required:"true" doc:"Band frequency in Hz"`
}

// AddBandRequest represents a request to add a band
type AddBandRequest struct {
	Body AddBandRequestBody
}

// RemoveBandRequest represents a request to remove a band
type RemoveBandRequest struct {
	Index int `path:"index" minimum:"0" doc:"Band index"`
}

// SelectPresetRequestBody carries the preset to select
type SelectPresetRequestBody struct {
	Name string `json:"name" maxLength:"128" doc:"Preset name, empty to restore the default curve"`
}

// SelectPresetRequest represents a request to select a preset
type SelectPresetRequest struct {
	Body SelectPresetRequestBody
}

// SavePresetRequestBody carries the name to store the current curve under
type SavePresetRequestBody struct {
	Name string `json:"name" minLength:"1" maxLength:"128" required:"true" doc:"Preset name"`
}

// SavePresetRequest represents a request to save the current curve as a preset
type SavePresetRequest struct {
	Body SavePresetRequestBody
}

// DeleteEqualizerPresetRequest represents a request to delete a preset from the equalizer view
type DeleteEqualizerPresetRequest struct {
	Name string `path:"name" minLength:"1" maxLength:"128" doc:"Preset name"`
}
