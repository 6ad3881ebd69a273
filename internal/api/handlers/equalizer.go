package handlers

import (
	"context"

	"github.com/RMahshie/eqpresets/internal/equalizer"
	"github.com/RMahshie/eqpresets/pkg/models"
)

// EqualizerHandler handles equalizer model HTTP requests
type EqualizerHandler struct {
	svc equalizer.EqualizerService
}

// NewEqualizerHandler creates a new equalizer handler
func NewEqualizerHandler(svc equalizer.EqualizerService) *EqualizerHandler {
	return &EqualizerHandler{svc: svc}
}

// GetEqualizer returns the current bands, gains and selected preset
func (h *EqualizerHandler) GetEqualizer(ctx context.Context, req *models.GetEqualizerRequest) (*models.EqualizerStateResponse, error) {
	return stateResponse(h.svc.State()), nil
}

// SetValues replaces every gain
func (h *EqualizerHandler) SetValues(ctx context.Context, req *models.SetValuesRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.SetValues(ctx, req.Body.Values)
	if err != nil {
		return nil, toHTTPError("Failed to set gains", err)
	}
	return stateResponse(state), nil
}

// SetValue sets the gain of a single band
func (h *EqualizerHandler) SetValue(ctx context.Context, req *models.SetValueRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.SetValue(ctx, req.Index, req.Body.Value)
	if err != nil {
		return nil, toHTTPError("Failed to set gain", err)
	}
	return stateResponse(state), nil
}

// AddBand inserts a band
func (h *EqualizerHandler) AddBand(ctx context.Context, req *models.AddBandRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.AddBand(ctx, req.Body.Frequency)
	if err != nil {
		return nil, toHTTPError("Failed to add band", err)
	}
	return stateResponse(state), nil
}

// RemoveBand deletes a band
func (h *EqualizerHandler) RemoveBand(ctx context.Context, req *models.RemoveBandRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.RemoveBand(ctx, req.Index)
	if err != nil {
		return nil, toHTTPError("Failed to remove band", err)
	}
	return stateResponse(state), nil
}

// SelectPreset applies a stored preset, or the default curve for an empty name
func (h *EqualizerHandler) SelectPreset(ctx context.Context, req *models.SelectPresetRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.SelectPreset(ctx, req.Body.Name)
	if err != nil {
		return nil, toHTTPError("Failed to select preset", err)
	}
	return stateResponse(state), nil
}

// SavePreset stores the current curve as a preset
func (h *EqualizerHandler) SavePreset(ctx context.Context, req *models.SavePresetRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.SavePreset(ctx, req.Body.Name)
	if err != nil {
		return nil, toHTTPError("Failed to save preset", err)
	}
	return stateResponse(state), nil
}

// DeletePreset deletes a preset and clears it if selected
func (h *EqualizerHandler) DeletePreset(ctx context.Context, req *models.DeleteEqualizerPresetRequest) (*models.EqualizerStateResponse, error) {
	state, err := h.svc.DeletePreset(ctx, req.Name)
	if err != nil {
		return nil, toHTTPError("Failed to delete preset", err)
	}
	return stateResponse(state), nil
}

func stateResponse(state equalizer.State) *models.EqualizerStateResponse {
	return &models.EqualizerStateResponse{
		Body: models.EqualizerStateBody{
			Bands:   state.Bands,
			Values:  state.Values,
			Labels:  state.Labels,
			Preset:  state.Preset,
			On:      state.On,
			Presets: state.Presets,
		},
	}
}
