package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/equalizer"
	"github.com/RMahshie/eqpresets/internal/repository"
	"github.com/RMahshie/eqpresets/internal/storage"
	"github.com/RMahshie/eqpresets/pkg/models"
)

// PresetHandler handles preset store HTTP requests. Reads go to the store;
// writes go through the equalizer service so its view stays in step.
type PresetHandler struct {
	repo   repository.PresetRepository
	eqSvc  equalizer.EqualizerService
	backup *storage.PresetBackup
}

// NewPresetHandler creates a new preset handler. backup may be nil when no
// object storage is configured.
func NewPresetHandler(repo repository.PresetRepository, eqSvc equalizer.EqualizerService, backup *storage.PresetBackup) *PresetHandler {
	return &PresetHandler{
		repo:   repo,
		eqSvc:  eqSvc,
		backup: backup,
	}
}

// ListPresets returns every stored preset ordered by name
func (h *PresetHandler) ListPresets(ctx context.Context, req *models.ListPresetsRequest) (*models.ListPresetsResponse, error) {
	presets, err := h.repo.Load(ctx)
	if err != nil {
		return nil, toHTTPError("Failed to load presets", err)
	}

	return &models.ListPresetsResponse{
		Body: models.ListPresetsResponseBody{Presets: presets.Clone()},
	}, nil
}

// UpsertPreset stores a preset, replacing any preset with the same name
func (h *PresetHandler) UpsertPreset(ctx context.Context, req *models.UpsertPresetRequest) (*models.UpsertPresetResponse, error) {
	log.Info().Str("preset", req.Name).Int("values", len(req.Body.Values)).Msg("Upsert preset request received")

	index, err := h.eqSvc.UpsertPreset(ctx, req.Name, req.Body.Values)
	if err != nil {
		return nil, toHTTPError("Failed to store preset", err)
	}

	return &models.UpsertPresetResponse{
		Body: models.UpsertPresetResponseBody{Name: req.Name, Index: index},
	}, nil
}

// DeletePreset removes a preset. Unknown names succeed.
func (h *PresetHandler) DeletePreset(ctx context.Context, req *models.DeletePresetRequest) (*struct{}, error) {
	if _, err := h.eqSvc.DeletePreset(ctx, req.Name); err != nil {
		return nil, toHTTPError("Failed to delete preset", err)
	}
	return nil, nil
}

// BackupPresets uploads a copy of the preset file to object storage
func (h *PresetHandler) BackupPresets(ctx context.Context, req *models.BackupPresetsRequest) (*models.BackupPresetsResponse, error) {
	if h.backup == nil {
		return nil, huma.Error503ServiceUnavailable("Preset backup is not configured")
	}

	data, err := h.repo.Snapshot(ctx)
	if err != nil {
		return nil, toHTTPError("Failed to read presets", err)
	}

	key, url, err := h.backup.Store(ctx, data)
	if err != nil {
		log.Error().Err(err).Msg("Preset backup failed")
		return nil, huma.Error502BadGateway("Failed to upload backup", err)
	}

	return &models.BackupPresetsResponse{
		Body: models.BackupPresetsResponseBody{Key: key, DownloadURL: url},
	}, nil
}
