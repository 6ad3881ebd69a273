package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/eqpresets/internal/api/handlers"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, presetHandler *handlers.PresetHandler, eqHandler *handlers.EqualizerHandler) {
	// Preset store routes
	huma.Register(api, huma.Operation{
		OperationID: "listPresets",
		Method:      http.MethodGet,
		Path:        "/api/presets",
		Summary:     "List presets",
		Description: "Returns every stored preset ordered by name",
		Tags:        []string{"Presets"},
	}, presetHandler.ListPresets)

	huma.Register(api, huma.Operation{
		OperationID: "upsertPreset",
		Method:      http.MethodPut,
		Path:        "/api/presets/{name}",
		Summary:     "Store a preset",
		Description: "Creates or replaces the named preset and returns its position",
		Tags:        []string{"Presets"},
	}, presetHandler.UpsertPreset)

	huma.Register(api, huma.Operation{
		OperationID:   "deletePreset",
		Method:        http.MethodDelete,
		Path:          "/api/presets/{name}",
		Summary:       "Delete a preset",
		Description:   "Deletes the named preset. Deleting an unknown preset succeeds.",
		Tags:          []string{"Presets"},
		DefaultStatus: http.StatusNoContent,
	}, presetHandler.DeletePreset)

	huma.Register(api, huma.Operation{
		OperationID: "backupPresets",
		Method:      http.MethodPost,
		Path:        "/api/presets/backup",
		Summary:     "Back up presets",
		Description: "Uploads the preset file to object storage and returns a download URL",
		Tags:        []string{"Presets"},
	}, presetHandler.BackupPresets)

	// Equalizer model routes
	huma.Register(api, huma.Operation{
		OperationID: "getEqualizer",
		Method:      http.MethodGet,
		Path:        "/api/equalizer",
		Summary:     "Get equalizer state",
		Description: "Returns the current bands, gains, labels and selected preset",
		Tags:        []string{"Equalizer"},
	}, eqHandler.GetEqualizer)

	huma.Register(api, huma.Operation{
		OperationID: "setEqualizerValues",
		Method:      http.MethodPut,
		Path:        "/api/equalizer/values",
		Summary:     "Set all gains",
		Tags:        []string{"Equalizer"},
	}, eqHandler.SetValues)

	huma.Register(api, huma.Operation{
		OperationID: "setEqualizerValue",
		Method:      http.MethodPut,
		Path:        "/api/equalizer/values/{index}",
		Summary:     "Set one gain",
		Tags:        []string{"Equalizer"},
	}, eqHandler.SetValue)

	huma.Register(api, huma.Operation{
		OperationID: "addEqualizerBand",
		Method:      http.MethodPost,
		Path:        "/api/equalizer/bands",
		Summary:     "Add a band",
		Description: "Inserts a flat band at its sorted position",
		Tags:        []string{"Equalizer"},
	}, eqHandler.AddBand)

	huma.Register(api, huma.Operation{
		OperationID: "removeEqualizerBand",
		Method:      http.MethodDelete,
		Path:        "/api/equalizer/bands/{index}",
		Summary:     "Remove a band",
		Description: "Removes a band. At least two bands always remain.",
		Tags:        []string{"Equalizer"},
	}, eqHandler.RemoveBand)

	huma.Register(api, huma.Operation{
		OperationID: "selectEqualizerPreset",
		Method:      http.MethodPut,
		Path:        "/api/equalizer/preset",
		Summary:     "Select a preset",
		Description: "Applies a stored preset. An empty name restores the default curve.",
		Tags:        []string{"Equalizer"},
	}, eqHandler.SelectPreset)

	huma.Register(api, huma.Operation{
		OperationID: "saveEqualizerPreset",
		Method:      http.MethodPost,
		Path:        "/api/equalizer/presets",
		Summary:     "Save current curve as preset",
		Tags:        []string{"Equalizer"},
	}, eqHandler.SavePreset)

	huma.Register(api, huma.Operation{
		OperationID: "deleteEqualizerPreset",
		Method:      http.MethodDelete,
		Path:        "/api/equalizer/presets/{name}",
		Summary:     "Delete a preset",
		Description: "Deletes a preset and clears the selection if it was selected",
		Tags:        []string{"Equalizer"},
	}, eqHandler.DeletePreset)
}
