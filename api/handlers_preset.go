package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MCKesav/PaletteLive-website/datastore"
	"github.com/MCKesav/PaletteLive-website/models"
)

// GET /v1/presets - List curated preset palettes
func (app *Application) getPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	presets, listErr := app.PresetRepo.GetActive()
	if listErr != nil {
		app.internalServerError(w, r, listErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"presets": presets,
	})
}

// GET /v1/presets/get?id= - Get a specific preset
func (app *Application) getPreset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	presetID := r.URL.Query().Get("id")
	if presetID == "" {
		app.badRequest(w, r, errors.New("preset ID is required"))
		return
	}

	preset, getErr := app.PresetRepo.Get(presetID)
	if getErr != nil {
		if _, ok := getErr.(datastore.NoRowsError); ok {
			app.notFound(w, r, "preset")
			return
		}
		app.internalServerError(w, r, getErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(preset)
}

// POST /v1/admin/presets/create - Publish a curated preset
func (app *Application) createPreset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.CreatePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	preset, buildErr := models.NewPreset(req)
	if buildErr != nil {
		app.badRequest(w, r, buildErr)
		return
	}

	stored, storeErr := app.PresetRepo.Create(preset)
	if storeErr != nil {
		app.internalServerError(w, r, storeErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stored)
}

// DELETE /v1/admin/presets/delete?id= - Remove a preset
func (app *Application) deletePreset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	presetID := r.URL.Query().Get("id")
	if presetID == "" {
		app.badRequest(w, r, errors.New("preset ID is required"))
		return
	}

	if delErr := app.PresetRepo.Delete(presetID); delErr != nil {
		app.internalServerError(w, r, delErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"deleted": presetID})
}
