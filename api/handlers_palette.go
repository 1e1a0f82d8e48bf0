package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MCKesav/PaletteLive-website/datastore"
	"github.com/MCKesav/PaletteLive-website/models"
)

// GET /v1/palettes - List the current user's saved palettes
func (app *Application) getUserPalettes(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	palettes, listErr := app.PaletteRepo.GetByUser(user.UserID)
	if listErr != nil {
		app.internalServerError(w, r, listErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"palettes": palettes,
	})
}

// POST /v1/palettes/save - Save a palette for the current user
func (app *Application) savePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	var req models.SavePaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	palette, buildErr := models.NewPalette(user.UserID, req)
	if buildErr != nil {
		app.badRequest(w, r, buildErr)
		return
	}

	stored, storeErr := app.PaletteRepo.Create(palette)
	if storeErr != nil {
		app.internalServerError(w, r, storeErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stored)
}

// DELETE /v1/palettes/delete?id= - Delete one of the current user's palettes
func (app *Application) deletePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	paletteID := r.URL.Query().Get("id")
	if paletteID == "" {
		app.badRequest(w, r, errors.New("palette ID is required"))
		return
	}

	if delErr := app.PaletteRepo.Delete(paletteID, user.UserID); delErr != nil {
		if _, ok := delErr.(datastore.NoRowsError); ok {
			app.notFound(w, r, "palette")
			return
		}
		app.internalServerError(w, r, delErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"deleted": paletteID})
}

// POST /v1/palettes/share - Share a saved palette with another user
func (app *Application) sharePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	var req models.SharePaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if req.PaletteID == "" || req.Username == "" {
		app.badRequest(w, r, errors.New("paletteId and username are required"))
		return
	}

	// The palette must exist and belong to the sharing user
	palette, getErr := app.PaletteRepo.Get(req.PaletteID)
	if getErr != nil {
		if _, ok := getErr.(datastore.NoRowsError); ok {
			app.notFound(w, r, "palette")
			return
		}
		app.internalServerError(w, r, getErr)
		return
	}
	if palette.UserID != user.UserID {
		app.invalidAuthorization(w, r, errors.New("palette belongs to another user"))
		return
	}

	recipient, recipientErr := app.UserRepo.GetUserByUsername(req.Username)
	if recipientErr != nil {
		app.notFound(w, r, "user")
		return
	}
	if recipient.UserID == user.UserID {
		app.badRequest(w, r, errors.New("cannot share a palette with yourself"))
		return
	}

	days := req.Days
	if days <= 0 {
		days = models.DefaultShareDays
	}

	share := models.PaletteShare{
		PaletteID:   palette.PaletteID,
		OwnerID:     user.UserID,
		RecipientID: recipient.UserID,
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().AddDate(0, 0, days),
	}

	stored, storeErr := app.ShareRepo.Create(share)
	if storeErr != nil {
		app.internalServerError(w, r, storeErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stored)
}

// GET /v1/palettes/shared - List palettes other users shared with me
func (app *Application) getSharedPalettes(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	shares, listErr := app.ShareRepo.ListSharedWith(user.UserID)
	if listErr != nil {
		app.internalServerError(w, r, listErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"shared": shares,
	})
}
