package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MCKesav/PaletteLive-website/colorspace"
	"github.com/MCKesav/PaletteLive-website/export"
	"github.com/MCKesav/PaletteLive-website/models"
)

// POST /v1/convert - Convert one hex color into every supported space
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	rgb, parseErr := colorspace.ParseHex(req.Color)
	if parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}

	c, m, y, k := colorspace.CMYK(rgb)
	labL, labA, labB := colorspace.Lab(rgb)
	okL, okC, okH := colorspace.OKLCH(rgb)

	response := models.ConvertResponse{
		Hex:       rgb.Hex(),
		RGB:       rgb,
		Luminance: colorspace.Luminance(rgb),
		CMYK:      models.CMYKValues{C: c, M: m, Y: y, K: k},
		Lab:       models.LabValues{L: labL, A: labA, B: labB},
		OKLCH:     models.OKLCHValues{L: okL, Chroma: okC, Hue: okH},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// POST /v1/contrast - WCAG contrast ratio and pass/fail grades for a pair
func (app *Application) checkContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.ContrastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	fg, fgErr := colorspace.ParseHex(req.Foreground)
	if fgErr != nil {
		app.badRequest(w, r, fgErr)
		return
	}
	bg, bgErr := colorspace.ParseHex(req.Background)
	if bgErr != nil {
		app.badRequest(w, r, bgErr)
		return
	}

	ratio := colorspace.ContrastRatio(fg, bg)
	response := models.ContrastResponse{
		Ratio: ratio,
		Grade: colorspace.Grade(ratio),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// POST /v1/contrast/repair - Auto-repair text-role contrast in a palette
func (app *Application) repairContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.RepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if len(req.Colors) == 0 {
		app.badRequest(w, r, errors.New("colors are required"))
		return
	}

	response := models.RepairResponse{
		Colors: colorspace.RepairPalette(req.Colors),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// POST /v1/export - Render a palette in an export format
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if len(req.Colors) == 0 {
		app.badRequest(w, r, errors.New("colors are required"))
		return
	}

	document, extension, renderErr := export.Render(export.Format(req.Format), req.Colors)
	if renderErr != nil {
		app.badRequest(w, r, renderErr)
		return
	}

	response := models.ExportResponse{
		Format:   req.Format,
		Filename: "palette" + extension,
		Document: document,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// POST /v1/palettes/import - Extract a palette from pasted free text
func (app *Application) importPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Fewer than two hex matches means no usable palette. That is a no-op
	// for the extension, so the response carries an empty color list rather
	// than an error.
	response := models.ImportResponse{
		Colors: export.ExtractHexColors(req.Text),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
