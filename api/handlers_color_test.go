package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCKesav/PaletteLive-website/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestConvertColor(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.convertColor, `{"color":"#808080"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConvertResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "#808080", resp.Hex)
	assert.Zero(t, resp.CMYK.C)
	assert.InDelta(t, 0.498, resp.CMYK.K, 0.002)
	assert.InDelta(t, 0, resp.Lab.A, 0.01)
	assert.LessOrEqual(t, resp.OKLCH.Chroma, 0.01)
}

func TestConvertColorRejectsMalformedHex(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.convertColor, `{"color":"#12345"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertColorRequiresPost(t *testing.T) {
	app := &Application{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.convertColor(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCheckContrast(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.checkContrast, `{"foreground":"#000000","background":"#FFFFFF"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ContrastResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.InDelta(t, 21.0, resp.Ratio, 0.1)
	assert.True(t, resp.Grade.AAANormal)
}

func TestRepairContrastEndpoint(t *testing.T) {
	app := &Application{}

	body := `{"colors":[
		{"name":"--color-bg","value":"#000000"},
		{"name":"--color-surface","value":"#111A2E"},
		{"name":"--color-border","value":"#1E2A44"},
		{"name":"--color-text","value":"#0A0A0A"}
	]}`
	rec := postJSON(t, app.repairContrast, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RepairResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Colors, 4)
	assert.NotEqual(t, "#0A0A0A", resp.Colors[3].Value)
}

func TestExportPalette(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.exportPalette, `{"format":"css","colors":[{"name":"accent","value":"#818CF8"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "palette.txt", resp.Filename)
	assert.Equal(t, ":root {\n  --accent: #818CF8;\n}", resp.Document)
}

func TestExportPaletteUnknownFormat(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.exportPalette, `{"format":"yaml","colors":[{"name":"accent","value":"#818CF8"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportPalette(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.importPalette, `{"text":"bg #0B1220 and accent #818CF8"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ImportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Colors, 2)
	assert.Equal(t, "--color-bg", resp.Colors[0].Name)
	assert.Equal(t, "#0B1220", resp.Colors[0].Value)
}

func TestImportPaletteTooFewColorsIsNoOp(t *testing.T) {
	app := &Application{}

	rec := postJSON(t, app.importPalette, `{"text":"only #ABCDEF here"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ImportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Colors)
}
