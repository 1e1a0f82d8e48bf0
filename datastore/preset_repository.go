package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/MCKesav/PaletteLive-website/models"
)

type PresetRepository interface {
	Create(preset models.Preset) (models.Preset, error)
	Get(presetID string) (models.Preset, error)
	GetActive() ([]models.Preset, error)
	Delete(presetID string) error
}

type PresetDatabase struct {
	database *sql.DB
}

func NewPresetDatabase(db *sql.DB) (PresetDatabase, error) {
	var presetDB PresetDatabase
	presetDB.database = db
	return presetDB, nil
}

// Create inserts a new curated preset
func (prdb PresetDatabase) Create(preset models.Preset) (models.Preset, error) {
	db := prdb.database

	colorsJSON, marshalErr := json.Marshal(preset.Colors)
	if marshalErr != nil {
		return models.Preset{}, fmt.Errorf("error encoding preset colors %v", marshalErr)
	}

	sqlStatement := `
		INSERT INTO presets (preset_id, name, description, colors, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, insertErr := db.Exec(
		sqlStatement,
		preset.PresetID,
		preset.Name,
		preset.Description,
		colorsJSON,
		preset.IsActive,
		preset.CreatedAt,
		preset.UpdatedAt,
	)

	if insertErr != nil {
		return models.Preset{}, fmt.Errorf("failed to create preset: %v", insertErr)
	}

	return preset, nil
}

// Get retrieves a preset by ID
func (prdb PresetDatabase) Get(presetID string) (models.Preset, error) {
	db := prdb.database

	sqlStatement := `
		SELECT preset_id, name, description, colors, is_active, created_at, updated_at
		FROM presets
		WHERE preset_id = $1`

	row := db.QueryRow(sqlStatement, presetID)

	var preset models.Preset
	var colorsJSON []byte
	scanErr := row.Scan(
		&preset.PresetID,
		&preset.Name,
		&preset.Description,
		&colorsJSON,
		&preset.IsActive,
		&preset.CreatedAt,
		&preset.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.Preset{}, NoRowsError{true, scanErr}
	case nil:
		if err := json.Unmarshal(colorsJSON, &preset.Colors); err != nil {
			return models.Preset{}, fmt.Errorf("error decoding preset colors %v", err)
		}
		return preset, nil
	default:
		return models.Preset{}, scanErr
	}
}

// GetActive retrieves every active preset, newest first
func (prdb PresetDatabase) GetActive() ([]models.Preset, error) {
	db := prdb.database

	sqlStatement := `
		SELECT preset_id, name, description, colors, is_active, created_at, updated_at
		FROM presets
		WHERE is_active = TRUE
		ORDER BY created_at DESC`

	rows, queryErr := db.Query(sqlStatement)
	if queryErr != nil {
		return []models.Preset{}, queryErr
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var preset models.Preset
		var colorsJSON []byte
		scanErr := rows.Scan(
			&preset.PresetID,
			&preset.Name,
			&preset.Description,
			&colorsJSON,
			&preset.IsActive,
			&preset.CreatedAt,
			&preset.UpdatedAt,
		)
		if scanErr != nil {
			return []models.Preset{}, scanErr
		}
		if err := json.Unmarshal(colorsJSON, &preset.Colors); err != nil {
			return []models.Preset{}, fmt.Errorf("error decoding preset colors %v", err)
		}
		presets = append(presets, preset)
	}

	if rows.Err() != nil {
		return []models.Preset{}, rows.Err()
	}

	return presets, nil
}

// Delete removes a preset by ID
func (prdb PresetDatabase) Delete(presetID string) error {
	db := prdb.database

	_, delErr := db.Exec("DELETE FROM presets WHERE preset_id = $1", presetID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	return nil
}
