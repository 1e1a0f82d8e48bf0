package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/MCKesav/PaletteLive-website/models"
)

type PaletteRepository interface {
	Create(palette models.Palette) (models.Palette, error)
	Get(paletteID string) (models.Palette, error)
	GetByUser(userID string) ([]models.Palette, error)
	Update(palette models.Palette) (models.Palette, error)
	Delete(paletteID string, userID string) error
}

type PaletteDatabase struct {
	database *sql.DB
}

func NewPaletteDatabase(db *sql.DB) (PaletteDatabase, error) {
	var paletteDB PaletteDatabase
	paletteDB.database = db
	return paletteDB, nil
}

// Create inserts a new saved palette. Colors are stored as jsonb.
func (pdb PaletteDatabase) Create(palette models.Palette) (models.Palette, error) {
	db := pdb.database

	colorsJSON, marshalErr := palette.MarshalColors()
	if marshalErr != nil {
		return models.Palette{}, marshalErr
	}

	sqlStatement := `
		INSERT INTO palettes (palette_id, user_id, name, colors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, insertErr := db.Exec(
		sqlStatement,
		palette.PaletteID,
		palette.UserID,
		palette.Name,
		colorsJSON,
		palette.CreatedAt,
		palette.UpdatedAt,
	)

	if insertErr != nil {
		return models.Palette{}, fmt.Errorf("failed to create palette: %v", insertErr)
	}

	return palette, nil
}

// Get retrieves a palette by its ID
func (pdb PaletteDatabase) Get(paletteID string) (models.Palette, error) {
	db := pdb.database

	sqlStatement := `
		SELECT palette_id, user_id, name, colors, created_at, updated_at
		FROM palettes
		WHERE palette_id = $1`

	row := db.QueryRow(sqlStatement, paletteID)
	return scanPalette(row)
}

// GetByUser retrieves all palettes saved by a user, newest first
func (pdb PaletteDatabase) GetByUser(userID string) ([]models.Palette, error) {
	db := pdb.database

	sqlStatement := `
		SELECT palette_id, user_id, name, colors, created_at, updated_at
		FROM palettes
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, queryErr := db.Query(sqlStatement, userID)
	if queryErr != nil {
		return []models.Palette{}, queryErr
	}
	defer rows.Close()

	var palettes []models.Palette
	for rows.Next() {
		var palette models.Palette
		var colorsJSON []byte
		scanErr := rows.Scan(
			&palette.PaletteID,
			&palette.UserID,
			&palette.Name,
			&colorsJSON,
			&palette.CreatedAt,
			&palette.UpdatedAt,
		)
		if scanErr != nil {
			return []models.Palette{}, scanErr
		}
		if unmarshalErr := palette.UnmarshalColors(colorsJSON); unmarshalErr != nil {
			return []models.Palette{}, unmarshalErr
		}
		palettes = append(palettes, palette)
	}

	if rows.Err() != nil {
		return []models.Palette{}, rows.Err()
	}

	return palettes, nil
}

// Update replaces a palette's name and colors
func (pdb PaletteDatabase) Update(palette models.Palette) (models.Palette, error) {
	db := pdb.database

	colorsJSON, marshalErr := palette.MarshalColors()
	if marshalErr != nil {
		return models.Palette{}, marshalErr
	}

	sqlStatement := `
		UPDATE palettes
		SET name = $2, colors = $3, updated_at = $4
		WHERE palette_id = $1`

	_, updateErr := db.Exec(sqlStatement, palette.PaletteID, palette.Name, colorsJSON, time.Now())
	if updateErr != nil {
		return models.Palette{}, fmt.Errorf("error updating palette %v", updateErr)
	}

	return palette, nil
}

// Delete removes a palette, scoped to its owner so one user cannot delete
// another user's palette.
func (pdb PaletteDatabase) Delete(paletteID string, userID string) error {
	db := pdb.database

	result, delErr := db.Exec("DELETE FROM palettes WHERE palette_id = $1 AND user_id = $2", paletteID, userID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}

func scanPalette(row *sql.Row) (models.Palette, error) {
	var palette models.Palette
	var colorsJSON []byte
	scanErr := row.Scan(
		&palette.PaletteID,
		&palette.UserID,
		&palette.Name,
		&colorsJSON,
		&palette.CreatedAt,
		&palette.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.Palette{}, NoRowsError{true, scanErr}
	case nil:
		if unmarshalErr := palette.UnmarshalColors(colorsJSON); unmarshalErr != nil {
			return models.Palette{}, unmarshalErr
		}
		return palette, nil
	default:
		return models.Palette{}, scanErr
	}
}
