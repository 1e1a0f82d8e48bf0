package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

// Preset is a curated palette offered to every visitor, the server-side
// counterpart of the extension's built-in palette picks.
type Preset struct {
	PresetID    string                  `json:"presetId" db:"preset_id"`
	Name        string                  `json:"name" db:"name"`
	Description string                  `json:"description" db:"description"`
	Colors      []colorspace.NamedColor `json:"colors" db:"colors"`
	IsActive    bool                    `json:"isActive" db:"is_active"`
	CreatedAt   time.Time               `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time               `json:"updatedAt" db:"updated_at"`
}

// CreatePresetRequest is the admin payload for publishing a preset.
type CreatePresetRequest struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Colors      []colorspace.NamedColor `json:"colors"`
}

// NewPreset builds a Preset from a create request. Every color must parse;
// presets are curated content, so malformed values are rejected up front
// instead of falling back the way report exports do.
func NewPreset(req CreatePresetRequest) (Preset, error) {
	if req.Name == "" {
		return Preset{}, errors.New("preset name is required")
	}
	if len(req.Colors) == 0 {
		return Preset{}, errors.New("preset must contain at least one color")
	}
	for _, c := range req.Colors {
		if _, err := colorspace.ParseHex(c.Value); err != nil {
			return Preset{}, err
		}
	}

	now := time.Now()
	return Preset{
		PresetID:    uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Colors:      req.Colors,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
