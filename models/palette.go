package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MCKesav/PaletteLive-website/colorspace"
)

// MaxPaletteRoles caps how many named colors a saved palette may carry.
// The extension works with six semantic roles.
const MaxPaletteRoles = 6

// Palette is a user-saved set of named colors.
type Palette struct {
	PaletteID string                  `json:"paletteId" db:"palette_id"`
	UserID    string                  `json:"userId" db:"user_id"`
	Name      string                  `json:"name" db:"name"`
	Colors    []colorspace.NamedColor `json:"colors" db:"colors"`
	CreatedAt time.Time               `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time               `json:"updatedAt" db:"updated_at"`
}

// SavePaletteRequest is the payload for saving a palette.
type SavePaletteRequest struct {
	Name   string                  `json:"name"`
	Colors []colorspace.NamedColor `json:"colors"`
}

// NewPalette builds a Palette from a save request, validating the color set.
func NewPalette(userID string, req SavePaletteRequest) (Palette, error) {
	if req.Name == "" {
		return Palette{}, errors.New("palette name is required")
	}
	if len(req.Colors) == 0 {
		return Palette{}, errors.New("palette must contain at least one color")
	}
	if len(req.Colors) > MaxPaletteRoles {
		return Palette{}, fmt.Errorf("palette may contain at most %d colors", MaxPaletteRoles)
	}

	seen := make(map[string]bool, len(req.Colors))
	for _, c := range req.Colors {
		if c.Name == "" {
			return Palette{}, errors.New("every palette color needs a role name")
		}
		if seen[c.Name] {
			return Palette{}, fmt.Errorf("duplicate role name %q", c.Name)
		}
		seen[c.Name] = true
	}

	now := time.Now()
	return Palette{
		PaletteID: uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Colors:    req.Colors,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarshalColors encodes the color list for storage in a jsonb column.
func (p Palette) MarshalColors() ([]byte, error) {
	data, err := json.Marshal(p.Colors)
	if err != nil {
		return nil, fmt.Errorf("error encoding palette colors %v", err)
	}
	return data, nil
}

// UnmarshalColors decodes a jsonb column back into the color list.
func (p *Palette) UnmarshalColors(data []byte) error {
	if len(data) == 0 {
		p.Colors = nil
		return nil
	}
	if err := json.Unmarshal(data, &p.Colors); err != nil {
		return fmt.Errorf("error decoding palette colors %v", err)
	}
	return nil
}
