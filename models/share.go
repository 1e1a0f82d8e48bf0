package models

import "time"

// DefaultShareDays is how long a palette share stays visible to the
// recipient when the request does not say otherwise.
const DefaultShareDays = 30

// PaletteShare records one palette made visible to another user.
type PaletteShare struct {
	ShareID     int       `json:"shareId" db:"share_id"`
	PaletteID   string    `json:"paletteId" db:"palette_id"`
	OwnerID     string    `json:"ownerId" db:"owner_id"`
	RecipientID string    `json:"recipientId" db:"recipient_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt   time.Time `json:"expiresAt" db:"expires_at"`
}

// SharePaletteRequest is the payload for sharing a saved palette with
// another user by username.
type SharePaletteRequest struct {
	PaletteID string `json:"paletteId"`
	Username  string `json:"username"`
	Days      int    `json:"days,omitempty"`
}

// SharedPaletteSummary pairs a shared palette with who shared it.
type SharedPaletteSummary struct {
	ShareID   int         `json:"shareId"`
	Palette   Palette     `json:"palette"`
	Owner     UserSummary `json:"owner"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
