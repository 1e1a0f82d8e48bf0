package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/MCKesav/PaletteLive-website/models"
)

type ShareRepository interface {
	Create(share models.PaletteShare) (models.PaletteShare, error)
	ListSharedWith(recipientID string) ([]models.SharedPaletteSummary, error)
	Delete(shareID int, ownerID string) error
	DeleteExpired() (int64, error)
}

type ShareDatabase struct {
	database *sql.DB
}

func NewShareDatabase(db *sql.DB) (ShareDatabase, error) {
	var shareDB ShareDatabase
	shareDB.database = db
	return shareDB, nil
}

// Create records a palette share. A palette can be shared with a given
// recipient only once; re-sharing refreshes the expiry.
func (sdb ShareDatabase) Create(share models.PaletteShare) (models.PaletteShare, error) {
	db := sdb.database

	sqlStatement := `
		INSERT INTO palette_shares (palette_id, owner_id, recipient_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (palette_id, recipient_id)
		DO UPDATE SET expires_at = $5
		RETURNING share_id`

	insertErr := db.QueryRow(
		sqlStatement,
		share.PaletteID,
		share.OwnerID,
		share.RecipientID,
		share.CreatedAt,
		share.ExpiresAt,
	).Scan(&share.ShareID)

	if insertErr != nil {
		return models.PaletteShare{}, fmt.Errorf("failed to create share: %v", insertErr)
	}

	return share, nil
}

// ListSharedWith returns the unexpired palettes shared with a user, each
// joined with its palette and the sharing user's summary.
func (sdb ShareDatabase) ListSharedWith(recipientID string) ([]models.SharedPaletteSummary, error) {
	db := sdb.database

	sqlStatement := `
		SELECT
			s.share_id,
			s.created_at,
			s.expires_at,
			p.palette_id,
			p.user_id,
			p.name,
			p.colors,
			p.created_at,
			p.updated_at,
			u.user_id,
			u.username
		FROM palette_shares s
		JOIN palettes p ON p.palette_id = s.palette_id
		JOIN users u ON u.user_id = s.owner_id
		WHERE s.recipient_id = $1 AND s.expires_at > NOW()
		ORDER BY s.created_at DESC`

	rows, queryErr := db.Query(sqlStatement, recipientID)
	if queryErr != nil {
		return []models.SharedPaletteSummary{}, queryErr
	}
	defer rows.Close()

	var shares []models.SharedPaletteSummary
	for rows.Next() {
		var summary models.SharedPaletteSummary
		var colorsJSON []byte
		scanErr := rows.Scan(
			&summary.ShareID,
			&summary.CreatedAt,
			&summary.ExpiresAt,
			&summary.Palette.PaletteID,
			&summary.Palette.UserID,
			&summary.Palette.Name,
			&colorsJSON,
			&summary.Palette.CreatedAt,
			&summary.Palette.UpdatedAt,
			&summary.Owner.UserID,
			&summary.Owner.Username,
		)
		if scanErr != nil {
			return []models.SharedPaletteSummary{}, scanErr
		}
		if unmarshalErr := summary.Palette.UnmarshalColors(colorsJSON); unmarshalErr != nil {
			return []models.SharedPaletteSummary{}, unmarshalErr
		}
		shares = append(shares, summary)
	}

	if rows.Err() != nil {
		return []models.SharedPaletteSummary{}, rows.Err()
	}

	return shares, nil
}

// Delete removes a share, scoped to the sharing owner
func (sdb ShareDatabase) Delete(shareID int, ownerID string) error {
	db := sdb.database

	result, delErr := db.Exec("DELETE FROM palette_shares WHERE share_id = $1 AND owner_id = $2", shareID, ownerID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}

// DeleteExpired removes shares past their expiry and reports how many were
// removed. Run daily by the maintenance scheduler.
func (sdb ShareDatabase) DeleteExpired() (int64, error) {
	db := sdb.database

	result, delErr := db.Exec("DELETE FROM palette_shares WHERE expires_at < NOW()")
	if delErr != nil {
		return 0, fmt.Errorf("error pruning shares %v", delErr)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}
