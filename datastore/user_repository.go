package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/MCKesav/PaletteLive-website/models"
)

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	DeleteUserByID(userID string) error
	Update(user models.User) (models.User, error)
	ValidateAndGetUser(userLogin models.Credentials) (models.User, error)
	GetAllUsers() ([]models.User, error)

	// Device management
	CreateDevice(device models.UserDevice) error
	GetDeviceByFingerprint(userID string, fingerprint string) (models.UserDevice, error)
	DeleteDevice(deviceID string) error
	DeleteExpiredDevices() (int64, error)
}

func NewUserDatabase(db *sql.DB) (UserDatabase, error) {
	var UserDatabase UserDatabase
	UserDatabase.database = db
	return UserDatabase, nil
}

type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

type UserDatabase struct {
	database *sql.DB
}

func (pgdb UserDatabase) Create(user models.User) (models.User, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO users (
			user_id,
			username,
			email,
			password_hash,
			kind,
			approved,
			created_at,
			updated_at
		) VALUES (
			$1,
			$2,
			$3,
			$4,
			$5,
			$6,
			$7,
			$8
		)`,
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.Approved,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if insertErr != nil {
		return user, insertErr
	}

	return user, nil
}

func (pgdb UserDatabase) Get(userID string) (models.User, error) {
	db := pgdb.database

	sqlStatement := `
	SELECT
		user_id,
		username,
		email,
		password_hash,
		kind,
		approved,
		created_at,
		updated_at
	FROM users
	WHERE user_id=$1;`

	row := db.QueryRow(sqlStatement, userID)
	return scanUser(row)
}

func (pgdb UserDatabase) GetAllUsers() ([]models.User, error) {
	db := pgdb.database
	sqlStatement := `
	SELECT
		user_id,
		username,
		email,
		password_hash,
		kind,
		approved,
		created_at,
		updated_at
	FROM users
	ORDER BY created_at DESC`

	rows, pgErr := db.Query(sqlStatement)
	if pgErr != nil {
		return []models.User{}, pgErr
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		scanErr := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.Email,
			&user.HashedPassword,
			&user.Kind,
			&user.Approved,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if scanErr != nil {
			return []models.User{}, scanErr
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return []models.User{}, rows.Err()
	}

	return users, nil
}

func (pgdb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	db := pgdb.database

	sqlStatement := `
		SELECT
			user_id,
			username,
			email,
			password_hash,
			kind,
			approved,
			created_at,
			updated_at
		FROM users
		WHERE email = $1`

	row := db.QueryRow(sqlStatement, email)
	return scanUser(row)
}

func (pgdb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	db := pgdb.database

	sqlStatement := `
		SELECT
			user_id,
			username,
			email,
			password_hash,
			kind,
			approved,
			created_at,
			updated_at
		FROM users
		WHERE username = $1`

	row := db.QueryRow(sqlStatement, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	scanErr := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.Approved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.User{}, NoRowsError{true, scanErr}
	case nil:
		return user, nil
	default:
		return models.User{}, scanErr
	}
}

func (pgdb UserDatabase) DeleteUserByID(userID string) error {
	db := pgdb.database
	_, delErr := db.Exec("DELETE FROM users WHERE user_id=$1", userID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	return nil
}

func (pgdb UserDatabase) Update(user models.User) (models.User, error) {
	db := pgdb.database

	sqlStatement := `
	UPDATE users
	SET
		username = $2,
		email = $3,
		kind = $4,
		updated_at = $5
	WHERE user_id = $1
	`
	_, updateErr := db.Exec(sqlStatement,
		user.UserID,
		user.Username,
		user.Email,
		user.Kind,
		time.Now(),
	)

	if updateErr != nil {
		return models.User{}, fmt.Errorf("error updating user %v", updateErr)
	}
	return user, nil
}

func (pgdb UserDatabase) ValidateAndGetUser(credentials models.Credentials) (models.User, error) {
	user, getErr := pgdb.GetUserByEmail(credentials.Email)
	if getErr != nil {
		return models.User{}, fmt.Errorf("no user found for email %v", credentials.Email)
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(credentials.Password))
	if compareErr != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}

	return user, nil
}

// CreateDevice inserts or refreshes a device record for a user
func (pgdb UserDatabase) CreateDevice(device models.UserDevice) error {
	db := pgdb.database

	sqlStatement := `
		INSERT INTO user_devices (user_id, fingerprint, device_data, expiry)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, fingerprint)
		DO UPDATE SET device_data = $3, expiry = $4`

	_, insertErr := db.Exec(sqlStatement,
		device.UserID,
		device.Fingerprint,
		device.DeviceData,
		device.Expiry,
	)

	if insertErr != nil {
		return fmt.Errorf("error storing device %v", insertErr)
	}
	return nil
}

func (pgdb UserDatabase) GetDeviceByFingerprint(userID string, fingerprint string) (models.UserDevice, error) {
	db := pgdb.database

	sqlStatement := `
		SELECT id, user_id, fingerprint, device_data, expiry
		FROM user_devices
		WHERE user_id = $1 AND fingerprint = $2`

	row := db.QueryRow(sqlStatement, userID, fingerprint)

	var device models.UserDevice
	scanErr := row.Scan(
		&device.ID,
		&device.UserID,
		&device.Fingerprint,
		&device.DeviceData,
		&device.Expiry,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.UserDevice{}, NoRowsError{true, scanErr}
	case nil:
		return device, nil
	default:
		return models.UserDevice{}, scanErr
	}
}

func (pgdb UserDatabase) DeleteDevice(deviceID string) error {
	db := pgdb.database
	_, delErr := db.Exec("DELETE FROM user_devices WHERE id=$1", deviceID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	return nil
}

// DeleteExpiredDevices removes device records whose expiry has passed and
// reports how many were removed. Run daily by the maintenance scheduler.
func (pgdb UserDatabase) DeleteExpiredDevices() (int64, error) {
	db := pgdb.database

	result, delErr := db.Exec("DELETE FROM user_devices WHERE expiry < NOW()")
	if delErr != nil {
		return 0, fmt.Errorf("error pruning devices %v", delErr)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}
