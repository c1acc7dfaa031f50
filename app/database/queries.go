package database

import (
	"database/sql"
	"time"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

func GetAdminByEmail(db *sql.DB, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, email, password, name, last_login, reset_otp, reset_otp_expiry, otp_verified, created_at, updated_at
			  FROM admins WHERE LOWER(email) = LOWER($1)`

	err := db.QueryRow(query, email).Scan(
		&admin.ID, &admin.Email, &admin.Password, &admin.Name, &admin.LastLogin,
		&admin.ResetOTP, &admin.ResetOTPExpiry, &admin.OTPVerified,
		&admin.CreatedAt, &admin.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return admin, nil
}

func GetAdminByID(db *sql.DB, adminID string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, email, password, name, last_login, reset_otp, reset_otp_expiry, otp_verified, created_at, updated_at
			  FROM admins WHERE id = $1`

	err := db.QueryRow(query, adminID).Scan(
		&admin.ID, &admin.Email, &admin.Password, &admin.Name, &admin.LastLogin,
		&admin.ResetOTP, &admin.ResetOTPExpiry, &admin.OTPVerified,
		&admin.CreatedAt, &admin.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return admin, nil
}

func CountAdmins(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

func CreateAdmin(db *sql.DB, admin *models.Admin, hashedPassword string) error {
	query := `INSERT INTO admins (email, password, name, created_at, updated_at)
			  VALUES (LOWER($1), $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, admin.Email, hashedPassword, admin.Name).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func UpdateAdminLastLogin(db *sql.DB, adminID string) error {
	_, err := db.Exec(`UPDATE admins SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, adminID)
	return err
}

func UpdateAdminPassword(db *sql.DB, adminID string, hashedPassword string) error {
	_, err := db.Exec(`UPDATE admins SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, adminID)
	return err
}

// SetResetOTP writes the full reset-request state in one update.
func SetResetOTP(db *sql.DB, adminID, otp string, expiry time.Time) error {
	query := `UPDATE admins SET reset_otp = $1, reset_otp_expiry = $2, otp_verified = false, updated_at = NOW()
			  WHERE id = $3`
	_, err := db.Exec(query, otp, expiry, adminID)
	return err
}

// ClearResetOTP removes all three reset fields. Used on expiry and to roll
// back a request whose OTP mail could not be sent.
func ClearResetOTP(db *sql.DB, adminID string) error {
	query := `UPDATE admins SET reset_otp = NULL, reset_otp_expiry = NULL, otp_verified = false, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, adminID)
	return err
}

func MarkOTPVerified(db *sql.DB, adminID string) error {
	_, err := db.Exec(`UPDATE admins SET otp_verified = true, updated_at = NOW() WHERE id = $1`, adminID)
	return err
}

// CompletePasswordReset writes the new password and clears the reset state
// in a single statement so the two never diverge.
func CompletePasswordReset(db *sql.DB, adminID string, hashedPassword string) error {
	query := `UPDATE admins
			  SET password = $1, reset_otp = NULL, reset_otp_expiry = NULL, otp_verified = false, updated_at = NOW()
			  WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, adminID)
	return err
}

// ClearExpiredOTPs drops reset state whose window has lapsed. Called by
// the background sweeper.
func ClearExpiredOTPs(db *sql.DB) (int64, error) {
	result, err := db.Exec(`UPDATE admins
		SET reset_otp = NULL, reset_otp_expiry = NULL, otp_verified = false, updated_at = NOW()
		WHERE reset_otp IS NOT NULL AND reset_otp_expiry < NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
