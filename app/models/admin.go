package models

import "time"

// Admin is a privileged account. Registration is a one-time bootstrap:
// once a record exists no further admins can be created.
type Admin struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Transient password-reset state
	ResetOTP       *string    `json:"-"`
	ResetOTPExpiry *time.Time `json:"-"`
	OTPVerified    bool       `json:"-"`
}
