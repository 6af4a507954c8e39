package domain

import "time"

// PasswordResetOTP is a short-lived one-time code for the forgot-password
// flow. At most one live OTP exists per customer; requesting a new one
// replaces the old.
type PasswordResetOTP struct {
	ID         int
	CustomerID int
	OTP        int
	ExpiresAt  time.Time
}

// Expired reports whether the OTP is past its deadline.
func (p *PasswordResetOTP) Expired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}
