package domain

import "time"

// User represents a registered farmer account.
//
// Email and phone are each optional but at least one must be present; both
// are globally unique when set. PasswordHash is empty when the account was
// registered without a password, in which case password login is impossible.
type User struct {
	UserID             string
	FullName           string
	Email              *string
	Phone              *string
	PasswordHash       *string
	FarmLocation       *string
	FarmSize           *float64
	CropTypes          []string
	LanguagePreference string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
