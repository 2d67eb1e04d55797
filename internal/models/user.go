package models

import "time"

// User is the database representation of a user row.
type User struct {
	UserID             string     `db:"id"`
	FullName           string     `db:"full_name"`
	Email              *string    `db:"email"`
	Phone              *string    `db:"phone"`
	PasswordHash       *string    `db:"password_hash"`
	FarmLocation       *string    `db:"farm_location"`
	FarmSize           *float64   `db:"farm_size"`
	CropTypes          []string   `db:"crop_types"`
	LanguagePreference string     `db:"language_preference"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}
