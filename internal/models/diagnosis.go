package models

import "time"

// Diagnosis is the database representation of a plant_diagnoses row.
type Diagnosis struct {
	DiagnosisID     string    `db:"id"`
	UserID          string    `db:"user_id"`
	ImageURL        string    `db:"image_url"`
	DiseaseName     string    `db:"disease_name"`
	DiseaseSeverity *string   `db:"disease_severity"`
	Confidence      *float64  `db:"confidence"`
	Description     *string   `db:"description"`
	Treatments      []string  `db:"treatments"`
	IsBookmarked    bool      `db:"is_bookmarked"`
	CreatedAt       time.Time `db:"created_at"`
}
