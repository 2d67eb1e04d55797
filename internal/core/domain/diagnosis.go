package domain

import "time"

// Diagnosis is a stored plant-disease diagnosis result for one user.
type Diagnosis struct {
	DiagnosisID     string
	UserID          string
	ImageURL        string
	DiseaseName     string
	DiseaseSeverity *string
	Confidence      *float64
	Description     *string
	Treatments      []string
	IsBookmarked    bool
	CreatedAt       time.Time
}
