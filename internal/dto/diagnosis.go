package dto

import (
	"time"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// SaveDiagnosisRequest carries a new plant-disease diagnosis record.
type SaveDiagnosisRequest struct {
	ImageURL        string   `json:"imageUrl" binding:"required"`
	DiseaseName     string   `json:"diseaseName" binding:"required"`
	DiseaseSeverity *string  `json:"diseaseSeverity"`
	Confidence      *float64 `json:"confidence"`
	Description     *string  `json:"description"`
	Treatments      []string `json:"treatments"`
}

// ListParams defines the common pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset,default=0"`
}

// DiagnosisResponse is the public view of a diagnosis record.
type DiagnosisResponse struct {
	DiagnosisID     string    `json:"id"`
	ImageURL        string    `json:"imageUrl"`
	DiseaseName     string    `json:"diseaseName"`
	DiseaseSeverity *string   `json:"diseaseSeverity,omitempty"`
	Confidence      *float64  `json:"confidence,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Treatments      []string  `json:"treatments"`
	IsBookmarked    bool      `json:"isBookmarked"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListDiagnosesResponse wraps a page of diagnoses with pagination metadata.
type ListDiagnosesResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int64               `json:"total"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

// ToDiagnosisResponse converts a domain.Diagnosis to its public representation.
func ToDiagnosisResponse(d *domain.Diagnosis) DiagnosisResponse {
	treatments := d.Treatments
	if treatments == nil {
		treatments = []string{}
	}
	return DiagnosisResponse{
		DiagnosisID:     d.DiagnosisID,
		ImageURL:        d.ImageURL,
		DiseaseName:     d.DiseaseName,
		DiseaseSeverity: d.DiseaseSeverity,
		Confidence:      d.Confidence,
		Description:     d.Description,
		Treatments:      treatments,
		IsBookmarked:    d.IsBookmarked,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDiagnosisResponseSlice converts a slice of domain diagnoses.
func ToDiagnosisResponseSlice(ds []domain.Diagnosis) []DiagnosisResponse {
	out := make([]DiagnosisResponse, len(ds))
	for i := range ds {
		out[i] = ToDiagnosisResponse(&ds[i])
	}
	return out
}
