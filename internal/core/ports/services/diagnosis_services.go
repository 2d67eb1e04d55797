package services

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

// DiagnosisSvcFacade defines diagnosis-record operations, all scoped to the
// authenticated user.
type DiagnosisSvcFacade interface {
	SaveDiagnosis(ctx context.Context, userID string, req dto.SaveDiagnosisRequest) (*domain.Diagnosis, error)
	ListDiagnoses(ctx context.Context, userID string, limit, offset int) ([]domain.Diagnosis, int64, error)
	GetDiagnosis(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error)
	ListBookmarkedDiagnoses(ctx context.Context, userID string) ([]domain.Diagnosis, error)
	ToggleBookmark(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error)
	DeleteDiagnosis(ctx context.Context, userID, diagnosisID string) error
}
