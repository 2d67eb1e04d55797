package repositories

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// DiagnosisRepository persists plant-disease diagnosis records. Every read,
// update and delete is filtered by the owning user's ID.
type DiagnosisRepository interface {
	SaveDiagnosis(ctx context.Context, diagnosis domain.Diagnosis) error
	FindDiagnosesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Diagnosis, int64, error)
	FindDiagnosisByID(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error)
	FindBookmarkedDiagnoses(ctx context.Context, userID string) ([]domain.Diagnosis, error)
	// ToggleBookmark flips is_bookmarked atomically and returns the updated
	// row, or apperrors.ErrNotFound when the row is absent or not owned.
	ToggleBookmark(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error)
	DeleteDiagnosis(ctx context.Context, userID, diagnosisID string) error
}
