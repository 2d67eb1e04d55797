package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

const defaultDiagnosisPageSize = 20

type diagnosisService struct {
	diagnosisRepo portsrepo.DiagnosisRepository
}

// NewDiagnosisService creates the diagnosis-record service.
func NewDiagnosisService(diagnosisRepo portsrepo.DiagnosisRepository) portssvc.DiagnosisSvcFacade {
	return &diagnosisService{diagnosisRepo: diagnosisRepo}
}

func (s *diagnosisService) SaveDiagnosis(ctx context.Context, userID string, req dto.SaveDiagnosisRequest) (*domain.Diagnosis, error) {
	treatments := req.Treatments
	if treatments == nil {
		treatments = []string{}
	}
	diagnosis := domain.Diagnosis{
		DiagnosisID:     uuid.NewString(),
		UserID:          userID,
		ImageURL:        req.ImageURL,
		DiseaseName:     req.DiseaseName,
		DiseaseSeverity: req.DiseaseSeverity,
		Confidence:      req.Confidence,
		Description:     req.Description,
		Treatments:      treatments,
		CreatedAt:       time.Now(),
	}
	if err := s.diagnosisRepo.SaveDiagnosis(ctx, diagnosis); err != nil {
		return nil, err
	}
	return &diagnosis, nil
}

func (s *diagnosisService) ListDiagnoses(ctx context.Context, userID string, limit, offset int) ([]domain.Diagnosis, int64, error) {
	if limit <= 0 {
		limit = defaultDiagnosisPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.diagnosisRepo.FindDiagnosesByUser(ctx, userID, limit, offset)
}

func (s *diagnosisService) GetDiagnosis(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error) {
	return s.diagnosisRepo.FindDiagnosisByID(ctx, userID, diagnosisID)
}

func (s *diagnosisService) ListBookmarkedDiagnoses(ctx context.Context, userID string) ([]domain.Diagnosis, error) {
	return s.diagnosisRepo.FindBookmarkedDiagnoses(ctx, userID)
}

func (s *diagnosisService) ToggleBookmark(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error) {
	return s.diagnosisRepo.ToggleBookmark(ctx, userID, diagnosisID)
}

func (s *diagnosisService) DeleteDiagnosis(ctx context.Context, userID, diagnosisID string) error {
	return s.diagnosisRepo.DeleteDiagnosis(ctx, userID, diagnosisID)
}
