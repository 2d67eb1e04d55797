package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	"github.com/agrifusion/agrifusion-backend/internal/models"
)

type PgxDiagnosisRepository struct {
	db PgxPool
}

// NewDiagnosisRepository creates a pgsql-backed diagnosis repository.
func NewDiagnosisRepository(db PgxPool) portsrepo.DiagnosisRepository {
	return &PgxDiagnosisRepository{db: db}
}

var _ portsrepo.DiagnosisRepository = (*PgxDiagnosisRepository)(nil)

const diagnosisColumns = `id, user_id, image_url, disease_name, disease_severity, confidence, description, treatments, is_bookmarked, created_at`

func toDomainDiagnosis(m models.Diagnosis) domain.Diagnosis {
	return domain.Diagnosis{
		DiagnosisID:     m.DiagnosisID,
		UserID:          m.UserID,
		ImageURL:        m.ImageURL,
		DiseaseName:     m.DiseaseName,
		DiseaseSeverity: m.DiseaseSeverity,
		Confidence:      m.Confidence,
		Description:     m.Description,
		Treatments:      m.Treatments,
		IsBookmarked:    m.IsBookmarked,
		CreatedAt:       m.CreatedAt,
	}
}

func scanDiagnosis(row pgx.Row) (*domain.Diagnosis, error) {
	var m models.Diagnosis
	err := row.Scan(
		&m.DiagnosisID,
		&m.UserID,
		&m.ImageURL,
		&m.DiseaseName,
		&m.DiseaseSeverity,
		&m.Confidence,
		&m.Description,
		&m.Treatments,
		&m.IsBookmarked,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan diagnosis row: %w", err)
	}
	d := toDomainDiagnosis(m)
	return &d, nil
}

func (r *PgxDiagnosisRepository) collectDiagnoses(rows pgx.Rows) ([]domain.Diagnosis, error) {
	defer rows.Close()
	diagnoses := []domain.Diagnosis{}
	for rows.Next() {
		d, err := scanDiagnosis(rows)
		if err != nil {
			return nil, err
		}
		diagnoses = append(diagnoses, *d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating diagnosis rows: %w", rows.Err())
	}
	return diagnoses, nil
}

func (r *PgxDiagnosisRepository) SaveDiagnosis(ctx context.Context, diagnosis domain.Diagnosis) error {
	query := `
        INSERT INTO plant_diagnoses (id, user_id, image_url, disease_name, disease_severity, confidence, description, treatments, is_bookmarked, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		diagnosis.DiagnosisID,
		diagnosis.UserID,
		diagnosis.ImageURL,
		diagnosis.DiseaseName,
		diagnosis.DiseaseSeverity,
		diagnosis.Confidence,
		diagnosis.Description,
		diagnosis.Treatments,
		diagnosis.IsBookmarked,
		diagnosis.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert diagnosis: %w", err)
	}
	return nil
}

func (r *PgxDiagnosisRepository) FindDiagnosesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Diagnosis, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM plant_diagnoses WHERE user_id = $1;`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count diagnoses: %w", err)
	}

	query := `
        SELECT ` + diagnosisColumns + `
        FROM plant_diagnoses
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query diagnoses: %w", err)
	}
	diagnoses, err := r.collectDiagnoses(rows)
	if err != nil {
		return nil, 0, err
	}
	return diagnoses, total, nil
}

func (r *PgxDiagnosisRepository) FindDiagnosisByID(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error) {
	query := `SELECT ` + diagnosisColumns + ` FROM plant_diagnoses WHERE id = $1 AND user_id = $2;`
	return scanDiagnosis(r.db.QueryRow(ctx, query, diagnosisID, userID))
}

func (r *PgxDiagnosisRepository) FindBookmarkedDiagnoses(ctx context.Context, userID string) ([]domain.Diagnosis, error) {
	query := `
        SELECT ` + diagnosisColumns + `
        FROM plant_diagnoses
        WHERE user_id = $1 AND is_bookmarked = TRUE
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarked diagnoses: %w", err)
	}
	return r.collectDiagnoses(rows)
}

// ToggleBookmark flips the flag in one statement; the read-modify-write the
// client sees is atomic on the row.
func (r *PgxDiagnosisRepository) ToggleBookmark(ctx context.Context, userID, diagnosisID string) (*domain.Diagnosis, error) {
	query := `
        UPDATE plant_diagnoses
        SET is_bookmarked = NOT is_bookmarked
        WHERE id = $1 AND user_id = $2
        RETURNING ` + diagnosisColumns + `;
    `
	return scanDiagnosis(r.db.QueryRow(ctx, query, diagnosisID, userID))
}

func (r *PgxDiagnosisRepository) DeleteDiagnosis(ctx context.Context, userID, diagnosisID string) error {
	query := `DELETE FROM plant_diagnoses WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, diagnosisID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete diagnosis: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
