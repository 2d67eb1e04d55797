package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
	"github.com/agrifusion/agrifusion-backend/internal/models"
)

type PgxUserRepository struct {
	db PgxPool
}

// NewUserRepository creates a pgsql-backed user repository.
func NewUserRepository(db PgxPool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `id, full_name, email, phone, password_hash, farm_location, farm_size, crop_types, language_preference, created_at, updated_at`

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		FullName:           m.FullName,
		Email:              m.Email,
		Phone:              m.Phone,
		PasswordHash:       m.PasswordHash,
		FarmLocation:       m.FarmLocation,
		FarmSize:           m.FarmSize,
		CropTypes:          m.CropTypes,
		LanguagePreference: m.LanguagePreference,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.FullName,
		&m.Email,
		&m.Phone,
		&m.PasswordHash,
		&m.FarmLocation,
		&m.FarmSize,
		&m.CropTypes,
		&m.LanguagePreference,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (id, full_name, email, phone, password_hash, farm_location, language_preference, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.FullName,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.FarmLocation,
		user.LanguagePreference,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email or phone already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1;`
	return scanUser(r.db.QueryRow(ctx, query, phone))
}

// UpdateUserProfile updates only the allow-listed columns. COALESCE keeps the
// stored value for every field the request omitted, so nothing outside the
// column list below can ever change through this path.
func (r *PgxUserRepository) UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	query := `
        UPDATE users
        SET full_name     = COALESCE($1, full_name),
            email         = COALESCE($2, email),
            phone         = COALESCE($3, phone),
            farm_location = COALESCE($4, farm_location),
            updated_at    = NOW()
        WHERE id = $5
        RETURNING ` + userColumns + `;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, req.FullName, req.Email, req.Phone, req.FarmLocation, userID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email or phone already registered: %w", apperrors.ErrDuplicate)
		}
		return nil, err
	}
	return user, nil
}
