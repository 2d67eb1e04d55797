package repositories

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

// UserRepository persists user identity records.
type UserRepository interface {
	// CreateUser inserts a new user. A unique-constraint collision on email
	// or phone is reported as apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) error
	// FindUserByID returns apperrors.ErrNotFound when no row matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail performs an exact-match lookup, no case normalization.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByPhone performs an exact-match lookup.
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	// UpdateUserProfile applies only the non-nil allow-listed fields and
	// returns the updated row.
	UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}
