package services

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

// UserSvcFacade defines the account operations exposed to handlers.
type UserSvcFacade interface {
	// Register creates a user and returns it. Missing fullName or missing
	// both identifiers yields apperrors.ErrValidation before any store
	// write; identifier collisions yield apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login authenticates by email (preferred) or phone. Unknown
	// identifier, absent password hash and wrong password all yield the
	// same apperrors.ErrAuthentication.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}
