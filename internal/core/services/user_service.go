package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
	"github.com/agrifusion/agrifusion-backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the account service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if req.FullName == "" || (isEmptyPtr(req.Email) && isEmptyPtr(req.Phone)) {
		return nil, fmt.Errorf("%w: full name and email or phone are required", apperrors.ErrValidation)
	}

	var passwordHash *string
	if !isEmptyPtr(req.Password) {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = &hash
	}

	now := time.Now()
	user := domain.User{
		UserID:             uuid.NewString(),
		FullName:           req.FullName,
		Email:              normalizePtr(req.Email),
		Phone:              normalizePtr(req.Phone),
		PasswordHash:       passwordHash,
		FarmLocation:       normalizePtr(req.FarmLocation),
		LanguagePreference: "English",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	if (isEmptyPtr(req.Email) && isEmptyPtr(req.Phone)) || req.Password == "" {
		return nil, fmt.Errorf("%w: email/phone and password required", apperrors.ErrValidation)
	}

	var user *domain.User
	var err error
	if !isEmptyPtr(req.Email) {
		user, err = s.userRepo.FindUserByEmail(ctx, *req.Email)
	} else {
		user, err = s.userRepo.FindUserByPhone(ctx, *req.Phone)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAuthentication
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Accounts registered without a password cannot log in with one.
	if isEmptyPtr(user.PasswordHash) {
		return nil, apperrors.ErrAuthentication
	}

	ok, err := utils.CheckPasswordHash(req.Password, *user.PasswordHash)
	if err != nil {
		// Corrupt hash, not a wrong password. The client still sees the
		// generic rejection.
		slog.ErrorContext(ctx, "password hash comparison failed", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, apperrors.ErrAuthentication
	}
	if !ok {
		return nil, apperrors.ErrAuthentication
	}

	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.UpdateUserProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func isEmptyPtr(s *string) bool {
	return s == nil || *s == ""
}

// normalizePtr maps empty strings to nil so optional identifiers are stored
// as NULL rather than colliding on "".
func normalizePtr(s *string) *string {
	if isEmptyPtr(s) {
		return nil
	}
	return s
}
