package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/platform/config"
)

// tokenClaims carries the user's email alongside the registered claim set.
// The subject claim holds the user ID.
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewTokenService creates the JWT token service. It refuses an empty signing
// secret; config loading enforces the same at startup, this is the last line.
func NewTokenService(cfg *config.Config) (portssvc.TokenSvcFacade, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("token service: signing secret is not configured")
	}
	return &tokenService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}, nil
}

func (s *tokenService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Verify(tokenString string) (*domain.AuthIdentity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &domain.AuthIdentity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
