package services

import "github.com/agrifusion/agrifusion-backend/internal/core/domain"

// TokenSvcFacade issues and verifies bearer tokens. Tokens are stateless and
// non-revocable; verification is pure computation with no I/O.
type TokenSvcFacade interface {
	Issue(userID, email string) (string, error)
	// Verify returns apperrors.ErrInvalidToken for malformed, tampered or
	// expired tokens. There is no partial-trust mode.
	Verify(tokenString string) (*domain.AuthIdentity, error)
}
