package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/services"
	"github.com/agrifusion/agrifusion-backend/internal/platform/config"
)

func newTokenTestConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key",
		JWTExpiryDuration: expiry,
		JWTIssuer:         "agrifusion-backend",
	}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	cfg := newTokenTestConfig(time.Hour)
	cfg.JWTSecret = ""

	svc, err := services.NewTokenService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc, err := services.NewTokenService(newTokenTestConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.NewString()
	email := "farmer@example.com"

	tokenString, err := svc.Issue(userID, email)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	identity, err := svc.Verify(tokenString)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, email, identity.Email)
}

func TestTokenService_VerifyExpiredToken(t *testing.T) {
	// A negative expiry makes every issued token already expired.
	svc, err := services.NewTokenService(newTokenTestConfig(-time.Minute))
	require.NoError(t, err)

	tokenString, err := svc.Issue(uuid.NewString(), "farmer@example.com")
	require.NoError(t, err)

	identity, err := svc.Verify(tokenString)

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_VerifyTamperedToken(t *testing.T) {
	svc, err := services.NewTokenService(newTokenTestConfig(time.Hour))
	require.NoError(t, err)

	tokenString, err := svc.Issue(uuid.NewString(), "farmer@example.com")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	tampered := tokenString[:len(tokenString)-2] + "xx"

	identity, err := svc.Verify(tampered)

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer, err := services.NewTokenService(newTokenTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTokenTestConfig(time.Hour)
	otherCfg.JWTSecret = "a-different-secret"
	verifier, err := services.NewTokenService(otherCfg)
	require.NoError(t, err)

	tokenString, err := issuer.Issue(uuid.NewString(), "")
	require.NoError(t, err)

	identity, err := verifier.Verify(tokenString)

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_VerifyGarbageInput(t *testing.T) {
	svc, err := services.NewTokenService(newTokenTestConfig(time.Hour))
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		identity, verr := svc.Verify(input)
		require.Error(t, verr)
		assert.Nil(t, identity)
		assert.ErrorIs(t, verr, apperrors.ErrInvalidToken)
	}
}

func TestTokenService_VerifyMissingSubject(t *testing.T) {
	svc, err := services.NewTokenService(newTokenTestConfig(time.Hour))
	require.NoError(t, err)

	tokenString, err := svc.Issue("", "farmer@example.com")
	require.NoError(t, err)

	identity, err := svc.Verify(tokenString)

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
