package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// identityKey is the key under which the verified identity is stored in the
// request context.
const identityKey = contextKey("authIdentity")

// GetIdentityFromContext retrieves the verified identity set by
// AuthMiddleware. The boolean is false on unauthenticated requests.
func GetIdentityFromContext(c *gin.Context) (domain.AuthIdentity, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(domain.AuthIdentity)
	return identity, ok
}

// GetUserIDFromContext retrieves just the authenticated user's ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(c)
	if !ok {
		return "", false
	}
	return identity.UserID, true
}
