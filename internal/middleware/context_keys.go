package middleware

import (
	"time"

	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the Gin context.
// Using a custom type prevents collisions.
const (
	userIDKey  = contextKey("userID")
	sessionKey = contextKey("session")
)

// SessionInfo describes the token a request was authenticated with.
type SessionInfo struct {
	UserID    string
	Role      domain.UserRole
	TokenID   string
	ExpiresAt time.Time
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userID, ok := userIDVal.(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetSessionFromContext retrieves the session the request was authenticated with.
func GetSessionFromContext(c *gin.Context) (SessionInfo, bool) {
	if v, exists := c.Get(string(sessionKey)); exists {
		if s, ok := v.(SessionInfo); ok {
			return s, true
		}
	}
	if s, ok := c.Request.Context().Value(sessionKey).(SessionInfo); ok {
		return s, true
	}
	return SessionInfo{}, false
}
