package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"physique_backend/internal/auth"
	"physique_backend/internal/logger"
)

const userIDKey = "userID"

// AuthMiddleware rejects requests without a valid access token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}
		setUser(c, claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is
// present but lets anonymous requests through. Used by /analyze, which
// works without an account but persists results with one.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c); ok {
			setUser(c, claims.UserID)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setUser(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
}

// GetUserID returns the authenticated user's ID, or "" for anonymous
// requests.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
