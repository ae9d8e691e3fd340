package auth

import (
	"codeberg.org/roomrevive/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// resolves the bearer token and stores the identity under "user_id"
func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			errors.Unauthorized(c, "Please sign in to continue")
			return
		}

		userID, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			errors.Unauthorized(c, "Please sign in to continue")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(userIDKey)
	return userID, userID != ""
}
