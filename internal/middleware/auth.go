package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

const userIDKey = "userID"

// Auth requires a Bearer token and stores the authenticated user id on the
// context. Handlers still receive actor ids in request payloads; the token
// only establishes who is calling.
func Auth(accounts service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		userID, err := accounts.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
