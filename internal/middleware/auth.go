package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
)

const usernameKey = "username"

// TokenParser verifies bearer tokens
type TokenParser interface {
	ParseToken(token string) (*service.Claims, error)
}

// Auth middleware validates JWT bearer tokens
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			response.Unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := parser.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			return
		}

		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// GetUsername returns the authenticated username, empty when anonymous
func GetUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}
