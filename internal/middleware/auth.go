package middleware

import (
	"net/http"

	"devconnector-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "x-auth-token"

// UserIDKey is the gin context key the authenticated user ID is stored under.
const UserIDKey = "user_id"

// AuthMiddleware verifies the x-auth-token header and injects the
// authenticated user ID into the request context. A missing token and an
// invalid token get distinct messages; verification sub-failures do not.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"msg": "No token, authorisation denied",
			})
			return
		}

		userID, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"msg": "Token is not valid",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
