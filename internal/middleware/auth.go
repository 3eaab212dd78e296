package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/auth"
	"practicehub_backend/internal/logger"
	"practicehub_backend/pkg/contextkeys"
)

// AuthMiddleware requires a Bearer session token and places the account id
// into both the gin context and the request context for logging. Reset
// tokens are rejected here even though they carry a valid signature.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil || claims.Purpose != auth.PurposeSession {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(string(contextkeys.AccountIDKey), claims.AccountID)

		ctx := logger.WithAccountID(c.Request.Context(), claims.AccountID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
