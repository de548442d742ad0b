package middleware

import (
	"freight-tms/internal/config"
	"freight-tms/internal/usecase/access"
	"freight-tms/pkg/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccountIDKey = "accountID"
	EmailKey     = "email"
)

// AuthMiddleware accepts access tokens only. Roles are never read from the
// token: services resolve them from the caller's profile on every request.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token, cfg.JWT.Secret)
		if err != nil || claims.TokenType != utils.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// GetCaller returns the authenticated caller, or a zero Caller outside AuthMiddleware.
func GetCaller(c *gin.Context) access.Caller {
	value, exists := c.Get(AccountIDKey)
	if !exists {
		return access.Caller{}
	}
	accountID, ok := value.(uuid.UUID)
	if !ok {
		return access.Caller{}
	}
	return access.Caller{AccountID: accountID, Email: c.GetString(EmailKey)}
}
