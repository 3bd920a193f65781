package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotbook/internal/domain/user"
	"slotbook/internal/pkg/cookie"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxIdentityKey = "identity"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// RequireOperator gates operator-only routes. Operator standing comes from
// the validated role claim, never from comparing user ids.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			// Should be chained after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if identity.Role != user.RoleOperator {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, identity usecase.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxUserIDKey, identity.UserID)
	c.Set(ctxUserRoleKey, identity.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": identity.UserID.String(),
		"role":    string(identity.Role),
	})
}

func GetIdentity(c *gin.Context) (usecase.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return usecase.Identity{}, false
	}
	identity, ok := v.(usecase.Identity)
	return identity, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
