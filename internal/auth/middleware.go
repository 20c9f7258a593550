package auth

import (
	"net/http"
	"strings"

	apperrors "aircraft-manufacturing-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the acting user on the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID.String())
		c.Set("username", claims.Username)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireAdmin allows only tokens carrying the admin flag. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFromContext extracts the validated claims set by RequireAuth.
func ClaimsFromContext(c *gin.Context) (*AuthClaims, bool) {
	value, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*AuthClaims)
	return claims, ok
}
